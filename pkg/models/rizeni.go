package models

// Rizeni is an administrative proceeding, identified naturally by
// type + case number + year.
type Rizeni struct {
	ID          int32   `json:"id"`
	Rok         int32   `json:"rok"`
	CisloRizeni int32   `json:"cislo_rizeni"`
	TypRizeniID int32   `json:"typ_rizeni_id"`
	Predmet     string  `json:"predmet"`
	Poznamka    *string `json:"poznamka"`
}

// NewRizeni is the insert shape for Rizeni.
type NewRizeni struct {
	Rok         int32   `json:"rok"`
	CisloRizeni int32   `json:"cislo_rizeni"`
	TypRizeniID int32   `json:"typ_rizeni_id"`
	Predmet     string  `json:"predmet"`
	Poznamka    *string `json:"poznamka"`
}

// RizeniOperaceRow joins a proceeding to an operation type with the date the
// operation took place.
type RizeniOperaceRow struct {
	RizeniID     int32 `json:"rizeni_id"`
	TypOperaceID int32 `json:"typ_operace_id"`
	Datum        Date  `json:"datum"`
}

// NewRizeniOperaceRow is the insert shape for RizeniOperaceRow.
type NewRizeniOperaceRow struct {
	RizeniID     int32 `json:"rizeni_id"`
	TypOperaceID int32 `json:"typ_operace_id"`
	Datum        Date  `json:"datum"`
}

// Ucast is the three-way participation join of proceeding, participant and
// participant role. Rows are only ever created and removed, never updated.
type Ucast struct {
	RizeniID         int32 `json:"rizeni_id"`
	UcastnikRizeniID int32 `json:"ucastnik_rizeni_id"`
	TypUcastnikaID   int32 `json:"typ_ucastnika_id"`
}

// NewUcast is the insert shape for Ucast.
type NewUcast struct {
	RizeniID         int32 `json:"rizeni_id"`
	UcastnikRizeniID int32 `json:"ucastnik_rizeni_id"`
	TypUcastnikaID   int32 `json:"typ_ucastnika_id"`
}
