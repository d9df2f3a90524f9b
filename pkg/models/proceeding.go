package models

// Composite response shapes for the proceeding lookup (GET /spravni_rizeni).

// ProceedingSubject carries the subject and optional note of a proceeding.
type ProceedingSubject struct {
	Predmet  string  `json:"predmet"`
	Poznamka *string `json:"poznamka"`
}

// ProceedingParticipant is one participant row with their role name.
type ProceedingParticipant struct {
	TypUcastnika  string `json:"typ_ucastnika"`
	UcastnikJmeno string `json:"ucastnik_jmeno"`
}

// ProceedingOperation is one operation performed within the proceeding.
type ProceedingOperation struct {
	OperacePopis string `json:"operace_popis"`
	OperaceDatum *Date  `json:"operace_datum"`
}

// ProceedingDetail is the full composite response for GET /spravni_rizeni.
type ProceedingDetail struct {
	Predmet   []ProceedingSubject     `json:"predmet"`
	Ucastnici []ProceedingParticipant `json:"ucastnici"`
	Operace   []ProceedingOperation   `json:"operace"`
}
