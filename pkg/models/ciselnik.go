package models

// Reference code lists (ciselniky) used by parcels and proceedings.

// Bpej is a soil quality code (bonitovana pudne ekologicka jednotka) with its
// point valuation.
type Bpej struct {
	ID      int32 `json:"id"`
	Hodnota int32 `json:"hodnota"`
}

// NewBpej is the insert shape for Bpej.
type NewBpej struct {
	Hodnota int32 `json:"hodnota"`
}

// TypRizeni is a proceeding type with its registry abbreviation (e.g. "V").
type TypRizeni struct {
	ID      int32  `json:"id"`
	Nazev   string `json:"nazev"`
	Zkratka string `json:"zkratka"`
}

// NewTypRizeni is the insert shape for TypRizeni.
type NewTypRizeni struct {
	Nazev   string `json:"nazev"`
	Zkratka string `json:"zkratka"`
}

// TypOperace is an operation type performed within a proceeding.
type TypOperace struct {
	ID    int32  `json:"id"`
	Popis string `json:"popis"`
}

// NewTypOperace is the insert shape for TypOperace.
type NewTypOperace struct {
	Popis string `json:"popis"`
}

// TypUcastnika is a participant role within a proceeding.
type TypUcastnika struct {
	ID    int32  `json:"id"`
	Nazev string `json:"nazev"`
}

// NewTypUcastnika is the insert shape for TypUcastnika.
type NewTypUcastnika struct {
	Nazev string `json:"nazev"`
}

// UcastnikRizeni is a named participant that can take part in proceedings.
type UcastnikRizeni struct {
	ID    int32  `json:"id"`
	Jmeno string `json:"jmeno"`
}

// NewUcastnikRizeni is the insert shape for UcastnikRizeni.
type NewUcastnikRizeni struct {
	Jmeno string `json:"jmeno"`
}
