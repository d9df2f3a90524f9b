package models

// Majitel is an owner of record. Either a person (rodne_cislo) or a legal
// entity (ico); both identifiers are optional in the registry data.
type Majitel struct {
	ID         int32   `json:"id"`
	Jmeno      string  `json:"jmeno"`
	Prijmeni   string  `json:"prijmeni"`
	Titul      *string `json:"titul"`
	Bydliste   *string `json:"bydliste"`
	RodneCislo *string `json:"rodne_cislo"`
	ICO        *string `json:"ico"`
}

// NewMajitel is the insert shape for Majitel.
type NewMajitel struct {
	Jmeno      string  `json:"jmeno"`
	Prijmeni   string  `json:"prijmeni"`
	Titul      *string `json:"titul"`
	Bydliste   *string `json:"bydliste"`
	RodneCislo *string `json:"rodne_cislo"`
	ICO        *string `json:"ico"`
}
