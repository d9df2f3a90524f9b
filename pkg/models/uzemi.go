package models

// Regional hierarchy: kraj (region) → okres (district) → obec (municipality)
// → katastralni_uzemi (cadastral area). Parcels and folios hang off the
// cadastral area.

// Kraj is a region, the top of the territorial hierarchy.
type Kraj struct {
	ID    int32  `json:"id"`
	Nazev string `json:"nazev"`
}

// NewKraj is the insert shape for Kraj; the ID is assigned by the store.
type NewKraj struct {
	Nazev string `json:"nazev"`
}

// Okres is a district within a region.
type Okres struct {
	ID     int32  `json:"id"`
	KrajID int32  `json:"kraj_id"`
	Nazev  string `json:"nazev"`
}

// NewOkres is the insert shape for Okres.
type NewOkres struct {
	KrajID int32  `json:"kraj_id"`
	Nazev  string `json:"nazev"`
}

// Obec is a municipality within a district.
type Obec struct {
	ID      int32  `json:"id"`
	OkresID int32  `json:"okres_id"`
	Nazev   string `json:"nazev"`
}

// NewObec is the insert shape for Obec.
type NewObec struct {
	OkresID int32  `json:"okres_id"`
	Nazev   string `json:"nazev"`
}

// KatastralniUzemi is a cadastral area within a municipality.
type KatastralniUzemi struct {
	ID     int32  `json:"id"`
	ObecID int32  `json:"obec_id"`
	Nazev  string `json:"nazev"`
}

// NewKatastralniUzemi is the insert shape for KatastralniUzemi.
type NewKatastralniUzemi struct {
	ObecID int32  `json:"obec_id"`
	Nazev  string `json:"nazev"`
}
