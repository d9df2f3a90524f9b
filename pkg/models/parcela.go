package models

// ListVlastnictvi is an ownership sheet (folio): the registry record grouping
// parcels under one folio number within a cadastral area.
type ListVlastnictvi struct {
	ID                 int32   `json:"id"`
	KatastralniUzemiID int32   `json:"katastralni_uzemi_id"`
	CisloLV            int32   `json:"cislo_lv"`
	VlastnickyHash     *string `json:"vlastnicky_hash"`
}

// NewListVlastnictvi is the insert shape for ListVlastnictvi.
type NewListVlastnictvi struct {
	KatastralniUzemiID int32   `json:"katastralni_uzemi_id"`
	CisloLV            int32   `json:"cislo_lv"`
	VlastnickyHash     *string `json:"vlastnicky_hash"`
}

// ParcelaRow is a parcel as stored: parcel number plus sub-part number form
// the natural key within a cadastral area, split by the building flag.
// The area is a decimal carried in its exact text form.
type ParcelaRow struct {
	ID                     int32   `json:"id"`
	ParcelniCislo          int32   `json:"parcelni_cislo"`
	CastParcely            int32   `json:"cast_parcely"`
	JeStavebni             bool    `json:"je_stavebni"`
	VymeraMetruCtverecnich string  `json:"vymera_metru_ctverecnich"`
	Ulice                  *string `json:"ulice"`
	CisloPopisne           *string `json:"cislo_popisne"`
	KatastralniUzemiID     int32   `json:"katastralni_uzemi_id"`
	BpejID                 *int32  `json:"bpej_id"`
	ListVlastnictviID      int32   `json:"list_vlastnictvi_id"`
}

// NewParcelaRow is the insert shape for ParcelaRow.
type NewParcelaRow struct {
	ParcelniCislo          int32   `json:"parcelni_cislo"`
	CastParcely            int32   `json:"cast_parcely"`
	JeStavebni             bool    `json:"je_stavebni"`
	VymeraMetruCtverecnich string  `json:"vymera_metru_ctverecnich"`
	Ulice                  *string `json:"ulice"`
	CisloPopisne           *string `json:"cislo_popisne"`
	KatastralniUzemiID     int32   `json:"katastralni_uzemi_id"`
	BpejID                 *int32  `json:"bpej_id"`
	ListVlastnictviID      int32   `json:"list_vlastnictvi_id"`
}

// Vlastnictvi joins a parcel to an owner with a fractional share expressed in
// hundredths (podil_setin/100).
type Vlastnictvi struct {
	ParcelaID  int32 `json:"parcela_id"`
	MajitelID  int32 `json:"majitel_id"`
	PodilSetin int32 `json:"podil_setin"`
}

// NewVlastnictvi is the insert shape for Vlastnictvi.
type NewVlastnictvi struct {
	ParcelaID  int32 `json:"parcela_id"`
	MajitelID  int32 `json:"majitel_id"`
	PodilSetin int32 `json:"podil_setin"`
}

// BremenoParcelaParcela is an encumbrance between two parcels: the benefiting
// parcel (parcela_id) and the burdened one (parcela_povinna_id).
type BremenoParcelaParcela struct {
	ParcelaID           int32  `json:"parcela_id"`
	ParcelaPovinnaID    int32  `json:"parcela_povinna_id"`
	Popis               string `json:"popis"`
	DatumZrizeni        Date   `json:"datum_zrizeni"`
	DatumPravnichUcinku Date   `json:"datum_pravnich_ucinku"`
}

// NewBremenoParcelaParcela is the insert shape for BremenoParcelaParcela.
type NewBremenoParcelaParcela struct {
	ParcelaID           int32  `json:"parcela_id"`
	ParcelaPovinnaID    int32  `json:"parcela_povinna_id"`
	Popis               string `json:"popis"`
	DatumZrizeni        Date   `json:"datum_zrizeni"`
	DatumPravnichUcinku Date   `json:"datum_pravnich_ucinku"`
}

// BremenoParcelaMajitel is an encumbrance between a benefiting parcel and a
// burdened owner.
type BremenoParcelaMajitel struct {
	ParcelaID           int32  `json:"parcela_id"`
	MajitelPovinnyID    int32  `json:"majitel_povinny_id"`
	Popis               string `json:"popis"`
	DatumZrizeni        Date   `json:"datum_zrizeni"`
	DatumPravnichUcinku Date   `json:"datum_pravnich_ucinku"`
}

// NewBremenoParcelaMajitel is the insert shape for BremenoParcelaMajitel.
type NewBremenoParcelaMajitel struct {
	ParcelaID           int32  `json:"parcela_id"`
	MajitelPovinnyID    int32  `json:"majitel_povinny_id"`
	Popis               string `json:"popis"`
	DatumZrizeni        Date   `json:"datum_zrizeni"`
	DatumPravnichUcinku Date   `json:"datum_pravnich_ucinku"`
}

// Plomba is a pending-annotation marker linking a proceeding to a parcel.
// Rows are only ever created and removed, never updated.
type Plomba struct {
	RizeniID  int32 `json:"rizeni_id"`
	ParcelaID int32 `json:"parcela_id"`
}

// NewPlomba is the insert shape for Plomba.
type NewPlomba struct {
	RizeniID  int32 `json:"rizeni_id"`
	ParcelaID int32 `json:"parcela_id"`
}
