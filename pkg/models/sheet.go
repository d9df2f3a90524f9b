package models

// Composite response shapes for the ownership-sheet lookup (GET /lv).
// One typed struct per part keeps the part_a/part_b/... contract checked at
// compile time instead of being assembled from a loose JSON tree.

// OwnerShare is one owner-of-record row with their fractional share (part A).
type OwnerShare struct {
	Jmeno      string `json:"jmeno"`
	Prijmeni   string `json:"prijmeni"`
	Bydliste   string `json:"bydliste"`
	PodilSetin int64  `json:"podil_setin"`
}

// SheetParcel is one parcel listed on the sheet (part B).
type SheetParcel struct {
	ParcelniCislo int64   `json:"parcelni_cislo"`
	JeStavebni    bool    `json:"je_stavebni"`
	Ulice         *string `json:"ulice"`
	CisloPopisne  *string `json:"cislo_popisne"`
	NazevKU       string  `json:"nazev_ku"`
}

// ParcelEasement is an easement benefiting a sheet parcel where the burdened
// party is another parcel (part B1).
type ParcelEasement struct {
	Popis                  string `json:"popis"`
	DatumZrizeni           Date   `json:"datum_zrizeni"`
	DatumPravnichUcinku    Date   `json:"datum_pravnich_ucinku"`
	JeStavebniOpravnena    bool   `json:"je_stavebni_opravnena"`
	ParcelniCisloOpravnena int64  `json:"parcelni_cislo_opravnena"`
	CastParcelyOpravnena   int64  `json:"cast_parcely_opravnena"`
	JeStavebniPovinna      bool   `json:"je_stavebni_povinna"`
	ParcelniCisloPovinna   int64  `json:"parcelni_cislo_povinna"`
	CastParcelyPovinna     int64  `json:"cast_parcely_povinna"`
}

// OwnerEasement is an easement benefiting a sheet parcel where the burdened
// party is an owner (part B1).
type OwnerEasement struct {
	Popis                  string  `json:"popis"`
	DatumZrizeni           Date    `json:"datum_zrizeni"`
	DatumPravnichUcinku    Date    `json:"datum_pravnich_ucinku"`
	JeStavebniOpravnena    bool    `json:"je_stavebni_opravnena"`
	ParcelniCisloOpravnena int64   `json:"parcelni_cislo_opravnena"`
	CastParcelyOpravnena   int64   `json:"cast_parcely_opravnena"`
	JmenoPovinny           string  `json:"jmeno_povinny"`
	PrijmeniPovinny        string  `json:"prijmeni_povinny"`
	TitulPovinny           *string `json:"titul_povinny"`
	RodneCisloPovinny      *string `json:"rodne_cislo_povinny"`
	ICOPovinny             *string `json:"ico_povinny"`
}

// SheetEncumbrance is an encumbrance burdening a sheet parcel (part C).
type SheetEncumbrance struct {
	Popis                  string `json:"popis"`
	DatumZrizeni           Date   `json:"datum_zrizeni"`
	DatumPravnichUcinku    Date   `json:"datum_pravnich_ucinku"`
	JeStavebniOpravnena    bool   `json:"je_stavebni_opravnena"`
	ParcelniCisloOpravnena int64  `json:"parcelni_cislo_opravnena"`
	CastParcelyOpravnena   int64  `json:"cast_parcely_opravnena"`
	JeStavebniPovinna      bool   `json:"je_stavebni_povinna"`
	ParcelniCisloPovinna   int64  `json:"parcelni_cislo_povinna"`
	CastParcelyPovinna     int64  `json:"cast_parcely_povinna"`
}

// SheetProceeding is a pending proceeding touching a sheet parcel (part D).
type SheetProceeding struct {
	JeStavebni              bool   `json:"je_stavebni"`
	ParcelniCislo           int64  `json:"parcelni_cislo"`
	CastParcely             int64  `json:"cast_parcely"`
	NazevKatastralnihoUzemi string `json:"nazev_katastralniho_uzemi"`
	TypRizeniZkratka        string `json:"typ_rizeni_zkratka"`
	CisloRizeni             int64  `json:"cislo_rizeni"`
	RokRizeni               int64  `json:"rok_rizeni"`
}

// SheetValuation is the soil-quality valuation of a sheet parcel (part F).
type SheetValuation struct {
	JeStavebni    bool   `json:"je_stavebni"`
	ParcelniCislo int64  `json:"parcelni_cislo"`
	CastParcely   int64  `json:"cast_parcely"`
	Hodnota       *int64 `json:"hodnota"`
}

// OwnershipSheet is the full composite response for GET /lv, one array per
// sub-query part.
type OwnershipSheet struct {
	PartA        []OwnerShare       `json:"part_a"`
	PartB        []SheetParcel      `json:"part_b"`
	PartBParcela []ParcelEasement   `json:"part_b_parcela"`
	PartBMajitel []OwnerEasement    `json:"part_b_majitel"`
	PartC        []SheetEncumbrance `json:"part_c"`
	PartD        []SheetProceeding  `json:"part_d"`
	PartF        []SheetValuation   `json:"part_f"`
}

// ParcelaDetail is the response row for GET /parcela.
type ParcelaDetail struct {
	JeStavebni             bool    `json:"je_stavebni"`
	ParcelniCislo          int64   `json:"parcelni_cislo"`
	CastParcely            int64   `json:"cast_parcely"`
	VymeraMetruCtverecnich *string `json:"vymera_metru_ctverecnich"`
	Ulice                  *string `json:"ulice"`
	CisloPopisne           *string `json:"cislo_popisne"`
	Hodnota                *int64  `json:"hodnota"`
	CisloLV                int64   `json:"cislo_lv"`
}
