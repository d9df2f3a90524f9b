package repositories

import (
	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

func listVlastnictviDescriptor() Descriptor[models.ListVlastnictvi, models.NewListVlastnictvi] {
	return Descriptor[models.ListVlastnictvi, models.NewListVlastnictvi]{
		Name:          "list_vlastnictvi",
		InsertColumns: []string{"katastralni_uzemi_id", "cislo_lv", "vlastnicky_hash"},
		UpdateColumns: []string{"katastralni_uzemi_id", "cislo_lv", "vlastnicky_hash"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.ListVlastnictvi, error) {
			var m models.ListVlastnictvi
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.KatastralniUzemiID, err = s.Int32("katastralni_uzemi_id"); err != nil {
				return m, err
			}
			if m.CisloLV, err = s.Int32("cislo_lv"); err != nil {
				return m, err
			}
			if m.VlastnickyHash, err = s.NullString("vlastnicky_hash"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewListVlastnictvi) []any {
			return []any{n.KatastralniUzemiID, n.CisloLV, n.VlastnickyHash}
		},
		UpdateArgs: func(m models.ListVlastnictvi) []any {
			return []any{m.ID, m.KatastralniUzemiID, m.CisloLV, m.VlastnickyHash}
		},
	}
}

func parcelaRowDescriptor() Descriptor[models.ParcelaRow, models.NewParcelaRow] {
	return Descriptor[models.ParcelaRow, models.NewParcelaRow]{
		Name: "parcela",
		InsertColumns: []string{
			"parcelni_cislo", "cast_parcely", "je_stavebni", "vymera_metru_ctverecnich",
			"ulice", "cislo_popisne", "katastralni_uzemi_id", "bpej_id", "list_vlastnictvi_id",
		},
		UpdateColumns: []string{
			"parcelni_cislo", "cast_parcely", "je_stavebni", "vymera_metru_ctverecnich",
			"ulice", "cislo_popisne", "katastralni_uzemi_id", "bpej_id", "list_vlastnictvi_id",
		},
		Key: []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.ParcelaRow, error) {
			var m models.ParcelaRow
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.ParcelniCislo, err = s.Int32("parcelni_cislo"); err != nil {
				return m, err
			}
			if m.CastParcely, err = s.Int32("cast_parcely"); err != nil {
				return m, err
			}
			if m.JeStavebni, err = s.Bool("je_stavebni"); err != nil {
				return m, err
			}
			if m.VymeraMetruCtverecnich, err = s.Numeric("vymera_metru_ctverecnich"); err != nil {
				return m, err
			}
			if m.Ulice, err = s.NullString("ulice"); err != nil {
				return m, err
			}
			if m.CisloPopisne, err = s.NullString("cislo_popisne"); err != nil {
				return m, err
			}
			if m.KatastralniUzemiID, err = s.Int32("katastralni_uzemi_id"); err != nil {
				return m, err
			}
			if m.BpejID, err = s.NullInt32("bpej_id"); err != nil {
				return m, err
			}
			if m.ListVlastnictviID, err = s.Int32("list_vlastnictvi_id"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewParcelaRow) []any {
			return []any{
				n.ParcelniCislo, n.CastParcely, n.JeStavebni, n.VymeraMetruCtverecnich,
				n.Ulice, n.CisloPopisne, n.KatastralniUzemiID, n.BpejID, n.ListVlastnictviID,
			}
		},
		UpdateArgs: func(m models.ParcelaRow) []any {
			return []any{
				m.ID,
				m.ParcelniCislo, m.CastParcely, m.JeStavebni, m.VymeraMetruCtverecnich,
				m.Ulice, m.CisloPopisne, m.KatastralniUzemiID, m.BpejID, m.ListVlastnictviID,
			}
		},
	}
}

func vlastnictviDescriptor() Descriptor[models.Vlastnictvi, models.NewVlastnictvi] {
	return Descriptor[models.Vlastnictvi, models.NewVlastnictvi]{
		Name:          "vlastnictvi",
		InsertColumns: []string{"parcela_id", "majitel_id", "podil_setin"},
		UpdateColumns: []string{"podil_setin"},
		Key:           []string{"parcela_id", "majitel_id"},
		Scan: func(s *rowmap.Scanner) (models.Vlastnictvi, error) {
			var m models.Vlastnictvi
			var err error
			if m.ParcelaID, err = s.Int32("parcela_id"); err != nil {
				return m, err
			}
			if m.MajitelID, err = s.Int32("majitel_id"); err != nil {
				return m, err
			}
			if m.PodilSetin, err = s.Int32("podil_setin"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewVlastnictvi) []any {
			return []any{n.ParcelaID, n.MajitelID, n.PodilSetin}
		},
		UpdateArgs: func(m models.Vlastnictvi) []any {
			return []any{m.ParcelaID, m.MajitelID, m.PodilSetin}
		},
	}
}

func bremenoParcelaParcelaDescriptor() Descriptor[models.BremenoParcelaParcela, models.NewBremenoParcelaParcela] {
	return Descriptor[models.BremenoParcelaParcela, models.NewBremenoParcelaParcela]{
		Name: "bremeno_parcela_parcela",
		InsertColumns: []string{
			"parcela_id", "parcela_povinna_id", "popis", "datum_zrizeni", "datum_pravnich_ucinku",
		},
		UpdateColumns: []string{"popis", "datum_zrizeni", "datum_pravnich_ucinku"},
		Key:           []string{"parcela_id", "parcela_povinna_id"},
		Scan: func(s *rowmap.Scanner) (models.BremenoParcelaParcela, error) {
			var m models.BremenoParcelaParcela
			var err error
			if m.ParcelaID, err = s.Int32("parcela_id"); err != nil {
				return m, err
			}
			if m.ParcelaPovinnaID, err = s.Int32("parcela_povinna_id"); err != nil {
				return m, err
			}
			if m.Popis, err = s.String("popis"); err != nil {
				return m, err
			}
			zrizeni, err := s.Date("datum_zrizeni")
			if err != nil {
				return m, err
			}
			m.DatumZrizeni = models.DateOf(zrizeni)
			ucinky, err := s.Date("datum_pravnich_ucinku")
			if err != nil {
				return m, err
			}
			m.DatumPravnichUcinku = models.DateOf(ucinky)
			return m, nil
		},
		InsertArgs: func(n models.NewBremenoParcelaParcela) []any {
			return []any{
				n.ParcelaID, n.ParcelaPovinnaID, n.Popis,
				n.DatumZrizeni.Time, n.DatumPravnichUcinku.Time,
			}
		},
		UpdateArgs: func(m models.BremenoParcelaParcela) []any {
			return []any{
				m.ParcelaID, m.ParcelaPovinnaID,
				m.Popis, m.DatumZrizeni.Time, m.DatumPravnichUcinku.Time,
			}
		},
	}
}

func bremenoParcelaMajitelDescriptor() Descriptor[models.BremenoParcelaMajitel, models.NewBremenoParcelaMajitel] {
	return Descriptor[models.BremenoParcelaMajitel, models.NewBremenoParcelaMajitel]{
		Name: "bremeno_parcela_majitel",
		InsertColumns: []string{
			"parcela_id", "majitel_povinny_id", "popis", "datum_zrizeni", "datum_pravnich_ucinku",
		},
		UpdateColumns: []string{"popis", "datum_zrizeni", "datum_pravnich_ucinku"},
		Key:           []string{"parcela_id", "majitel_povinny_id"},
		Scan: func(s *rowmap.Scanner) (models.BremenoParcelaMajitel, error) {
			var m models.BremenoParcelaMajitel
			var err error
			if m.ParcelaID, err = s.Int32("parcela_id"); err != nil {
				return m, err
			}
			if m.MajitelPovinnyID, err = s.Int32("majitel_povinny_id"); err != nil {
				return m, err
			}
			if m.Popis, err = s.String("popis"); err != nil {
				return m, err
			}
			zrizeni, err := s.Date("datum_zrizeni")
			if err != nil {
				return m, err
			}
			m.DatumZrizeni = models.DateOf(zrizeni)
			ucinky, err := s.Date("datum_pravnich_ucinku")
			if err != nil {
				return m, err
			}
			m.DatumPravnichUcinku = models.DateOf(ucinky)
			return m, nil
		},
		InsertArgs: func(n models.NewBremenoParcelaMajitel) []any {
			return []any{
				n.ParcelaID, n.MajitelPovinnyID, n.Popis,
				n.DatumZrizeni.Time, n.DatumPravnichUcinku.Time,
			}
		},
		UpdateArgs: func(m models.BremenoParcelaMajitel) []any {
			return []any{
				m.ParcelaID, m.MajitelPovinnyID,
				m.Popis, m.DatumZrizeni.Time, m.DatumPravnichUcinku.Time,
			}
		},
	}
}

func plombaDescriptor() Descriptor[models.Plomba, models.NewPlomba] {
	return Descriptor[models.Plomba, models.NewPlomba]{
		Name:          "plomba",
		InsertColumns: []string{"rizeni_id", "parcela_id"},
		// Every column is part of the key, so the table is insert/delete only.
		UpdateColumns: nil,
		Key:           []string{"rizeni_id", "parcela_id"},
		Scan: func(s *rowmap.Scanner) (models.Plomba, error) {
			var m models.Plomba
			var err error
			if m.RizeniID, err = s.Int32("rizeni_id"); err != nil {
				return m, err
			}
			if m.ParcelaID, err = s.Int32("parcela_id"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewPlomba) []any {
			return []any{n.RizeniID, n.ParcelaID}
		},
	}
}
