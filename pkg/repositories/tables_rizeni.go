package repositories

import (
	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

func rizeniDescriptor() Descriptor[models.Rizeni, models.NewRizeni] {
	return Descriptor[models.Rizeni, models.NewRizeni]{
		Name:          "rizeni",
		InsertColumns: []string{"rok", "cislo_rizeni", "typ_rizeni_id", "predmet", "poznamka"},
		UpdateColumns: []string{"rok", "cislo_rizeni", "typ_rizeni_id", "predmet", "poznamka"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.Rizeni, error) {
			var m models.Rizeni
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Rok, err = s.Int32("rok"); err != nil {
				return m, err
			}
			if m.CisloRizeni, err = s.Int32("cislo_rizeni"); err != nil {
				return m, err
			}
			if m.TypRizeniID, err = s.Int32("typ_rizeni_id"); err != nil {
				return m, err
			}
			if m.Predmet, err = s.String("predmet"); err != nil {
				return m, err
			}
			if m.Poznamka, err = s.NullString("poznamka"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewRizeni) []any {
			return []any{n.Rok, n.CisloRizeni, n.TypRizeniID, n.Predmet, n.Poznamka}
		},
		UpdateArgs: func(m models.Rizeni) []any {
			return []any{m.ID, m.Rok, m.CisloRizeni, m.TypRizeniID, m.Predmet, m.Poznamka}
		},
	}
}

func rizeniOperaceDescriptor() Descriptor[models.RizeniOperaceRow, models.NewRizeniOperaceRow] {
	return Descriptor[models.RizeniOperaceRow, models.NewRizeniOperaceRow]{
		Name:          "rizeni_operace",
		InsertColumns: []string{"rizeni_id", "typ_operace_id", "datum"},
		UpdateColumns: []string{"datum"},
		Key:           []string{"rizeni_id", "typ_operace_id"},
		Scan: func(s *rowmap.Scanner) (models.RizeniOperaceRow, error) {
			var m models.RizeniOperaceRow
			var err error
			if m.RizeniID, err = s.Int32("rizeni_id"); err != nil {
				return m, err
			}
			if m.TypOperaceID, err = s.Int32("typ_operace_id"); err != nil {
				return m, err
			}
			datum, err := s.Date("datum")
			if err != nil {
				return m, err
			}
			m.Datum = models.DateOf(datum)
			return m, nil
		},
		InsertArgs: func(n models.NewRizeniOperaceRow) []any {
			return []any{n.RizeniID, n.TypOperaceID, n.Datum.Time}
		},
		UpdateArgs: func(m models.RizeniOperaceRow) []any {
			return []any{m.RizeniID, m.TypOperaceID, m.Datum.Time}
		},
	}
}

func ucastDescriptor() Descriptor[models.Ucast, models.NewUcast] {
	return Descriptor[models.Ucast, models.NewUcast]{
		Name:          "ucast",
		InsertColumns: []string{"rizeni_id", "ucastnik_rizeni_id", "typ_ucastnika_id"},
		// Every column is part of the key, so the table is insert/delete only.
		UpdateColumns: nil,
		Key:           []string{"rizeni_id", "ucastnik_rizeni_id", "typ_ucastnika_id"},
		Scan: func(s *rowmap.Scanner) (models.Ucast, error) {
			var m models.Ucast
			var err error
			if m.RizeniID, err = s.Int32("rizeni_id"); err != nil {
				return m, err
			}
			if m.UcastnikRizeniID, err = s.Int32("ucastnik_rizeni_id"); err != nil {
				return m, err
			}
			if m.TypUcastnikaID, err = s.Int32("typ_ucastnika_id"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewUcast) []any {
			return []any{n.RizeniID, n.UcastnikRizeniID, n.TypUcastnikaID}
		},
	}
}
