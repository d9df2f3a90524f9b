package repositories

import (
	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

func krajDescriptor() Descriptor[models.Kraj, models.NewKraj] {
	return Descriptor[models.Kraj, models.NewKraj]{
		Name:          "kraj",
		InsertColumns: []string{"nazev"},
		UpdateColumns: []string{"nazev"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.Kraj, error) {
			var m models.Kraj
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Nazev, err = s.String("nazev"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewKraj) []any {
			return []any{n.Nazev}
		},
		UpdateArgs: func(m models.Kraj) []any {
			return []any{m.ID, m.Nazev}
		},
	}
}

func okresDescriptor() Descriptor[models.Okres, models.NewOkres] {
	return Descriptor[models.Okres, models.NewOkres]{
		Name:          "okres",
		InsertColumns: []string{"kraj_id", "nazev"},
		UpdateColumns: []string{"kraj_id", "nazev"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.Okres, error) {
			var m models.Okres
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.KrajID, err = s.Int32("kraj_id"); err != nil {
				return m, err
			}
			if m.Nazev, err = s.String("nazev"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewOkres) []any {
			return []any{n.KrajID, n.Nazev}
		},
		UpdateArgs: func(m models.Okres) []any {
			return []any{m.ID, m.KrajID, m.Nazev}
		},
	}
}

func obecDescriptor() Descriptor[models.Obec, models.NewObec] {
	return Descriptor[models.Obec, models.NewObec]{
		Name:          "obec",
		InsertColumns: []string{"okres_id", "nazev"},
		UpdateColumns: []string{"okres_id", "nazev"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.Obec, error) {
			var m models.Obec
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.OkresID, err = s.Int32("okres_id"); err != nil {
				return m, err
			}
			if m.Nazev, err = s.String("nazev"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewObec) []any {
			return []any{n.OkresID, n.Nazev}
		},
		UpdateArgs: func(m models.Obec) []any {
			return []any{m.ID, m.OkresID, m.Nazev}
		},
	}
}

func katastralniUzemiDescriptor() Descriptor[models.KatastralniUzemi, models.NewKatastralniUzemi] {
	return Descriptor[models.KatastralniUzemi, models.NewKatastralniUzemi]{
		Name:          "katastralni_uzemi",
		InsertColumns: []string{"obec_id", "nazev"},
		UpdateColumns: []string{"obec_id", "nazev"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.KatastralniUzemi, error) {
			var m models.KatastralniUzemi
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.ObecID, err = s.Int32("obec_id"); err != nil {
				return m, err
			}
			if m.Nazev, err = s.String("nazev"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewKatastralniUzemi) []any {
			return []any{n.ObecID, n.Nazev}
		},
		UpdateArgs: func(m models.KatastralniUzemi) []any {
			return []any{m.ID, m.ObecID, m.Nazev}
		},
	}
}
