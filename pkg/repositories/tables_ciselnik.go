package repositories

import (
	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

func bpejDescriptor() Descriptor[models.Bpej, models.NewBpej] {
	return Descriptor[models.Bpej, models.NewBpej]{
		Name:          "bpej",
		InsertColumns: []string{"hodnota"},
		UpdateColumns: []string{"hodnota"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.Bpej, error) {
			var m models.Bpej
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Hodnota, err = s.Int32("hodnota"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewBpej) []any {
			return []any{n.Hodnota}
		},
		UpdateArgs: func(m models.Bpej) []any {
			return []any{m.ID, m.Hodnota}
		},
	}
}

func typRizeniDescriptor() Descriptor[models.TypRizeni, models.NewTypRizeni] {
	return Descriptor[models.TypRizeni, models.NewTypRizeni]{
		Name:          "typ_rizeni",
		InsertColumns: []string{"nazev", "zkratka"},
		UpdateColumns: []string{"nazev", "zkratka"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.TypRizeni, error) {
			var m models.TypRizeni
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Nazev, err = s.String("nazev"); err != nil {
				return m, err
			}
			if m.Zkratka, err = s.String("zkratka"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewTypRizeni) []any {
			return []any{n.Nazev, n.Zkratka}
		},
		UpdateArgs: func(m models.TypRizeni) []any {
			return []any{m.ID, m.Nazev, m.Zkratka}
		},
	}
}

func typOperaceDescriptor() Descriptor[models.TypOperace, models.NewTypOperace] {
	return Descriptor[models.TypOperace, models.NewTypOperace]{
		Name:          "typ_operace",
		InsertColumns: []string{"popis"},
		UpdateColumns: []string{"popis"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.TypOperace, error) {
			var m models.TypOperace
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Popis, err = s.String("popis"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewTypOperace) []any {
			return []any{n.Popis}
		},
		UpdateArgs: func(m models.TypOperace) []any {
			return []any{m.ID, m.Popis}
		},
	}
}

func typUcastnikaDescriptor() Descriptor[models.TypUcastnika, models.NewTypUcastnika] {
	return Descriptor[models.TypUcastnika, models.NewTypUcastnika]{
		Name:          "typ_ucastnika",
		InsertColumns: []string{"nazev"},
		UpdateColumns: []string{"nazev"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.TypUcastnika, error) {
			var m models.TypUcastnika
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Nazev, err = s.String("nazev"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewTypUcastnika) []any {
			return []any{n.Nazev}
		},
		UpdateArgs: func(m models.TypUcastnika) []any {
			return []any{m.ID, m.Nazev}
		},
	}
}

func ucastnikRizeniDescriptor() Descriptor[models.UcastnikRizeni, models.NewUcastnikRizeni] {
	return Descriptor[models.UcastnikRizeni, models.NewUcastnikRizeni]{
		Name:          "ucastnik_rizeni",
		InsertColumns: []string{"jmeno"},
		UpdateColumns: []string{"jmeno"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.UcastnikRizeni, error) {
			var m models.UcastnikRizeni
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Jmeno, err = s.String("jmeno"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewUcastnikRizeni) []any {
			return []any{n.Jmeno}
		},
		UpdateArgs: func(m models.UcastnikRizeni) []any {
			return []any{m.ID, m.Jmeno}
		},
	}
}

func majitelDescriptor() Descriptor[models.Majitel, models.NewMajitel] {
	return Descriptor[models.Majitel, models.NewMajitel]{
		Name:          "majitel",
		InsertColumns: []string{"jmeno", "prijmeni", "titul", "bydliste", "rodne_cislo", "ico"},
		UpdateColumns: []string{"jmeno", "prijmeni", "titul", "bydliste", "rodne_cislo", "ico"},
		Key:           []string{"id"},
		Scan: func(s *rowmap.Scanner) (models.Majitel, error) {
			var m models.Majitel
			var err error
			if m.ID, err = s.Int32("id"); err != nil {
				return m, err
			}
			if m.Jmeno, err = s.String("jmeno"); err != nil {
				return m, err
			}
			if m.Prijmeni, err = s.String("prijmeni"); err != nil {
				return m, err
			}
			if m.Titul, err = s.NullString("titul"); err != nil {
				return m, err
			}
			if m.Bydliste, err = s.NullString("bydliste"); err != nil {
				return m, err
			}
			if m.RodneCislo, err = s.NullString("rodne_cislo"); err != nil {
				return m, err
			}
			if m.ICO, err = s.NullString("ico"); err != nil {
				return m, err
			}
			return m, nil
		},
		InsertArgs: func(n models.NewMajitel) []any {
			return []any{n.Jmeno, n.Prijmeni, n.Titul, n.Bydliste, n.RodneCislo, n.ICO}
		},
		UpdateArgs: func(m models.Majitel) []any {
			return []any{m.ID, m.Jmeno, m.Prijmeni, m.Titul, m.Bydliste, m.RodneCislo, m.ICO}
		},
	}
}
