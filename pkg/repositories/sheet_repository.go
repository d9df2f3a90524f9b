package repositories

import (
	"context"
	"fmt"

	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

// SheetRepository fetches the individual parts of an ownership sheet. Each
// part is backed by a database-side function taking the cadastral area name
// and the folio number; the joins live entirely on the database side.
type SheetRepository interface {
	PartA(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.OwnerShare, error)
	PartB(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetParcel, error)
	PartBParcela(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.ParcelEasement, error)
	PartBMajitel(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.OwnerEasement, error)
	PartC(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetEncumbrance, error)
	PartD(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetProceeding, error)
	PartF(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetValuation, error)
}

type sheetRepository struct {
	db Querier
}

// NewSheetRepository creates a SheetRepository on the given connection pool.
func NewSheetRepository(db Querier) SheetRepository {
	return &sheetRepository{db: db}
}

// queryPart runs one sheet-part function and maps every row through scan.
// Results are never nil so empty parts serialize as [].
func queryPart[T any](ctx context.Context, db Querier, query, part string, scan func(*rowmap.Scanner) (T, error), args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", part, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		scanner, err := rowmap.FromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row: %w", part, err)
		}
		item, err := scan(scanner)
		if err != nil {
			return nil, fmt.Errorf("failed to map %s row: %w", part, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", part, err)
	}
	return items, nil
}

func (r *sheetRepository) PartA(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.OwnerShare, error) {
	const query = "SELECT jmeno, prijmeni, bydliste, podil_setin FROM fn_get_lv_part_a($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_a", func(s *rowmap.Scanner) (models.OwnerShare, error) {
		var m models.OwnerShare
		var err error
		if m.Jmeno, err = s.String("jmeno"); err != nil {
			return m, err
		}
		if m.Prijmeni, err = s.String("prijmeni"); err != nil {
			return m, err
		}
		if m.Bydliste, err = s.String("bydliste"); err != nil {
			return m, err
		}
		if m.PodilSetin, err = s.Int64("podil_setin"); err != nil {
			return m, err
		}
		return m, nil
	}, katastralniUzemi, cisloLV)
}

func (r *sheetRepository) PartB(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetParcel, error) {
	const query = "SELECT parcelni_cislo, je_stavebni, ulice, cislo_popisne, nazev_ku FROM fn_get_lv_part_b($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_b", func(s *rowmap.Scanner) (models.SheetParcel, error) {
		var m models.SheetParcel
		var err error
		if m.ParcelniCislo, err = s.Int64("parcelni_cislo"); err != nil {
			return m, err
		}
		if m.JeStavebni, err = s.Bool("je_stavebni"); err != nil {
			return m, err
		}
		if m.Ulice, err = s.NullString("ulice"); err != nil {
			return m, err
		}
		if m.CisloPopisne, err = s.NullString("cislo_popisne"); err != nil {
			return m, err
		}
		if m.NazevKU, err = s.String("nazev_ku"); err != nil {
			return m, err
		}
		return m, nil
	}, katastralniUzemi, cisloLV)
}

func (r *sheetRepository) PartBParcela(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.ParcelEasement, error) {
	const query = "SELECT popis, datum_zrizeni, datum_pravnich_ucinku, je_stavebni_opravnena, " +
		"parcelni_cislo_opravnena, cast_parcely_opravnena, je_stavebni_povinna, " +
		"parcelni_cislo_povinna, cast_parcely_povinna FROM fn_get_lv_part_b_parcela($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_b_parcela", scanParcelEasement, katastralniUzemi, cisloLV)
}

func (r *sheetRepository) PartBMajitel(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.OwnerEasement, error) {
	const query = "SELECT popis, datum_zrizeni, datum_pravnich_ucinku, je_stavebni_opravnena, " +
		"parcelni_cislo_opravnena, cast_parcely_opravnena, jmeno_povinny, prijmeni_povinny, " +
		"titul_povinny, rodne_cislo_povinny, ico_povinny FROM fn_get_lv_part_b_majitel($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_b_majitel", func(s *rowmap.Scanner) (models.OwnerEasement, error) {
		var m models.OwnerEasement
		var err error
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
		if m.JeStavebniOpravnena, err = s.Bool("je_stavebni_opravnena"); err != nil {
			return m, err
		}
		if m.ParcelniCisloOpravnena, err = s.Int64("parcelni_cislo_opravnena"); err != nil {
			return m, err
		}
		if m.CastParcelyOpravnena, err = s.Int64("cast_parcely_opravnena"); err != nil {
			return m, err
		}
		if m.JmenoPovinny, err = s.String("jmeno_povinny"); err != nil {
			return m, err
		}
		if m.PrijmeniPovinny, err = s.String("prijmeni_povinny"); err != nil {
			return m, err
		}
		if m.TitulPovinny, err = s.NullString("titul_povinny"); err != nil {
			return m, err
		}
		if m.RodneCisloPovinny, err = s.NullString("rodne_cislo_povinny"); err != nil {
			return m, err
		}
		if m.ICOPovinny, err = s.NullString("ico_povinny"); err != nil {
			return m, err
		}
		return m, nil
	}, katastralniUzemi, cisloLV)
}

func (r *sheetRepository) PartC(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetEncumbrance, error) {
	const query = "SELECT popis, datum_zrizeni, datum_pravnich_ucinku, je_stavebni_opravnena, " +
		"parcelni_cislo_opravnena, cast_parcely_opravnena, je_stavebni_povinna, " +
		"parcelni_cislo_povinna, cast_parcely_povinna FROM fn_get_lv_part_c($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_c", func(s *rowmap.Scanner) (models.SheetEncumbrance, error) {
		e, err := scanParcelEasement(s)
		return models.SheetEncumbrance(e), err
	}, katastralniUzemi, cisloLV)
}

func (r *sheetRepository) PartD(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetProceeding, error) {
	const query = "SELECT je_stavebni, parcelni_cislo, cast_parcely, nazev_katastralniho_uzemi, " +
		"typ_rizeni_zkratka, cislo_rizeni, rok_rizeni FROM fn_get_lv_part_d($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_d", func(s *rowmap.Scanner) (models.SheetProceeding, error) {
		var m models.SheetProceeding
		var err error
		if m.JeStavebni, err = s.Bool("je_stavebni"); err != nil {
			return m, err
		}
		if m.ParcelniCislo, err = s.Int64("parcelni_cislo"); err != nil {
			return m, err
		}
		if m.CastParcely, err = s.Int64("cast_parcely"); err != nil {
			return m, err
		}
		if m.NazevKatastralnihoUzemi, err = s.String("nazev_katastralniho_uzemi"); err != nil {
			return m, err
		}
		if m.TypRizeniZkratka, err = s.String("typ_rizeni_zkratka"); err != nil {
			return m, err
		}
		if m.CisloRizeni, err = s.Int64("cislo_rizeni"); err != nil {
			return m, err
		}
		if m.RokRizeni, err = s.Int64("rok_rizeni"); err != nil {
			return m, err
		}
		return m, nil
	}, katastralniUzemi, cisloLV)
}

func (r *sheetRepository) PartF(ctx context.Context, katastralniUzemi string, cisloLV int32) ([]models.SheetValuation, error) {
	const query = "SELECT je_stavebni, parcelni_cislo, cast_parcely, hodnota FROM fn_get_lv_part_f($1, $2)"
	return queryPart(ctx, r.db, query, "lv part_f", func(s *rowmap.Scanner) (models.SheetValuation, error) {
		var m models.SheetValuation
		var err error
		if m.JeStavebni, err = s.Bool("je_stavebni"); err != nil {
			return m, err
		}
		if m.ParcelniCislo, err = s.Int64("parcelni_cislo"); err != nil {
			return m, err
		}
		if m.CastParcely, err = s.Int64("cast_parcely"); err != nil {
			return m, err
		}
		if m.Hodnota, err = s.NullInt64("hodnota"); err != nil {
			return m, err
		}
		return m, nil
	}, katastralniUzemi, cisloLV)
}

// scanParcelEasement serves part_b_parcela directly and part_c via conversion;
// both functions return the same column set.
func scanParcelEasement(s *rowmap.Scanner) (models.ParcelEasement, error) {
	var m models.ParcelEasement
	var err error
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
	if m.JeStavebniOpravnena, err = s.Bool("je_stavebni_opravnena"); err != nil {
		return m, err
	}
	if m.ParcelniCisloOpravnena, err = s.Int64("parcelni_cislo_opravnena"); err != nil {
		return m, err
	}
	if m.CastParcelyOpravnena, err = s.Int64("cast_parcely_opravnena"); err != nil {
		return m, err
	}
	if m.JeStavebniPovinna, err = s.Bool("je_stavebni_povinna"); err != nil {
		return m, err
	}
	if m.ParcelniCisloPovinna, err = s.Int64("parcelni_cislo_povinna"); err != nil {
		return m, err
	}
	if m.CastParcelyPovinna, err = s.Int64("cast_parcely_povinna"); err != nil {
		return m, err
	}
	return m, nil
}
