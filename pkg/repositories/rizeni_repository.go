package repositories

import (
	"context"
	"fmt"
	"math"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

// RizeniRepository resolves proceedings and fetches their detail parts. The
// detail queries are keyed by the internal proceeding id; callers that only
// know the natural key (type abbreviation, case number, year) resolve it with
// ResolveID first.
type RizeniRepository interface {
	ResolveID(ctx context.Context, typ string, cislo, rok int32) (int32, error)
	Predmet(ctx context.Context, rizeniID int32) ([]models.ProceedingSubject, error)
	Ucastnici(ctx context.Context, rizeniID int32) ([]models.ProceedingParticipant, error)
	Operace(ctx context.Context, rizeniID int32) ([]models.ProceedingOperation, error)
}

type rizeniRepository struct {
	db Querier
}

// NewRizeniRepository creates a RizeniRepository on the given connection pool.
func NewRizeniRepository(db Querier) RizeniRepository {
	return &rizeniRepository{db: db}
}

// ResolveID translates the natural proceeding key into the internal id.
// Returns apperrors.ErrNotFound when no proceeding matches.
func (r *rizeniRepository) ResolveID(ctx context.Context, typ string, cislo, rok int32) (int32, error) {
	rows, err := r.db.Query(ctx, "SELECT * FROM fn_get_rizeni_id($1, $2, $3)", typ, cislo, rok)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve rizeni id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("failed to resolve rizeni id: %w", err)
		}
		return 0, apperrors.ErrNotFound
	}

	// The function returns a single id column; read it positionally.
	values, err := rows.Values()
	if err != nil {
		return 0, fmt.Errorf("failed to read rizeni id: %w", err)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("fn_get_rizeni_id returned no columns")
	}
	return rizeniIDValue(values[0])
}

// rizeniIDValue converts the raw id column into an int32, range-checking
// wider integer encodings the driver may hand back.
func rizeniIDValue(v any) (int32, error) {
	switch id := v.(type) {
	case int32:
		return id, nil
	case int64:
		if id < math.MinInt32 || id > math.MaxInt32 {
			return 0, apperrors.NewMappingError("id", "value %d overflows int32", id)
		}
		return int32(id), nil
	default:
		return 0, apperrors.NewMappingError("id", "expected integer, got %T", v)
	}
}

func (r *rizeniRepository) Predmet(ctx context.Context, rizeniID int32) ([]models.ProceedingSubject, error) {
	const query = "SELECT * FROM fn_get_rizeni_predmet_poznamka_by_id($1)"
	return queryPart(ctx, r.db, query, "rizeni predmet", func(s *rowmap.Scanner) (models.ProceedingSubject, error) {
		var m models.ProceedingSubject
		var err error
		if m.Predmet, err = s.String("predmet"); err != nil {
			return m, err
		}
		if m.Poznamka, err = s.NullString("poznamka"); err != nil {
			return m, err
		}
		return m, nil
	}, rizeniID)
}

func (r *rizeniRepository) Ucastnici(ctx context.Context, rizeniID int32) ([]models.ProceedingParticipant, error) {
	const query = "SELECT * FROM fn_get_ucastnici_rizeni_by_id($1)"
	return queryPart(ctx, r.db, query, "rizeni ucastnici", func(s *rowmap.Scanner) (models.ProceedingParticipant, error) {
		var m models.ProceedingParticipant
		var err error
		if m.TypUcastnika, err = s.String("typ_ucastnika"); err != nil {
			return m, err
		}
		if m.UcastnikJmeno, err = s.String("ucastnik_jmeno"); err != nil {
			return m, err
		}
		return m, nil
	}, rizeniID)
}

func (r *rizeniRepository) Operace(ctx context.Context, rizeniID int32) ([]models.ProceedingOperation, error) {
	const query = "SELECT * FROM fn_get_operace_rizeni_by_id($1)"
	return queryPart(ctx, r.db, query, "rizeni operace", func(s *rowmap.Scanner) (models.ProceedingOperation, error) {
		var m models.ProceedingOperation
		var err error
		if m.OperacePopis, err = s.String("operace_popis"); err != nil {
			return m, err
		}
		datum, err := s.NullDate("operace_datum")
		if err != nil {
			return m, err
		}
		if datum != nil {
			d := models.DateOf(*datum)
			m.OperaceDatum = &d
		}
		return m, nil
	}, rizeniID)
}
