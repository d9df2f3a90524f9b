package repositories

import (
	"context"

	"github.com/katastr-cz/katastr-server/pkg/database/rowmap"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

// ParcelaRepository resolves a single parcel by its natural key within a
// cadastral area.
type ParcelaRepository interface {
	Find(ctx context.Context, katastralniUzemi string, jeStavebni bool, parcelniCislo, castParcely int32) ([]models.ParcelaDetail, error)
}

type parcelaRepository struct {
	db Querier
}

// NewParcelaRepository creates a ParcelaRepository on the given connection pool.
func NewParcelaRepository(db Querier) ParcelaRepository {
	return &parcelaRepository{db: db}
}

func (r *parcelaRepository) Find(ctx context.Context, katastralniUzemi string, jeStavebni bool, parcelniCislo, castParcely int32) ([]models.ParcelaDetail, error) {
	const query = "SELECT * FROM fn_get_parcela($1, $2, $3, $4)"
	return queryPart(ctx, r.db, query, "parcela", func(s *rowmap.Scanner) (models.ParcelaDetail, error) {
		var m models.ParcelaDetail
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
		if m.VymeraMetruCtverecnich, err = s.NullNumeric("vymera_metru_ctverecnich"); err != nil {
			return m, err
		}
		if m.Ulice, err = s.NullString("ulice"); err != nil {
			return m, err
		}
		if m.CisloPopisne, err = s.NullString("cislo_popisne"); err != nil {
			return m, err
		}
		if m.Hodnota, err = s.NullInt64("hodnota"); err != nil {
			return m, err
		}
		if m.CisloLV, err = s.Int64("cislo_lv"); err != nil {
			return m, err
		}
		return m, nil
	}, katastralniUzemi, jeStavebni, parcelniCislo, castParcely)
}
