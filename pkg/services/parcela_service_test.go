package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

type fakeParcelaRepo struct {
	rows []models.ParcelaDetail
	err  error
}

func (f *fakeParcelaRepo) Find(ctx context.Context, ku string, jeStavebni bool, parcelniCislo, castParcely int32) ([]models.ParcelaDetail, error) {
	return f.rows, f.err
}

func TestParcelaService_Find(t *testing.T) {
	vymera := "1520.50"
	repo := &fakeParcelaRepo{
		rows: []models.ParcelaDetail{
			{ParcelniCislo: 120, CastParcely: 1, VymeraMetruCtverecnich: &vymera, CisloLV: 42},
		},
	}
	svc := NewParcelaService(repo, zap.NewNop())

	rows, err := svc.Find(context.Background(), "Stare Mesto", false, 120, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0].CisloLV)
}

func TestParcelaService_Find_NotFound(t *testing.T) {
	svc := NewParcelaService(&fakeParcelaRepo{rows: []models.ParcelaDetail{}}, zap.NewNop())

	_, err := svc.Find(context.Background(), "Stare Mesto", false, 9999, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestParcelaService_Find_QueryError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewParcelaService(&fakeParcelaRepo{err: boom}, zap.NewNop())

	_, err := svc.Find(context.Background(), "Stare Mesto", false, 120, 1)
	assert.ErrorIs(t, err, boom)
}
