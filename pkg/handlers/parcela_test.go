package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
	"github.com/katastr-cz/katastr-server/pkg/services"
)

type fakeParcelaService struct {
	rows []models.ParcelaDetail
	err  error

	gotKU         string
	gotJeStavebni bool
	gotCislo      int32
	gotCast       int32
}

func (f *fakeParcelaService) Find(ctx context.Context, ku string, jeStavebni bool, parcelniCislo, castParcely int32) ([]models.ParcelaDetail, error) {
	f.gotKU = ku
	f.gotJeStavebni = jeStavebni
	f.gotCislo = parcelniCislo
	f.gotCast = castParcely
	return f.rows, f.err
}

func parcelaMux(svc services.ParcelaService) *http.ServeMux {
	mux := http.NewServeMux()
	NewParcelaHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestParcelaHandler_Get(t *testing.T) {
	vymera := "1520.50"
	svc := &fakeParcelaService{
		rows: []models.ParcelaDetail{
			{ParcelniCislo: 120, CastParcely: 1, VymeraMetruCtverecnich: &vymera, CisloLV: 42},
		},
	}
	mux := parcelaMux(svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/parcela?katastralni_uzemi=Stare+Mesto&parcelni_cislo=120&cast_parcely=1&je_stavebni=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Stare Mesto", svc.gotKU)
	assert.True(t, svc.gotJeStavebni)
	assert.Equal(t, int32(120), svc.gotCislo)
	assert.Equal(t, int32(1), svc.gotCast)

	var rows []models.ParcelaDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].VymeraMetruCtverecnich)
	assert.Equal(t, "1520.50", *rows[0].VymeraMetruCtverecnich)
}

func TestParcelaHandler_Get_NotFound(t *testing.T) {
	mux := parcelaMux(&fakeParcelaService{err: apperrors.ErrNotFound})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/parcela?katastralni_uzemi=Nikde&parcelni_cislo=9&cast_parcely=1&je_stavebni=false", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Parcela not found\n", rec.Body.String())
}

func TestParcelaHandler_Get_BadParams(t *testing.T) {
	mux := parcelaMux(&fakeParcelaService{})

	for _, target := range []string{
		"/parcela?parcelni_cislo=1&cast_parcely=1&je_stavebni=true",
		"/parcela?katastralni_uzemi=X&parcelni_cislo=abc&cast_parcely=1&je_stavebni=true",
		"/parcela?katastralni_uzemi=X&parcelni_cislo=1&cast_parcely=1&je_stavebni=maybe",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}
