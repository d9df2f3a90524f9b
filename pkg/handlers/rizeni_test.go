package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
	"github.com/katastr-cz/katastr-server/pkg/services"
)

type fakeRizeniService struct {
	detail  *models.ProceedingDetail
	timings []services.PartTiming
	err     error

	gotQuery services.RizeniQuery
}

func (f *fakeRizeniService) Get(ctx context.Context, q services.RizeniQuery) (*models.ProceedingDetail, []services.PartTiming, error) {
	f.gotQuery = q
	return f.detail, f.timings, f.err
}

func rizeniMux(svc services.RizeniService) *http.ServeMux {
	mux := http.NewServeMux()
	NewRizeniHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestRizeniHandler_Get_ByID(t *testing.T) {
	svc := &fakeRizeniService{
		detail: &models.ProceedingDetail{
			Predmet:   []models.ProceedingSubject{{Predmet: "vklad"}},
			Ucastnici: []models.ProceedingParticipant{},
			Operace:   []models.ProceedingOperation{},
		},
	}
	mux := rizeniMux(svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spravni_rizeni?id=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotQuery.ID)
	assert.Equal(t, int32(7), *svc.gotQuery.ID)
	assert.Nil(t, svc.gotQuery.Typ)
}

func TestRizeniHandler_Get_ByNaturalKey(t *testing.T) {
	svc := &fakeRizeniService{detail: &models.ProceedingDetail{}}
	mux := rizeniMux(svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spravni_rizeni?typ=V&cislo=1205&rok=2021", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotQuery.Typ)
	assert.Equal(t, "V", *svc.gotQuery.Typ)
	require.NotNil(t, svc.gotQuery.Cislo)
	assert.Equal(t, int32(1205), *svc.gotQuery.Cislo)
	require.NotNil(t, svc.gotQuery.Rok)
	assert.Equal(t, int32(2021), *svc.gotQuery.Rok)
}

func TestRizeniHandler_Get_MissingParams(t *testing.T) {
	mux := rizeniMux(&fakeRizeniService{err: apperrors.ErrBadRequest})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spravni_rizeni", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing parameters: either 'id' or 'typ', 'cislo', 'rok' must be provided\n", rec.Body.String())
}

func TestRizeniHandler_Get_NotFound(t *testing.T) {
	mux := rizeniMux(&fakeRizeniService{err: apperrors.ErrNotFound})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spravni_rizeni?typ=V&cislo=9&rok=1990", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rizeni not found\n", rec.Body.String())
}

func TestRizeniHandler_Get_NoDetails(t *testing.T) {
	mux := rizeniMux(&fakeRizeniService{err: services.ErrNoDetails})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spravni_rizeni?id=7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rizeni details not found\n", rec.Body.String())
}
