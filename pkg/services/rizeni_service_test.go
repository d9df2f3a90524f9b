package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
)

type fakeRizeniRepo struct {
	resolvedID int32
	resolveErr error
	predmet    []models.ProceedingSubject
	ucastnici  []models.ProceedingParticipant
	operace    []models.ProceedingOperation

	resolveCalls int
	queriedID    int32
}

func (f *fakeRizeniRepo) ResolveID(ctx context.Context, typ string, cislo, rok int32) (int32, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return 0, f.resolveErr
	}
	return f.resolvedID, nil
}

func (f *fakeRizeniRepo) Predmet(ctx context.Context, id int32) ([]models.ProceedingSubject, error) {
	f.queriedID = id
	return f.predmet, nil
}

func (f *fakeRizeniRepo) Ucastnici(ctx context.Context, id int32) ([]models.ProceedingParticipant, error) {
	return f.ucastnici, nil
}

func (f *fakeRizeniRepo) Operace(ctx context.Context, id int32) ([]models.ProceedingOperation, error) {
	return f.operace, nil
}

func int32Ptr(v int32) *int32 { return &v }
func strPtr(v string) *string { return &v }

func TestRizeniService_Get_ByID(t *testing.T) {
	repo := &fakeRizeniRepo{
		predmet: []models.ProceedingSubject{{Predmet: "vklad vlastnickeho prava"}},
	}
	svc := NewRizeniService(repo, zap.NewNop())

	detail, timings, err := svc.Get(context.Background(), RizeniQuery{ID: int32Ptr(7)})
	require.NoError(t, err)

	assert.Equal(t, int32(7), repo.queriedID)
	assert.Zero(t, repo.resolveCalls, "id lookup must skip natural-key resolution")
	assert.Len(t, detail.Predmet, 1)
	assert.NotNil(t, detail.Ucastnici)
	assert.NotNil(t, detail.Operace)

	require.Len(t, timings, 3)
	assert.Equal(t, "predmet", timings[0].Name)
	assert.Equal(t, "ucastnici", timings[1].Name)
	assert.Equal(t, "operace", timings[2].Name)
}

func TestRizeniService_Get_ByNaturalKey(t *testing.T) {
	repo := &fakeRizeniRepo{
		resolvedID: 33,
		ucastnici:  []models.ProceedingParticipant{{TypUcastnika: "navrhovatel", UcastnikJmeno: "Jan Novak"}},
	}
	svc := NewRizeniService(repo, zap.NewNop())

	detail, _, err := svc.Get(context.Background(), RizeniQuery{
		Typ:   strPtr("V"),
		Cislo: int32Ptr(1205),
		Rok:   int32Ptr(2021),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.resolveCalls)
	assert.Equal(t, int32(33), repo.queriedID)
	assert.Len(t, detail.Ucastnici, 1)
}

func TestRizeniService_Get_MissingParams(t *testing.T) {
	svc := NewRizeniService(&fakeRizeniRepo{}, zap.NewNop())

	// Partial natural key is as bad as none at all.
	_, _, err := svc.Get(context.Background(), RizeniQuery{Typ: strPtr("V"), Cislo: int32Ptr(1205)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, _, err = svc.Get(context.Background(), RizeniQuery{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRizeniService_Get_UnknownNaturalKey(t *testing.T) {
	repo := &fakeRizeniRepo{resolveErr: apperrors.ErrNotFound}
	svc := NewRizeniService(repo, zap.NewNop())

	_, _, err := svc.Get(context.Background(), RizeniQuery{
		Typ:   strPtr("V"),
		Cislo: int32Ptr(9999),
		Rok:   int32Ptr(1990),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRizeniService_Get_AllPartsEmpty(t *testing.T) {
	svc := NewRizeniService(&fakeRizeniRepo{}, zap.NewNop())

	_, _, err := svc.Get(context.Background(), RizeniQuery{ID: int32Ptr(7)})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
