package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
	"github.com/katastr-cz/katastr-server/pkg/repositories"
)

// ErrNoDetails marks a proceeding that resolved to an id but whose detail
// queries all came back empty. Wraps apperrors.ErrNotFound; the HTTP layer
// words the two cases differently.
var ErrNoDetails = fmt.Errorf("proceeding has no details: %w", apperrors.ErrNotFound)

// RizeniQuery is the proceeding lookup key: either the internal id, or the
// full natural key (type abbreviation, case number, year).
type RizeniQuery struct {
	ID    *int32
	Typ   *string
	Cislo *int32
	Rok   *int32
}

// RizeniService assembles the composite proceeding-detail response.
type RizeniService interface {
	Get(ctx context.Context, q RizeniQuery) (*models.ProceedingDetail, []PartTiming, error)
}

type rizeniService struct {
	repo   repositories.RizeniRepository
	logger *zap.Logger
}

// NewRizeniService creates a RizeniService over the given repository.
func NewRizeniService(repo repositories.RizeniRepository, logger *zap.Logger) RizeniService {
	return &rizeniService{repo: repo, logger: logger}
}

// Get resolves the proceeding id and runs the three detail queries
// concurrently. A request carrying neither an id nor the complete natural key
// yields apperrors.ErrBadRequest; a proceeding where all three parts come
// back empty yields apperrors.ErrNotFound.
func (s *rizeniService) Get(ctx context.Context, q RizeniQuery) (*models.ProceedingDetail, []PartTiming, error) {
	id, err := s.resolveID(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	var detail models.ProceedingDetail

	timings, err := fanOut([]func() outcome{
		part(0, "predmet",
			func() ([]models.ProceedingSubject, error) { return s.repo.Predmet(ctx, id) },
			func(rows []models.ProceedingSubject) { detail.Predmet = rows }),
		part(1, "ucastnici",
			func() ([]models.ProceedingParticipant, error) { return s.repo.Ucastnici(ctx, id) },
			func(rows []models.ProceedingParticipant) { detail.Ucastnici = rows }),
		part(2, "operace",
			func() ([]models.ProceedingOperation, error) { return s.repo.Operace(ctx, id) },
			func(rows []models.ProceedingOperation) { detail.Operace = rows }),
	})
	if err != nil {
		return nil, nil, err
	}

	if len(detail.Predmet) == 0 && len(detail.Ucastnici) == 0 && len(detail.Operace) == 0 {
		s.logger.Debug("proceeding has no details", zap.Int32("rizeni_id", id))
		return nil, nil, ErrNoDetails
	}
	return &detail, timings, nil
}

func (s *rizeniService) resolveID(ctx context.Context, q RizeniQuery) (int32, error) {
	if q.ID != nil {
		return *q.ID, nil
	}
	if q.Typ == nil || q.Cislo == nil || q.Rok == nil {
		return 0, fmt.Errorf("%w: either 'id' or 'typ', 'cislo', 'rok' must be provided", apperrors.ErrBadRequest)
	}
	return s.repo.ResolveID(ctx, *q.Typ, *q.Cislo, *q.Rok)
}
