package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
	"github.com/katastr-cz/katastr-server/pkg/repositories"
)

// ParcelaService resolves a single parcel by its natural key.
type ParcelaService interface {
	Find(ctx context.Context, katastralniUzemi string, jeStavebni bool, parcelniCislo, castParcely int32) ([]models.ParcelaDetail, error)
}

type parcelaService struct {
	repo   repositories.ParcelaRepository
	logger *zap.Logger
}

// NewParcelaService creates a ParcelaService over the given repository.
func NewParcelaService(repo repositories.ParcelaRepository, logger *zap.Logger) ParcelaService {
	return &parcelaService{repo: repo, logger: logger}
}

// Find returns the matching parcel rows; an empty result yields
// apperrors.ErrNotFound.
func (s *parcelaService) Find(ctx context.Context, katastralniUzemi string, jeStavebni bool, parcelniCislo, castParcely int32) ([]models.ParcelaDetail, error) {
	rows, err := s.repo.Find(ctx, katastralniUzemi, jeStavebni, parcelniCislo, castParcely)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		s.logger.Debug("parcel not found",
			zap.String("katastralni_uzemi", katastralniUzemi),
			zap.Bool("je_stavebni", jeStavebni),
			zap.Int32("parcelni_cislo", parcelniCislo),
			zap.Int32("cast_parcely", castParcely))
		return nil, apperrors.ErrNotFound
	}
	return rows, nil
}
