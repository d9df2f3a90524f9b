package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
	"github.com/katastr-cz/katastr-server/pkg/models"
	"github.com/katastr-cz/katastr-server/pkg/repositories"
)

// PartTiming records how long one sub-query of a composite fetch took. The
// HTTP layer renders these as Server-Timing entries, in part order.
type PartTiming struct {
	Name     string
	Duration time.Duration
}

// outcome carries one finished sub-query back to the assembling goroutine.
// apply publishes the fetched rows and is only ever run by the consumer, so
// the assembled response needs no locking.
type outcome struct {
	idx    int
	err    error
	apply  func()
	timing PartTiming
}

// fanOut runs each part query in its own goroutine and applies the results in
// the consumer. The first failing part aborts the join; in-flight siblings
// finish on their own and their sends land in the buffered channel.
func fanOut(parts []func() outcome) ([]PartTiming, error) {
	results := make(chan outcome, len(parts))
	for _, part := range parts {
		part := part
		go func() {
			results <- part()
		}()
	}

	timings := make([]PartTiming, len(parts))
	for range parts {
		out := <-results
		if out.err != nil {
			return nil, out.err
		}
		out.apply()
		timings[out.idx] = out.timing
	}
	return timings, nil
}

// part builds one timed sub-query closure for fanOut.
func part[T any](idx int, name string, query func() ([]T, error), assign func([]T)) func() outcome {
	return func() outcome {
		start := time.Now()
		rows, err := query()
		elapsed := time.Since(start)
		if err != nil {
			return outcome{idx: idx, err: err}
		}
		return outcome{
			idx:    idx,
			apply:  func() { assign(rows) },
			timing: PartTiming{Name: name, Duration: elapsed},
		}
	}
}

// SheetService assembles the composite ownership-sheet response.
type SheetService interface {
	Get(ctx context.Context, katastralniUzemi string, cisloLV int32) (*models.OwnershipSheet, []PartTiming, error)
}

type sheetService struct {
	repo   repositories.SheetRepository
	logger *zap.Logger
}

// NewSheetService creates a SheetService over the given repository.
func NewSheetService(repo repositories.SheetRepository, logger *zap.Logger) SheetService {
	return &sheetService{repo: repo, logger: logger}
}

// Get runs the seven part queries concurrently and assembles them into one
// document. A sheet whose part_a comes back empty does not exist and yields
// apperrors.ErrNotFound; emptiness is only judged after every part completed.
func (s *sheetService) Get(ctx context.Context, katastralniUzemi string, cisloLV int32) (*models.OwnershipSheet, []PartTiming, error) {
	var sheet models.OwnershipSheet

	timings, err := fanOut([]func() outcome{
		part(0, "part_a",
			func() ([]models.OwnerShare, error) { return s.repo.PartA(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.OwnerShare) { sheet.PartA = rows }),
		part(1, "part_b",
			func() ([]models.SheetParcel, error) { return s.repo.PartB(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.SheetParcel) { sheet.PartB = rows }),
		part(2, "part_b_parcela",
			func() ([]models.ParcelEasement, error) { return s.repo.PartBParcela(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.ParcelEasement) { sheet.PartBParcela = rows }),
		part(3, "part_b_majitel",
			func() ([]models.OwnerEasement, error) { return s.repo.PartBMajitel(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.OwnerEasement) { sheet.PartBMajitel = rows }),
		part(4, "part_c",
			func() ([]models.SheetEncumbrance, error) { return s.repo.PartC(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.SheetEncumbrance) { sheet.PartC = rows }),
		part(5, "part_d",
			func() ([]models.SheetProceeding, error) { return s.repo.PartD(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.SheetProceeding) { sheet.PartD = rows }),
		part(6, "part_f",
			func() ([]models.SheetValuation, error) { return s.repo.PartF(ctx, katastralniUzemi, cisloLV) },
			func(rows []models.SheetValuation) { sheet.PartF = rows }),
	})
	if err != nil {
		return nil, nil, err
	}

	if len(sheet.PartA) == 0 {
		s.logger.Debug("ownership sheet has no owners",
			zap.String("katastralni_uzemi", katastralniUzemi),
			zap.Int32("cislo_lv", cisloLV))
		return nil, nil, apperrors.ErrNotFound
	}
	return &sheet, timings, nil
}
