package services

import (
	"context"
	"sync"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/compare"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// RankingService builds the pivot table once per RFQ and keeps it cached so
// a ranking mode switch only re-sorts the rows it already has.
type RankingService struct {
	Quotations quotationSource

	mu     sync.Mutex
	cached map[string]compare.Pivot
}

func NewRankingService(quotations quotationSource) *RankingService {
	return &RankingService{
		Quotations: quotations,
		cached:     make(map[string]compare.Pivot),
	}
}

// Ranking returns the pivot for an RFQ sorted by the requested mode. The
// first call per RFQ fetches and builds; later calls, including mode
// switches, reuse the cached rows.
func (s *RankingService) Ranking(ctx context.Context, rfqNumber, mode string) (compare.Pivot, error) {
	if rfqNumber == "" {
		return compare.Pivot{}, models.ErrMissingRFQNumber
	}
	m, err := compare.ParseMode(mode)
	if err != nil {
		return compare.Pivot{}, err
	}

	s.mu.Lock()
	pivot, ok := s.cached[rfqNumber]
	s.mu.Unlock()

	if !ok {
		quotes, err := s.Quotations.GetSuppliers(ctx, rfqNumber, nil)
		if err != nil {
			return compare.Pivot{}, err
		}
		pivot = compare.BuildPivot(quotes)
		s.mu.Lock()
		s.cached[rfqNumber] = pivot
		s.mu.Unlock()
	}

	sorted := pivot
	sorted.Rows = make([]compare.Row, len(pivot.Rows))
	copy(sorted.Rows, pivot.Rows)
	compare.SortRows(sorted.Rows, m)
	return sorted, nil
}

// Invalidate drops the cached pivot for one RFQ, called after award or
// reject decisions.
func (s *RankingService) Invalidate(rfqNumber string) {
	s.mu.Lock()
	delete(s.cached, rfqNumber)
	s.mu.Unlock()
}
