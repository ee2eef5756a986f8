package services

import (
	"context"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/compare"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// quotationSource is the slice of QuotationRepository the comparison and
// ranking services read from.
type quotationSource interface {
	GetSuppliers(ctx context.Context, rfqNumber string, bidders []string) ([]models.SupplierQuotation, error)
}

// Comparison is the full payload of the comparison screen for one RFQ and
// one bidder subset.
type Comparison struct {
	RfqNumber  string                     `json:"RfqNumber"`
	Quotations []models.SupplierQuotation `json:"Quotations"`
	Matrix     []compare.Cell             `json:"Matrix"`
	Scores     []compare.ScoreCell        `json:"Scores"`
}

type ComparisonService struct {
	Quotations quotationSource
}

func NewComparisonService(quotations quotationSource) *ComparisonService {
	return &ComparisonService{Quotations: quotations}
}

// Compare fetches the selected bidders' quotations, enriches them with
// min/max flags and differences, and builds the price matrix plus the score
// projection. Bidders are deduplicated first; fewer than two distinct
// bidders is an input error before anything is fetched.
func (s *ComparisonService) Compare(ctx context.Context, rfqNumber string, bidders []string) (Comparison, error) {
	if rfqNumber == "" {
		return Comparison{}, models.ErrMissingRFQNumber
	}
	distinct := dedupe(bidders)
	if len(distinct) < 2 {
		return Comparison{}, models.ErrNotEnoughBidders
	}

	quotes, err := s.Quotations.GetSuppliers(ctx, rfqNumber, distinct)
	if err != nil {
		return Comparison{}, err
	}

	compare.Enrich(quotes)
	return Comparison{
		RfqNumber:  rfqNumber,
		Quotations: quotes,
		Matrix:     compare.BuildMatrix(quotes),
		Scores:     compare.BuildScoreProjection(quotes),
	}, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
