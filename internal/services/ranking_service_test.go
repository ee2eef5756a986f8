package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

type stubQuotations struct {
	quotes []models.SupplierQuotation
	err    error
	calls  int
}

func (s *stubQuotations) GetSuppliers(_ context.Context, _ string, _ []string) ([]models.SupplierQuotation, error) {
	s.calls++
	return s.quotes, s.err
}

func rankingFixture() []models.SupplierQuotation {
	score := func(v float64) *float64 { return &v }
	return []models.SupplierQuotation{
		{
			RfqNumber: "600001", Bidder: "SUP1", QuotationValue: "900",
			Items: []models.QuotationItem{{MaterialNo: "M-1", MaterialDesc: "Cement", NetPrice: 900, Score: score(60)}},
		},
		{
			RfqNumber: "600001", Bidder: "SUP2", QuotationValue: "1100",
			Items: []models.QuotationItem{{MaterialNo: "M-1", MaterialDesc: "Cement", NetPrice: 1100, Score: score(90)}},
		},
	}
}

func TestRankingModeSwitchDoesNotRefetch(t *testing.T) {
	repo := &stubQuotations{quotes: rankingFixture()}
	svc := NewRankingService(repo)

	byPrice, err := svc.Ranking(context.Background(), "600001", "price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byPrice.Rows[0].Supplier != "SUP1" {
		t.Fatalf("price mode must put cheapest first, got %s", byPrice.Rows[0].Supplier)
	}

	byScore, err := svc.Ranking(context.Background(), "600001", "score")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byScore.Rows[0].Supplier != "SUP2" {
		t.Fatalf("score mode must put best score first, got %s", byScore.Rows[0].Supplier)
	}

	if repo.calls != 1 {
		t.Fatalf("mode switch must reuse cached rows, got %d fetches", repo.calls)
	}
}

func TestRankingDefaultModeIsPrice(t *testing.T) {
	svc := NewRankingService(&stubQuotations{quotes: rankingFixture()})

	pivot, err := svc.Ranking(context.Background(), "600001", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pivot.Rows[0].Supplier != "SUP1" {
		t.Fatalf("default mode must sort by price, got %s first", pivot.Rows[0].Supplier)
	}
}

func TestRankingRejectsUnknownMode(t *testing.T) {
	repo := &stubQuotations{quotes: rankingFixture()}
	svc := NewRankingService(repo)

	_, err := svc.Ranking(context.Background(), "600001", "alphabetical")
	if !errors.Is(err, models.ErrInvalidRankingMode) {
		t.Fatalf("expected ErrInvalidRankingMode, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("invalid mode must not fetch, got %d calls", repo.calls)
	}
}

func TestRankingInvalidateForcesRefetch(t *testing.T) {
	repo := &stubQuotations{quotes: rankingFixture()}
	svc := NewRankingService(repo)

	if _, err := svc.Ranking(context.Background(), "600001", "price"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.Invalidate("600001")
	if _, err := svc.Ranking(context.Background(), "600001", "price"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.calls != 2 {
		t.Fatalf("invalidate must force a refetch, got %d calls", repo.calls)
	}
}

func TestRankingMissingRFQNumber(t *testing.T) {
	svc := NewRankingService(&stubQuotations{})

	_, err := svc.Ranking(context.Background(), "", "price")
	if !errors.Is(err, models.ErrMissingRFQNumber) {
		t.Fatalf("expected ErrMissingRFQNumber, got %v", err)
	}
}

func TestRankingSortIsStableAcrossSwitches(t *testing.T) {
	svc := NewRankingService(&stubQuotations{quotes: rankingFixture()})

	first, err := svc.Ranking(context.Background(), "600001", "price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Ranking(context.Background(), "600001", "score"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Ranking(context.Background(), "600001", "price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first.Rows {
		if first.Rows[i].Supplier != second.Rows[i].Supplier {
			t.Fatalf("row %d changed across switches: %s vs %s", i, first.Rows[i].Supplier, second.Rows[i].Supplier)
		}
	}
	if len(first.Columns) == 0 || first.Columns[0].MaterialNo != "M-1" {
		t.Fatalf("expected material column M-1, got %+v", first.Columns)
	}
}
