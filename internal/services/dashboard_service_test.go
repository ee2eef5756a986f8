package services

import (
	"testing"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

func TestChartSlices(t *testing.T) {
	tests := []struct {
		name        string
		dist        models.StatusDistribution
		wantPending int
	}{
		{
			name: "pending is the remainder",
			dist: models.StatusDistribution{
				SubmittedCount: 3, AcceptedCount: 1, NotAcceptedCount: 1, RejectedCount: 0,
				SupplierDetails: make([]models.SupplierDetail, 5),
			},
			wantPending: 3,
		},
		{
			name: "pending floors at zero",
			dist: models.StatusDistribution{
				AcceptedCount: 2, NotAcceptedCount: 2, RejectedCount: 2,
				SupplierDetails: make([]models.SupplierDetail, 3),
			},
			wantPending: 0,
		},
		{
			name:        "empty distribution",
			dist:        models.StatusDistribution{},
			wantPending: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := chartSlices(tt.dist)
			if len(slices) != 5 {
				t.Fatalf("expected 5 segments, got %d", len(slices))
			}
			var pending int
			for _, s := range slices {
				if s.Type == "Pending" {
					pending = s.Count
				}
			}
			if pending != tt.wantPending {
				t.Fatalf("pending: got %d, want %d", pending, tt.wantPending)
			}
			if slices[0].Type != "Submitted" || slices[0].Count != tt.dist.SubmittedCount {
				t.Fatalf("submitted segment mismatch: %+v", slices[0])
			}
		})
	}
}
