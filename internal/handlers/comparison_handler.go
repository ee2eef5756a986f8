package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	service "github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/services"
)

type ComparisonHandler struct {
	ComparisonService *service.ComparisonService
	RankingService    *service.RankingService
	ExportService     *service.ExportService
}

func biddersFromQuery(r *http.Request) []string {
	var bidders []string
	for _, b := range strings.Split(r.URL.Query().Get("bidders"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			bidders = append(bidders, b)
		}
	}
	return bidders
}

// Compare returns the enriched quotations, price matrix and score
// projection for a bidder subset of one RFQ.
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")

	comparison, err := h.ComparisonService.Compare(r.Context(), rfqNumber, biddersFromQuery(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingRFQNumber):
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
		case errors.Is(err, models.ErrNotEnoughBidders):
			http.Error(w, "Select at least two suppliers to compare", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to build comparison", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comparison)
}

// Ranking returns the pivot table sorted by ?mode=price|score. A mode
// switch reuses the cached rows.
func (h *ComparisonHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")
	mode := r.URL.Query().Get("mode")

	pivot, err := h.RankingService.Ranking(r.Context(), rfqNumber, mode)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingRFQNumber):
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
		case errors.Is(err, models.ErrInvalidRankingMode):
			http.Error(w, "Ranking mode must be price or score", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to build ranking", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pivot)
}

// Export streams the comparison as an .xlsx attachment. The workbook is
// rendered into a buffer first so an error never produces a half-written
// download.
func (h *ComparisonHandler) Export(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")

	var buf bytes.Buffer
	if err := h.ExportService.Export(r.Context(), rfqNumber, biddersFromQuery(r), &buf); err != nil {
		switch {
		case errors.Is(err, models.ErrMissingRFQNumber):
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
		case errors.Is(err, models.ErrNotEnoughBidders):
			http.Error(w, "Select at least two suppliers to compare", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to export comparison", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="comparison_%s.xlsx"`, rfqNumber))
	w.Write(buf.Bytes())
}
