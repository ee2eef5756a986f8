package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	service "github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/services"
)

type RFQHandler struct {
	RFQService       *service.RFQService
	DashboardService *service.DashboardService
}

// GetRFQs lists headers. ?status=Open,Awarded narrows the set.
func (h *RFQHandler) GetRFQs(w http.ResponseWriter, r *http.Request) {
	var statuses []string
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	headers, err := h.RFQService.GetHeaders(r.Context(), statuses)
	if err != nil {
		http.Error(w, "Failed to retrieve RFQs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(headers)
}

func (h *RFQHandler) GetRFQByNumber(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")

	header, err := h.RFQService.GetHeader(r.Context(), rfqNumber)
	if err != nil {
		if errors.Is(err, models.ErrMissingRFQNumber) {
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, models.ErrRFQNotFound) {
			http.Error(w, "RFQ not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve RFQ", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(header)
}

func (h *RFQHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")

	items, err := h.RFQService.GetItems(r.Context(), rfqNumber)
	if err != nil {
		if errors.Is(err, models.ErrMissingRFQNumber) {
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to retrieve RFQ items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// GetMaterials returns the distinct materials of an RFQ for the negotiation
// popover.
func (h *RFQHandler) GetMaterials(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")

	materials, err := h.RFQService.GetMaterials(r.Context(), rfqNumber)
	if err != nil {
		if errors.Is(err, models.ErrMissingRFQNumber) {
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to retrieve materials", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(materials)
}

// GetDashboard assembles the full RFQ detail payload.
func (h *RFQHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	rfqNumber := r.URL.Query().Get(":rfq_number")

	dashboard, err := h.DashboardService.Load(r.Context(), rfqNumber)
	if err != nil {
		if errors.Is(err, models.ErrMissingRFQNumber) {
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, models.ErrRFQNotFound) {
			http.Error(w, "RFQ not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}

// CreateRFQ validates and writes a new RFQ. Validation problems come back
// as a 422 with the complete message list.
func (h *RFQHandler) CreateRFQ(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRFQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rfqNumber, err := h.RFQService.CreateRFQ(r.Context(), req)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{"errors": verr.Messages})
			return
		}
		http.Error(w, "Failed to create RFQ", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"RfqNumber": rfqNumber})
}

// Decide awards or rejects a supplier quotation.
func (h *RFQHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var decision models.AwardDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.RFQService.Decide(r.Context(), decision); err != nil {
		switch {
		case errors.Is(err, models.ErrMissingRFQNumber):
			http.Error(w, "RFQ number is required", http.StatusBadRequest)
		case errors.Is(err, models.ErrRemarksRequired):
			http.Error(w, "Remarks are required", http.StatusUnprocessableEntity)
		case errors.Is(err, models.ErrQuotationNotFound):
			http.Error(w, "Quotation not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to record decision", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *RFQHandler) SearchMaterials(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	materials, err := h.RFQService.SearchMaterials(r.Context(), term)
	if err != nil {
		http.Error(w, "Failed to search materials", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(materials)
}

func (h *RFQHandler) SearchVendors(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	vendors, err := h.RFQService.SearchVendors(r.Context(), term)
	if err != nil {
		http.Error(w, "Failed to search vendors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendors)
}
