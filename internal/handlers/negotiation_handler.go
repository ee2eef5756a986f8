package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	service "github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/services"
)

type NegotiationHandler struct {
	NegotiationService *service.NegotiationService
}

type negotiationRequest struct {
	models.NegotiationContext
	ExpectedPrice *float64 `json:"expectedPrice,omitempty"`
	BestOffer     *float64 `json:"bestOffer,omitempty"`
}

func decodeNegotiation(w http.ResponseWriter, r *http.Request) (negotiationRequest, bool) {
	var req negotiationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.BuyerID == "" || req.RfqNumber == "" || req.MaterialNo == "" || req.Bidder == "" {
		http.Error(w, "buyerId, rfqNumber, materialNo and supplierId are required", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeNegotiationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMissingMessageID):
		http.Error(w, "No message to act on yet", http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrNoTrackedNegotiation):
		http.Error(w, "No negotiation tracked for this supplier", http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrChatServiceFailure):
		http.Error(w, "Negotiation service is unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "Negotiation request failed", http.StatusInternalServerError)
	}
}

// SendExpectedPrice relays the buyer's expected price for one material.
func (h *NegotiationHandler) SendExpectedPrice(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNegotiation(w, r)
	if !ok {
		return
	}
	if req.ExpectedPrice == nil || *req.ExpectedPrice <= 0 {
		http.Error(w, "expectedPrice must be greater than zero", http.StatusBadRequest)
		return
	}

	record, err := h.NegotiationService.SendExpectedPrice(r.Context(), req.NegotiationContext, *req.ExpectedPrice)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// SendBestOffer relays the buyer's counter offer.
func (h *NegotiationHandler) SendBestOffer(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNegotiation(w, r)
	if !ok {
		return
	}
	if req.BestOffer == nil || *req.BestOffer <= 0 {
		http.Error(w, "bestOffer must be greater than zero", http.StatusBadRequest)
		return
	}

	record, err := h.NegotiationService.SendBestOffer(r.Context(), req.NegotiationContext, *req.BestOffer)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// Accept accepts the supplier's latest offer for the thread.
func (h *NegotiationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNegotiation(w, r)
	if !ok {
		return
	}

	record, err := h.NegotiationService.Accept(r.Context(), req.NegotiationContext)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// Reject rejects the supplier's latest offer for the thread.
func (h *NegotiationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNegotiation(w, r)
	if !ok {
		return
	}

	record, err := h.NegotiationService.Reject(r.Context(), req.NegotiationContext)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// Refresh re-fetches every tracked thread for a material and returns the
// merged snapshots.
func (h *NegotiationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	buyerID := q.Get("buyerId")
	rfqNumber := q.Get("rfqNumber")
	materialNo := q.Get("materialNo")
	if buyerID == "" || rfqNumber == "" || materialNo == "" {
		http.Error(w, "buyerId, rfqNumber and materialNo are required", http.StatusBadRequest)
		return
	}

	records, err := h.NegotiationService.RefreshAll(r.Context(), buyerID, rfqNumber, materialNo)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// Select seeds negotiation tracking for one material and bidder and returns
// the latest record.
func (h *NegotiationHandler) Select(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeNegotiation(w, r)
	if !ok {
		return
	}

	record, err := h.NegotiationService.Refresh(r.Context(), req.NegotiationContext)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
