package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	service "github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/services"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		BuyerID  string `json:"buyerId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.AuthService.SignIn(r.Context(), creds.BuyerID, creds.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Sign in failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
