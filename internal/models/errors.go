package models

import (
	"errors"
)

var (
	ErrRFQNotFound          = errors.New("models: rfq not found")
	ErrQuotationNotFound    = errors.New("models: quotation not found")
	ErrMissingRFQNumber     = errors.New("models: rfq number is required")
	ErrNotEnoughBidders     = errors.New("models: at least two bidders are required to compare")
	ErrMissingMessageID     = errors.New("models: negotiation message id is missing")
	ErrInvalidCredentials   = errors.New("models: invalid credentials")
	ErrRemarksRequired      = errors.New("models: remarks are required")
	ErrInvalidRankingMode   = errors.New("models: ranking mode must be price or score")
	ErrChatServiceFailure   = errors.New("models: negotiation service call failed")
	ErrNoTrackedNegotiation = errors.New("models: no negotiation tracked for material")
)

// ValidationError carries the full aggregated list of authoring problems.
// Submission is blocked whenever the list is non-empty.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Messages[0]
}
