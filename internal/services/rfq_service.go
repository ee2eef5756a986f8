package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/repositories"
)

type RFQService struct {
	RFQs       *repositories.RFQRepository
	Quotations *repositories.QuotationRepository
	Ranking    *RankingService
	Cache      *repositories.AggregateCache
}

// GetHeaders lists RFQ headers with the time-remaining projection applied.
func (s *RFQService) GetHeaders(ctx context.Context, statuses []string) ([]models.RFQHeader, error) {
	headers, err := s.RFQs.GetHeaders(ctx, statuses)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range headers {
		projectTimeRemaining(&headers[i], now)
	}
	return headers, nil
}

// projectTimeRemaining fills the "Nd Nh remaining" text and its urgency
// state: Success above three days, Warning above one day, Error below.
func projectTimeRemaining(h *models.RFQHeader, now time.Time) {
	if h.EventEndDate == nil {
		return
	}
	remaining := h.EventEndDate.Sub(now)
	if remaining <= 0 {
		h.TimeRemaining = "Expired"
		h.TimeRemainingState = "Error"
		return
	}
	days := int(remaining.Hours()) / 24
	hours := int(remaining.Hours()) % 24
	h.TimeRemaining = fmt.Sprintf("%dd %dh remaining", days, hours)
	switch {
	case remaining > 72*time.Hour:
		h.TimeRemainingState = "Success"
	case remaining > 24*time.Hour:
		h.TimeRemainingState = "Warning"
	default:
		h.TimeRemainingState = "Error"
	}
}

func (s *RFQService) GetHeader(ctx context.Context, rfqNumber string) (models.RFQHeader, error) {
	if rfqNumber == "" {
		return models.RFQHeader{}, models.ErrMissingRFQNumber
	}
	h, err := s.RFQs.GetHeaderByNumber(ctx, rfqNumber)
	if err != nil {
		return models.RFQHeader{}, err
	}
	projectTimeRemaining(&h, time.Now())
	return h, nil
}

func (s *RFQService) GetItems(ctx context.Context, rfqNumber string) ([]models.RFQItem, error) {
	if rfqNumber == "" {
		return nil, models.ErrMissingRFQNumber
	}
	return s.RFQs.GetItems(ctx, rfqNumber)
}

// GetMaterials feeds the negotiation material popover.
func (s *RFQService) GetMaterials(ctx context.Context, rfqNumber string) ([]models.Material, error) {
	if rfqNumber == "" {
		return nil, models.ErrMissingRFQNumber
	}
	return s.RFQs.GetMaterials(ctx, rfqNumber)
}

func (s *RFQService) SearchMaterials(ctx context.Context, term string) ([]models.Material, error) {
	return s.RFQs.SearchMaterials(ctx, term)
}

func (s *RFQService) SearchVendors(ctx context.Context, term string) ([]models.Vendor, error) {
	return s.RFQs.SearchVendors(ctx, term)
}

// CreateRFQ validates the authoring payload and, only when every check
// passes, allocates a number and writes the RFQ. Validation messages are
// aggregated so the caller sees the complete list at once.
func (s *RFQService) CreateRFQ(ctx context.Context, req models.CreateRFQRequest) (string, error) {
	if verr := validateCreateRFQ(req); verr != nil {
		return "", verr
	}
	rfqNumber, err := s.RFQs.NextRFQNumber(ctx)
	if err != nil {
		return "", err
	}
	if err := s.RFQs.CreateRFQ(ctx, rfqNumber, req); err != nil {
		return "", err
	}
	return rfqNumber, nil
}

func validateCreateRFQ(req models.CreateRFQRequest) *models.ValidationError {
	var messages []string
	add := func(format string, args ...any) {
		messages = append(messages, fmt.Sprintf(format, args...))
	}

	if req.ProjectName == "" {
		add("Project name is required")
	}
	if req.Reference == "" {
		add("Reference is required")
	}
	if req.QuotationDeadline == nil {
		add("Quotation deadline is required")
	} else if !req.QuotationDeadline.After(time.Now()) {
		add("Quotation deadline must be in the future")
	}
	if req.CurrencyCode == "" {
		add("Currency is required")
	}
	if req.PaymentTermCode == "" {
		add("Payment term is required")
	}
	if req.IncoTermCode == "" {
		add("Incoterm is required")
	}
	if req.CompanyCode == "" {
		add("Company code is required")
	}
	if req.PurchaseOrgCode == "" {
		add("Purchase organization is required")
	}
	if req.PurchaseGroupCode == "" {
		add("Purchase group is required")
	}

	if len(req.Items) == 0 {
		add("At least one item is required")
	}
	for i, item := range req.Items {
		row := i + 1
		if item.MaterialNo == "" {
			add("Item %d: material is required", row)
		}
		if item.Quantity <= 0 {
			add("Item %d: quantity must be greater than zero", row)
		}
		if item.UnitOfMeasure == "" {
			add("Item %d: unit of measure is required", row)
		}
		if item.DeliveryDate == nil {
			add("Item %d: delivery date is required", row)
		}
	}

	if len(req.Suppliers) == 0 {
		add("At least one supplier is required")
	}
	for i, s := range req.Suppliers {
		if s.SupplierCode == "" {
			add("Supplier %d: supplier code is required", i+1)
		}
	}

	if len(messages) == 0 {
		return nil
	}
	return &models.ValidationError{Messages: messages}
}

// Decide records an award or reject decision. Remarks are mandatory; the
// decision and the status move commit together.
func (s *RFQService) Decide(ctx context.Context, d models.AwardDecision) error {
	if d.RfqNumber == "" {
		return models.ErrMissingRFQNumber
	}
	if d.Remarks == "" {
		return models.ErrRemarksRequired
	}
	switch d.NewStatus {
	case "Award", "Awarded":
		d.NewStatus = "Awarded"
	case "Reject", "Rejected":
		d.NewStatus = "Rejected"
	default:
		return fmt.Errorf("unknown decision status %q", d.NewStatus)
	}

	if err := s.Quotations.AwardOrReject(ctx, d); err != nil {
		return err
	}
	if s.Ranking != nil {
		s.Ranking.Invalidate(d.RfqNumber)
	}
	s.Cache.Invalidate(ctx, d.RfqNumber)
	return nil
}
