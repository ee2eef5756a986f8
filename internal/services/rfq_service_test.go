package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

func validCreateRequest() models.CreateRFQRequest {
	deadline := time.Now().Add(72 * time.Hour)
	delivery := time.Now().Add(14 * 24 * time.Hour)
	return models.CreateRFQRequest{
		ProjectName:       "Warehouse Extension",
		Reference:         "REF-77",
		QuotationDeadline: &deadline,
		CurrencyCode:      "INR",
		PaymentTermCode:   "NT30",
		IncoTermCode:      "EXW",
		CompanyCode:       "1000",
		PurchaseOrgCode:   "P001",
		PurchaseGroupCode: "G01",
		Items: []models.CreateRFQItem{
			{MaterialNo: "M-1", MaterialDesc: "Cement", Quantity: 100, UnitOfMeasure: "BAG", DeliveryDate: &delivery},
		},
		Suppliers: []models.CreateRFQSupplier{
			{SupplierCode: "SUP1", SupplierName: "Acme Traders"},
		},
	}
}

func TestValidateCreateRFQAcceptsCompleteRequest(t *testing.T) {
	if verr := validateCreateRFQ(validCreateRequest()); verr != nil {
		t.Fatalf("expected no validation errors, got %v", verr.Messages)
	}
}

func TestValidateCreateRFQAggregatesAllMessages(t *testing.T) {
	req := validCreateRequest()
	req.ProjectName = ""
	req.CurrencyCode = ""
	req.Items[0].MaterialNo = ""
	req.Items[0].Quantity = 0
	req.Suppliers = nil

	verr := validateCreateRFQ(req)
	if verr == nil {
		t.Fatal("expected validation errors")
	}

	want := []string{
		"Project name is required",
		"Currency is required",
		"Item 1: material is required",
		"Item 1: quantity must be greater than zero",
		"At least one supplier is required",
	}
	for _, msg := range want {
		found := false
		for _, got := range verr.Messages {
			if got == msg {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing message %q in %v", msg, verr.Messages)
		}
	}
	if len(verr.Messages) != len(want) {
		t.Fatalf("expected %d messages, got %d: %v", len(want), len(verr.Messages), verr.Messages)
	}
}

func TestValidateCreateRFQRejectsPastDeadline(t *testing.T) {
	req := validCreateRequest()
	past := time.Now().Add(-time.Hour)
	req.QuotationDeadline = &past

	verr := validateCreateRFQ(req)
	if verr == nil {
		t.Fatal("expected validation error for past deadline")
	}
	if len(verr.Messages) != 1 || !strings.Contains(verr.Messages[0], "future") {
		t.Fatalf("unexpected messages %v", verr.Messages)
	}
}

func TestProjectTimeRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		deadline  time.Time
		wantText  string
		wantState string
	}{
		{"comfortable", now.Add(5*24*time.Hour + 3*time.Hour), "5d 3h remaining", "Success"},
		{"closing in", now.Add(2*24*time.Hour + 1*time.Hour), "2d 1h remaining", "Warning"},
		{"urgent", now.Add(5 * time.Hour), "0d 5h remaining", "Error"},
		{"expired", now.Add(-time.Minute), "Expired", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := models.RFQHeader{EventEndDate: &tt.deadline}
			projectTimeRemaining(&h, now)
			if h.TimeRemaining != tt.wantText {
				t.Fatalf("text: got %q, want %q", h.TimeRemaining, tt.wantText)
			}
			if h.TimeRemainingState != tt.wantState {
				t.Fatalf("state: got %q, want %q", h.TimeRemainingState, tt.wantState)
			}
		})
	}
}

func TestProjectTimeRemainingNoDeadline(t *testing.T) {
	h := models.RFQHeader{}
	projectTimeRemaining(&h, time.Now())
	if h.TimeRemaining != "" || h.TimeRemainingState != "" {
		t.Fatalf("header without deadline must stay unprojected, got %+v", h)
	}
}
