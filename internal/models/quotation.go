package models

import "time"

// SupplierQuotation is one bidder's quotation for an RFQ. QuotationValue is
// kept as the raw string from the backend; values that do not parse as
// numbers are excluded from comparison and flagged "N/A".
type SupplierQuotation struct {
	RfqNumber         string          `json:"RfqNumber"`
	Bidder            string          `json:"Bidder"`
	SupplierName      string          `json:"SupplierName"`
	SupplierQuotation string          `json:"SupplierQuotation"`
	QuotationValue    string          `json:"QuotationValue"`
	Currency          string          `json:"Currency"`
	TotalScore        float64         `json:"TOTAL_SCORE"`
	Status            string          `json:"Status"`
	CreatedAt         *time.Time      `json:"QuotationCreationDate,omitempty"`
	Items             []QuotationItem `json:"Items,omitempty"`

	// Derived by the comparison calculator.
	PriceVsLowestDifference  string `json:"PriceVsLowestDifference,omitempty"`
	PriceVsHighestDifference string `json:"PriceVsHighestDifference,omitempty"`
	IsLowest                 bool   `json:"IsLowest"`
	IsHighest                bool   `json:"IsHighest"`
}

type QuotationItem struct {
	MaterialNo    string   `json:"MaterialNo"`
	MaterialDesc  string   `json:"MaterialDesc"`
	Quantity      float64  `json:"Quantity"`
	UnitOfMeasure string   `json:"UnitOfMeasure"`
	NetPrice      float64  `json:"Netpr"`
	Score         *float64 `json:"Score,omitempty"`
}

// AwardDecision is the award-or-reject payload for one supplier quotation.
type AwardDecision struct {
	RfqNumber         string `json:"RfqNumber"`
	Bidder            string `json:"Bidder"`
	SupplierQuotation string `json:"SupplierQuotation"`
	NewStatus         string `json:"NewStatus"`
	Remarks           string `json:"Remarks"`
}
