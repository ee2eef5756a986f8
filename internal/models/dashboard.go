package models

import "time"

// StatusDistribution is the SupplierStatusDistribution aggregate for one RFQ.
type StatusDistribution struct {
	RfqNumber        string           `json:"RfqNumber"`
	SubmittedCount   int              `json:"SubmittedCount"`
	AcceptedCount    int              `json:"AcceptedCount"`
	NotAcceptedCount int              `json:"NotAcceptedCount"`
	RejectedCount    int              `json:"RejectedCount"`
	SupplierDetails  []SupplierDetail `json:"SupplierDetails"`
}

type SupplierDetail struct {
	SupplierCode          string     `json:"SupplierCode"`
	SupplierName          string     `json:"SupplierName"`
	Status                string     `json:"Status"`
	SupplierQuotation     string     `json:"SupplierQuotation"`
	QuotationCreationDate *time.Time `json:"QuotationCreationDate"`
}

// ChartSlice is one segment of the supplier status chart.
type ChartSlice struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ProcessFlow types mirror the lane/node graph rendered for an RFQ:
// RFQ -> suppliers -> awarded quotation -> purchase order.

type ProcessFlowLane struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

type ProcessFlowNode struct {
	ID        string   `json:"id"`
	Lane      string   `json:"lane"`
	Title     string   `json:"title"`
	TitleAbbr string   `json:"titleAbbreviation"`
	Children  []string `json:"children"`
	State     string   `json:"state"`
	StateText string   `json:"stateText"`
	Texts     []string `json:"texts"`
}

type ProcessFlow struct {
	Lanes []ProcessFlowLane `json:"lanes"`
	Nodes []ProcessFlowNode `json:"nodes"`
}

// ProcessFlowSource is the raw aggregate the flow graph is built from.
type ProcessFlowSource struct {
	RfqNumber            string           `json:"RFQNumber"`
	CreatedAt            *time.Time       `json:"CreatedAt"`
	QuotationDeadline    *time.Time       `json:"QuotationDeadline"`
	Suppliers            []SupplierDetail `json:"Suppliers"`
	AwardedDate          *time.Time       `json:"AwardedDate"`
	PurchaseOrderCreated bool             `json:"purchaseOrderCreated"`
	PurchaseOrderNumber  string           `json:"purchaseOrderNumber"`
}
