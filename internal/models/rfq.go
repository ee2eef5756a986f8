package models

import "time"

// RFQHeader mirrors the RFQHeaders entity consumed by the price list and
// comparison screens.
type RFQHeader struct {
	RfqNumber         string     `json:"RfqNumber"`
	ProjectName       string     `json:"ProjectName"`
	Reference         string     `json:"Reference"`
	Status            string     `json:"Status"`
	EventStartDate    *time.Time `json:"EventStartDate"`
	EventEndDate      *time.Time `json:"EventEndDate"`
	CurrencyCode      string     `json:"CurrencyCode"`
	PaymentTermCode   string     `json:"PaymentTermCode"`
	IncoTermCode      string     `json:"IncoTermCode"`
	CompanyCode       string     `json:"CompanyCode"`
	PurchaseOrgCode   string     `json:"PurchaseOrgCode"`
	PurchaseGroupCode string     `json:"PurchaseGroupCode"`
	CreatedAt         time.Time  `json:"CreatedAt"`

	// List projection, derived per request.
	TimeRemaining      string `json:"TimeRemaining,omitempty"`
	TimeRemainingState string `json:"TimeRemainingState,omitempty"`
}

type RFQItem struct {
	RfqNumber     string     `json:"RfqNumber"`
	ItemNo        string     `json:"ItemNo"`
	MaterialNo    string     `json:"MaterialNo"`
	MaterialDesc  string     `json:"MaterialDesc"`
	LotType       string     `json:"LotType"`
	PlantCode     string     `json:"PlantCode"`
	Quantity      float64    `json:"Quantity"`
	UnitOfMeasure string     `json:"UnitOfMeasure"`
	DeliveryDate  *time.Time `json:"DeliveryDate"`
}

// Material is the distinct (number, description) pair used by the
// negotiation popover and the value help on authoring.
type Material struct {
	MaterialNo    string `json:"MaterialNo"`
	MaterialDesc  string `json:"MaterialDesc"`
	MaterialGroup string `json:"MaterialGroup,omitempty"`
	UnitOfMeasure string `json:"UnitOfMeasure,omitempty"`
}

type Vendor struct {
	SupplierCode string `json:"SupplierCode"`
	VendorName   string `json:"VendorName"`
}

// CreateRFQRequest is the authoring payload. All validation messages are
// aggregated before anything is written.
type CreateRFQRequest struct {
	ProjectName       string              `json:"RFQProjectName"`
	Reference         string              `json:"ReferenceInput"`
	QuotationDeadline *time.Time          `json:"QuotationDeadline"`
	CurrencyCode      string              `json:"CurrencyCode"`
	PaymentTermCode   string              `json:"PaymentTermCode"`
	IncoTermCode      string              `json:"IncoTermCode"`
	CompanyCode       string              `json:"CompanyCode"`
	PurchaseOrgCode   string              `json:"PurchaseOrgCode"`
	PurchaseGroupCode string              `json:"PurchaseGroupCode"`
	Description       string              `json:"Description"`
	RFQType           string              `json:"RFQType"`
	Items             []CreateRFQItem     `json:"RFQToItem"`
	Suppliers         []CreateRFQSupplier `json:"RFQToSupplier"`
}

type CreateRFQItem struct {
	ItemNo        string     `json:"ItemNo"`
	MaterialNo    string     `json:"MaterialNo"`
	MaterialDesc  string     `json:"MaterialDesc"`
	LotType       string     `json:"LotType"`
	PlantCode     string     `json:"PlantCode"`
	Quantity      float64    `json:"Quantity"`
	UnitOfMeasure string     `json:"UnitOfMeasure"`
	DeliveryDate  *time.Time `json:"DeliveryDate"`
}

type CreateRFQSupplier struct {
	SupplierCode string `json:"SupplierCode"`
	SupplierName string `json:"SupplierName"`
}
