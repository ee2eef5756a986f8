package processflow

import (
	"time"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

const (
	laneRFQ       = "lane1"
	laneSuppliers = "lane2"
	laneAwarded   = "lane3"
	lanePO        = "lane4"
)

func lanes() []models.ProcessFlowLane {
	return []models.ProcessFlowLane{
		{ID: laneRFQ, Label: "Quotation", Position: 0},
		{ID: laneSuppliers, Label: "Suppliers", Position: 1},
		{ID: laneAwarded, Label: "Awarded", Position: 2},
		{ID: lanePO, Label: "Purchase Order", Position: 3},
	}
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

// Build derives the RFQ lifecycle graph: one RFQ node fanning out to the
// supplier quotations, an awarded-quotation node when a supplier was
// awarded, and a purchase-order node when the follow-on order exists.
// Suppliers without a quotation yet fall back to their supplier code as
// the node id.
func Build(src models.ProcessFlowSource) models.ProcessFlow {
	flow := models.ProcessFlow{Lanes: lanes(), Nodes: []models.ProcessFlowNode{}}

	supplierIDs := make([]string, 0, len(src.Suppliers))
	for _, s := range src.Suppliers {
		id := s.SupplierQuotation
		if id == "" {
			id = s.SupplierCode
		}
		if id != "" {
			supplierIDs = append(supplierIDs, id)
		}
	}

	flow.Nodes = append(flow.Nodes, models.ProcessFlowNode{
		ID:        src.RfqNumber,
		Lane:      laneRFQ,
		Title:     "RFQ No. " + src.RfqNumber,
		TitleAbbr: src.RfqNumber,
		Children:  supplierIDs,
		State:     "Positive",
		StateText: "RFQ Created",
		Texts: []string{
			"Created: " + fmtDate(src.CreatedAt),
			"Deadline: " + fmtDate(src.QuotationDeadline),
		},
	})

	var awardedID string
	for _, s := range src.Suppliers {
		nodeID := s.SupplierQuotation
		if nodeID == "" {
			nodeID = s.SupplierCode
		}

		children := []string{}
		state := "Neutral"
		stateText := "Pending"
		switch s.Status {
		case "Awarded":
			awardedID = "awarded-" + nodeID
			children = append(children, awardedID)
			state = "Positive"
			stateText = "Awarded"
		case "Accepted":
			state = "Positive"
			stateText = "Accepted"
		}

		texts := []string{"Supplier Code: " + s.SupplierCode}
		if s.SupplierQuotation != "" {
			texts = append(texts, "Quotation No. "+s.SupplierQuotation)
		} else {
			texts = append(texts, "No quotation yet")
		}
		if s.QuotationCreationDate != nil {
			texts = append(texts, "Created: "+fmtDate(s.QuotationCreationDate))
		}

		flow.Nodes = append(flow.Nodes, models.ProcessFlowNode{
			ID:        nodeID,
			Lane:      laneSuppliers,
			Title:     s.SupplierName,
			TitleAbbr: s.SupplierCode,
			Children:  children,
			State:     state,
			StateText: stateText,
			Texts:     texts,
		})
	}

	if awardedID != "" {
		children := []string{}
		if src.PurchaseOrderCreated && src.PurchaseOrderNumber != "" {
			children = append(children, "po-"+src.PurchaseOrderNumber)
		}
		texts := []string{}
		if src.AwardedDate != nil {
			texts = append(texts, "Awarded Date: "+fmtDate(src.AwardedDate))
		}
		flow.Nodes = append(flow.Nodes, models.ProcessFlowNode{
			ID:        awardedID,
			Lane:      laneAwarded,
			Title:     "Awarded Quotation " + awardedID[len("awarded-"):],
			TitleAbbr: awardedID[len("awarded-"):],
			Children:  children,
			State:     "Positive",
			StateText: "Awarded",
			Texts:     texts,
		})
	}

	if src.PurchaseOrderCreated && src.PurchaseOrderNumber != "" {
		flow.Nodes = append(flow.Nodes, models.ProcessFlowNode{
			ID:        "po-" + src.PurchaseOrderNumber,
			Lane:      lanePO,
			Title:     "Purchase Order " + src.PurchaseOrderNumber,
			TitleAbbr: "PO " + src.PurchaseOrderNumber,
			Children:  []string{},
			State:     "Positive",
			StateText: "Created",
			Texts:     []string{},
		})
	}

	return flow
}
