package processflow

import (
	"testing"
	"time"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

func TestBuildFullFlow(t *testing.T) {
	created := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	awarded := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	src := models.ProcessFlowSource{
		RfqNumber:         "600001",
		CreatedAt:         &created,
		QuotationDeadline: &deadline,
		Suppliers: []models.SupplierDetail{
			{SupplierCode: "S1", SupplierName: "Supplier-A", Status: "Accepted", SupplierQuotation: "7000001"},
			{SupplierCode: "S2", SupplierName: "Supplier-B", Status: "Awarded", SupplierQuotation: "7000002"},
			{SupplierCode: "S3", SupplierName: "Supplier-C", Status: "Pending"},
		},
		AwardedDate:          &awarded,
		PurchaseOrderCreated: true,
		PurchaseOrderNumber:  "1001",
	}

	flow := Build(src)

	if len(flow.Lanes) != 4 {
		t.Fatalf("expected 4 lanes, got %d", len(flow.Lanes))
	}
	// RFQ + 3 suppliers + awarded + PO
	if len(flow.Nodes) != 6 {
		t.Fatalf("expected 6 nodes, got %d", len(flow.Nodes))
	}

	rfq := flow.Nodes[0]
	if rfq.ID != "600001" || len(rfq.Children) != 3 {
		t.Fatalf("unexpected rfq node %+v", rfq)
	}

	var awardedNode, poNode *models.ProcessFlowNode
	for i := range flow.Nodes {
		switch flow.Nodes[i].Lane {
		case "lane3":
			awardedNode = &flow.Nodes[i]
		case "lane4":
			poNode = &flow.Nodes[i]
		}
	}
	if awardedNode == nil {
		t.Fatal("missing awarded node")
	}
	if awardedNode.ID != "awarded-7000002" {
		t.Fatalf("unexpected awarded node id %s", awardedNode.ID)
	}
	if len(awardedNode.Children) != 1 || awardedNode.Children[0] != "po-1001" {
		t.Fatalf("awarded node must link the purchase order, got %v", awardedNode.Children)
	}
	if poNode == nil || poNode.StateText != "Created" {
		t.Fatalf("unexpected purchase order node %+v", poNode)
	}
}

func TestBuildSupplierWithoutQuotationUsesCode(t *testing.T) {
	src := models.ProcessFlowSource{
		RfqNumber: "600002",
		Suppliers: []models.SupplierDetail{
			{SupplierCode: "S9", SupplierName: "Supplier-X", Status: "Pending"},
		},
	}

	flow := Build(src)
	if len(flow.Nodes) != 2 {
		t.Fatalf("expected rfq + supplier nodes, got %d", len(flow.Nodes))
	}
	node := flow.Nodes[1]
	if node.ID != "S9" {
		t.Fatalf("expected supplier code fallback id, got %s", node.ID)
	}
	if node.StateText != "Pending" || node.State != "Neutral" {
		t.Fatalf("unexpected state %s/%s", node.State, node.StateText)
	}
	if node.Texts[1] != "No quotation yet" {
		t.Fatalf("unexpected texts %v", node.Texts)
	}
}

func TestBuildNoAwardNoPO(t *testing.T) {
	src := models.ProcessFlowSource{
		RfqNumber: "600003",
		Suppliers: []models.SupplierDetail{
			{SupplierCode: "S1", SupplierName: "Supplier-A", Status: "Accepted", SupplierQuotation: "7000009"},
		},
		PurchaseOrderCreated: false,
	}

	flow := Build(src)
	for _, n := range flow.Nodes {
		if n.Lane == "lane3" || n.Lane == "lane4" {
			t.Fatalf("unexpected node in lane %s without award", n.Lane)
		}
	}
}
