package compare

import (
	"sort"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// Cell is one supplier/material intersection of the price heatmap.
type Cell struct {
	Supplier string  `json:"Supplier"`
	Material string  `json:"Material"`
	Price    float64 `json:"Price"`
}

// ScoreCell is the per-supplier aggregate score projection.
type ScoreCell struct {
	Supplier string  `json:"Supplier"`
	Score    float64 `json:"Score"`
}

// BuildMatrix produces a dense supplier x material price matrix. Suppliers
// keep their insertion order from the source list; materials are the sorted
// set of distinct descriptions. A supplier without a matching line item for
// a material gets price 0. Output always has exactly
// len(suppliers)*len(materials) cells.
func BuildMatrix(quotes []models.SupplierQuotation) []Cell {
	suppliers := make([]string, 0, len(quotes))
	seenSupplier := make(map[string]bool, len(quotes))
	materialSet := make(map[string]bool)

	for _, q := range quotes {
		if !seenSupplier[q.Bidder] {
			seenSupplier[q.Bidder] = true
			suppliers = append(suppliers, q.Bidder)
		}
		for _, item := range q.Items {
			materialSet[item.MaterialDesc] = true
		}
	}

	materials := make([]string, 0, len(materialSet))
	for m := range materialSet {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	cells := make([]Cell, 0, len(suppliers)*len(materials))
	for _, supplier := range suppliers {
		var items []models.QuotationItem
		for _, q := range quotes {
			if q.Bidder == supplier {
				items = q.Items
				break
			}
		}
		for _, material := range materials {
			price := 0.0
			for _, item := range items {
				if item.MaterialDesc == material {
					price = item.NetPrice
					break
				}
			}
			cells = append(cells, Cell{Supplier: supplier, Material: material, Price: price})
		}
	}
	return cells
}

// BuildScoreProjection returns one score cell per quotation, defaulting to 0.
func BuildScoreProjection(quotes []models.SupplierQuotation) []ScoreCell {
	cells := make([]ScoreCell, 0, len(quotes))
	for _, q := range quotes {
		cells = append(cells, ScoreCell{Supplier: q.Bidder, Score: q.TotalScore})
	}
	return cells
}
