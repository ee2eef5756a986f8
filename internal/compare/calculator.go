package compare

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// NotApplicable marks derived fields of a quotation whose monetary value
// could not be parsed.
const NotApplicable = "N/A"

// Enrich fills the derived comparison fields on each quotation: difference
// from the lowest and highest quotation value (always >= 0, two decimals)
// and the is-lowest / is-highest flags (exact equality against the min and
// max). Quotations whose value does not parse get NotApplicable and both
// flags false. The slice is mutated in place and never reordered; a single
// valid quotation is both lowest and highest.
func Enrich(quotes []models.SupplierQuotation) {
	if len(quotes) == 0 {
		return
	}

	lowest := math.Inf(1)
	highest := math.Inf(-1)
	anyValid := false
	for i := range quotes {
		v, err := strconv.ParseFloat(quotes[i].QuotationValue, 64)
		if err != nil {
			continue
		}
		anyValid = true
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}

	for i := range quotes {
		q := &quotes[i]
		v, err := strconv.ParseFloat(q.QuotationValue, 64)
		if err != nil || !anyValid {
			q.PriceVsLowestDifference = NotApplicable
			q.PriceVsHighestDifference = NotApplicable
			q.IsLowest = false
			q.IsHighest = false
			continue
		}
		q.PriceVsLowestDifference = fmt.Sprintf("%.2f", v-lowest)
		q.PriceVsHighestDifference = fmt.Sprintf("%.2f", highest-v)
		q.IsLowest = v == lowest
		q.IsHighest = v == highest
	}
}
