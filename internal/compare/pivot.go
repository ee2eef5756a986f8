package compare

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// Mode selects the ranking dimension for the pivot table.
type Mode string

const (
	ModePrice Mode = "price"
	ModeScore Mode = "score"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePrice, ModeScore:
		return Mode(s), nil
	case "":
		return ModePrice, nil
	}
	return "", models.ErrInvalidRankingMode
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SanitizeKey collapses every run of non-alphanumeric characters into a
// single underscore. Idempotent. Used for display column keys only; cell
// maps are keyed by material number, so two materials differing only in
// punctuation cannot collide.
func SanitizeKey(desc string) string {
	return nonAlnum.ReplaceAllString(desc, "_")
}

// Column describes one dynamic material column of the pivot table.
type Column struct {
	MaterialNo   string `json:"MaterialNo"`
	MaterialDesc string `json:"MaterialDesc"`
	DisplayKey   string `json:"DisplayKey"`
}

// Row is one bidder of the pivot table. MaterialPrices and MaterialScores
// are keyed by material number.
type Row struct {
	QuotationNo    string             `json:"quotationNo"`
	Supplier       string             `json:"supplier"`
	QuotationValue float64            `json:"quotationValue"`
	Currency       string             `json:"currency"`
	TotalScore     float64            `json:"TOTAL_SCORE"`
	MaterialPrices map[string]float64 `json:"materialPrices"`
	MaterialScores map[string]float64 `json:"materialScores"`
}

type Pivot struct {
	Rows              []Row    `json:"quotations"`
	Columns           []Column `json:"materials"`
	MinQuotationValue float64  `json:"minQuotationValue"`
	MaxTotalScore     float64  `json:"maxTotalScore"`
}

// BuildPivot groups the quotations' line items into one row per bidder and
// derives the aggregate score as the arithmetic mean of the numeric item
// scores; items without a usable score count in neither the numerator nor
// the denominator, and a bidder with no scored items gets 0. It also
// computes the minimum quotation value and maximum aggregate score across
// all rows for downstream highlight decisions.
func BuildPivot(quotes []models.SupplierQuotation) Pivot {
	rowIndex := make(map[string]int, len(quotes))
	columnSeen := make(map[string]bool)
	scoreSums := make(map[int]float64)
	scoreCnts := make(map[int]int)
	p := Pivot{Rows: make([]Row, 0, len(quotes)), Columns: []Column{}}

	for _, q := range quotes {
		idx, ok := rowIndex[q.Bidder]
		if !ok {
			value, err := strconv.ParseFloat(q.QuotationValue, 64)
			if err != nil {
				value = 0
			}
			currency := q.Currency
			if currency == "" {
				currency = "INR"
			}
			p.Rows = append(p.Rows, Row{
				QuotationNo:    q.SupplierQuotation,
				Supplier:       q.Bidder,
				QuotationValue: value,
				Currency:       currency,
				MaterialPrices: map[string]float64{},
				MaterialScores: map[string]float64{},
			})
			idx = len(p.Rows) - 1
			rowIndex[q.Bidder] = idx
		}

		row := &p.Rows[idx]
		for _, item := range q.Items {
			if !columnSeen[item.MaterialNo] {
				columnSeen[item.MaterialNo] = true
				p.Columns = append(p.Columns, Column{
					MaterialNo:   item.MaterialNo,
					MaterialDesc: item.MaterialDesc,
					DisplayKey:   SanitizeKey(item.MaterialDesc),
				})
			}
			row.MaterialPrices[item.MaterialNo] = item.NetPrice
			if item.Score != nil && !math.IsNaN(*item.Score) {
				row.MaterialScores[item.MaterialNo] = *item.Score
				scoreSums[idx] += *item.Score
				scoreCnts[idx]++
			}
		}
	}

	// A bidder may be split across quotations; the mean pools every scored
	// item of the group.
	for idx, cnt := range scoreCnts {
		if cnt > 0 {
			p.Rows[idx].TotalScore = scoreSums[idx] / float64(cnt)
		}
	}

	min := math.Inf(1)
	max := 0.0
	for _, row := range p.Rows {
		if row.QuotationValue > 0 && row.QuotationValue < min {
			min = row.QuotationValue
		}
		if row.TotalScore > max {
			max = row.TotalScore
		}
	}
	if !math.IsInf(min, 1) {
		p.MinQuotationValue = min
	}
	p.MaxTotalScore = max
	return p
}

// SortRows orders the rows for the given mode: ascending by quotation value
// for price, descending by aggregate score for score. Stable, so re-sorting
// never reshuffles tied bidders.
func SortRows(rows []Row, mode Mode) {
	switch mode {
	case ModeScore:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalScore > rows[j].TotalScore
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].QuotationValue < rows[j].QuotationValue
		})
	}
}
