package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/compare"
)

// ExportService renders a comparison into an .xlsx workbook with one sheet
// for the enriched quotations and one for the material ranking pivot.
type ExportService struct {
	Comparisons *ComparisonService
}

func NewExportService(comparisons *ComparisonService) *ExportService {
	return &ExportService{Comparisons: comparisons}
}

func (s *ExportService) Export(ctx context.Context, rfqNumber string, bidders []string, w io.Writer) error {
	comparison, err := s.Comparisons.Compare(ctx, rfqNumber, bidders)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const compSheet = "Comparison"
	f.SetSheetName("Sheet1", compSheet)

	headers := []string{"Supplier", "Bidder", "Quotation No", "Quotation Value", "Currency",
		"Total Score", "Lowest", "Highest", "Diff vs Lowest", "Diff vs Highest"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(compSheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for row, q := range comparison.Quotations {
		values := []any{q.SupplierName, q.Bidder, q.SupplierQuotation, q.QuotationValue, q.Currency,
			q.TotalScore, q.IsLowest, q.IsHighest, q.PriceVsLowestDifference, q.PriceVsHighestDifference}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(compSheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	pivot := compare.BuildPivot(comparison.Quotations)
	if err := writeRankingSheet(f, pivot); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRankingSheet(f *excelize.File, pivot compare.Pivot) error {
	const sheet = "Ranking"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create ranking sheet: %w", err)
	}

	headers := []string{"Quotation No", "Supplier", "Quotation Value", "Currency", "Total Score"}
	for _, col := range pivot.Columns {
		headers = append(headers, col.MaterialDesc)
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write ranking header: %w", err)
		}
	}

	for row, r := range pivot.Rows {
		values := []any{r.QuotationNo, r.Supplier, r.QuotationValue, r.Currency, r.TotalScore}
		for _, col := range pivot.Columns {
			values = append(values, r.MaterialPrices[col.MaterialNo])
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write ranking row %d: %w", row+1, err)
			}
		}
	}
	return nil
}
