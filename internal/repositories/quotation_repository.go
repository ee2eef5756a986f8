package repositories

import (
	"context"
	"database/sql"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

type QuotationRepository struct {
	DB *sql.DB
}

// GetSuppliers loads the quotations of an RFQ, optionally restricted to a
// bidder set, each with its item lines.
func (r *QuotationRepository) GetSuppliers(ctx context.Context, rfqNumber string, bidders []string) ([]models.SupplierQuotation, error) {
	query := `SELECT rfq_number, bidder, supplier_name, supplier_quotation, quotation_value, currency, total_score, status, created_at
                FROM supplier_quotations WHERE rfq_number = ?`
	args := []any{rfqNumber}
	if len(bidders) > 0 {
		query += ` AND bidder IN (` + placeholders(len(bidders)) + `)`
		for _, b := range bidders {
			args = append(args, b)
		}
	}
	query += ` ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []models.SupplierQuotation
	for rows.Next() {
		var q models.SupplierQuotation
		err := rows.Scan(&q.RfqNumber, &q.Bidder, &q.SupplierName, &q.SupplierQuotation,
			&q.QuotationValue, &q.Currency, &q.TotalScore, &q.Status, &q.CreatedAt)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range quotes {
		items, err := r.getItems(ctx, rfqNumber, quotes[i].Bidder)
		if err != nil {
			return nil, err
		}
		quotes[i].Items = items
	}
	return quotes, nil
}

func (r *QuotationRepository) getItems(ctx context.Context, rfqNumber, bidder string) ([]models.QuotationItem, error) {
	query := `SELECT material_no, material_desc, quantity, unit_of_measure, net_price, score
                FROM quotation_items WHERE rfq_number = ? AND bidder = ? ORDER BY material_no`
	rows, err := r.DB.QueryContext(ctx, query, rfqNumber, bidder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.QuotationItem
	for rows.Next() {
		var it models.QuotationItem
		err := rows.Scan(&it.MaterialNo, &it.MaterialDesc, &it.Quantity, &it.UnitOfMeasure, &it.NetPrice, &it.Score)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AwardOrReject records the buyer's decision and moves the quotation status
// in one transaction.
func (r *QuotationRepository) AwardOrReject(ctx context.Context, d models.AwardDecision) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
                UPDATE supplier_quotations SET status = ?, remarks = ?, decided_at = NOW()
                WHERE rfq_number = ? AND bidder = ?`,
		d.NewStatus, d.Remarks, d.RfqNumber, d.Bidder)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrQuotationNotFound
	}

	_, err = tx.ExecContext(ctx, `
                INSERT INTO award_decisions (rfq_number, bidder, supplier_quotation, new_status, remarks, created_at)
                VALUES (?, ?, ?, ?, ?, NOW())`,
		d.RfqNumber, d.Bidder, d.SupplierQuotation, d.NewStatus, d.Remarks)
	if err != nil {
		return err
	}

	if d.NewStatus == "Awarded" {
		_, err = tx.ExecContext(ctx, `UPDATE rfq_headers SET status = 'Awarded' WHERE rfq_number = ?`, d.RfqNumber)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
