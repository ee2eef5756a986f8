package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

type AggregateRepository struct {
	DB *sql.DB
}

// GetStatusDistribution counts supplier states for one RFQ and lists the
// per-supplier details behind the chart.
func (r *AggregateRepository) GetStatusDistribution(ctx context.Context, rfqNumber string) (models.StatusDistribution, error) {
	dist := models.StatusDistribution{RfqNumber: rfqNumber}

	err := r.DB.QueryRowContext(ctx, `
                SELECT
                        COALESCE(SUM(CASE WHEN q.bidder IS NOT NULL THEN 1 ELSE 0 END), 0),
                        COALESCE(SUM(CASE WHEN s.status = 'Accepted' THEN 1 ELSE 0 END), 0),
                        COALESCE(SUM(CASE WHEN s.status = 'Not Accepted' THEN 1 ELSE 0 END), 0),
                        COALESCE(SUM(CASE WHEN s.status = 'Rejected' THEN 1 ELSE 0 END), 0)
                FROM rfq_suppliers s
                LEFT JOIN supplier_quotations q ON q.rfq_number = s.rfq_number AND q.bidder = s.bidder
                WHERE s.rfq_number = ?`, rfqNumber).
		Scan(&dist.SubmittedCount, &dist.AcceptedCount, &dist.NotAcceptedCount, &dist.RejectedCount)
	if err != nil {
		return dist, err
	}

	details, err := r.getSupplierDetails(ctx, rfqNumber)
	if err != nil {
		return dist, err
	}
	dist.SupplierDetails = details
	return dist, nil
}

func (r *AggregateRepository) getSupplierDetails(ctx context.Context, rfqNumber string) ([]models.SupplierDetail, error) {
	rows, err := r.DB.QueryContext(ctx, `
                SELECT s.bidder, s.supplier_name, s.status,
                       COALESCE(q.supplier_quotation, ''), q.created_at
                FROM rfq_suppliers s
                LEFT JOIN supplier_quotations q ON q.rfq_number = s.rfq_number AND q.bidder = s.bidder
                WHERE s.rfq_number = ?
                ORDER BY s.bidder`, rfqNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.SupplierDetail
	for rows.Next() {
		var d models.SupplierDetail
		err := rows.Scan(&d.SupplierCode, &d.SupplierName, &d.Status, &d.SupplierQuotation, &d.QuotationCreationDate)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// GetProcessFlowSource assembles the raw data the process flow graph is
// built from.
func (r *AggregateRepository) GetProcessFlowSource(ctx context.Context, rfqNumber string) (models.ProcessFlowSource, error) {
	src := models.ProcessFlowSource{RfqNumber: rfqNumber}

	err := r.DB.QueryRowContext(ctx, `
                SELECT created_at, event_end_date FROM rfq_headers WHERE rfq_number = ?`, rfqNumber).
		Scan(&src.CreatedAt, &src.QuotationDeadline)
	if errors.Is(err, sql.ErrNoRows) {
		return src, models.ErrRFQNotFound
	}
	if err != nil {
		return src, err
	}

	suppliers, err := r.getSupplierDetails(ctx, rfqNumber)
	if err != nil {
		return src, err
	}
	src.Suppliers = suppliers

	var poNumber sql.NullString
	var awardedAt sql.NullTime
	err = r.DB.QueryRowContext(ctx, `
                SELECT d.created_at, po.po_number
                FROM award_decisions d
                LEFT JOIN purchase_orders po ON po.rfq_number = d.rfq_number
                WHERE d.rfq_number = ? AND d.new_status = 'Awarded'
                ORDER BY d.created_at DESC LIMIT 1`, rfqNumber).
		Scan(&awardedAt, &poNumber)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return src, err
	}
	if awardedAt.Valid {
		src.AwardedDate = &awardedAt.Time
	}
	if poNumber.Valid && poNumber.String != "" {
		src.PurchaseOrderCreated = true
		src.PurchaseOrderNumber = poNumber.String
	}
	return src, nil
}
