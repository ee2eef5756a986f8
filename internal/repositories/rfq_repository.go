package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

type RFQRepository struct {
	DB *sql.DB
}

const headerColumns = `rfq_number, project_name, reference, status, event_start_date, event_end_date,
       currency_code, payment_term_code, inco_term_code, company_code, purchase_org_code, purchase_group_code, created_at`

func scanHeader(row interface{ Scan(...any) error }) (models.RFQHeader, error) {
	var h models.RFQHeader
	err := row.Scan(
		&h.RfqNumber, &h.ProjectName, &h.Reference, &h.Status, &h.EventStartDate, &h.EventEndDate,
		&h.CurrencyCode, &h.PaymentTermCode, &h.IncoTermCode, &h.CompanyCode, &h.PurchaseOrgCode,
		&h.PurchaseGroupCode, &h.CreatedAt,
	)
	return h, err
}

// GetHeaders lists RFQ headers, optionally restricted to a status set,
// newest event first.
func (r *RFQRepository) GetHeaders(ctx context.Context, statuses []string) ([]models.RFQHeader, error) {
	query := `SELECT ` + headerColumns + ` FROM rfq_headers`
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		query += ` WHERE status IN (` + placeholders(len(statuses)) + `)`
		for _, s := range statuses {
			args = append(args, s)
		}
	}
	query += ` ORDER BY event_start_date DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var headers []models.RFQHeader
	for rows.Next() {
		h, err := scanHeader(rows)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

func (r *RFQRepository) GetHeaderByNumber(ctx context.Context, rfqNumber string) (models.RFQHeader, error) {
	query := `SELECT ` + headerColumns + ` FROM rfq_headers WHERE rfq_number = ?`
	h, err := scanHeader(r.DB.QueryRowContext(ctx, query, rfqNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RFQHeader{}, models.ErrRFQNotFound
	}
	return h, err
}

func (r *RFQRepository) GetItems(ctx context.Context, rfqNumber string) ([]models.RFQItem, error) {
	query := `SELECT rfq_number, item_no, material_no, material_desc, lot_type, plant_code, quantity, unit_of_measure, delivery_date
                FROM rfq_items WHERE rfq_number = ? ORDER BY item_no`
	rows, err := r.DB.QueryContext(ctx, query, rfqNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.RFQItem
	for rows.Next() {
		var it models.RFQItem
		err := rows.Scan(&it.RfqNumber, &it.ItemNo, &it.MaterialNo, &it.MaterialDesc, &it.LotType,
			&it.PlantCode, &it.Quantity, &it.UnitOfMeasure, &it.DeliveryDate)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetMaterials returns the distinct materials of an RFQ in first-item order.
func (r *RFQRepository) GetMaterials(ctx context.Context, rfqNumber string) ([]models.Material, error) {
	query := `SELECT material_no, material_desc
                FROM rfq_items WHERE rfq_number = ?
                GROUP BY material_no, material_desc
                ORDER BY MIN(item_no)`
	rows, err := r.DB.QueryContext(ctx, query, rfqNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.MaterialNo, &m.MaterialDesc); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// NextRFQNumber allocates the next number in the 600000 range.
func (r *RFQRepository) NextRFQNumber(ctx context.Context) (string, error) {
	var max sql.NullInt64
	err := r.DB.QueryRowContext(ctx, `SELECT MAX(CAST(rfq_number AS UNSIGNED)) FROM rfq_headers`).Scan(&max)
	if err != nil {
		return "", err
	}
	next := int64(600001)
	if max.Valid && max.Int64 >= next {
		next = max.Int64 + 1
	}
	return fmt.Sprintf("%d", next), nil
}

// CreateRFQ writes header, items and invited suppliers in one transaction.
func (r *RFQRepository) CreateRFQ(ctx context.Context, rfqNumber string, req models.CreateRFQRequest) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
                INSERT INTO rfq_headers
                        (rfq_number, project_name, reference, status, event_start_date, event_end_date,
                         currency_code, payment_term_code, inco_term_code, company_code, purchase_org_code, purchase_group_code, created_at)
                VALUES (?, ?, ?, 'Open', NOW(), ?, ?, ?, ?, ?, ?, ?, NOW())`,
		rfqNumber, req.ProjectName, req.Reference, req.QuotationDeadline,
		req.CurrencyCode, req.PaymentTermCode, req.IncoTermCode, req.CompanyCode,
		req.PurchaseOrgCode, req.PurchaseGroupCode)
	if err != nil {
		return err
	}

	for i, item := range req.Items {
		itemNo := item.ItemNo
		if itemNo == "" {
			itemNo = fmt.Sprintf("%d", i+1)
		}
		_, err = tx.ExecContext(ctx, `
                        INSERT INTO rfq_items
                                (rfq_number, item_no, material_no, material_desc, lot_type, plant_code, quantity, unit_of_measure, delivery_date)
                        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rfqNumber, itemNo, item.MaterialNo, item.MaterialDesc, item.LotType,
			item.PlantCode, item.Quantity, item.UnitOfMeasure, item.DeliveryDate)
		if err != nil {
			return err
		}
	}

	for _, s := range req.Suppliers {
		_, err = tx.ExecContext(ctx, `
                        INSERT INTO rfq_suppliers (rfq_number, bidder, supplier_name, status)
                        VALUES (?, ?, ?, 'Pending')`,
			rfqNumber, s.SupplierCode, s.SupplierName)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SearchMaterials backs the material value help on authoring.
func (r *RFQRepository) SearchMaterials(ctx context.Context, term string) ([]models.Material, error) {
	query := `SELECT material_no, material_desc, material_group, unit_of_measure
                FROM materials
                WHERE material_no = ? OR material_desc LIKE ?
                ORDER BY material_no LIMIT 50`
	rows, err := r.DB.QueryContext(ctx, query, term, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.MaterialNo, &m.MaterialDesc, &m.MaterialGroup, &m.UnitOfMeasure); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

// SearchVendors backs the supplier value help on authoring.
func (r *RFQRepository) SearchVendors(ctx context.Context, term string) ([]models.Vendor, error) {
	query := `SELECT supplier_code, vendor_name
                FROM vendors
                WHERE supplier_code = ? OR vendor_name LIKE ?
                ORDER BY supplier_code LIMIT 50`
	rows, err := r.DB.QueryContext(ctx, query, term, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.SupplierCode, &v.VendorName); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
