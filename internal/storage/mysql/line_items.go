package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"decor-golang/internal/decoration"
	"decor-golang/internal/storage"
)

// UpdateLineItemDecoration stores an already validated configuration as the
// decoration_details of the line item.
func (s *Storage) UpdateLineItemDecoration(ctx context.Context, companyID, lineItemID string, details decoration.Configuration) error {
	const op = "storage.mysql.UpdateLineItemDecoration"

	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("%s: marshal decoration details: %w", op, err)
	}

	stmt := `UPDATE line_items SET decoration_details = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND company_id = ?`

	res, err := s.db.ExecContext(ctx, stmt, string(payload), lineItemID, companyID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: line item %s: %w", op, lineItemID, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) GetLineItem(ctx context.Context, companyID, lineItemID string) (*storage.LineItem, error) {
	const op = "storage.mysql.GetLineItem"

	query := `
		SELECT id, order_id, company_id, product_name, quantity, decoration_details, updated_at
		FROM line_items
		WHERE id = ? AND company_id = ?
	`

	item, err := scanLineItem(s.db.QueryRowContext(ctx, query, lineItemID, companyID))
	if err != nil {
		return nil, fmt.Errorf("%s: line item %s: %w", op, lineItemID, mapError(err))
	}

	return item, nil
}

// GetDecoratedLineItems returns the line items that carry decoration details.
func (s *Storage) GetDecoratedLineItems(ctx context.Context, filter storage.LineItemFilter) ([]storage.LineItem, error) {
	const op = "storage.mysql.GetDecoratedLineItems"

	var (
		where = []string{"company_id = ?", "decoration_details IS NOT NULL"}
		args  = []interface{}{filter.CompanyID}
	)
	if filter.OrderID != "" {
		where = append(where, "order_id = ?")
		args = append(args, filter.OrderID)
	}

	query := `SELECT id, order_id, company_id, product_name, quantity, decoration_details, updated_at
		FROM line_items WHERE ` + strings.Join(where, " AND ") + ` ORDER BY order_id, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []storage.LineItem
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan line item: %w", op, err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate line items: %w", op, err)
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLineItem(row scanner) (*storage.LineItem, error) {
	var (
		item    storage.LineItem
		details sql.NullString
	)

	err := row.Scan(&item.ID, &item.OrderID, &item.CompanyID, &item.ProductName, &item.Quantity, &details, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if details.Valid {
		item.DecorationDetails = json.RawMessage(details.String)
	}

	return &item, nil
}
