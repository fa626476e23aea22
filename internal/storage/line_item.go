package storage

import (
	"encoding/json"
	"time"
)

// LineItem is one product row of a customer order. DecorationDetails holds
// the stored decoration_details JSON as is, it may predate the current
// schema.
type LineItem struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"orderId"`
	CompanyID         string          `json:"companyId"`
	ProductName       string          `json:"productName"`
	Quantity          int             `json:"quantity"`
	DecorationDetails json.RawMessage `json:"decorationDetails"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type LineItemFilter struct {
	CompanyID string
	OrderID   string
}
