package revalidate

import (
	"context"
	"fmt"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/storage"
)

type LineItemStorage interface {
	GetDecoratedLineItems(ctx context.Context, filter storage.LineItemFilter) ([]storage.LineItem, error)
}

type Service struct {
	storage   LineItemStorage
	validator *validator.Validator
}

func NewService(storage LineItemStorage, v *validator.Validator) *Service {
	return &Service{storage: storage, validator: v}
}

type ItemResult struct {
	LineItemID  string                                     `json:"lineItemId"`
	OrderID     string                                     `json:"orderId"`
	ProductName string                                     `json:"productName"`
	Result      validator.Result[decoration.Configuration] `json:"result"`
}

// Report is the outcome of checking stored decoration details against the
// current schemas, in storage order.
type Report struct {
	CompanyID string       `json:"companyId"`
	OrderID   string       `json:"orderId,omitempty"`
	Total     int          `json:"total"`
	Valid     int          `json:"valid"`
	Invalid   int          `json:"invalid"`
	AllValid  bool         `json:"allValid"`
	Items     []ItemResult `json:"items"`
}

// Revalidate loads every decorated line item matching filter and validates
// the stored details again.
func (s *Service) Revalidate(ctx context.Context, filter storage.LineItemFilter) (*Report, error) {
	const op = "service.revalidate.Revalidate"

	lineItems, err := s.storage.GetDecoratedLineItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: load line items: %w", op, err)
	}

	batch := make([]validator.Item, 0, len(lineItems))
	for _, li := range lineItems {
		batch = append(batch, validator.Item{ID: li.ID, Candidate: li.DecorationDetails})
	}

	results := s.validator.ValidateBatch(batch)

	report := &Report{
		CompanyID: filter.CompanyID,
		OrderID:   filter.OrderID,
		Total:     len(lineItems),
		Items:     make([]ItemResult, 0, len(lineItems)),
	}
	for _, li := range lineItems {
		res := results[li.ID]
		if res.IsValid {
			report.Valid++
		} else {
			report.Invalid++
		}
		report.Items = append(report.Items, ItemResult{
			LineItemID:  li.ID,
			OrderID:     li.OrderID,
			ProductName: li.ProductName,
			Result:      res,
		})
	}
	report.AllValid = report.Invalid == 0

	return report, nil
}
