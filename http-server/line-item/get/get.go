package get

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/storage"
)

type LineItemProvider interface {
	GetLineItem(ctx context.Context, companyID, lineItemID string) (*storage.LineItem, error)
}

type DetailsValidator interface {
	Validate(candidate any) validator.Result[decoration.Configuration]
}

type Response struct {
	LineItemID        string                                      `json:"lineItemId"`
	OrderID           string                                      `json:"orderId"`
	DecorationDetails json.RawMessage                             `json:"decorationDetails"`
	Validation        *validator.Result[decoration.Configuration] `json:"validation"`
}

// GetDecoration returns the stored decoration_details of a line item together
// with their validation against the current schemas. Validation is null when
// the line item has no decoration.
func GetDecoration(log *slog.Logger, provider LineItemProvider, v DetailsValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lineitem.GetDecoration"

		companyID := chi.URLParam(r, "companyID")
		lineItemID := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := provider.GetLineItem(ctx, companyID, lineItemID)
		if errors.Is(err, storage.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "Line item not found"})
			return
		}
		if err != nil {
			log.Error("failed to get line item",
				slog.String("op", op),
				slog.String("line_item_id", lineItemID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		resp := Response{
			LineItemID:        item.ID,
			OrderID:           item.OrderID,
			DecorationDetails: item.DecorationDetails,
		}
		if len(item.DecorationDetails) > 0 {
			res := v.Validate(item.DecorationDetails)
			resp.Validation = &res
		} else {
			resp.DecorationDetails = json.RawMessage("null")
		}

		render.JSON(w, r, resp)
	}
}
