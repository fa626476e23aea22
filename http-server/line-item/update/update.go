package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/schema"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/middleware/auth"
	"decor-golang/internal/storage"
)

type DetailsValidator interface {
	Validate(candidate any) validator.Result[decoration.Configuration]
}

type LineItemUpdater interface {
	UpdateLineItemDecoration(ctx context.Context, companyID, lineItemID string, details decoration.Configuration) error
}

type Response struct {
	Status  string                    `json:"status,omitempty"`
	Data    *decoration.Configuration `json:"data,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Details *schema.ErrorTree         `json:"details,omitempty"`
}

// UpdateDecoration validates the body and stores the normalized configuration
// as the line item's decoration_details. Nothing is written when validation
// fails.
func UpdateDecoration(log *slog.Logger, v DetailsValidator, updater LineItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lineitem.UpdateDecoration"

		companyID := chi.URLParam(r, "companyID")
		lineItemID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("company_id", companyID),
			slog.String("line_item_id", lineItemID),
			slog.String("user_id", auth.UserID(r.Context())),
		)

		var candidate json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			log.Warn("invalid request body", slog.String("error", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Invalid JSON"})
			return
		}

		res := v.Validate(candidate)
		if !res.IsValid {
			log.Info("decoration details rejected", slog.Any("paths", res.Errors.Paths()))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, Response{Error: "Invalid decoration details", Details: res.Errors})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := updater.UpdateLineItemDecoration(ctx, companyID, lineItemID, *res.Data)
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("line item not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Line item not found"})
			return
		}
		if err != nil {
			log.Error("failed to update line item decoration", slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to update decoration details"})
			return
		}

		log.Info("decoration details updated", slog.String("technique", string(res.Data.Technique)))

		render.JSON(w, r, Response{Status: "updated", Data: res.Data})
	}
}
