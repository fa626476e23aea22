package save

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
	"decor-golang/internal/decoration/schema"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/middleware/auth"
	"decor-golang/internal/storage"
)

type PlacementValidator interface {
	ValidatePlacement(candidate any) validator.Result[decoration.Placement]
}

type PlacementCreator interface {
	CreateDecorationPlacement(ctx context.Context, companyID string, p decoration.Placement) (string, error)
}

type Response struct {
	ID      string            `json:"id,omitempty"`
	Status  string            `json:"status,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details *schema.ErrorTree `json:"details,omitempty"`
}

func SavePlacement(log *slog.Logger, v PlacementValidator, creator PlacementCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.placement.SavePlacement"

		companyID := chi.URLParam(r, "companyID")

		var candidate json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Invalid JSON"})
			return
		}

		res := v.ValidatePlacement(candidate)
		if !res.IsValid {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, Response{Error: "Invalid decoration placement", Details: res.Errors})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := creator.CreateDecorationPlacement(ctx, companyID, *res.Data)
		if errors.Is(err, storage.ErrExists) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, Response{Error: "Placement with this name already exists"})
			return
		}
		if err != nil {
			log.Error("failed to create decoration placement",
				slog.String("op", op),
				slog.String("company_id", companyID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to create decoration placement"})
			return
		}

		log.Info("decoration placement created",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("user_id", auth.UserID(r.Context())),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{ID: id, Status: "created"})
	}
}
