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

type UpchargeValidator interface {
	ValidateUpcharge(candidate any) validator.Result[decoration.Upcharge]
}

type UpchargeCreator interface {
	CreateDecorationUpcharge(ctx context.Context, companyID, techniqueID string, u decoration.Upcharge) (string, error)
}

type Response struct {
	ID      string            `json:"id,omitempty"`
	Status  string            `json:"status,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details *schema.ErrorTree `json:"details,omitempty"`
}

func SaveUpcharge(log *slog.Logger, v UpchargeValidator, creator UpchargeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upcharge.SaveUpcharge"

		companyID := chi.URLParam(r, "companyID")
		techniqueID := chi.URLParam(r, "techniqueID")

		var candidate json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "Invalid JSON"})
			return
		}

		res := v.ValidateUpcharge(candidate)
		if !res.IsValid {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, Response{Error: "Invalid decoration upcharge", Details: res.Errors})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := creator.CreateDecorationUpcharge(ctx, companyID, techniqueID, *res.Data)
		if errors.Is(err, storage.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, Response{Error: "Technique not found"})
			return
		}
		if err != nil {
			log.Error("failed to create decoration upcharge",
				slog.String("op", op),
				slog.String("technique_id", techniqueID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to create decoration upcharge"})
			return
		}

		log.Info("decoration upcharge created",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("user_id", auth.UserID(r.Context())),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{ID: id, Status: "created"})
	}
}
