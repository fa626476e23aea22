package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"decor-golang/internal/storage"
)

type UpchargeProvider interface {
	GetDecorationUpcharges(ctx context.Context, companyID, techniqueID string) ([]storage.DecorationUpcharge, error)
}

func GetUpcharges(log *slog.Logger, provider UpchargeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upcharge.GetUpcharges"

		companyID := chi.URLParam(r, "companyID")
		techniqueID := chi.URLParam(r, "techniqueID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		upcharges, err := provider.GetDecorationUpcharges(ctx, companyID, techniqueID)
		if err != nil {
			log.Error("failed to get decoration upcharges",
				slog.String("op", op),
				slog.String("technique_id", techniqueID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		render.JSON(w, r, upcharges)
	}
}
