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

type PlacementProvider interface {
	GetDecorationPlacements(ctx context.Context, companyID string) ([]storage.DecorationPlacement, error)
}

// GetPlacements lists placements, optionally narrowed to one garment type via
// ?garmentType=. Placements without a garment type fit every garment.
func GetPlacements(log *slog.Logger, provider PlacementProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.placement.GetPlacements"

		companyID := chi.URLParam(r, "companyID")
		garmentType := r.URL.Query().Get("garmentType")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		placements, err := provider.GetDecorationPlacements(ctx, companyID)
		if err != nil {
			log.Error("failed to get decoration placements",
				slog.String("op", op),
				slog.String("company_id", companyID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		if garmentType != "" {
			filtered := placements[:0]
			for _, p := range placements {
				if p.GarmentType == nil || *p.GarmentType == garmentType {
					filtered = append(filtered, p)
				}
			}
			placements = filtered
		}

		render.JSON(w, r, placements)
	}
}
