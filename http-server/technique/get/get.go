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

type TechniqueProvider interface {
	GetDecorationTechniques(ctx context.Context, companyID string) ([]storage.DecorationTechnique, error)
}

func GetTechniques(log *slog.Logger, provider TechniqueProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.technique.GetTechniques"

		companyID := chi.URLParam(r, "companyID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		techniques, err := provider.GetDecorationTechniques(ctx, companyID)
		if err != nil {
			log.Error("failed to get decoration techniques",
				slog.String("op", op),
				slog.String("company_id", companyID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		render.JSON(w, r, techniques)
	}
}
