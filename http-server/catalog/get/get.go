package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"decor-golang/internal/service/catalog"
)

type CatalogProvider interface {
	Catalog(ctx context.Context, companyID string) (*catalog.Catalog, error)
}

func GetCatalog(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.GetCatalog"

		companyID := chi.URLParam(r, "companyID")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cat, err := provider.Catalog(ctx, companyID)
		if err != nil {
			log.Error("failed to load decoration catalog",
				slog.String("op", op),
				slog.String("company_id", companyID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		render.JSON(w, r, cat)
	}
}
