package revalidate_decoration

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"decor-golang/internal/service/revalidate"
	"decor-golang/internal/storage"
)

type Revalidator interface {
	Revalidate(ctx context.Context, filter storage.LineItemFilter) (*revalidate.Report, error)
}

// RevalidateDecorations checks every stored decoration of the company, or of
// one order with ?orderId=, against the current schemas. ?invalidOnly=true
// drops the valid rows from items; the counters still cover everything.
func RevalidateDecorations(log *slog.Logger, rv Revalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.decoration.RevalidateDecorations"

		filter := storage.LineItemFilter{
			CompanyID: chi.URLParam(r, "companyID"),
			OrderID:   r.URL.Query().Get("orderId"),
		}

		invalidOnly := false
		if v := r.URL.Query().Get("invalidOnly"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, map[string]string{"error": "invalidOnly must be a boolean"})
				return
			}
			invalidOnly = b
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report, err := rv.Revalidate(ctx, filter)
		if err != nil {
			log.Error("failed to revalidate decorations",
				slog.String("op", op),
				slog.String("company_id", filter.CompanyID),
				slog.String("error", err.Error()),
			)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "Internal server error"})
			return
		}

		if invalidOnly {
			items := report.Items[:0]
			for _, it := range report.Items {
				if !it.Result.IsValid {
					items = append(items, it)
				}
			}
			report.Items = items
		}

		log.Info("decorations revalidated",
			slog.String("op", op),
			slog.String("company_id", filter.CompanyID),
			slog.Int("total", report.Total),
			slog.Int("invalid", report.Invalid),
		)

		render.JSON(w, r, report)
	}
}
