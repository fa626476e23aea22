package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"decor-golang/internal/storage"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, filter storage.LineItemFilter) ([]byte, error)
}

// GenerateReportExcel streams the revalidation report of the company, or of
// one order with ?orderId=, as an xlsx attachment.
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.decoration.GenerateReportExcel"

		filter := storage.LineItemFilter{
			CompanyID: chi.URLParam(r, "companyID"),
			OrderID:   r.URL.Query().Get("orderId"),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, filter)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Decorations_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
