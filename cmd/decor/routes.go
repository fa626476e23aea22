package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	getcatalog "decor-golang/http-server/catalog/get"
	"decor-golang/http-server/decoration/batch"
	getschema "decor-golang/http-server/decoration/schema/get"
	"decor-golang/http-server/decoration/validate"
	generate_excel "decor-golang/http-server/generate-report/generate-excel"
	getlineitem "decor-golang/http-server/line-item/get"
	uplineitem "decor-golang/http-server/line-item/update"
	getplacement "decor-golang/http-server/placement/get"
	saveplacement "decor-golang/http-server/placement/save"
	revalidate_decoration "decor-golang/http-server/revalidate-decoration"
	gettechnique "decor-golang/http-server/technique/get"
	savetechnique "decor-golang/http-server/technique/save"
	getupcharge "decor-golang/http-server/upcharge/get"
	saveupcharge "decor-golang/http-server/upcharge/save"
	"decor-golang/internal/config"
	"decor-golang/internal/decoration/schemadoc"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/middleware/auth"
	"decor-golang/internal/service/catalog"
	"decor-golang/internal/service/report"
	"decor-golang/internal/service/revalidate"
	"decor-golang/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	v *validator.Validator,
	revalidateService *revalidate.Service,
	excelService *report.ExcelService,
	catalogService *catalog.Service,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", auth.UserIDHeader},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := storage.Ping(ctx); err != nil {
			log.Error("health check failed", slog.String("error", err.Error()))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	// stateless validation, no company data involved
	router.Route("/api/decorations", func(r chi.Router) {
		r.Get("/schema", getschema.GetSchema(log, schemadoc.Configuration))
		r.Post("/validate", validate.Validate(log, v))
		r.Post("/validate/batch", batch.ValidateBatch(log, v))
		r.Post("/validate/{technique}", validate.ValidateTechnique(log, v))
	})

	router.Route("/api/companies/{companyID}", func(r chi.Router) {
		r.Use(auth.CompanyScope(log, storage))

		r.Get("/line-items/{id}/decoration", getlineitem.GetDecoration(log, storage, v))
		r.Put("/line-items/{id}/decoration", uplineitem.UpdateDecoration(log, v, storage))

		r.Get("/decoration-catalog", getcatalog.GetCatalog(log, catalogService))
		r.Get("/decoration-techniques", gettechnique.GetTechniques(log, storage))
		r.Get("/decoration-placements", getplacement.GetPlacements(log, storage))
		r.Get("/decoration-techniques/{techniqueID}/upcharges", getupcharge.GetUpcharges(log, storage))

		r.Get("/decorations/revalidate", revalidate_decoration.RevalidateDecorations(log, revalidateService))
		r.Get("/decorations/revalidate/report", generate_excel.GenerateReportExcel(log, excelService))

		r.Group(func(admin chi.Router) {
			admin.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

			admin.Post("/decoration-techniques", savetechnique.SaveTechnique(log, v, storage))
			admin.Post("/decoration-placements", saveplacement.SavePlacement(log, v, storage))
			admin.Post("/decoration-techniques/{techniqueID}/upcharges", saveupcharge.SaveUpcharge(log, v, storage))
		})
	})

	return router
}
