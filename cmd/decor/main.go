package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decor-golang/internal/config"
	"decor-golang/internal/decoration/schema"
	"decor-golang/internal/decoration/validator"
	"decor-golang/internal/service/catalog"
	"decor-golang/internal/service/report"
	"decor-golang/internal/service/revalidate"
	"decor-golang/internal/storage/mysql"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, cfg.ErrorLog)

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := storage.Ping(pingCtx); err != nil {
		log.Warn("db is not reachable yet", slog.String("error", err.Error()))
	}
	cancel()

	registry := schema.NewRegistry(schema.WithStrictTechnique(!cfg.AllowMismatchedDetails))
	v := validator.New(registry, validator.WithWorkers(cfg.BatchWorkers))

	revalidateService := revalidate.NewService(storage, v)
	excelService := report.NewExcelService(revalidateService)
	catalogService := catalog.NewService(storage)

	log.Info("server started",
		slog.String("address", cfg.Address),
		slog.String("env", cfg.Env),
		slog.Bool("strict_technique", registry.StrictTechnique()),
	)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, v, revalidateService, excelService, catalogService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped")
}
