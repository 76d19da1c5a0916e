package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Wellify-Group/wellify-business-sub000/internal/config"
	"github.com/Wellify-Group/wellify-business-sub000/internal/infra"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/router"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
	"github.com/Wellify-Group/wellify-business-sub000/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to create data directory")
	}
	st := store.NewFSStore(cfg.DataDir)

	// Redis is optional: without it the API still serves, but shift reports
	// fall back to the retry cron and the sync cache is disabled.
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, async reports degraded")
		rdb = nil
	}

	queueCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	// Start goroutine worker pool for async tasks (shift report PDFs).
	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shiftRepo := repository.NewShiftRepository(st)
	orderRepo := repository.NewOrderRepository(st)
	dispatcher := worker.NewDispatcher(rdb, queueCB)

	if rdb != nil {
		workerHandlers := &worker.WorkerHandlers{
			Report: worker.NewReportWorker(shiftRepo, orderRepo, rdb, cfg.ReportStoragePath),
		}
		worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)
		worker.StartRetryCron(ctx, shiftRepo, dispatcher, queueCB)
	}

	r := router.New(cfg, st, rdb, queueCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("wellify backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
