package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkumar312/movie-ratings-dashboard/internal/config"
	"github.com/mkumar312/movie-ratings-dashboard/internal/dataset"
	httpserver "github.com/mkumar312/movie-ratings-dashboard/internal/http"
	"github.com/mkumar312/movie-ratings-dashboard/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[movies-dashboard] ", log.LstdFlags|log.Lshortfile)

	table, err := loadTable(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	logger.Printf("dataset loaded: %d rows, %d genres", table.Len(), len(table.Genres()))

	gen := report.New(table, report.Options{
		DefaultBins:  cfg.DefaultBins,
		PreviewLimit: cfg.PreviewLimit,
		PreviewMax:   cfg.PreviewMax,
	})
	server := httpserver.New(cfg, gen, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func loadTable(ctx context.Context, cfg config.Config, logger *log.Logger) (*dataset.Table, error) {
	if cfg.DataURL != "" {
		fetcher, err := dataset.NewFetcher(cfg.DataURL, time.Duration(cfg.FetchTimeoutSecs)*time.Second, logger)
		if err != nil {
			return nil, err
		}
		fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.FetchTimeoutSecs)*time.Second)
		defer cancel()
		return fetcher.Fetch(fetchCtx)
	}
	return dataset.Load(cfg.DataPath)
}
