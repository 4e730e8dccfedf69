package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/config"
	"github.com/rpattn/changelist/internal/db"
	"github.com/rpattn/changelist/internal/domain"
	"github.com/rpattn/changelist/internal/httpapi"
	"github.com/rpattn/changelist/internal/middleware"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	list, err := changelist.New(cfg.List.Options())
	if err != nil {
		logger.Error("invalid list configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := httpapi.MemorySource(seedBooks())
	if cfg.Database.Enabled {
		conn, err := db.NewConnection(ctx, cfg.Database.Config)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		table := cfg.Database.Table
		source = func(ctx context.Context, req *changelist.Request) ([]domain.Record, error) {
			return conn.ListRecords(ctx, table, req)
		}
		logger.Info("serving records from postgres", "table", table)
	}
	listHandler := httpapi.NewHandler(list, source, httpapi.WithTable(cfg.Database.Table), httpapi.WithLogger(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	mux := http.NewServeMux()
	mux.Handle("/books", listHandler)
	mux.Handle("/books.xlsx", listHandler)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      corsHandler.Handler(middleware.LoggingMiddleware(logger)(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr, "sortParam", list.SortParam(), "searchParam", list.SearchParam())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
