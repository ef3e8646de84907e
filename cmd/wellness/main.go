// Package main boots the wellness companion service and wires application dependencies.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/easeaico/wellness/internal/chat"
	"github.com/easeaico/wellness/internal/config"
	"github.com/easeaico/wellness/internal/handler"
	"github.com/easeaico/wellness/internal/mood"
	"github.com/easeaico/wellness/internal/storage"
	"github.com/easeaico/wellness/internal/tips"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	slog.Info("configuration loaded", "backend", cfg.StorageBackend, "addr", cfg.HTTPAddr, "time_zone", cfg.TimeZone)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(ctx, storage.Options{
		Backend:     cfg.StorageBackend,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("invalid time zone: %v", err)
	}

	moods, err := mood.NewStore(ctx, store.KV,
		mood.WithLocation(loc),
		mood.WithLimit(cfg.HistoryLimit),
		mood.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("failed to load mood history: %v", err)
	}

	h := handler.New(moods, chat.NewResponder(nil), tips.NewSelector(nil), handler.Options{
		RecentLimit:   cfg.RecentLimit,
		ThinkingDelay: cfg.ThinkingDelay,
		Logger:        logger,
	})

	if err := handler.Serve(ctx, cfg.HTTPAddr, h.Routes()); err != nil {
		slog.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}
