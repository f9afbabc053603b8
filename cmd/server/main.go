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

	"github.com/evenshare/evenshare/internal/auth"
	"github.com/evenshare/evenshare/internal/config"
	"github.com/evenshare/evenshare/internal/server"
	"github.com/evenshare/evenshare/internal/service"
	"github.com/evenshare/evenshare/internal/storage"
	"github.com/evenshare/evenshare/internal/storage/memory"
	"github.com/evenshare/evenshare/internal/storage/sqlite"
	"github.com/evenshare/evenshare/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.UsingDevSecret() {
		slog.Warn("JWT_SECRET not set, using the development fallback")
	}

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to initialize storage", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "store", cfg.Store)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(
		service.NewAuthService(authenticator, tokens, store, slog.Default()),
		service.NewFriendService(store),
		service.NewEventService(store),
		tokens,
		store,
	)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	if cfg.Store == "sqlite" {
		return sqlite.New(cfg.DBPath)
	}

	store := memory.New()
	if cfg.SeedDemo {
		if err := memory.SeedDemo(context.Background(), store); err != nil {
			return nil, err
		}
		slog.Info("demo data seeded")
	}
	return store, nil
}
