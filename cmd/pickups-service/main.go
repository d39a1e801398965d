package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicircle/scrap-pickups/internal/auth"
	"github.com/epicircle/scrap-pickups/internal/config"
	"github.com/epicircle/scrap-pickups/internal/db"
	"github.com/epicircle/scrap-pickups/internal/excel"
	httphandler "github.com/epicircle/scrap-pickups/internal/http"
	"github.com/epicircle/scrap-pickups/internal/http/middleware"
	"github.com/epicircle/scrap-pickups/internal/localstore"
	"github.com/epicircle/scrap-pickups/internal/logger"
	"github.com/epicircle/scrap-pickups/internal/pdf"
	"github.com/epicircle/scrap-pickups/internal/pricing"
	"github.com/epicircle/scrap-pickups/internal/repository"
	"github.com/epicircle/scrap-pickups/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	pickupStore, err := openPickupStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open pickup store")
	}
	if cfg.Store.SeedDemo {
		if err := pickupStore.Seed(context.Background(), repository.DemoPickups()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed pickups")
		}
	}

	kv, closeKV, err := openLocalState(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local state")
	}
	defer closeKV()

	var suggester pricing.Suggester = pricing.NewPlaceholder()
	if cfg.Pricing.URL != "" {
		suggester = pricing.NewHTTPClient(cfg.Pricing.URL, cfg.Pricing.Timeout)
	}

	sessions := localstore.NewSessions(kv)
	authService := service.NewAuthService(sessions, auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL), cfg.Auth.MockOTP)
	requestService := service.NewRequestService(localstore.NewRequests(kv), excel.NewGenerator())
	pickupService := service.NewPickupService(pickupStore, suggester, pdf.NewGenerator(), log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(requestService, pickupService, authService, log)
	authMiddleware := middleware.Auth(tokenParser, authService)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().
			Str("addr", addr).
			Str("store", cfg.Store.Driver).
			Str("local_state", cfg.Store.LocalMode).
			Msg("starting pickups service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func openPickupStore(cfg *config.Config, log zerolog.Logger) (service.PickupStore, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		database, err := db.New(cfg, log)
		if err != nil {
			return nil, err
		}
		return repository.NewPickupRepository(database), nil
	default:
		return repository.NewMemoryPickupRepository(), nil
	}
}

func openLocalState(cfg *config.Config) (localstore.KV, func(), error) {
	switch cfg.Store.LocalMode {
	case config.LocalStateSQLite:
		store, err := localstore.OpenSQLite(cfg.Store.LocalPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return localstore.NewMemory(), func() {}, nil
	}
}
