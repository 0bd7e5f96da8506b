// Command mockapi runs the local development backend for the storefront
// core. It serves the full REST contract (auth, products, cart, orders)
// from an in-memory store seeded with a demo catalog and a staff account.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markethub/storefront-core/internal/mockapi"
	"github.com/markethub/storefront-core/internal/mockapi/memstore"
	"github.com/markethub/storefront-core/internal/pkg/config"
	"github.com/markethub/storefront-core/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memstore.New()
	if err := mockapi.Seed(store); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	e := mockapi.NewRouter(store, cfg.MockAPI, log)

	go func() {
		log.Info().Str("port", cfg.MockAPI.Port).Msg("mock backend listening")
		if err := e.Start(":" + cfg.MockAPI.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("mock backend stopped")
}
