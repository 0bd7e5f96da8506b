// Command storefront is a small demonstration client. It wires the full
// stack (session storage, REST client with token refresh, stores, services),
// optionally logs in with credentials from the environment, then prints the
// catalog and the current cart.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/core/service"
	"github.com/markethub/storefront-core/internal/core/store"
	"github.com/markethub/storefront-core/internal/infrastructure/api"
	"github.com/markethub/storefront-core/internal/infrastructure/storage"
	"github.com/markethub/storefront-core/internal/pkg/config"
	"github.com/markethub/storefront-core/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	storageBackend, cleanup, err := newSessionStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("session storage init failed")
	}
	defer cleanup()

	client := api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Storage: storageBackend,
		Logger:  log,
	})

	session := store.NewSessionStore(storageBackend, log)
	products := store.NewProductStore(log)
	cart := store.NewCartStore(session, api.NewCartClient(client), log)

	auth := service.NewAuthService(api.NewAuthClient(client), session, log)
	catalog := service.NewCatalogService(api.NewCatalogClient(client), products, log)

	if email, password := os.Getenv("STOREFRONT_EMAIL"), os.Getenv("STOREFRONT_PASSWORD"); email != "" {
		if _, err := auth.Login(ctx, email, password); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		log.Info().Str("email", email).Msg("logged in")
	}

	if err := catalog.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog refresh failed")
	}
	for _, p := range products.Products() {
		fmt.Printf("%-38s %8.2f  stock %d\n", p.Name, p.Price, p.Stock)
	}

	if session.Authenticated() {
		if err := cart.Load(ctx); err != nil {
			log.Fatal().Err(err).Msg("cart load failed")
		}
		fmt.Printf("cart: %d items, total %.2f\n", cart.Len(), cart.Total())
	}
}

// newSessionStorage picks the redis backend when an address is configured,
// the local file otherwise.
func newSessionStorage(ctx context.Context, cfg *config.Config) (ports.SessionStorage, func(), error) {
	if cfg.Session.RedisAddr != "" {
		rs, err := storage.NewRedisStorage(ctx, cfg.Session.RedisAddr, cfg.Session.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	}
	fs, err := storage.NewFileStorage(cfg.Session.File)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}
