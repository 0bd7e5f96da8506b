// Package mockapi assembles the local development backend: an echo server
// implementing the storefront REST contract (trailing-slash routes,
// snake_case JSON) against an in-memory store.
package mockapi

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/mockapi/handler"
	"github.com/markethub/storefront-core/internal/mockapi/memstore"
	"github.com/markethub/storefront-core/internal/mockapi/middleware"
	"github.com/markethub/storefront-core/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *memstore.Store, cfg config.MockAPIConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// Each router carries its own registry so several instances can coexist
	// in one process.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront_mockapi",
		Registerer: registry,
	}))

	// --- Dependencies ---
	tokens := handler.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authHandler := handler.NewAuthHandler(store, tokens)
	productHandler := handler.NewProductHandler(store)
	cartHandler := handler.NewCartHandler(store)
	orderHandler := handler.NewOrderHandler(store)
	healthHandler := handler.NewHealthHandler()

	auth := middleware.Auth(cfg.JWTSecret)
	staff := middleware.StaffOnly()

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register/", authHandler.Register)
	api.POST("/auth/login/", authHandler.Login)
	api.POST("/auth/refresh/", authHandler.Refresh)

	// --- Catalog routes (reads public, writes staff-only) ---
	api.GET("/products/", productHandler.List)
	api.GET("/products/:id/", productHandler.Get)
	api.POST("/products/", productHandler.Create, auth, staff)
	api.PUT("/products/:id/", productHandler.Update, auth, staff)
	api.DELETE("/products/:id/", productHandler.Delete, auth, staff)

	// --- Cart routes (authenticated) ---
	api.GET("/cart/", cartHandler.List, auth)
	api.POST("/cart/", cartHandler.Add, auth)
	api.PATCH("/cart/:id/", cartHandler.UpdateQuantity, auth)
	api.DELETE("/cart/:id/", cartHandler.Remove, auth)

	// --- Order routes ---
	api.GET("/orders/", orderHandler.List, auth)
	api.POST("/orders/", orderHandler.Create, auth)
	api.PATCH("/orders/:id/", orderHandler.UpdateStatus, auth, staff)

	// --- Health probe and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))

	return e
}
