package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerproxy/config"
	"github.com/guttosm/tickerproxy/internal/api"
	"github.com/guttosm/tickerproxy/internal/logger"
	"github.com/guttosm/tickerproxy/internal/provider"
	"github.com/guttosm/tickerproxy/internal/provider/yahoo"
	"github.com/guttosm/tickerproxy/internal/service"
)

// quoteSourceOpener builds the upstream quote provider; overridden in tests to avoid network calls.
var quoteSourceOpener = func(config.Config) (provider.QuoteSource, error) {
	return yahoo.New(), nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Yahoo Finance quote source.
//   - Initializes the service layer (StockService).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health, readiness and root endpoints.
//
// Parameters:
//   - cfg (config.Config): configuration loaded once at startup.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Upstream provider (no connection to open, lookups are per request)
	source, err := quoteSourceOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize quote source: %w", err)
	}

	// Initialize service layer (business logic)
	svc := service.NewStockService(source)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(cfg, handler)

	// Register health, readiness and root probes
	api.NewHealthHandler(cfg.App).Register(router, cfg.Server.APIPrefix)

	logger.L().Info().
		Str("service", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Str("provider", source.Name()).
		Str("api_prefix", cfg.Server.APIPrefix).
		Msg("application initialized")

	// Nothing holds resources yet
	cleanup := func() {}

	return router, cleanup, nil
}
