package main

//
//  @title           tickerproxy API
//  @version         1.0
//  @description     Stock price lookups proxied from Yahoo Finance.
//  @termsOfService  https://github.com/guttosm/tickerproxy
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tickerproxy
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8000
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Stock price lookups proxied from Yahoo Finance
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerproxy/config"
	_ "github.com/guttosm/tickerproxy/docs" // swagger docs
	"github.com/guttosm/tickerproxy/internal/app"
	"github.com/guttosm/tickerproxy/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and runs the cleanup
// callback when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): Parent context for the shutdown deadline.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback returned by app.InitializeApp.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// ginMode picks the gin mode for the configured service.
// Debug mode is only used when DEBUG is set outside production.
func ginMode(app config.AppConfig) string {
	if app.Debug && app.Environment != "production" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// main is the entry point of the tickerproxy service.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(ginMode(cfg.App))

	port := flag.String("port", cfg.Server.Port, "Port for the API server")
	flag.Parse()

	logger.L().Info().
		Str("service", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("starting API server")

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}
