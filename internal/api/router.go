package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/tickerproxy/config"
	"github.com/guttosm/tickerproxy/internal/domain/dto"
	"github.com/guttosm/tickerproxy/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, CORS, ErrorHandler).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API routes under Server.APIPrefix.
//
// Note:
//   - Health, readiness and root endpoints are registered in app.InitializeApp().
//
// Parameters:
//   - cfg (config.Config): Application configuration.
//   - handler (*Handler): The HTTP handler with business logic.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(cfg config.Config, handler *Handler) *gin.Engine {
	RegisterValidators()

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.ErrorHandler,
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not Found", map[string]string{"path": c.Request.URL.Path}))
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group(cfg.Server.APIPrefix)
	{
		v1.POST("/stocks/price", handler.GetStockPrice)
	}

	return router
}
