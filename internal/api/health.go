package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerproxy/config"
	"github.com/guttosm/tickerproxy/internal/domain/dto"
)

// HealthHandler provides liveness, readiness and root status endpoints.
//
// None of them check the upstream provider: they answer 200 as long as the
// process serves HTTP.
type HealthHandler struct {
	name    string
	version string
}

// NewHealthHandler constructs a HealthHandler reporting the given service identity.
func NewHealthHandler(app config.AppConfig) *HealthHandler {
	return &HealthHandler{name: app.Name, version: app.Version}
}

// Register mounts the endpoints.
//
// Routes:
//   - GET {apiPrefix}/health: liveness envelope.
//   - GET {apiPrefix}/health/ready: readiness envelope.
//   - GET /: plain status object, not enveloped.
func (h *HealthHandler) Register(r *gin.Engine, apiPrefix string) {
	g := r.Group(apiPrefix + "/health")
	g.GET("", h.Health)
	g.GET("/ready", h.Ready)

	r.GET("/", h.Root)
}

// Health godoc
// @Summary      Liveness probe
// @Description  Always returns OK if the service is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.BaseResponse
// @Router       /api/v1/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(fmt.Sprintf("%s v%s is healthy", h.name, h.version)))
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Returns ready once the service accepts requests
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.BaseResponse
// @Router       /api/v1/health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(fmt.Sprintf("%s is ready to serve requests", h.name)))
}

// Root godoc
// @Summary      Service status
// @Description  Basic status object kept for older callers; prefer /api/v1/health
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "running", Service: h.name, Version: h.version})
}
