package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerproxy/internal/domain/dto"
	"github.com/guttosm/tickerproxy/internal/domain/models"
	"github.com/guttosm/tickerproxy/internal/logger"
	"github.com/guttosm/tickerproxy/internal/middleware"
	"github.com/guttosm/tickerproxy/internal/service"
)

// Handler provides HTTP handlers for stock endpoints.
//
// Responsibilities:
//   - Validate the shape of incoming request bodies (422 on violation)
//   - Call the service layer for quote lookups
//   - Wrap results in the success envelope
//   - Hand typed errors to middleware.ErrorHandler via c.Error
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): Service used to fetch quotes.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetStockPrice handles POST /api/v1/stocks/price requests.
//
// Body:
//   - ticker (string, required): 1 to 10 characters, not blank (e.g., "AAPL").
//
// Responses:
//   - 200 OK: Envelope with the current price.
//   - 400 Bad Request: The upstream provider failed or does not know the ticker.
//   - 422 Unprocessable Entity: Missing, empty, blank or too long ticker, or malformed JSON.
//
// GetStockPrice godoc
// @Summary      Get current stock price
// @Description  Fetches the latest quote for a ticker from Yahoo Finance
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      models.StockPriceRequest                    true  "Ticker to look up"
// @Success      200      {object}  dto.DataResponse[models.StockPrice]  "Success"
// @Failure      400      {object}  dto.ErrorResponse                           "Provider error"
// @Failure      422      {object}  dto.ErrorResponse                           "Validation error"
// @Router       /api/v1/stocks/price [post]
func (h *Handler) GetStockPrice(c *gin.Context) {
	// ─── Validate body shape ──────────────────────────────────
	var req models.StockPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "Request validation failed", validationDetails(err))
		return
	}
	ticker := strings.TrimSpace(req.Ticker)

	logger.L().Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("ticker", ticker).
		Msg("received stock price request")

	// ─── Query service (with request context) ─────────────────
	price, err := h.svc.GetCurrentPrice(c.Request.Context(), ticker)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.WithData(
		fmt.Sprintf("Stock price retrieved successfully for %s", price.Ticker),
		price,
	))
}
