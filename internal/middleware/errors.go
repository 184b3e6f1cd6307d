package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerproxy/internal/apperr"
	"github.com/guttosm/tickerproxy/internal/domain/dto"
	"github.com/guttosm/tickerproxy/internal/logger"
)

// TypedErrorStatus is the status answered for every *apperr.Error, whatever its kind.
const TypedErrorStatus = http.StatusBadRequest

// ErrorHandler is the single place where errors raised by handlers become
// HTTP responses. Handlers report failures with c.Error(err) and return.
//
// Behavior:
//   - *apperr.Error (any kind): 400 with {success:false, message, details}.
//   - Any other error: 500 with a generic message; the cause is only logged.
//   - Does nothing when the handler already wrote a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	if typed, ok := apperr.As(err); ok {
		c.AbortWithStatusJSON(TypedErrorStatus, dto.NewErrorResponse(typed.Message, typed.DetailsCopy()))
		return
	}

	logger.L().Error().
		Err(err).
		Str("request_id", c.GetString(RequestIDKey)).
		Msg("unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
}

// AbortWithError stops the chain and writes an error envelope with the given status.
// It is used for failures detected before any business logic runs, such as
// request validation.
func AbortWithError(c *gin.Context, status int, message string, details map[string]string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, details))
}
