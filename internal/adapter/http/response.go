package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/domain"
)

// envelope is the body of every API response.
type envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string, data any) {
	c.AbortWithStatusJSON(status, envelope{Error: true, Message: message, Data: data})
}

// writeError maps lifecycle errors to a status code. Unexpected errors are
// logged and reported without detail.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var verr *domain.ValidationError
	var tooBig *http.MaxBytesError

	switch {
	case errors.As(err, &tooBig):
		fail(c, http.StatusRequestEntityTooLarge, "Request body too large", nil)
	case errors.As(err, &verr):
		fail(c, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, domain.ErrValidation):
		fail(c, http.StatusBadRequest, "Validation failed", nil)
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, "Product not found", nil)
	case errors.Is(err, domain.ErrForbidden):
		fail(c, http.StatusForbidden, "Not authorized to modify this product", nil)
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
