package helpers

import (
	"errors"
	"net/http"

	"bid-exchange/internal/biderrors"
	"bid-exchange/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// The message is safe for the wire; raw error text stays in the server log.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biderrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biderrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, biderrors.ErrValidation):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biderrors.ErrInvalidTransition):
		return http.StatusConflict, "status transition not allowed"
	case errors.Is(err, biderrors.ErrPersistence):
		return http.StatusBadRequest, "bid store rejected the request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
