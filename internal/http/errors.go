package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aac-assist/internal/service"
)

// writeServiceError traduce errores de servicio a status HTTP.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
	case errors.Is(err, service.ErrEmptyProfile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "please add some background information first"})
	case errors.Is(err, service.ErrInvalidPrivacyLevel):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid privacy level"})
	case errors.Is(err, service.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown prototype"})
	case errors.Is(err, service.ErrContactInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact form"})
	case errors.Is(err, service.ErrContactRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many contact submissions, try again later"})
	case errors.Is(err, service.ErrProfileUnsupported):
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile actions require a background-info session"})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrInvalidIndex):
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
	case errors.Is(err, service.ErrNotEditing):
		c.JSON(http.StatusConflict, gin.H{"error": "no candidate under edit"})
	case errors.Is(err, service.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer submission"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request canceled"})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not " + op})
	}
}
