package http

import (
	"errors"
	"net/http"

	"imersao-completa/internal/entity"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to status codes. Anything unrecognised
// is logged and answered with fallback as a 500.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, entity.ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, gin.H{"error": entity.ErrAlreadySubscribed.Error()})
	case errors.Is(err, entity.ErrEmailTaken), errors.Is(err, entity.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
