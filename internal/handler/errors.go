package handler

import (
	"context"
	"errors"
	"net/http"

	"inmo-assistant/internal/repository"
	"inmo-assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service and repository errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		malformedErr  *service.MalformedOutputError
		generationErr *service.GenerationError
		loadErr       *repository.LoadError
	)

	switch {
	case errors.Is(err, service.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is empty"})
	case errors.As(err, &validationErr), errors.As(err, &malformedErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not understand request", "detail": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Generation backend timed out"})
	case errors.As(err, &generationErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Generation backend unavailable", "detail": err.Error()})
	case errors.As(err, &loadErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Catalog load failed", "detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
