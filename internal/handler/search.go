package handler

import (
	"net/http"
	"time"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/service"
	"inmo-assistant/internal/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles direct catalog queries
type SearchHandler struct {
	matcher      *service.Matcher
	catalog      service.CatalogReader
	validator    *service.PlanValidator
	defaultLimit int
	maxLimit     int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(matcher *service.Matcher, catalog service.CatalogReader, validator *service.PlanValidator, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		matcher:      matcher,
		catalog:      catalog,
		validator:    validator,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	startTime := time.Now()

	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var doc any
	if len(req.Filters) > 0 {
		decoded, err := utils.DecodeJSONDocument(string(req.Filters))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters: " + err.Error()})
			return
		}
		doc = decoded
	}

	filters, err := h.validator.ValidateFilters(doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate and cap limits
	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	results := h.matcher.Search(filters, limit)

	c.JSON(http.StatusOK, model.SearchResponse{
		Results: results,
		Total:   len(results),
		Filters: filters,
		Took:    time.Since(startTime).Milliseconds(),
	})
}

// GetListing handles GET /api/v1/listings/:id
func (h *SearchHandler) GetListing(c *gin.Context) {
	listing, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}
