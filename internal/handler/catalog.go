package handler

import (
	"net/http"
	"sync"
	"time"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler reloads the catalog from its configured source
type CatalogHandler struct {
	catalog *repository.Catalog
	source  repository.Source
	logger  *zap.Logger

	// reloads are single-writer events
	mu sync.Mutex
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *repository.Catalog, source repository.Source, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		source:  source,
		logger:  logger,
	}
}

// Reload handles POST /api/v1/catalog/reload
func (h *CatalogHandler) Reload(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	startTime := time.Now()
	n, err := h.catalog.Load(c.Request.Context(), h.source)
	if err != nil {
		h.logger.Error("catalog reload failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ReloadResponse{
		Records: n,
		Took:    time.Since(startTime).Milliseconds(),
	})
}
