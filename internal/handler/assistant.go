package handler

import (
	"context"
	"net/http"
	"time"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler handles utterance-related HTTP requests
type AssistantHandler struct {
	resolver  *service.Resolver
	assistant *service.Assistant
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAssistantHandler creates a new assistant handler. timeout bounds each
// generation round trip; zero leaves it to the client connection.
func NewAssistantHandler(resolver *service.Resolver, assistant *service.Assistant, timeout time.Duration, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		resolver:  resolver,
		assistant: assistant,
		timeout:   timeout,
		logger:    logger,
	}
}

// Plan handles POST /api/v1/plan
func (h *AssistantHandler) Plan(c *gin.Context) {
	var req model.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	plan, err := h.resolver.Resolve(ctx, req.Message)
	if err != nil {
		h.logger.Warn("plan request failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Ask handles POST /api/v1/ask
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req model.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	reply, err := h.assistant.Answer(ctx, req.Message)
	if err != nil {
		h.logger.Warn("ask request failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

func (h *AssistantHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
