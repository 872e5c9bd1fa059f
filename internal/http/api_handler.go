package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/service"
)

// MockAPIHandler expone los endpoints sin estado que el sitio dejó comentados.
// Responden siempre {"responses": [...]}.
type MockAPIHandler struct {
	logger     *zap.Logger
	prototypes *service.PrototypeService
}

func NewMockAPIHandler(logger *zap.Logger, prototypes *service.PrototypeService) *MockAPIHandler {
	return &MockAPIHandler{logger: logger, prototypes: prototypes}
}

// ExtendReply maneja POST /api/extend-reply.
func (h *MockAPIHandler) ExtendReply(c *gin.Context) {
	var req struct {
		Input       string   `json:"input"`
		Context     string   `json:"context"`
		Temperature *float64 `json:"temperature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid extend reply request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	variability := domain.DefaultVariability
	if req.Temperature != nil {
		variability = *req.Temperature
	}
	h.respond(c, "generate extended reply", domain.GenerationRequest{
		Category:    domain.CategoryExtendReply,
		Input:       req.Input,
		Context:     req.Context,
		Variability: variability,
	})
}

// BackgroundResponse maneja POST /api/background-response.
func (h *MockAPIHandler) BackgroundResponse(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
		Profile  string `json:"profile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid background response request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.respond(c, "generate background response", domain.GenerationRequest{
		Category: domain.CategoryBackgroundInfo,
		Question: req.Question,
		Profile:  req.Profile,
	})
}

// WordToRequest maneja POST /api/word-to-request.
func (h *MockAPIHandler) WordToRequest(c *gin.Context) {
	var req struct {
		Word         string `json:"word"`
		PrivacyLevel string `json:"privacyLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid word to request request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	level, ok := domain.ParsePrivacyLevel(req.PrivacyLevel)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid privacy level"})
		return
	}
	h.respond(c, "generate requests", domain.GenerationRequest{
		Category:     domain.CategoryWordToRequest,
		Input:        req.Word,
		PrivacyLevel: level,
	})
}

func (h *MockAPIHandler) respond(c *gin.Context, op string, req domain.GenerationRequest) {
	out, err := h.prototypes.Generate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.logger, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": out})
}
