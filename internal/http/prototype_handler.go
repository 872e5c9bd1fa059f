package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aac-assist/internal/catalog"
	"aac-assist/internal/domain"
	"aac-assist/internal/service"
)

// PrototypeHandler mantiene dependencias para los widgets con estado.
type PrototypeHandler struct {
	logger     *zap.Logger
	prototypes *service.PrototypeService
}

// NewPrototypeHandler crea una instancia de PrototypeHandler con dependencias necesarias.
func NewPrototypeHandler(logger *zap.Logger, prototypes *service.PrototypeService) *PrototypeHandler {
	return &PrototypeHandler{logger: logger, prototypes: prototypes}
}

// sessionParams es el cuerpo común de update y submit.
type sessionParams struct {
	Input        *string  `json:"input"`
	Context      *string  `json:"context"`
	Variability  *float64 `json:"variability"`
	Question     *string  `json:"question"`
	Profile      *string  `json:"profile"`
	PrivacyLevel *string  `json:"privacy_level"`
}

func (p sessionParams) aux() service.AuxParams {
	return service.AuxParams{
		Context:      p.Context,
		Variability:  p.Variability,
		Question:     p.Question,
		Profile:      p.Profile,
		PrivacyLevel: p.PrivacyLevel,
	}
}

// Options maneja GET /prototypes/options.
func (h *PrototypeHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":       domain.Categories(),
		"sample_questions": catalog.SampleQuestions(),
		"example_words":    catalog.ExampleWords(),
		"privacy_levels":   catalog.PrivacyLevels(),
		"variability": gin.H{
			"min":     domain.MinVariability,
			"max":     domain.MaxVariability,
			"step":    0.1,
			"default": domain.DefaultVariability,
		},
	})
}

// CreateSession maneja POST /prototypes/sessions.
func (h *PrototypeHandler) CreateSession(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create prototype session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ctrl, err := h.prototypes.CreateSession(c.Request.Context(), req.Category)
	if err != nil {
		writeServiceError(c, h.logger, "create session", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": ctrl.Snapshot()})
}

// GetSession maneja GET /prototypes/sessions/:id.
func (h *PrototypeHandler) GetSession(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": ctrl.Snapshot()})
}

// UpdateSession maneja PATCH /prototypes/sessions/:id.
func (h *PrototypeHandler) UpdateSession(c *gin.Context) {
	var req sessionParams
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update prototype session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := ctrl.Update(req.Input, req.aux())
	if err != nil {
		writeServiceError(c, h.logger, "update session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// Submit maneja POST /prototypes/sessions/:id/submit. Bloquea durante la latencia simulada.
func (h *PrototypeHandler) Submit(c *gin.Context) {
	var req sessionParams
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	input := ctrl.Snapshot().Input
	if req.Input != nil {
		input = *req.Input
	}
	out, err := ctrl.Submit(c.Request.Context(), input, req.aux())
	if err != nil {
		writeServiceError(c, h.logger, "generate responses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": out, "session": ctrl.Snapshot()})
}

// StartEdit maneja POST /prototypes/sessions/:id/edit.
func (h *PrototypeHandler) StartEdit(c *gin.Context) {
	var req struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start edit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := ctrl.StartEdit(*req.Index)
	if err != nil {
		writeServiceError(c, h.logger, "start edit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// CommitEdit maneja PUT /prototypes/sessions/:id/edit.
func (h *PrototypeHandler) CommitEdit(c *gin.Context) {
	var req struct {
		Text *string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid commit edit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := ctrl.CommitEdit(*req.Text)
	if err != nil {
		writeServiceError(c, h.logger, "commit edit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// CancelEdit maneja DELETE /prototypes/sessions/:id/edit.
func (h *PrototypeHandler) CancelEdit(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := ctrl.CancelEdit()
	if err != nil {
		writeServiceError(c, h.logger, "cancel edit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": snap})
}

// SaveProfile maneja POST /prototypes/sessions/:id/profile.
func (h *PrototypeHandler) SaveProfile(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	if err := ctrl.SaveProfile(c.Request.Context()); err != nil {
		writeServiceError(c, h.logger, "save profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved locally (demo only)"})
}

// ClearProfile maneja DELETE /prototypes/sessions/:id/profile.
func (h *PrototypeHandler) ClearProfile(c *gin.Context) {
	ctrl, ok := h.session(c)
	if !ok {
		return
	}
	if err := ctrl.ClearProfile(c.Request.Context()); err != nil {
		writeServiceError(c, h.logger, "clear profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": ctrl.Snapshot()})
}

// CloseSession maneja DELETE /prototypes/sessions/:id.
func (h *PrototypeHandler) CloseSession(c *gin.Context) {
	if err := h.prototypes.CloseSession(c.Param("id")); err != nil {
		writeServiceError(c, h.logger, "close session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PrototypeHandler) session(c *gin.Context) (*service.PrototypeController, bool) {
	ctrl, err := h.prototypes.Session(c.Param("id"))
	if err != nil {
		writeServiceError(c, h.logger, "load session", err)
		return nil, false
	}
	return ctrl, true
}
