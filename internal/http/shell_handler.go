package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/service"
)

// ShellHandler cubre el estado de página: perfil, preferencias, pestañas y contacto.
type ShellHandler struct {
	logger      *zap.Logger
	profiles    *service.ProfileService
	preferences *service.PreferenceService
	contact     *service.ContactService
}

func NewShellHandler(
	logger *zap.Logger,
	profiles *service.ProfileService,
	preferences *service.PreferenceService,
	contact *service.ContactService,
) *ShellHandler {
	return &ShellHandler{
		logger:      logger,
		profiles:    profiles,
		preferences: preferences,
		contact:     contact,
	}
}

// Health maneja GET /healthz.
func (h *ShellHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetProfile maneja GET /profile.
func (h *ShellHandler) GetProfile(c *gin.Context) {
	text, err := h.profiles.Load(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "load profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": text})
}

// SaveProfile maneja PUT /profile. El texto se guarda sin recortar.
func (h *ShellHandler) SaveProfile(c *gin.Context) {
	var req struct {
		Profile *string `json:"profile" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid save profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.profiles.Save(c.Request.Context(), *req.Profile); err != nil {
		writeServiceError(c, h.logger, "save profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": *req.Profile, "message": "Profile saved locally (demo only)"})
}

// ClearProfile maneja DELETE /profile.
func (h *ShellHandler) ClearProfile(c *gin.Context) {
	if err := h.profiles.Clear(c.Request.Context()); err != nil {
		writeServiceError(c, h.logger, "clear profile", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPreferences maneja GET /preferences.
func (h *ShellHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferences.Load(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "load preferences", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs, "body_classes": prefs.BodyClasses()})
}

// UpdatePreferences maneja PUT /preferences con un patch parcial.
func (h *ShellHandler) UpdatePreferences(c *gin.Context) {
	var patch domain.PreferencesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid preferences request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	prefs, err := h.preferences.Update(c.Request.Context(), patch)
	if err != nil {
		writeServiceError(c, h.logger, "save preferences", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs, "body_classes": prefs.BodyClasses()})
}

// ListPages maneja GET /pages.
func (h *ShellHandler) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": domain.Pages(), "default": domain.DefaultPageID})
}

// GetPage maneja GET /pages/:tab; una pestaña desconocida cae en home.
func (h *ShellHandler) GetPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": domain.ResolvePage(c.Param("tab"))})
}

// ContactSubjects maneja GET /contact/subjects.
func (h *ShellHandler) ContactSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subjects": domain.ContactSubjectLabels})
}

// SubmitContact maneja POST /contact.
func (h *ShellHandler) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	msg, err := h.contact.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(c, h.logger, "submit contact form", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": msg.ID, "message": domain.ContactThankYou})
}
