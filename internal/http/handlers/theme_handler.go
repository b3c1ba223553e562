package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ThemeHandler обслуживает процедуры темы оформления.
type ThemeHandler struct {
	service *service.ThemeService
}

// NewThemeHandler создаёт хэндлер.
func NewThemeHandler(service *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

// GetActive обрабатывает GET /api/rpc/getActiveDesignTheme.
func (h *ThemeHandler) GetActive(c *gin.Context) {
	theme, err := h.service.GetActiveTheme(c.Request.Context())
	common.RespondResult(c, theme, err)
}

// Activate обрабатывает POST /api/rpc/activateDesignTheme.
func (h *ThemeHandler) Activate(c *gin.Context) {
	var req dto.ActivateThemeRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	theme, err := h.service.ActivateTheme(c.Request.Context(), req.ID)
	common.RespondResult(c, theme, err)
}
