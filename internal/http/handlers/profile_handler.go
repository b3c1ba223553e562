package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ProfileHandler отдаёт профиль владельца и список пространств.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler создаёт хэндлер.
func NewProfileHandler(service *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile обрабатывает GET /api/rpc/getUserProfile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context())
	common.RespondResult(c, profile, err)
}

// ListSpaces обрабатывает GET /api/rpc/getCollaborativeSpaces.
func (h *ProfileHandler) ListSpaces(c *gin.Context) {
	items, err := h.service.ListSpaces(c.Request.Context())
	common.RespondList(c, items, err)
}
