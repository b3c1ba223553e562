package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ProgressHandler обслуживает процедуры трекеров прогресса.
type ProgressHandler struct {
	service *service.ProgressService
}

// NewProgressHandler создаёт хэндлер.
func NewProgressHandler(service *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// List обрабатывает GET /api/rpc/getProgressTrackers.
func (h *ProgressHandler) List(c *gin.Context) {
	items, err := h.service.ListTrackers(c.Request.Context())
	common.RespondList(c, items, err)
}

// Create обрабатывает POST /api/rpc/createProgressTracker.
func (h *ProgressHandler) Create(c *gin.Context) {
	var req models.CreateProgressTrackerInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	created, err := h.service.CreateTracker(c.Request.Context(), req)
	common.RespondResult(c, created, err)
}

// Update обрабатывает POST /api/rpc/updateProgressTracker.
func (h *ProgressHandler) Update(c *gin.Context) {
	var req models.UpdateProgressTrackerInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	updated, err := h.service.UpdateTracker(c.Request.Context(), req)
	common.RespondResult(c, updated, err)
}
