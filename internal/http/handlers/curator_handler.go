package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// CuratorHandler обслуживает процедуры куратора.
type CuratorHandler struct {
	service *service.CuratorService
}

// NewCuratorHandler создаёт хэндлер.
func NewCuratorHandler(service *service.CuratorService) *CuratorHandler {
	return &CuratorHandler{service: service}
}

// Create обрабатывает POST /api/rpc/createAiCuratorInteraction.
func (h *CuratorHandler) Create(c *gin.Context) {
	var req models.CreateAiCuratorInteractionInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	interaction, err := h.service.CreateInteraction(c.Request.Context(), req)
	common.RespondResult(c, interaction, err)
}

// List обрабатывает GET /api/rpc/getAiCuratorInteractions?session_id=...
func (h *CuratorHandler) List(c *gin.Context) {
	var q dto.InteractionsQuery
	if err := common.BindQuery(c, &q); err != nil {
		common.RespondError(c, err)
		return
	}

	items, err := h.service.ListInteractions(c.Request.Context(), q.SessionID)
	common.RespondList(c, items, err)
}
