package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ChangeLogHandler обслуживает процедуры журнала изменений.
type ChangeLogHandler struct {
	service *service.ChangeLogService
}

// NewChangeLogHandler создаёт хэндлер.
func NewChangeLogHandler(service *service.ChangeLogService) *ChangeLogHandler {
	return &ChangeLogHandler{service: service}
}

// List обрабатывает GET /api/rpc/getDailyChangeLogs?limit=N.
func (h *ChangeLogHandler) List(c *gin.Context) {
	var q dto.ChangeLogsQuery
	if err := common.BindQuery(c, &q); err != nil {
		common.RespondError(c, err)
		return
	}

	items, err := h.service.ListLogs(c.Request.Context(), q.Limit)
	common.RespondList(c, items, err)
}

// Create обрабатывает POST /api/rpc/createDailyChangeLog.
func (h *ChangeLogHandler) Create(c *gin.Context) {
	var req models.CreateDailyChangeLogInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	created, err := h.service.CreateLog(c.Request.Context(), req)
	common.RespondResult(c, created, err)
}
