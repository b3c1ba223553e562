package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ArtifactHandler обслуживает процедуры работ портфолио.
type ArtifactHandler struct {
	service *service.ArtifactService
}

// NewArtifactHandler создаёт хэндлер.
func NewArtifactHandler(service *service.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{service: service}
}

// List обрабатывает GET /api/rpc/getPortfolioArtifacts.
func (h *ArtifactHandler) List(c *gin.Context) {
	items, err := h.service.ListArtifacts(c.Request.Context())
	common.RespondList(c, items, err)
}

// ListFeatured обрабатывает GET /api/rpc/getFeaturedArtifacts.
func (h *ArtifactHandler) ListFeatured(c *gin.Context) {
	items, err := h.service.ListFeatured(c.Request.Context())
	common.RespondList(c, items, err)
}

// Create обрабатывает POST /api/rpc/createPortfolioArtifact.
func (h *ArtifactHandler) Create(c *gin.Context) {
	var req models.CreatePortfolioArtifactInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	created, err := h.service.CreateArtifact(c.Request.Context(), req)
	common.RespondResult(c, created, err)
}

// Update обрабатывает POST /api/rpc/updatePortfolioArtifact.
func (h *ArtifactHandler) Update(c *gin.Context) {
	var req models.UpdatePortfolioArtifactInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	updated, err := h.service.UpdateArtifact(c.Request.Context(), req)
	common.RespondResult(c, updated, err)
}
