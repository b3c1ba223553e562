package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// SeedHandler наполняет базу демонстрационными данными. Только для development.
type SeedHandler struct {
	service  *service.SeedService
	seedFile string
}

// NewSeedHandler создаёт хэндлер. seedFile путь к YAML фикстуре.
func NewSeedHandler(service *service.SeedService, seedFile string) *SeedHandler {
	return &SeedHandler{service: service, seedFile: seedFile}
}

// Seed обрабатывает POST /api/seed.
func (h *SeedHandler) Seed(c *gin.Context) {
	fixture, err := service.LoadSeedFile(h.seedFile)
	if err != nil {
		common.RespondError(c, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось прочитать фикстуру"))
		return
	}

	result, err := h.service.Seed(c.Request.Context(), fixture)
	if err != nil {
		common.RespondError(c, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось наполнить базу"))
		return
	}

	common.RespondData(c, result)
}
