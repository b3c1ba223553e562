package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
)

// Pinger проверяет доступность базы.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) check(ctx context.Context) dto.HealthResponse {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "healthy"
	}

	return dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := h.check(c.Request.Context())

	statusCode := http.StatusOK
	if resp.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, resp)
}

// Procedure обрабатывает GET /api/rpc/healthcheck в общем формате ответа.
func (h *HealthHandler) Procedure(c *gin.Context) {
	resp := h.check(c.Request.Context())
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: resp})
}
