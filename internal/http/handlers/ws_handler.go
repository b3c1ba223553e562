package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
	"github.com/ignatzorin/portfolio-backend/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений ленты куратора.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер. Подключения принимаются только с allowedOrigins.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Handle обслуживает GET /api/ws/curator?session_id=...
func (h *WSHandler) Handle(c *gin.Context) {
	var q dto.InteractionsQuery
	_ = c.ShouldBindQuery(&q)
	if err := validation.ValidateSessionID(q.SessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Envelope{
			Error: &dto.ErrorBody{Code: string(apperror.ErrCodeValidation), Message: err.Error()},
		})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже записал ответ клиенту.
		logger.Entry().WithError(err).Warn("ws: не удалось установить соединение")
		return
	}

	client := ws.NewClient(conn, h.hub, q.SessionID)
	h.hub.Register(client)

	client.Run(c.Request.Context())
}
