package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// EventCuratorInteraction тип сообщения о новой реплике куратора.
const EventCuratorInteraction = "curator.interaction"

// Hub управляет WebSocket клиентами, сгруппированными по сессии посетителя.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	ctx        context.Context
}

type message struct {
	sessionID string
	payload   []byte
}

// NewHub создаёт новый хаб. После отмены ctx хаб перестаёт принимать сообщения.
func NewHub(ctx context.Context) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		ctx:        ctx,
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.sessionID, msg.payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// PublishInteraction отправляет реплику всем подписчикам её сессии.
func (h *Hub) PublishInteraction(interaction models.AiCuratorInteraction) {
	if err := h.Broadcast(interaction.SessionID, EventCuratorInteraction, interaction); err != nil {
		logger.Entry().WithError(err).WithField("session_id", interaction.SessionID).Warn("ws: не удалось опубликовать реплику")
	}
}

// Broadcast отправляет событие клиентам сессии.
func (h *Hub) Broadcast(sessionID, event string, data any) error {
	// Контракт сообщения: "type" имя события, "data" полезная нагрузка.
	raw, err := json.Marshal(map[string]any{
		"type": event,
		"data": data,
	})
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- message{sessionID: sessionID, payload: raw}:
	case <-h.ctx.Done():
	}
	return nil
}

// SessionClients возвращает число подключений сессии.
func (h *Hub) SessionClients(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.sessionID]; !ok {
		h.clients[client.sessionID] = make(map[*Client]struct{})
	}
	h.clients[client.sessionID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
		delete(h.clients, sessionID)
	}
}

func (h *Hub) send(sessionID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[sessionID] {
		select {
		case client.send <- payload:
		default:
			// Медленный клиент отключается.
			c := client
			goroutine.SafeGo("ws.close", c.Close)
		}
	}
}
