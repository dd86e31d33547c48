package websocket

import (
	"encoding/json"
	"sync"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
)

// Hub tracks connected clients per session and routes ingestion events to
// them. Events carrying a session_id go only to that session's connections;
// events without one go to everybody.
type Hub struct {
	// clients map: session ID -> list of connections (multi-tab)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast delivers one event. Implements service.ProgressDelivery.
func (h *Hub) Broadcast(eventType string, payload map[string]interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		h.logger.Warn("Hub", "Failed to encode event", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}

	if sessionID, ok := payload["session_id"].(string); ok && sessionID != "" {
		h.sendToSession(sessionID, data)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			h.deliver(client, data)
		}
	}
}

func (h *Hub) sendToSession(sessionID string, data []byte) {
	h.mu.RLock()
	clients := h.clients[sessionID]
	h.mu.RUnlock()

	for _, client := range clients {
		h.deliver(client, data)
	}
}

func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"session_id": client.SessionID})
		go func() { h.unregister <- client }()
	}
}
