package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks connected clients by username and pushes data-change events to
// them. One connection per username; a newer connection replaces the old one.
type Hub struct {
	mu     sync.RWMutex
	byUser map[string]*wsConn
}

func NewHub() *Hub {
	return &Hub{byUser: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (h *Hub) Register(username string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byUser[username]; ok {
		old.conn.Close()
	}
	h.byUser[username] = &wsConn{conn: conn}
}

func (h *Hub) Unregister(username string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byUser[username]; ok {
		c.conn.Close()
		delete(h.byUser, username)
	}
}

// Broadcast sends a typed event payload to every connected client. Write
// failures are logged and skipped; a dead connection is cleaned up by its
// read loop.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	conns := make(map[string]*wsConn, len(h.byUser))
	for u, wc := range h.byUser {
		conns[u] = wc
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for username, wc := range conns {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			log.Printf("ws: write to %s failed for event %s: %v", username, event, err)
		}
	}
}
