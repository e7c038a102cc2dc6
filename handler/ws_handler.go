package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Ophelia-lia/customer-system/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// Socket upgrades to WS and registers the connection for data-change events.
// Clients only listen; inbound messages are discarded.
func (h *WSHandler) Socket() gin.HandlerFunc {
	return func(c *gin.Context) {
		// auth middleware runs before this handler
		username := c.GetString("username")
		if username == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "username missing in context"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.Register(username, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(username)
				break
			}
		}
	}
}
