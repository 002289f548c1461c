package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	ws "mark3tsim/internal/handlers/websocket"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

// WebSocketHandler upgrades connections and attaches them to the hub.
type WebSocketHandler struct {
	hub *ws.Hub
}

func NewWebSocketHandler() *WebSocketHandler {
	hub := ws.NewHub()
	go hub.Run()
	return &WebSocketHandler{hub: hub}
}

// GetHub returns the hub so the engine can broadcast through it.
func (wh *WebSocketHandler) GetHub() *ws.Hub {
	return wh.hub
}

// HandleWebSocket handles GET /ws
func (wh *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade WebSocket connection: %v", err)
		return
	}

	client := ws.NewClient(conn, wh.hub)
	wh.hub.RegisterClient(client)
	client.Start()
}
