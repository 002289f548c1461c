package websocket

import (
	"log"

	"github.com/gorilla/websocket"
)

// Client represents one connected WebSocket consumer. Clients are read-only
// dashboards: they receive tick and portfolio broadcasts and send nothing
// the server acts on.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Hub  *Hub
	ID   string
}

func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
		Hub:  hub,
		ID:   generateClientID(),
	}
}

// readPump drains the connection so control frames are processed and the
// connection close is noticed. Inbound payloads are ignored.
func (c *Client) readPump() {
	defer func() {
		c.Hub.UnregisterClient(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetPongHandler(func(string) error {
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for client %s: %v", c.ID, err)
			}
			break
		}
	}
}

// writePump forwards broadcast messages to the connection.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error for client %s: %v", c.ID, err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// Start starts the client's read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
