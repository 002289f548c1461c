package types

// MessageType defines the type of WebSocket message
type MessageType string

const (
	ConnectionStatus MessageType = "connection_status"
	MarketTick       MessageType = "market_tick"
	PortfolioUpdate  MessageType = "portfolio_update"
	SessionEnded     MessageType = "session_ended"
	Error            MessageType = "error"
)

// WebSocketMessage represents a WebSocket message
type WebSocketMessage struct {
	Type MessageType `json:"type"`
	Data interface{} `json:"data"`
}

// ConnectionStatusData represents connection status message data
type ConnectionStatusData struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
