package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mark3tsim/internal/engine"
)

type HealthHandler struct {
	engine    *engine.Engine
	wsHandler *WebSocketHandler
}

func NewHealthHandler(eng *engine.Engine, wsHandler *WebSocketHandler) *HealthHandler {
	return &HealthHandler{
		engine:    eng,
		wsHandler: wsHandler,
	}
}

// Health reports service liveness and engine state.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.engine.GetStatus()

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mark3tsim-backend",
		"engine":  status,
		"clients": h.wsHandler.GetHub().GetClientCount(),
	})
}
