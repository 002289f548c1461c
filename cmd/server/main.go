package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"mark3tsim/internal/config"
	"mark3tsim/internal/engine"
	"mark3tsim/internal/handlers"
	"mark3tsim/internal/rewards"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware for development
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// WebSocket hub and handler
	wsHandler := handlers.NewWebSocketHandler()

	// One engine instance for the whole process, handed to every consumer
	eng := engine.NewEngine(engine.Config{
		TickInterval:   time.Duration(cfg.TickIntervalMs) * time.Millisecond,
		InitialBalance: cfg.InitialBalance,
		GasFeeBase:     cfg.GasFeeBase,
	}, wsHandler.GetHub())
	eng.Run()
	defer eng.Stop()

	ledger := rewards.NewLedger()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(eng, wsHandler)
	marketHandler := handlers.NewMarketHandler(eng)
	sessionHandler := handlers.NewSessionHandler(eng, ledger)

	// Health check endpoint
	r.GET("/health", healthHandler.Health)

	// WebSocket endpoint
	r.GET("/ws", wsHandler.HandleWebSocket)

	// API routes group
	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandler.Health)

		handlers.RegisterMarketRoutes(api, marketHandler)
		handlers.RegisterSessionRoutes(api, sessionHandler)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
