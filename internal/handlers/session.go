package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mark3tsim/internal/engine"
	"mark3tsim/internal/models"
	"mark3tsim/internal/rewards"
)

// SessionHandler exposes the trading simulation lifecycle over HTTP.
type SessionHandler struct {
	engine *engine.Engine
	ledger *rewards.Ledger
}

func NewSessionHandler(eng *engine.Engine, ledger *rewards.Ledger) *SessionHandler {
	return &SessionHandler{
		engine: eng,
		ledger: ledger,
	}
}

type StartSessionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type OpenTradeRequest struct {
	AssetID     string  `json:"assetId" binding:"required"`
	Side        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Leverage    float64 `json:"leverage"`
	SimulateGas bool    `json:"simulateGas"`
}

type EndSessionRequest struct {
	ClanID string `json:"clanId"`
}

// POST /api/v1/sessions
func (sh *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sh.engine.StartSession(req.UserID)
	c.JSON(http.StatusCreated, session)
}

// GET /api/v1/sessions?userId=...
func (sh *SessionHandler) GetActiveSessions(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sh.engine.GetActiveSessions(userID)})
}

// GET /api/v1/sessions/:id
func (sh *SessionHandler) LoadSession(c *gin.Context) {
	session, portfolio, err := sh.engine.LoadSession(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"portfolio": portfolio,
	})
}

// GET /api/v1/sessions/:id/portfolio
func (sh *SessionHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := sh.engine.CalculatePortfolio(c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// POST /api/v1/sessions/:id/trades
func (sh *SessionHandler) OpenTrade(c *gin.Context) {
	var req OpenTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	side := models.TradeSide(req.Side)
	if !side.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'buy' or 'sell'"})
		return
	}

	// Default to unleveraged when the field is omitted
	if req.Leverage == 0 {
		req.Leverage = 1
	}

	trade, err := sh.engine.OpenTrade(c.Param("id"), req.AssetID, side, req.Amount, req.Leverage, req.SimulateGas)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trade)
}

// POST /api/v1/sessions/:id/trades/:tradeId/close
func (sh *SessionHandler) CloseTrade(c *gin.Context) {
	trade, err := sh.engine.CloseTrade(c.Param("id"), c.Param("tradeId"))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

// GET /api/v1/sessions/:id/trades/:tradeId/projection
func (sh *SessionHandler) GetProjection(c *gin.Context) {
	projection, err := sh.engine.Projection(c.Param("id"), c.Param("tradeId"))
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}

// POST /api/v1/sessions/:id/end
func (sh *SessionHandler) EndSession(c *gin.Context) {
	// Body is optional; clanId only matters for clan crediting
	var req EndSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	sessionID := c.Param("id")
	session, _, err := sh.engine.LoadSession(sessionID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	performance, err := sh.engine.EndSession(sessionID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	// EndSession is call-once, so a credit failure here means the ledger was
	// fed this session through another path; surface it instead of retrying.
	if err := sh.ledger.Credit(sessionID, session.UserID, req.ClanID, performance); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, performance)
}

// POST /api/v1/sessions/:id/abandon
func (sh *SessionHandler) AbandonSession(c *gin.Context) {
	if err := sh.engine.AbandonSession(c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session abandoned"})
}

// GET /api/v1/rewards/users/:id
func (sh *SessionHandler) GetUserScore(c *gin.Context) {
	userID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"userId":      userID,
		"casualScore": sh.ledger.UserScore(userID),
	})
}

// GET /api/v1/rewards/clans/:id
func (sh *SessionHandler) GetClanScore(c *gin.Context) {
	clanID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"clanId":       clanID,
		"contribution": sh.ledger.ClanScore(clanID),
	})
}

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrSessionNotFound),
		errors.Is(err, engine.ErrAssetNotFound),
		errors.Is(err, engine.ErrTradeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrSessionNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// RegisterSessionRoutes registers all session and reward routes
func RegisterSessionRoutes(router *gin.RouterGroup, handler *SessionHandler) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", handler.StartSession)
		sessions.GET("", handler.GetActiveSessions)
		sessions.GET("/:id", handler.LoadSession)
		sessions.GET("/:id/portfolio", handler.GetPortfolio)
		sessions.POST("/:id/trades", handler.OpenTrade)
		sessions.POST("/:id/trades/:tradeId/close", handler.CloseTrade)
		sessions.GET("/:id/trades/:tradeId/projection", handler.GetProjection)
		sessions.POST("/:id/end", handler.EndSession)
		sessions.POST("/:id/abandon", handler.AbandonSession)
	}

	rewardsGroup := router.Group("/rewards")
	{
		rewardsGroup.GET("/users/:id", handler.GetUserScore)
		rewardsGroup.GET("/clans/:id", handler.GetClanScore)
	}
}
