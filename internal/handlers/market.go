package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mark3tsim/internal/engine"
	"mark3tsim/internal/feed"
	"mark3tsim/internal/models"
)

const defaultMarketLimit = 5

// MarketHandler serves the synthetic market catalog. The assets endpoint
// reads the engine's live (tick-updated) catalog so entry prices line up
// with what trades execute against; movers, volatility and events are
// fresh feed snapshots.
type MarketHandler struct {
	engine *engine.Engine
}

func NewMarketHandler(eng *engine.Engine) *MarketHandler {
	return &MarketHandler{engine: eng}
}

// GET /api/v1/market/assets
func (mh *MarketHandler) GetAssets(c *gin.Context) {
	assets := mh.engine.Assets()
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// GET /api/v1/market/movers?limit=5
func (mh *MarketHandler) GetTopMovers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": feed.TopMovers(limitQuery(c))})
}

// GET /api/v1/market/volatile?limit=5
func (mh *MarketHandler) GetHighVolatility(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assets": feed.HighVolatility(limitQuery(c))})
}

// GET /api/v1/market/sources/:source
func (mh *MarketHandler) GetBySource(c *gin.Context) {
	source := models.AssetSource(c.Param("source"))
	c.JSON(http.StatusOK, gin.H{"assets": feed.BySource(source)})
}

// GET /api/v1/market/events?limit=5
func (mh *MarketHandler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": feed.Events(limitQuery(c))})
}

func limitQuery(c *gin.Context) int {
	raw := c.DefaultQuery("limit", strconv.Itoa(defaultMarketLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultMarketLimit
	}
	return limit
}

// RegisterMarketRoutes registers all market data routes
func RegisterMarketRoutes(router *gin.RouterGroup, handler *MarketHandler) {
	market := router.Group("/market")
	{
		market.GET("/assets", handler.GetAssets)
		market.GET("/movers", handler.GetTopMovers)
		market.GET("/volatile", handler.GetHighVolatility)
		market.GET("/sources/:source", handler.GetBySource)
		market.GET("/events", handler.GetEvents)
	}
}
