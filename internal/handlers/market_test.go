package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mark3tsim/internal/models"
)

func TestGetAssets(t *testing.T) {
	router, _ := newTestRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/market/assets", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assets []models.SimAsset `json:"assets"`
	}
	decodeJSON(t, w, &resp)
	assert.Len(t, resp.Assets, 12)
	for _, asset := range resp.Assets {
		assert.NotEmpty(t, asset.ID)
		assert.Greater(t, asset.CurrentPrice, 0.0)
	}
}

func TestGetTopMovers_RespectsLimit(t *testing.T) {
	router, _ := newTestRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/market/movers?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assets []models.SimAsset `json:"assets"`
	}
	decodeJSON(t, w, &resp)
	assert.Len(t, resp.Assets, 3)
}

func TestGetHighVolatility_DefaultLimit(t *testing.T) {
	router, _ := newTestRouter()

	// A bad limit falls back to the default
	w := performRequest(router, http.MethodGet, "/api/v1/market/volatile?limit=bogus", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assets []models.SimAsset `json:"assets"`
	}
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Assets)
	for _, asset := range resp.Assets {
		assert.Contains(t, []models.Volatility{models.VolatilityHigh, models.VolatilityExtreme}, asset.Volatility)
	}
}

func TestGetBySource(t *testing.T) {
	router, _ := newTestRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/market/sources/arbscan", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assets []models.SimAsset `json:"assets"`
	}
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Assets)
	for _, asset := range resp.Assets {
		assert.Equal(t, models.SourceArbScan, asset.Source)
	}
}

func TestGetEvents(t *testing.T) {
	router, _ := newTestRouter()

	w := performRequest(router, http.MethodGet, "/api/v1/market/events?limit=4", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []models.SimMarketEvent `json:"events"`
	}
	decodeJSON(t, w, &resp)
	assert.Len(t, resp.Events, 4)
	for _, event := range resp.Events {
		assert.NotEmpty(t, event.ID)
		assert.NotEmpty(t, event.Type)
	}
}
