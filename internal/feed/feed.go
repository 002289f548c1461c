// Package feed supplies synthetic market snapshots for a fixed catalog of
// simulated assets. Every snapshot re-jitters prices from the static pool,
// so repeated calls intentionally disagree: the catalog behaves like a live
// feed without any upstream data source.
package feed

import (
	"math/rand"
	"sort"

	"mark3tsim/internal/models"
)

const (
	// Per-snapshot jitter bounds: price +-2.5%, 24h change +-1pp.
	snapshotPriceJitter  = 0.05
	snapshotChangeJitter = 2.0
)

var assetPool = []models.SimAsset{
	{ID: "sim-btc", Symbol: "BTC", Name: "Bitcoin", CurrentPrice: 43250.50, Change24h: 2.4, Volatility: models.VolatilityMedium, Sentiment: models.SentimentBullish, Source: models.SourceArbScan, Volume24h: 28500000000, MarketCap: 845000000000},
	{ID: "sim-eth", Symbol: "ETH", Name: "Ethereum", CurrentPrice: 2280.75, Change24h: -1.2, Volatility: models.VolatilityMedium, Sentiment: models.SentimentNeutral, Source: models.SourceArbScan, Volume24h: 12400000000, MarketCap: 274000000000},
	{ID: "sim-sol", Symbol: "SOL", Name: "Solana", CurrentPrice: 98.30, Change24h: 8.5, Volatility: models.VolatilityHigh, Sentiment: models.SentimentBullish, Source: models.SourceCoinFisher, Volume24h: 3200000000, MarketCap: 42000000000},
	{ID: "sim-bnb", Symbol: "BNB", Name: "BNB", CurrentPrice: 315.40, Change24h: 1.8, Volatility: models.VolatilityLow, Sentiment: models.SentimentBullish, Source: models.SourceStakez, Volume24h: 1800000000, MarketCap: 48500000000},
	{ID: "sim-ada", Symbol: "ADA", Name: "Cardano", CurrentPrice: 0.52, Change24h: -3.1, Volatility: models.VolatilityMedium, Sentiment: models.SentimentBearish, Source: models.SourceArbScan, Volume24h: 480000000, MarketCap: 18400000000},
	{ID: "sim-avax", Symbol: "AVAX", Name: "Avalanche", CurrentPrice: 37.80, Change24h: 5.2, Volatility: models.VolatilityHigh, Sentiment: models.SentimentBullish, Source: models.SourceCoinFisher, Volume24h: 720000000, MarketCap: 14200000000},
	{ID: "sim-dot", Symbol: "DOT", Name: "Polkadot", CurrentPrice: 6.85, Change24h: -0.8, Volatility: models.VolatilityMedium, Sentiment: models.SentimentNeutral, Source: models.SourceArbScan, Volume24h: 340000000, MarketCap: 9200000000},
	{ID: "sim-matic", Symbol: "MATIC", Name: "Polygon", CurrentPrice: 0.78, Change24h: 12.3, Volatility: models.VolatilityExtreme, Sentiment: models.SentimentBullish, Source: models.SourceMarketAnalysis, Volume24h: 620000000, MarketCap: 7300000000},
	{ID: "sim-link", Symbol: "LINK", Name: "Chainlink", CurrentPrice: 14.60, Change24h: 4.1, Volatility: models.VolatilityMedium, Sentiment: models.SentimentBullish, Source: models.SourceStakez, Volume24h: 580000000, MarketCap: 8400000000},
	{ID: "sim-uni", Symbol: "UNI", Name: "Uniswap", CurrentPrice: 6.25, Change24h: -2.4, Volatility: models.VolatilityHigh, Sentiment: models.SentimentNeutral, Source: models.SourceMarket, Volume24h: 180000000, MarketCap: 4700000000},
	{ID: "sim-atom", Symbol: "ATOM", Name: "Cosmos", CurrentPrice: 9.45, Change24h: 3.7, Volatility: models.VolatilityMedium, Sentiment: models.SentimentBullish, Source: models.SourceCoinFisher, Volume24h: 210000000, MarketCap: 3800000000},
	{ID: "sim-xrp", Symbol: "XRP", Name: "Ripple", CurrentPrice: 0.58, Change24h: -1.5, Volatility: models.VolatilityLow, Sentiment: models.SentimentBearish, Source: models.SourceArbScan, Volume24h: 1200000000, MarketCap: 31000000000},
}

// Snapshot returns the full catalog with fresh price and 24h-change jitter.
func Snapshot() []models.SimAsset {
	assets := make([]models.SimAsset, len(assetPool))
	for i, asset := range assetPool {
		asset.CurrentPrice = asset.CurrentPrice * (1 + (rand.Float64()-0.5)*snapshotPriceJitter)
		asset.Change24h = asset.Change24h + (rand.Float64()-0.5)*snapshotChangeJitter
		assets[i] = asset
	}
	return assets
}

// AssetByID returns the pool entry with the given ID, without jitter.
func AssetByID(id string) (models.SimAsset, bool) {
	for _, asset := range assetPool {
		if asset.ID == id {
			return asset, true
		}
	}
	return models.SimAsset{}, false
}

// TopMovers returns up to limit assets ordered by greatest absolute 24h change.
func TopMovers(limit int) []models.SimAsset {
	assets := Snapshot()
	sort.Slice(assets, func(i, j int) bool {
		return abs(assets[i].Change24h) > abs(assets[j].Change24h)
	})
	if limit > 0 && limit < len(assets) {
		assets = assets[:limit]
	}
	return assets
}

// HighVolatility returns up to limit assets whose volatility tier is high
// or extreme.
func HighVolatility(limit int) []models.SimAsset {
	var assets []models.SimAsset
	for _, asset := range Snapshot() {
		if asset.Volatility == models.VolatilityHigh || asset.Volatility == models.VolatilityExtreme {
			assets = append(assets, asset)
		}
	}
	if limit > 0 && limit < len(assets) {
		assets = assets[:limit]
	}
	return assets
}

// BySource returns the assets tagged with the given source.
func BySource(source models.AssetSource) []models.SimAsset {
	var assets []models.SimAsset
	for _, asset := range Snapshot() {
		if asset.Source == source {
			assets = append(assets, asset)
		}
	}
	return assets
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
