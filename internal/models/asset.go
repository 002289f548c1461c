package models

type Volatility string

const (
	VolatilityLow     Volatility = "low"
	VolatilityMedium  Volatility = "medium"
	VolatilityHigh    Volatility = "high"
	VolatilityExtreme Volatility = "extreme"
)

// Severity orders volatility tiers from low (0) to extreme (3).
func (v Volatility) Severity() int {
	switch v {
	case VolatilityExtreme:
		return 3
	case VolatilityHigh:
		return 2
	case VolatilityMedium:
		return 1
	default:
		return 0
	}
}

type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

type AssetSource string

const (
	SourceArbScan        AssetSource = "arbscan"
	SourceCoinFisher     AssetSource = "coin-fisher"
	SourceMarket         AssetSource = "market"
	SourceStakez         AssetSource = "stak3z"
	SourceMarketAnalysis AssetSource = "market-analysis"
)

// SimAsset is one entry of the synthetic market catalog. Prices and 24h
// changes are re-jittered on every feed snapshot and on every engine tick,
// so instances are ephemeral; only the ID is stable across regenerations.
type SimAsset struct {
	ID           string      `json:"id"`
	Symbol       string      `json:"symbol"`
	Name         string      `json:"name"`
	CurrentPrice float64     `json:"currentPrice"`
	Change24h    float64     `json:"change24h"`
	Volatility   Volatility  `json:"volatility"`
	Sentiment    Sentiment   `json:"sentiment"`
	Source       AssetSource `json:"source"`
	Volume24h    float64     `json:"volume24h"`
	MarketCap    float64     `json:"marketCap"`
}

type EventImpact string

const (
	ImpactLow    EventImpact = "low"
	ImpactMedium EventImpact = "medium"
	ImpactHigh   EventImpact = "high"
)

// SimMarketEvent is a simulated market headline shown on the dashboard feed.
type SimMarketEvent struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	AssetSymbol string      `json:"assetSymbol,omitempty"`
	Impact      EventImpact `json:"impact"`
	Timestamp   int64       `json:"timestamp"`
	ClanName    string      `json:"clanName,omitempty"`
}
