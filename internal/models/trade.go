package models

type TradeSide string
type TradeStatus string
type RiskLevel string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"

	TradeStatusOpen       TradeStatus = "open"
	TradeStatusClosed     TradeStatus = "closed"
	TradeStatusLiquidated TradeStatus = "liquidated"

	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// IsValid reports whether the side is one of the two supported directions.
func (s TradeSide) IsValid() bool {
	return s == TradeSideBuy || s == TradeSideSell
}

// VirtualTrade is one leveraged position in a simulation session. Amount is
// the collateral committed in balance units; price movement scaled by
// leverage acts on that amount. Timestamps are Unix milliseconds.
type VirtualTrade struct {
	ID               string      `json:"id"`
	SessionID        string      `json:"sessionId"`
	AssetID          string      `json:"assetId"`
	AssetSymbol      string      `json:"assetSymbol"`
	AssetName        string      `json:"assetName"`
	Side             TradeSide   `json:"type"`
	EntryPrice       float64     `json:"entryPrice"`
	CurrentPrice     float64     `json:"currentPrice"`
	ExitPrice        *float64    `json:"exitPrice,omitempty"`
	Amount           float64     `json:"amount"`
	Leverage         float64     `json:"leverage"`
	Timestamp        int64       `json:"timestamp"`
	CloseTimestamp   *int64      `json:"closeTimestamp,omitempty"`
	Status           TradeStatus `json:"status"`
	UnrealizedPnL    float64     `json:"unrealizedPnL"`
	RealizedPnL      *float64    `json:"realizedPnL,omitempty"`
	GasFee           float64     `json:"gasFee"`
	LiquidationPrice float64     `json:"liquidationPrice"`
	RiskLevel        RiskLevel   `json:"riskLevel"`
}
