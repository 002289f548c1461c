package models

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusAbandoned SessionStatus = "abandoned"
)

// SimSession is one play session. It owns exactly one portfolio, matched by
// session ID. StartTime/EndTime are Unix milliseconds.
type SimSession struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	StartTime      int64           `json:"startTime"`
	EndTime        *int64          `json:"endTime,omitempty"`
	InitialBalance float64         `json:"initialBalance"`
	FinalBalance   *float64        `json:"finalBalance,omitempty"`
	Status         SessionStatus   `json:"status"`
	Performance    *SimPerformance `json:"performance,omitempty"`
}

// VirtualPortfolio aggregates the trades of one session. The aggregate
// fields (unrealized/realized/total P&L, total value, win rate) are always
// recomputed from the trade lists; they carry no independent state.
type VirtualPortfolio struct {
	SessionID      string          `json:"sessionId"`
	UserID         string          `json:"userId"`
	Balance        float64         `json:"balance"`
	InitialBalance float64         `json:"initialBalance"`
	TotalValue     float64         `json:"totalValue"`
	OpenTrades     []*VirtualTrade `json:"openTrades"`
	ClosedTrades   []*VirtualTrade `json:"closedTrades"`
	UnrealizedPnL  float64         `json:"unrealizedPnL"`
	RealizedPnL    float64         `json:"realizedPnL"`
	TotalPnL       float64         `json:"totalPnL"`
	WinRate        float64         `json:"winRate"`
	TradeCount     int             `json:"tradeCount"`
}

// SimPerformance is the immutable summary computed once when a session ends.
// CasualScoreEarned and ClanContribution are the reward quantities handed to
// the external score systems; the engine itself never credits them.
type SimPerformance struct {
	SessionID         string        `json:"sessionId"`
	TotalProfit       float64       `json:"totalProfit"`
	ProfitPercentage  float64       `json:"profitPercentage"`
	WinningTrades     int           `json:"winningTrades"`
	LosingTrades      int           `json:"losingTrades"`
	TotalTrades       int           `json:"totalTrades"`
	WinRate           float64       `json:"winRate"`
	BestTrade         *VirtualTrade `json:"bestTrade"`
	WorstTrade        *VirtualTrade `json:"worstTrade"`
	VolumeTraded      float64       `json:"volumeTraded"`
	Accuracy          float64       `json:"accuracy"`
	SessionScore      int           `json:"sessionScore"`
	CasualScoreEarned int           `json:"casualScoreEarned"`
	ClanContribution  int           `json:"clanContribution"`
	AverageHoldTime   float64       `json:"averageHoldTime"` // milliseconds
	MaxDrawdown       float64       `json:"maxDrawdown"`
	SharpeRatio       float64       `json:"sharpeRatio"`
}

type RiskZoneLevel string

const (
	RiskZoneSafe    RiskZoneLevel = "safe"
	RiskZoneCaution RiskZoneLevel = "caution"
	RiskZoneDanger  RiskZoneLevel = "danger"
)

type RiskZone struct {
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Level RiskZoneLevel `json:"level"`
}

// ProjectionData is a randomized forward price/P&L walk for one trade,
// used by the trade panel to sketch possible outcomes.
type ProjectionData struct {
	PricePoints []float64  `json:"pricePoints"`
	TimePoints  []int64    `json:"timePoints"`
	ProfitLoss  []float64  `json:"profitLoss"`
	RiskZones   []RiskZone `json:"riskZones"`
}
