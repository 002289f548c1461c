package engine

import (
	"math"

	"mark3tsim/internal/models"
)

// buildPerformance derives the immutable end-of-session summary from a
// portfolio whose open trades have all been closed. Caller holds the lock.
func buildPerformance(sessionID string, portfolio *models.VirtualPortfolio) *models.SimPerformance {
	winning := 0
	losing := 0
	var bestTrade, worstTrade *models.VirtualTrade
	var volumeTraded float64
	var totalHold float64

	for _, trade := range portfolio.ClosedTrades {
		realized := 0.0
		if trade.RealizedPnL != nil {
			realized = *trade.RealizedPnL
		}

		if realized > 0 {
			winning++
		} else {
			losing++
		}
		if bestTrade == nil || realized > realizedOf(bestTrade) {
			bestTrade = trade
		}
		if worstTrade == nil || realized < realizedOf(worstTrade) {
			worstTrade = trade
		}

		volumeTraded += trade.Amount
		if trade.CloseTimestamp != nil {
			totalHold += float64(*trade.CloseTimestamp - trade.Timestamp)
		}
	}

	var averageHold float64
	if len(portfolio.ClosedTrades) > 0 {
		averageHold = totalHold / float64(len(portfolio.ClosedTrades))
	}

	totalProfit := portfolio.TotalPnL
	profitPercentage := totalProfit / portfolio.InitialBalance * 100

	sessionScore := int(math.Floor(profitPercentage*10 + portfolio.WinRate*5 + float64(portfolio.TradeCount)*2))
	if sessionScore < 0 {
		sessionScore = 0
	}
	casualScore := sessionScore / 10
	clanContribution := int(math.Floor(float64(casualScore) * 1.5))

	var sharpe float64
	if profitPercentage > 0 {
		sharpe = profitPercentage / 10
	}

	return &models.SimPerformance{
		SessionID:         sessionID,
		TotalProfit:       totalProfit,
		ProfitPercentage:  profitPercentage,
		WinningTrades:     winning,
		LosingTrades:      losing,
		TotalTrades:       portfolio.TradeCount,
		WinRate:           portfolio.WinRate,
		BestTrade:         bestTrade,
		WorstTrade:        worstTrade,
		VolumeTraded:      volumeTraded,
		Accuracy:          portfolio.WinRate,
		SessionScore:      sessionScore,
		CasualScoreEarned: casualScore,
		ClanContribution:  clanContribution,
		AverageHoldTime:   averageHold,
		MaxDrawdown:       math.Min(0, totalProfit),
		SharpeRatio:       sharpe,
	}
}

func realizedOf(trade *models.VirtualTrade) float64 {
	if trade.RealizedPnL == nil {
		return 0
	}
	return *trade.RealizedPnL
}
