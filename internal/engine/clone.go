package engine

import "mark3tsim/internal/models"

// The tick goroutine mutates open trades and portfolio aggregates in place,
// so every read API hands callers a deep copy instead of a pointer into the
// mutex-guarded state. Performance summaries and closed trades are immutable
// once written and are shared as-is.

func cloneTrade(trade *models.VirtualTrade) *models.VirtualTrade {
	cloned := *trade
	if trade.ExitPrice != nil {
		v := *trade.ExitPrice
		cloned.ExitPrice = &v
	}
	if trade.CloseTimestamp != nil {
		v := *trade.CloseTimestamp
		cloned.CloseTimestamp = &v
	}
	if trade.RealizedPnL != nil {
		v := *trade.RealizedPnL
		cloned.RealizedPnL = &v
	}
	return &cloned
}

func cloneTrades(trades []*models.VirtualTrade) []*models.VirtualTrade {
	cloned := make([]*models.VirtualTrade, len(trades))
	for i, trade := range trades {
		cloned[i] = cloneTrade(trade)
	}
	return cloned
}

func clonePortfolio(portfolio *models.VirtualPortfolio) *models.VirtualPortfolio {
	cloned := *portfolio
	cloned.OpenTrades = cloneTrades(portfolio.OpenTrades)
	cloned.ClosedTrades = cloneTrades(portfolio.ClosedTrades)
	return &cloned
}

func cloneSession(session *models.SimSession) *models.SimSession {
	cloned := *session
	if session.EndTime != nil {
		v := *session.EndTime
		cloned.EndTime = &v
	}
	if session.FinalBalance != nil {
		v := *session.FinalBalance
		cloned.FinalBalance = &v
	}
	return &cloned
}
