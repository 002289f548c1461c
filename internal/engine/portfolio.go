package engine

import "mark3tsim/internal/models"

// recalculate rebuilds every aggregate field of a portfolio from its trade
// lists. The aggregates are never patched in isolation: after any trade
// mutation this is the only way they change, so they always equal a pure
// function of the trade lists.
func recalculate(portfolio *models.VirtualPortfolio) {
	var unrealized float64
	var openValue float64
	for _, trade := range portfolio.OpenTrades {
		unrealized += trade.UnrealizedPnL
		openValue += trade.Amount + trade.UnrealizedPnL
	}

	var realized float64
	winning := 0
	for _, trade := range portfolio.ClosedTrades {
		if trade.RealizedPnL == nil {
			continue
		}
		realized += *trade.RealizedPnL
		if *trade.RealizedPnL > 0 {
			winning++
		}
	}

	portfolio.UnrealizedPnL = unrealized
	portfolio.RealizedPnL = realized
	portfolio.TotalPnL = unrealized + realized
	portfolio.TotalValue = portfolio.Balance + openValue

	if len(portfolio.ClosedTrades) > 0 {
		portfolio.WinRate = float64(winning) / float64(len(portfolio.ClosedTrades)) * 100
	} else {
		portfolio.WinRate = 0
	}
}
