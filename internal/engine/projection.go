package engine

import "mark3tsim/internal/models"

const (
	projectionSteps  = 20
	projectionStepMs = 300000 // 5 minutes per step
)

// Projection sketches a randomized forward walk for one trade: 20 price
// points five simulated minutes apart with the matching P&L, plus fixed
// risk zones. Purely cosmetic; it never feeds back into the engine state.
func (e *Engine) Projection(sessionID, tradeID string) (*models.ProjectionData, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	portfolio, ok := e.portfolios[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	trade := findTrade(portfolio, tradeID)
	if trade == nil {
		return nil, ErrTradeNotFound
	}

	trend := 0.002
	if trade.Side == models.TradeSideSell {
		trend = -0.002
	}
	const volatility = 0.05

	projection := &models.ProjectionData{
		PricePoints: make([]float64, 0, projectionSteps+1),
		TimePoints:  make([]int64, 0, projectionSteps+1),
		ProfitLoss:  make([]float64, 0, projectionSteps+1),
	}

	for i := 0; i <= projectionSteps; i++ {
		priceChange := trend + (e.rng.Float64()-0.5)*volatility
		price := trade.EntryPrice * (1 + priceChange*float64(i))
		pnl := signedPriceDiff(trade.Side, trade.EntryPrice, price)*trade.Amount*trade.Leverage - trade.GasFee

		projection.PricePoints = append(projection.PricePoints, price)
		projection.TimePoints = append(projection.TimePoints, int64(i)*projectionStepMs)
		projection.ProfitLoss = append(projection.ProfitLoss, pnl)
	}

	projection.RiskZones = []models.RiskZone{
		{Start: 0, End: projectionSteps * 0.3, Level: models.RiskZoneSafe},
		{Start: projectionSteps * 0.3, End: projectionSteps * 0.7, Level: models.RiskZoneCaution},
		{Start: projectionSteps * 0.7, End: projectionSteps, Level: models.RiskZoneDanger},
	}

	return projection, nil
}

func findTrade(portfolio *models.VirtualPortfolio, tradeID string) *models.VirtualTrade {
	for _, trade := range portfolio.OpenTrades {
		if trade.ID == tradeID {
			return trade
		}
	}
	for _, trade := range portfolio.ClosedTrades {
		if trade.ID == tradeID {
			return trade
		}
	}
	return nil
}
