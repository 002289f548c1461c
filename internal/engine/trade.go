package engine

import (
	"time"

	"github.com/google/uuid"

	"mark3tsim/internal/models"
)

// volatilityMultiplier maps an asset's volatility tier to the liquidation
// distance factor.
func volatilityMultiplier(v models.Volatility) float64 {
	switch v {
	case models.VolatilityExtreme:
		return 0.15
	case models.VolatilityHigh:
		return 0.10
	case models.VolatilityMedium:
		return 0.05
	default:
		return 0.03
	}
}

// liquidationPrice is the price at which the position's losses consume its
// full collateral: longs liquidate below entry, shorts above.
func liquidationPrice(side models.TradeSide, entry, multiplier, leverage float64) float64 {
	if side == models.TradeSideBuy {
		return entry * (1 - multiplier*leverage)
	}
	return entry * (1 + multiplier*leverage)
}

// riskLevelFor combines the leverage tier and the asset volatility tier; the
// higher severity of the two wins.
func riskLevelFor(leverage float64, volatility models.Volatility) models.RiskLevel {
	severity := volatility.Severity()
	switch {
	case leverage >= 10 || severity >= 3:
		return models.RiskExtreme
	case leverage >= 5 || severity >= 2:
		return models.RiskHigh
	case leverage >= 2 || severity >= 1:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// signedPriceDiff returns the price move in the trade's favor: longs gain
// when price rises, shorts when it falls.
func signedPriceDiff(side models.TradeSide, entry, current float64) float64 {
	if side == models.TradeSideBuy {
		return current - entry
	}
	return entry - current
}

func liquidationCrossed(trade *models.VirtualTrade) bool {
	if trade.Side == models.TradeSideBuy {
		return trade.CurrentPrice <= trade.LiquidationPrice
	}
	return trade.CurrentPrice >= trade.LiquidationPrice
}

// OpenTrade opens a leveraged position against the current catalog price.
// The portfolio balance is debited by amount plus the simulated gas fee; the
// expected failure paths return nil and a sentinel error.
//
// Liquidation is evaluated only on ticks. A fresh trade enters at the live
// price, so it can never start beyond its own threshold; the earliest it can
// liquidate is the next tick.
func (e *Engine) OpenTrade(sessionID, assetID string, side models.TradeSide, amount, leverage float64, simulateGas bool) (*models.VirtualTrade, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if leverage < 1 {
		return nil, ErrInvalidLeverage
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Status != models.SessionStatusActive {
		return nil, ErrSessionNotActive
	}
	portfolio := e.portfolios[sessionID]

	asset, ok := e.assetByID(assetID)
	if !ok {
		return nil, ErrAssetNotFound
	}

	var gasFee float64
	if simulateGas {
		gasFee = e.cfg.GasFeeBase * (1 + e.rng.Float64())
	}

	if portfolio.Balance < amount+gasFee {
		return nil, ErrInsufficientBalance
	}

	multiplier := volatilityMultiplier(asset.Volatility)
	trade := &models.VirtualTrade{
		ID:               uuid.New().String(),
		SessionID:        sessionID,
		AssetID:          asset.ID,
		AssetSymbol:      asset.Symbol,
		AssetName:        asset.Name,
		Side:             side,
		EntryPrice:       asset.CurrentPrice,
		CurrentPrice:     asset.CurrentPrice,
		Amount:           amount,
		Leverage:         leverage,
		Timestamp:        time.Now().UnixMilli(),
		Status:           models.TradeStatusOpen,
		UnrealizedPnL:    -gasFee,
		GasFee:           gasFee,
		LiquidationPrice: liquidationPrice(side, asset.CurrentPrice, multiplier, leverage),
		RiskLevel:        riskLevelFor(leverage, asset.Volatility),
	}

	portfolio.OpenTrades = append(portfolio.OpenTrades, trade)
	portfolio.Balance -= amount + gasFee
	portfolio.TradeCount++

	recalculate(portfolio)

	return cloneTrade(trade), nil
}

// CloseTrade realizes a position at its last-known current price and credits
// amount plus realized P&L back to the balance.
func (e *Engine) CloseTrade(sessionID, tradeID string) (*models.VirtualTrade, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	portfolio, ok := e.portfolios[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	trade, err := e.closeTradeLocked(portfolio, tradeID)
	if err != nil {
		return nil, err
	}

	recalculate(portfolio)
	return cloneTrade(trade), nil
}

// closeTradeLocked moves one trade from the open to the closed list. The
// caller holds the engine lock and recomputes the portfolio afterwards.
func (e *Engine) closeTradeLocked(portfolio *models.VirtualPortfolio, tradeID string) (*models.VirtualTrade, error) {
	index := -1
	for i, trade := range portfolio.OpenTrades {
		if trade.ID == tradeID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrTradeNotFound
	}

	trade := portfolio.OpenTrades[index]
	exitPrice := trade.CurrentPrice
	realized := signedPriceDiff(trade.Side, trade.EntryPrice, exitPrice)*trade.Amount*trade.Leverage - trade.GasFee
	now := time.Now().UnixMilli()

	trade.ExitPrice = &exitPrice
	trade.CloseTimestamp = &now
	trade.Status = models.TradeStatusClosed
	trade.RealizedPnL = &realized

	portfolio.OpenTrades = append(portfolio.OpenTrades[:index], portfolio.OpenTrades[index+1:]...)
	portfolio.ClosedTrades = append(portfolio.ClosedTrades, trade)
	portfolio.Balance += trade.Amount + realized

	return trade, nil
}

// liquidate force-closes a trade whose price crossed the liquidation
// threshold. The full collateral is lost: both P&L fields are pinned to
// -amount and nothing is credited back to the balance.
func (e *Engine) liquidate(portfolio *models.VirtualPortfolio, trade *models.VirtualTrade) {
	loss := -trade.Amount
	exitPrice := trade.CurrentPrice
	now := time.Now().UnixMilli()

	trade.Status = models.TradeStatusLiquidated
	trade.UnrealizedPnL = loss
	trade.RealizedPnL = &loss
	trade.ExitPrice = &exitPrice
	trade.CloseTimestamp = &now

	portfolio.ClosedTrades = append(portfolio.ClosedTrades, trade)
}
