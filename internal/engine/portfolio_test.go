package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mark3tsim/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name           string
		balance        float64
		open           []*models.VirtualTrade
		closed         []*models.VirtualTrade
		wantUnrealized float64
		wantRealized   float64
		wantTotalValue float64
		wantWinRate    float64
	}{
		{
			name:           "empty portfolio",
			balance:        100000,
			wantTotalValue: 100000,
		},
		{
			name:    "open trades only",
			balance: 98000,
			open: []*models.VirtualTrade{
				{Amount: 1000, UnrealizedPnL: 250},
				{Amount: 1000, UnrealizedPnL: -100},
			},
			wantUnrealized: 150,
			wantTotalValue: 98000 + 1000 + 250 + 1000 - 100,
		},
		{
			name:    "mixed wins and losses",
			balance: 100150,
			closed: []*models.VirtualTrade{
				{Amount: 1000, RealizedPnL: fptr(200)},
				{Amount: 1000, RealizedPnL: fptr(-50)},
			},
			wantRealized:   150,
			wantTotalValue: 100150,
			wantWinRate:    50,
		},
		{
			name:    "breakeven close counts as loss",
			balance: 100000,
			closed: []*models.VirtualTrade{
				{Amount: 500, RealizedPnL: fptr(0)},
			},
			wantTotalValue: 100000,
			wantWinRate:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			portfolio := &models.VirtualPortfolio{
				Balance:      tt.balance,
				OpenTrades:   tt.open,
				ClosedTrades: tt.closed,
			}

			recalculate(portfolio)

			assert.InDelta(t, tt.wantUnrealized, portfolio.UnrealizedPnL, 1e-9)
			assert.InDelta(t, tt.wantRealized, portfolio.RealizedPnL, 1e-9)
			assert.InDelta(t, tt.wantUnrealized+tt.wantRealized, portfolio.TotalPnL, 1e-9)
			assert.InDelta(t, tt.wantTotalValue, portfolio.TotalValue, 1e-9)
			assert.InDelta(t, tt.wantWinRate, portfolio.WinRate, 1e-9)
		})
	}
}

func TestRecalculate_IsIdempotent(t *testing.T) {
	portfolio := &models.VirtualPortfolio{
		Balance: 99000,
		OpenTrades: []*models.VirtualTrade{
			{Amount: 1000, UnrealizedPnL: 42},
		},
		ClosedTrades: []*models.VirtualTrade{
			{Amount: 500, RealizedPnL: fptr(-10)},
		},
	}

	recalculate(portfolio)
	first := *portfolio
	recalculate(portfolio)

	assert.Equal(t, first.UnrealizedPnL, portfolio.UnrealizedPnL)
	assert.Equal(t, first.RealizedPnL, portfolio.RealizedPnL)
	assert.Equal(t, first.TotalPnL, portfolio.TotalPnL)
	assert.Equal(t, first.TotalValue, portfolio.TotalValue)
	assert.Equal(t, first.WinRate, portfolio.WinRate)
}
