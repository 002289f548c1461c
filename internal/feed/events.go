package feed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"mark3tsim/internal/models"
)

var eventTemplates = []models.SimMarketEvent{
	{
		Type:        "whale-buy",
		Title:       "Virtual Whale Buy Event Detected",
		Description: "Large accumulation pattern detected in simulation cluster",
		Impact:      models.ImpactHigh,
	},
	{
		Type:        "profit-cluster",
		Title:       "High-Profit Simulation Cluster Forming",
		Description: "Multiple profitable positions converging in virtual arena",
		Impact:      models.ImpactMedium,
	},
	{
		Type:        "sentiment-rally",
		Title:       "Sentiment-Driven Virtual Rally",
		Description: "Bullish momentum building across training sessions",
		Impact:      models.ImpactMedium,
	},
	{
		Type:        "training-surge",
		Title:       "Training Session Surge Among Top Clans",
		Description: "Elite clans intensifying MARK3T-SIM practice runs",
		Impact:      models.ImpactLow,
		ClanName:    "Cyber Dragons",
	},
	{
		Type:        "liquidity-squeeze",
		Title:       "Simulated Liquidity Squeeze Detected",
		Description: "Virtual order book depth declining rapidly",
		Impact:      models.ImpactHigh,
	},
}

// Events generates count simulated market events from the fixed templates,
// stamped within the past hour and sorted newest first. Most events are
// attributed to a random catalog asset.
func Events(count int) []models.SimMarketEvent {
	if count <= 0 {
		count = 5
	}

	assets := Snapshot()
	now := time.Now().UnixMilli()

	events := make([]models.SimMarketEvent, 0, count)
	for i := 0; i < count; i++ {
		event := eventTemplates[rand.Intn(len(eventTemplates))]
		event.ID = fmt.Sprintf("sim-event-%d-%d", now, i)
		event.Timestamp = now - int64(rand.Intn(3600000))
		if rand.Float64() > 0.3 {
			event.AssetSymbol = assets[rand.Intn(len(assets))].Symbol
		}
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp > events[j].Timestamp
	})
	return events
}
