// Package engine owns the lifecycle of simulated leveraged trading sessions:
// session and portfolio state, trade open/close, the periodic price tick,
// liquidation, and the end-of-session performance summary.
package engine

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"mark3tsim/internal/feed"
	"mark3tsim/internal/models"
	"mark3tsim/internal/types"
)

// Broadcaster pushes engine updates to connected clients. Implemented by the
// websocket hub; a nil Broadcaster disables broadcasting.
type Broadcaster interface {
	BroadcastMessage(msgType types.MessageType, data interface{})
}

const (
	DefaultTickInterval   = 3 * time.Second
	DefaultInitialBalance = 100000
	DefaultGasFeeBase     = 2.5

	// Per-tick jitter bounds: price +-1%, 24h change +-0.25pp.
	tickPriceJitter  = 0.02
	tickChangeJitter = 0.5
)

type Config struct {
	TickInterval   time.Duration
	InitialBalance float64
	GasFeeBase     float64
	Rand           *rand.Rand // optional, for deterministic runs
}

// Engine holds all simulation state behind one mutex. The tick goroutine and
// caller-triggered operations never overlap: every mutation takes the lock,
// refreshes prices before trades and trades before portfolio aggregates.
type Engine struct {
	mu         sync.RWMutex
	cfg        Config
	rng        *rand.Rand
	hub        Broadcaster
	assets     []models.SimAsset
	sessions   map[string]*models.SimSession
	portfolios map[string]*models.VirtualPortfolio
	tickCount  uint64

	running  bool
	stopChan chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// TickUpdateData is the payload broadcast after every price tick.
type TickUpdateData struct {
	Assets    []models.SimAsset `json:"assets"`
	Tick      uint64            `json:"tick"`
	Timestamp int64             `json:"timestamp"`
}

// Status describes the engine for the health endpoint.
type Status struct {
	Running        bool   `json:"running"`
	Sessions       int    `json:"sessions"`
	ActiveSessions int    `json:"activeSessions"`
	Assets         int    `json:"assets"`
	TickCount      uint64 `json:"tickCount"`
	TickInterval   string `json:"tickInterval"`
}

func NewEngine(cfg Config, hub Broadcaster) *Engine {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.InitialBalance <= 0 {
		cfg.InitialBalance = DefaultInitialBalance
	}
	if cfg.GasFeeBase <= 0 {
		cfg.GasFeeBase = DefaultGasFeeBase
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		cfg:        cfg,
		rng:        rng,
		hub:        hub,
		assets:     feed.Snapshot(),
		sessions:   make(map[string]*models.SimSession),
		portfolios: make(map[string]*models.VirtualPortfolio),
		stopChan:   make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run starts the periodic tick goroutine. Calling Run on a running engine is
// a no-op.
func (e *Engine) Run() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	go e.runLoop()
	log.Printf("Simulation engine started with tick interval %v", e.cfg.TickInterval)
}

func (e *Engine) runLoop() {
	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.tick()
		case <-e.stopChan:
			log.Printf("Engine tick loop stopped via stop channel")
			return
		case <-e.ctx.Done():
			log.Printf("Engine tick loop stopped via context")
			return
		}
	}
}

// Stop terminates the tick goroutine. Session state is kept.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	e.running = false
	e.cancel()

	select {
	case e.stopChan <- struct{}{}:
	default:
	}
}

// tick runs one simulation step: refresh every asset price, then mark every
// open trade to the new prices (liquidating crossed positions), then
// recompute the touched portfolio aggregates, then broadcast.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.refreshAssetPrices()
	e.updateOpenTrades()
	e.tickCount++

	if e.hub == nil {
		return
	}

	e.hub.BroadcastMessage(types.MarketTick, TickUpdateData{
		Assets:    e.snapshotAssets(),
		Tick:      e.tickCount,
		Timestamp: time.Now().UnixMilli(),
	})
	for id, session := range e.sessions {
		if session.Status != models.SessionStatusActive {
			continue
		}
		if portfolio, ok := e.portfolios[id]; ok {
			e.hub.BroadcastMessage(types.PortfolioUpdate, portfolio)
		}
	}
}

func (e *Engine) refreshAssetPrices() {
	for i := range e.assets {
		e.assets[i].CurrentPrice *= 1 + (e.rng.Float64()-0.5)*tickPriceJitter
		e.assets[i].Change24h += (e.rng.Float64() - 0.5) * tickChangeJitter
	}
}

func (e *Engine) updateOpenTrades() {
	for id, portfolio := range e.portfolios {
		session, ok := e.sessions[id]
		if !ok || session.Status != models.SessionStatusActive {
			continue
		}

		stillOpen := portfolio.OpenTrades[:0]
		for _, trade := range portfolio.OpenTrades {
			asset, ok := e.assetByID(trade.AssetID)
			if !ok {
				stillOpen = append(stillOpen, trade)
				continue
			}

			trade.CurrentPrice = asset.CurrentPrice
			trade.UnrealizedPnL = signedPriceDiff(trade.Side, trade.EntryPrice, trade.CurrentPrice)*trade.Amount*trade.Leverage - trade.GasFee

			if liquidationCrossed(trade) {
				e.liquidate(portfolio, trade)
				continue
			}
			stillOpen = append(stillOpen, trade)
		}
		portfolio.OpenTrades = stillOpen

		recalculate(portfolio)
	}
}

// Assets returns a copy of the engine's current catalog.
func (e *Engine) Assets() []models.SimAsset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotAssets()
}

func (e *Engine) snapshotAssets() []models.SimAsset {
	assets := make([]models.SimAsset, len(e.assets))
	copy(assets, e.assets)
	return assets
}

func (e *Engine) assetByID(id string) (*models.SimAsset, bool) {
	for i := range e.assets {
		if e.assets[i].ID == id {
			return &e.assets[i], true
		}
	}
	return nil, false
}

// GetStatus reports engine state for the health endpoint.
func (e *Engine) GetStatus() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	active := 0
	for _, session := range e.sessions {
		if session.Status == models.SessionStatusActive {
			active++
		}
	}

	return Status{
		Running:        e.running,
		Sessions:       len(e.sessions),
		ActiveSessions: active,
		Assets:         len(e.assets),
		TickCount:      e.tickCount,
		TickInterval:   e.cfg.TickInterval.String(),
	}
}
