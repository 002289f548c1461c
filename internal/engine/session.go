package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"mark3tsim/internal/models"
	"mark3tsim/internal/types"
)

// StartSession creates a new active session with an empty portfolio seeded
// with the configured initial balance. It always succeeds.
func (e *Engine) StartSession(userID string) *models.SimSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	sessionID := uuid.New().String()
	session := &models.SimSession{
		ID:             sessionID,
		UserID:         userID,
		StartTime:      time.Now().UnixMilli(),
		InitialBalance: e.cfg.InitialBalance,
		Status:         models.SessionStatusActive,
	}
	portfolio := &models.VirtualPortfolio{
		SessionID:      sessionID,
		UserID:         userID,
		Balance:        e.cfg.InitialBalance,
		InitialBalance: e.cfg.InitialBalance,
		TotalValue:     e.cfg.InitialBalance,
		OpenTrades:     []*models.VirtualTrade{},
		ClosedTrades:   []*models.VirtualTrade{},
	}

	e.sessions[sessionID] = session
	e.portfolios[sessionID] = portfolio

	log.Printf("Started session %s for user %s with balance %.2f", sessionID, userID, e.cfg.InitialBalance)
	return cloneSession(session)
}

// LoadSession returns a session together with its portfolio. The returned
// values are detached copies; ticks after the call do not show through them.
func (e *Engine) LoadSession(sessionID string) (*models.SimSession, *models.VirtualPortfolio, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	session, ok := e.sessions[sessionID]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	portfolio, ok := e.portfolios[sessionID]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	return cloneSession(session), clonePortfolio(portfolio), nil
}

// GetActiveSessions returns the user's sessions that are still active.
func (e *Engine) GetActiveSessions(userID string) []*models.SimSession {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sessions := []*models.SimSession{}
	for _, session := range e.sessions {
		if session.UserID == userID && session.Status == models.SessionStatusActive {
			sessions = append(sessions, cloneSession(session))
		}
	}
	return sessions
}

// CalculatePortfolio forces a fresh aggregate recomputation and returns a
// detached copy of the portfolio.
func (e *Engine) CalculatePortfolio(sessionID string) (*models.VirtualPortfolio, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	portfolio, ok := e.portfolios[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	recalculate(portfolio)
	return clonePortfolio(portfolio), nil
}

// EndSession force-closes every remaining open trade, computes the session's
// performance summary and marks it completed. It is call-once: ending a
// session that is no longer active fails with ErrSessionNotActive, which is
// what keeps reward crediting single-shot.
func (e *Engine) EndSession(sessionID string) (*models.SimPerformance, error) {
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

	for len(portfolio.OpenTrades) > 0 {
		if _, err := e.closeTradeLocked(portfolio, portfolio.OpenTrades[0].ID); err != nil {
			return nil, err
		}
	}
	recalculate(portfolio)

	performance := buildPerformance(sessionID, portfolio)

	now := time.Now().UnixMilli()
	finalBalance := portfolio.TotalValue
	session.EndTime = &now
	session.FinalBalance = &finalBalance
	session.Status = models.SessionStatusCompleted
	session.Performance = performance

	if e.hub != nil {
		e.hub.BroadcastMessage(types.SessionEnded, session)
	}

	log.Printf("Ended session %s: profit %.2f (%.2f%%), score %d",
		sessionID, performance.TotalProfit, performance.ProfitPercentage, performance.SessionScore)

	return performance, nil
}

// AbandonSession marks an active session abandoned without computing a
// performance summary. Open trades stay in the portfolio untouched.
func (e *Engine) AbandonSession(sessionID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if session.Status != models.SessionStatusActive {
		return ErrSessionNotActive
	}

	now := time.Now().UnixMilli()
	session.EndTime = &now
	session.Status = models.SessionStatusAbandoned

	log.Printf("Abandoned session %s", sessionID)
	return nil
}
