// Package rewards applies the reward quantities a finished session produces
// to the user and clan score totals. The trading engine only computes the
// numbers; this ledger is the collaborator that credits them, exactly once
// per session.
package rewards

import (
	"errors"
	"log"
	"sync"

	"mark3tsim/internal/models"
)

var ErrAlreadyCredited = errors.New("session rewards already credited")

type Ledger struct {
	mu         sync.Mutex
	userScores map[string]int
	clanScores map[string]int
	credited   map[string]bool
}

func NewLedger() *Ledger {
	return &Ledger{
		userScores: make(map[string]int),
		clanScores: make(map[string]int),
		credited:   make(map[string]bool),
	}
}

// Credit applies a session's casual score to the user and its clan
// contribution to the clan. A session ID can be credited once; repeated
// calls fail with ErrAlreadyCredited. An empty clanID skips the clan side.
func (l *Ledger) Credit(sessionID, userID, clanID string, performance *models.SimPerformance) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.credited[sessionID] {
		return ErrAlreadyCredited
	}
	l.credited[sessionID] = true

	l.userScores[userID] += performance.CasualScoreEarned
	if clanID != "" {
		l.clanScores[clanID] += performance.ClanContribution
	}

	log.Printf("Credited session %s: user %s +%d, clan %q +%d",
		sessionID, userID, performance.CasualScoreEarned, clanID, performance.ClanContribution)
	return nil
}

// UserScore returns the accumulated casual score for a user.
func (l *Ledger) UserScore(userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userScores[userID]
}

// ClanScore returns the accumulated contribution for a clan.
func (l *Ledger) ClanScore(clanID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clanScores[clanID]
}
