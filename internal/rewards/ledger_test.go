package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mark3tsim/internal/models"
)

func TestCredit(t *testing.T) {
	ledger := NewLedger()
	perf := &models.SimPerformance{CasualScoreEarned: 25, ClanContribution: 37}

	require.NoError(t, ledger.Credit("session-1", "user-1", "clan-1", perf))

	assert.Equal(t, 25, ledger.UserScore("user-1"))
	assert.Equal(t, 37, ledger.ClanScore("clan-1"))
}

func TestCredit_OncePerSession(t *testing.T) {
	ledger := NewLedger()
	perf := &models.SimPerformance{CasualScoreEarned: 10, ClanContribution: 15}

	require.NoError(t, ledger.Credit("session-1", "user-1", "clan-1", perf))

	err := ledger.Credit("session-1", "user-1", "clan-1", perf)
	require.ErrorIs(t, err, ErrAlreadyCredited)

	assert.Equal(t, 10, ledger.UserScore("user-1"))
	assert.Equal(t, 15, ledger.ClanScore("clan-1"))
}

func TestCredit_AccumulatesAcrossSessions(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Credit("session-1", "user-1", "clan-1", &models.SimPerformance{CasualScoreEarned: 10, ClanContribution: 15}))
	require.NoError(t, ledger.Credit("session-2", "user-1", "clan-1", &models.SimPerformance{CasualScoreEarned: 7, ClanContribution: 10}))
	require.NoError(t, ledger.Credit("session-3", "user-2", "", &models.SimPerformance{CasualScoreEarned: 3, ClanContribution: 4}))

	assert.Equal(t, 17, ledger.UserScore("user-1"))
	assert.Equal(t, 25, ledger.ClanScore("clan-1"))
	assert.Equal(t, 3, ledger.UserScore("user-2"))
}

func TestCredit_EmptyClanSkipsClanSide(t *testing.T) {
	ledger := NewLedger()

	require.NoError(t, ledger.Credit("session-1", "user-1", "", &models.SimPerformance{CasualScoreEarned: 5, ClanContribution: 7}))

	assert.Equal(t, 5, ledger.UserScore("user-1"))
	assert.Equal(t, 0, ledger.ClanScore(""))
}

func TestScores_UnknownIDsAreZero(t *testing.T) {
	ledger := NewLedger()

	assert.Equal(t, 0, ledger.UserScore("nobody"))
	assert.Equal(t, 0, ledger.ClanScore("no-clan"))
}
