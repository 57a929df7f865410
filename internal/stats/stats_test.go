package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"betbuddies/internal/database"
)

func graded(capperID, status string, units, decimalOdds float64) database.Betslip {
	return database.Betslip{
		CapperID:    capperID,
		Units:       units,
		DecimalOdds: decimalOdds,
		Status:      status,
		CreatedAt:   time.Now(),
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	assert.Equal(t, Summary{}, s)
}

func TestCalculateWinAndLoss(t *testing.T) {
	bets := []database.Betslip{
		graded("c1", database.StatusWin, 2, 2.5),
		graded("c1", database.StatusLoss, 1, 1.9),
	}

	s := Calculate(bets)
	// 2 * (2.5 - 1) - 1 = 2.0 profit over 3 units risked
	assert.Equal(t, 2.0, s.Profit)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 0, s.Pushes)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 50.0, s.WinRate)
	assert.Equal(t, 3.0, s.UnitsRisked)
	assert.Equal(t, 66.67, s.ROI)
}

func TestCalculatePushRisksUnitsWithoutProfit(t *testing.T) {
	bets := []database.Betslip{
		graded("c1", database.StatusWin, 1, 2.0),
		graded("c1", database.StatusPush, 3, 1.5),
	}

	s := Calculate(bets)
	assert.Equal(t, 1.0, s.Profit)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 4.0, s.UnitsRisked)
	// pushes do not dilute the win rate
	assert.Equal(t, 100.0, s.WinRate)
	assert.Equal(t, 25.0, s.ROI)
}

func TestCalculatePendingCountsTowardTotalOnly(t *testing.T) {
	bets := []database.Betslip{
		graded("c1", database.StatusPending, 5, 3.0),
		graded("c1", database.StatusWin, 1, 2.0),
	}

	s := Calculate(bets)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1.0, s.Profit)
	assert.Equal(t, 1.0, s.UnitsRisked)
}

func TestCalculateAllPending(t *testing.T) {
	bets := []database.Betslip{
		graded("c1", database.StatusPending, 2, 2.5),
	}

	s := Calculate(bets)
	assert.Equal(t, 1, s.Total)
	assert.Zero(t, s.Profit)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.ROI)
}

func TestLeaderboardSortsByProfitDescending(t *testing.T) {
	cappers := []database.Capper{
		{GuildID: "g", UserID: "c1", Username: "alice"},
		{GuildID: "g", UserID: "c2", Username: "bob"},
		{GuildID: "g", UserID: "c3", Username: "carol"},
		{GuildID: "g", UserID: "c4", Username: "dave"},
	}
	bets := []database.Betslip{
		graded("c1", database.StatusWin, 3, 2.0),  // +3
		graded("c2", database.StatusLoss, 1, 2.0), // -1
		graded("c3", database.StatusWin, 5, 2.0),  // +5
	}

	entries := Leaderboard(cappers, bets)
	assert.Len(t, entries, 3, "cappers with zero graded bets are dropped")
	assert.Equal(t, "carol", entries[0].Capper.Username)
	assert.Equal(t, "alice", entries[1].Capper.Username)
	assert.Equal(t, "bob", entries[2].Capper.Username)
	assert.Equal(t, 5.0, entries[0].Stats.Profit)
}

func TestLeaderboardIgnoresPendingOnlyCappers(t *testing.T) {
	cappers := []database.Capper{
		{GuildID: "g", UserID: "c1", Username: "alice"},
	}

	// Leaderboard callers pass graded bets only; a capper with nothing
	// graded never appears no matter how many pending slips they have.
	entries := Leaderboard(cappers, nil)
	assert.Empty(t, entries)
}
