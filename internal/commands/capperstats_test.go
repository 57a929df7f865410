package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"betbuddies/internal/database"
	"betbuddies/internal/stats"
)

func TestTruncatePad(t *testing.T) {
	assert.Equal(t, "short               ", truncatePad("short", 20))
	assert.Len(t, truncatePad("a very long title that keeps going", 20), 20)
	assert.Equal(t, "a very long title...", truncatePad("a very long title that keeps going", 20))
	assert.Equal(t, "exact", truncatePad("exact", 5))
}

func TestSignedUnits(t *testing.T) {
	assert.Equal(t, "+3.5U", signedUnits(3.5))
	assert.Equal(t, "-1.0U", signedUnits(-1))
	assert.Equal(t, "0.0U", signedUnits(0))
}

func TestRecentBetsTableCapsRows(t *testing.T) {
	bets := make([]database.Betslip, 0, 12)
	for n := 0; n < 12; n++ {
		bets = append(bets, database.Betslip{
			Title:        "Lakers ML",
			Units:        1,
			AmericanOdds: "+100",
			Status:       database.StatusWin,
			CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		})
	}

	table := recentBetsTable(bets, "All Time", "alice")
	assert.Contains(t, table, "...and 2 more bets.")
	assert.Contains(t, table, "Recent Bets (All Time)")
	// Header plus separator plus 10 rows plus the overflow note.
	assert.Equal(t, 10, strings.Count(table, "✅"))
}

func TestRecentBetsTableEmpty(t *testing.T) {
	table := recentBetsTable(nil, "Today", "alice")
	assert.Contains(t, table, "No recent bets found for alice")
	assert.Contains(t, table, "Today")
	assert.NotContains(t, table, "```")
}

func TestRecentBetsTableUnknownStatusShownPending(t *testing.T) {
	bets := []database.Betslip{{
		Title:        "Mystery",
		Units:        1,
		AmericanOdds: "-110",
		Status:       "void",
		CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}}

	table := recentBetsTable(bets, "All Time", "alice")
	assert.Contains(t, table, "⏳")
}

func TestLeaderboardTable(t *testing.T) {
	entries := []stats.LeaderboardEntry{
		{
			Capper: database.Capper{Username: "alice"},
			Stats:  stats.Summary{Profit: 5.25, Wins: 4, Losses: 1, Total: 5, WinRate: 80, ROI: 50},
		},
		{
			Capper: database.Capper{UserID: "123456789"},
			Stats:  stats.Summary{Profit: -2, Losses: 2, Total: 2},
		},
	}

	table := leaderboardTable(entries)
	assert.Contains(t, table, "alice")
	assert.Contains(t, table, "+5.2U")
	assert.Contains(t, table, "-2.0U")
	// Falls back to the user ID when no username is stored.
	assert.Contains(t, table, "123456789")
}
