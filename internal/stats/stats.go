// Package stats derives capper performance figures from the betslip ledger.
// Everything here is a pure function over records; the persisted win/loss
// counters on capper rows are never consulted.
package stats

import (
	"math"
	"sort"

	"betbuddies/internal/database"
)

// Summary is the aggregate over a set of betslips. Profit, WinRate and ROI
// are rounded to 2 decimal places for display.
type Summary struct {
	Profit      float64
	Wins        int
	Losses      int
	Pushes      int
	Total       int
	WinRate     float64
	ROI         float64
	UnitsRisked float64
}

// Calculate aggregates a slice of betslips. Pending records count toward
// Total only; graded records contribute profit and units risked:
//
//	win:  profit += units * (decimalOdds - 1)
//	loss: profit -= units
//	push: profit unchanged, units still risked
func Calculate(bets []database.Betslip) Summary {
	var s Summary
	s.Total = len(bets)

	var profit, unitsRisked float64
	for _, bet := range bets {
		switch bet.Status {
		case database.StatusWin:
			unitsRisked += bet.Units
			profit += bet.Units * (bet.DecimalOdds - 1)
			s.Wins++
		case database.StatusLoss:
			unitsRisked += bet.Units
			profit -= bet.Units
			s.Losses++
		case database.StatusPush:
			unitsRisked += bet.Units
			s.Pushes++
		}
	}

	decided := s.Wins + s.Losses
	winRate := 0.0
	if decided > 0 {
		winRate = float64(s.Wins) / float64(decided) * 100
	}
	roi := 0.0
	if unitsRisked > 0 {
		roi = profit / unitsRisked * 100
	}

	s.Profit = round2(profit)
	s.WinRate = round2(winRate)
	s.ROI = round2(roi)
	s.UnitsRisked = unitsRisked
	return s
}

// LeaderboardEntry pairs a capper with their graded-bet summary.
type LeaderboardEntry struct {
	Capper database.Capper
	Stats  Summary
}

// Leaderboard computes per-capper summaries over graded bets and ranks them
// by profit, descending. Cappers with no graded bets are dropped.
func Leaderboard(cappers []database.Capper, gradedBets []database.Betslip) []LeaderboardEntry {
	byCapper := make(map[string][]database.Betslip)
	for _, bet := range gradedBets {
		byCapper[bet.CapperID] = append(byCapper[bet.CapperID], bet)
	}

	entries := make([]LeaderboardEntry, 0, len(cappers))
	for _, c := range cappers {
		bets := byCapper[c.UserID]
		if len(bets) == 0 {
			continue
		}
		entries = append(entries, LeaderboardEntry{Capper: c, Stats: Calculate(bets)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stats.Profit > entries[j].Stats.Profit
	})
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
