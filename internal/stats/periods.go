package stats

import (
	"time"

	"betbuddies/internal/database"
)

// Period names a stats time window. Values match the slash-command choices.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	PeriodMonth     Period = "month"
	PeriodYear      Period = "year"
	PeriodAllTime   Period = "alltime"
)

// Periods lists every selectable period, in display order.
var Periods = []Period{PeriodToday, PeriodYesterday, Period7Days, PeriodMonth, PeriodYear, PeriodAllTime}

// Name returns the human label for a period.
func (p Period) Name() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodYesterday:
		return "Yesterday"
	case Period7Days:
		return "Last 7 Days"
	case PeriodMonth:
		return "This Month"
	case PeriodYear:
		return "Year to Date"
	default:
		return "All Time"
	}
}

// Window is a half-open interval [From, To). A zero bound is unbounded.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}

// WindowFor computes the boundaries for a period once, from the given
// moment, in the reference timezone. Calendar periods (today, yesterday)
// are exact day matches; the rolling and calendar-aligned periods are
// lower-bounded only.
func WindowFor(p Period, now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch p {
	case PeriodToday:
		return Window{From: startOfDay, To: startOfDay.AddDate(0, 0, 1)}
	case PeriodYesterday:
		return Window{From: startOfDay.AddDate(0, 0, -1), To: startOfDay}
	case Period7Days:
		return Window{From: startOfDay.AddDate(0, 0, -7)}
	case PeriodMonth:
		return Window{From: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)}
	case PeriodYear:
		return Window{From: time.Date(local.Year(), 1, 1, 0, 0, 0, 0, loc)}
	default:
		return Window{}
	}
}

// Filter returns the bets whose creation time falls inside the window.
func Filter(bets []database.Betslip, w Window) []database.Betslip {
	if w.From.IsZero() && w.To.IsZero() {
		return bets
	}
	out := make([]database.Betslip, 0, len(bets))
	for _, bet := range bets {
		if w.Contains(bet.CreatedAt) {
			out = append(out, bet)
		}
	}
	return out
}
