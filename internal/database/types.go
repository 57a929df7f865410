package database

import (
	"database/sql"
	"time"
)

// Database define a interface para operações de banco de dados
type Database interface {
	// Connection
	Open() error
	Close() error
	Ping() error
	GetDB() *sql.DB

	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
	Begin() (*sql.Tx, error)

	CreateTables() error
}

// Betslip status values. A betslip starts pending and transitions at most
// once to one of the graded states.
const (
	StatusPending = "pending"
	StatusWin     = "win"
	StatusLoss    = "loss"
	StatusPush    = "push"
)

// GradedStatuses are the terminal outcomes a betslip can be graded to.
var GradedStatuses = []string{StatusWin, StatusLoss, StatusPush}

// Betslip is one posted pick, keyed by the public Discord message it was
// rendered as.
type Betslip struct {
	MessageID    string
	GuildID      string
	CapperID     string
	Platform     string
	Sport        string
	BetType      string
	Title        string
	Description  string
	Units        float64
	AmericanOdds string
	DecimalOdds  float64
	BetslipLink  string
	ImageURL     string
	CreatedAt    time.Time
	Status       string
	GradedBy     string
	GradedAt     time.Time
}

// IsGraded reports whether the betslip has a terminal outcome.
func (b *Betslip) IsGraded() bool {
	return b.Status != StatusPending
}

// Capper is a registered pick-poster for one guild, with redundant tally
// counters. Profit and ROI are always recomputed from the betslip ledger.
type Capper struct {
	GuildID  string
	UserID   string
	Username string
	Wins     int
	Losses   int
	Pushes   int
}

// GuildSettings holds the per-guild singleton configuration.
type GuildSettings struct {
	GuildID        string
	PlaysChannelID string
}

// DB é a instância global do database
var DB Database
