package database

import (
	"database/sql"
	"strings"
	"time"
)

const betslipColumns = `message_id, guild_id, capper_id, platform, sport, bet_type, title, description,
	units, american_odds, decimal_odds, betslip_link, image_url, created_at, status, graded_by, graded_at`

// InsertBetslip persiste um novo betslip com status pending
func InsertBetslip(b *Betslip) error {
	query := prepareQuery(`INSERT INTO betslips (` + betslipColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := DB.Exec(query,
		b.MessageID, b.GuildID, b.CapperID, b.Platform, b.Sport, b.BetType, b.Title, b.Description,
		b.Units, b.AmericanOdds, b.DecimalOdds,
		nullable(b.BetslipLink), nullable(b.ImageURL),
		b.CreatedAt, b.Status, nullable(b.GradedBy), nullableTime(b.GradedAt))
	return err
}

// GetBetslipByMessage resolve o betslip pelo ID da mensagem pública
func GetBetslipByMessage(guildID, messageID string) (*Betslip, error) {
	query := prepareQuery("SELECT " + betslipColumns + " FROM betslips WHERE guild_id = ? AND message_id = ?")
	row := DB.QueryRow(query, guildID, messageID)
	return scanBetslip(row)
}

// GetBetslipsByCapper retorna todos os betslips de um capper, newest first.
func GetBetslipsByCapper(guildID, capperID string) ([]Betslip, error) {
	query := prepareQuery("SELECT " + betslipColumns + " FROM betslips WHERE guild_id = ? AND capper_id = ? ORDER BY created_at DESC")
	rows, err := DB.Query(query, guildID, capperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBetslips(rows)
}

// GetGradedBetslips retorna todos os betslips já avaliados do servidor
func GetGradedBetslips(guildID string) ([]Betslip, error) {
	placeholders := "?" + strings.Repeat(", ?", len(GradedStatuses)-1)
	query := prepareQuery("SELECT " + betslipColumns + " FROM betslips WHERE guild_id = ? AND status IN (" + placeholders + ") ORDER BY created_at DESC")

	args := make([]interface{}, 0, len(GradedStatuses)+1)
	args = append(args, guildID)
	for _, s := range GradedStatuses {
		args = append(args, s)
	}

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBetslips(rows)
}

// GradeBetslipIfPending é a atualização condicional atômica do grading: o
// UPDATE só toca a linha se o status ainda for pending, então dois graders
// concorrentes nunca avaliam o mesmo betslip duas vezes. Returns false when
// the betslip was already graded (or does not exist).
func GradeBetslipIfPending(guildID, messageID, outcome, gradedBy string, gradedAt time.Time) (bool, error) {
	query := prepareQuery(`UPDATE betslips SET status = ?, graded_by = ?, graded_at = ?
		WHERE guild_id = ? AND message_id = ? AND status = ?`)
	res, err := DB.Exec(query, outcome, gradedBy, gradedAt, guildID, messageID, StatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// scanner abstracts *sql.Row and *sql.Rows for betslip scans.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBetslip(row scanner) (*Betslip, error) {
	b := &Betslip{}
	var link, image, gradedBy sql.NullString
	var gradedAt sql.NullTime

	err := row.Scan(&b.MessageID, &b.GuildID, &b.CapperID, &b.Platform, &b.Sport, &b.BetType,
		&b.Title, &b.Description, &b.Units, &b.AmericanOdds, &b.DecimalOdds,
		&link, &image, &b.CreatedAt, &b.Status, &gradedBy, &gradedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.BetslipLink = link.String
	b.ImageURL = image.String
	b.GradedBy = gradedBy.String
	if gradedAt.Valid {
		b.GradedAt = gradedAt.Time
	}
	return b, nil
}

func collectBetslips(rows *sql.Rows) ([]Betslip, error) {
	var bets []Betslip
	for rows.Next() {
		b, err := scanBetslip(rows)
		if err != nil {
			continue
		}
		bets = append(bets, *b)
	}
	return bets, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
