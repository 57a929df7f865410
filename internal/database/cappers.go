package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// AddCapper registra um novo capper no servidor. Fails if the (guild, user)
// pair already exists.
func AddCapper(guildID, userID, username string) error {
	query := prepareQuery("INSERT INTO cappers (guild_id, user_id, username, wins, losses, pushes) VALUES (?, ?, ?, 0, 0, 0)")
	_, err := DB.Exec(query, guildID, userID, username)
	return err
}

// GetCapper retorna o capper registrado para (guild, user)
func GetCapper(guildID, userID string) (*Capper, error) {
	query := prepareQuery("SELECT guild_id, user_id, username, wins, losses, pushes FROM cappers WHERE guild_id = ? AND user_id = ?")

	c := &Capper{}
	err := DB.QueryRow(query, guildID, userID).Scan(&c.GuildID, &c.UserID, &c.Username, &c.Wins, &c.Losses, &c.Pushes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCapper deleta o capper; returns ErrNotFound when nothing was deleted.
func RemoveCapper(guildID, userID string) error {
	query := prepareQuery("DELETE FROM cappers WHERE guild_id = ? AND user_id = ?")
	res, err := DB.Exec(query, guildID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCappers retorna todos os cappers do servidor
func ListCappers(guildID string) ([]Capper, error) {
	query := prepareQuery("SELECT guild_id, user_id, username, wins, losses, pushes FROM cappers WHERE guild_id = ?")
	rows, err := DB.Query(query, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cappers []Capper
	for rows.Next() {
		var c Capper
		if err := rows.Scan(&c.GuildID, &c.UserID, &c.Username, &c.Wins, &c.Losses, &c.Pushes); err != nil {
			continue
		}
		cappers = append(cappers, c)
	}
	return cappers, rows.Err()
}

// IncrementCapperResult adds one to the tally counter matching a graded
// outcome. A missing registry entry is reported as ErrNotFound so grading
// can proceed without the counter.
func IncrementCapperResult(guildID, userID, outcome string) error {
	var column string
	switch outcome {
	case StatusWin:
		column = "wins"
	case StatusLoss:
		column = "losses"
	case StatusPush:
		column = "pushes"
	default:
		return fmt.Errorf("invalid outcome %q", outcome)
	}

	query := prepareQuery(fmt.Sprintf("UPDATE cappers SET %s = %s + 1 WHERE guild_id = ? AND user_id = ?", column, column))
	res, err := DB.Exec(query, guildID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
