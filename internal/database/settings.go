package database

import "database/sql"

// SetPlaysChannel grava (idempotente) o canal de plays do servidor
func SetPlaysChannel(guildID, channelID string) error {
	query := prepareQuery(`INSERT INTO guild_settings (guild_id, plays_channel_id) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET plays_channel_id = excluded.plays_channel_id`)
	_, err := DB.Exec(query, guildID, channelID)
	return err
}

// GetPlaysChannel retorna o canal configurado; ErrNotFound quando o servidor
// nunca foi configurado ou o canal foi limpo.
func GetPlaysChannel(guildID string) (string, error) {
	var channelID sql.NullString
	query := prepareQuery("SELECT plays_channel_id FROM guild_settings WHERE guild_id = ?")
	err := DB.QueryRow(query, guildID).Scan(&channelID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if !channelID.Valid || channelID.String == "" {
		return "", ErrNotFound
	}
	return channelID.String, nil
}
