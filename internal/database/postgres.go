package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"betbuddies/pkg/logger"
)

// PostgresDatabase implementa a interface Database para PostgreSQL usando pgx
type PostgresDatabase struct {
	connString string
	db         *sql.DB
}

// NewPostgresDatabase cria uma nova instância do database PostgreSQL
func NewPostgresDatabase(connString string) *PostgresDatabase {
	return &PostgresDatabase{
		connString: connString,
	}
}

// Open abre a conexão com o banco de dados
func (p *PostgresDatabase) Open() error {
	logger.Log.Infof("Connecting to PostgreSQL using pgx driver...")
	logger.Log.Infof("Connection string (masked): %s", maskPassword(p.connString))

	db, err := sql.Open("pgx", p.connString)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(0)

	p.db = db
	return nil
}

// maskPassword oculta a senha na string de conexão para logs
func maskPassword(connString string) string {
	result := connString
	if idx := indexOf(result, "://"); idx >= 0 {
		start := idx + 3
		if atIdx := indexOf(result[start:], "@"); atIdx >= 0 {
			userPass := result[start : start+atIdx]
			if colonIdx := indexOf(userPass, ":"); colonIdx >= 0 {
				user := userPass[:colonIdx]
				result = result[:start] + user + ":****@" + result[start+atIdx+1:]
			}
		}
	}
	return result
}

func indexOf(s, substr string) int {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

// Close fecha a conexão com o banco de dados
func (p *PostgresDatabase) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// Ping verifica se a conexão está ativa
func (p *PostgresDatabase) Ping() error {
	if p.db == nil {
		return fmt.Errorf("database not connected")
	}
	return p.db.Ping()
}

// GetDB retorna a instância *sql.DB subjacente
func (p *PostgresDatabase) GetDB() *sql.DB {
	return p.db
}

func (p *PostgresDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return p.db.Query(query, args...)
}

func (p *PostgresDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return p.db.QueryRow(query, args...)
}

func (p *PostgresDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return p.db.Exec(query, args...)
}

func (p *PostgresDatabase) Begin() (*sql.Tx, error) {
	return p.db.Begin()
}

// CreateTables cria as tabelas necessárias para PostgreSQL
func (p *PostgresDatabase) CreateTables() error {
	if os.Getenv("DB_SKIP_TABLE_CREATION") == "true" {
		logger.Log.Info("Skipping table creation (DB_SKIP_TABLE_CREATION=true)")
		return nil
	}

	logger.Log.Info("Creating PostgreSQL tables if not exists...")

	createCappersSQL := `CREATE TABLE IF NOT EXISTS cappers (
		guild_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		username TEXT NOT NULL,
		wins INTEGER DEFAULT 0,
		losses INTEGER DEFAULT 0,
		pushes INTEGER DEFAULT 0,
		PRIMARY KEY (guild_id, user_id)
	);`
	if _, err := p.db.Exec(createCappersSQL); err != nil {
		logger.Log.Warnf("Error creating cappers table (may already exist): %v", err)
	}

	createSettingsSQL := `CREATE TABLE IF NOT EXISTS guild_settings (
		guild_id TEXT PRIMARY KEY,
		plays_channel_id TEXT
	);`
	if _, err := p.db.Exec(createSettingsSQL); err != nil {
		logger.Log.Warnf("Error creating guild_settings table (may already exist): %v", err)
	}

	createBetslipsSQL := `CREATE TABLE IF NOT EXISTS betslips (
		message_id TEXT PRIMARY KEY,
		guild_id TEXT NOT NULL,
		capper_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		sport TEXT NOT NULL,
		bet_type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		units REAL NOT NULL,
		american_odds TEXT NOT NULL,
		decimal_odds REAL NOT NULL,
		betslip_link TEXT,
		image_url TEXT,
		created_at TIMESTAMP NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		graded_by TEXT,
		graded_at TIMESTAMP
	);`
	if _, err := p.db.Exec(createBetslipsSQL); err != nil {
		logger.Log.Warnf("Error creating betslips table (may already exist): %v", err)
	}

	createBetslipGuildIdxSQL := `CREATE INDEX IF NOT EXISTS idx_betslips_guild_capper
		ON betslips (guild_id, capper_id);`
	if _, err := p.db.Exec(createBetslipGuildIdxSQL); err != nil {
		logger.Log.Warnf("Error creating betslips index: %v", err)
	}

	logger.Log.Info("Table creation completed")
	return nil
}
