package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDatabase implementa a interface Database para SQLite
type SQLiteDatabase struct {
	connString string
	db         *sql.DB
}

// NewSQLiteDatabase cria uma nova instância do database SQLite
func NewSQLiteDatabase(connString string) *SQLiteDatabase {
	return &SQLiteDatabase{
		connString: connString,
	}
}

// Open abre a conexão com o banco de dados
func (s *SQLiteDatabase) Open() error {
	db, err := sql.Open("sqlite3", s.connString)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

// Close fecha a conexão com o banco de dados
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping verifica se a conexão está ativa
func (s *SQLiteDatabase) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database not connected")
	}
	return s.db.Ping()
}

// GetDB retorna a instância *sql.DB subjacente
func (s *SQLiteDatabase) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return s.db.Query(query, args...)
}

func (s *SQLiteDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return s.db.QueryRow(query, args...)
}

func (s *SQLiteDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return s.db.Exec(query, args...)
}

func (s *SQLiteDatabase) Begin() (*sql.Tx, error) {
	return s.db.Begin()
}

// CreateTables cria as tabelas necessárias para SQLite
func (s *SQLiteDatabase) CreateTables() error {
	createCappersSQL := `CREATE TABLE IF NOT EXISTS cappers (
		"guild_id" TEXT NOT NULL,
		"user_id" TEXT NOT NULL,
		"username" TEXT NOT NULL,
		"wins" INTEGER DEFAULT 0,
		"losses" INTEGER DEFAULT 0,
		"pushes" INTEGER DEFAULT 0,
		PRIMARY KEY (guild_id, user_id)
	);`
	if _, err := s.db.Exec(createCappersSQL); err != nil {
		return err
	}

	createSettingsSQL := `CREATE TABLE IF NOT EXISTS guild_settings (
		"guild_id" TEXT NOT NULL PRIMARY KEY,
		"plays_channel_id" TEXT
	);`
	if _, err := s.db.Exec(createSettingsSQL); err != nil {
		return err
	}

	createBetslipsSQL := `CREATE TABLE IF NOT EXISTS betslips (
		"message_id" TEXT NOT NULL PRIMARY KEY,
		"guild_id" TEXT NOT NULL,
		"capper_id" TEXT NOT NULL,
		"platform" TEXT NOT NULL,
		"sport" TEXT NOT NULL,
		"bet_type" TEXT NOT NULL,
		"title" TEXT NOT NULL,
		"description" TEXT NOT NULL,
		"units" REAL NOT NULL,
		"american_odds" TEXT NOT NULL,
		"decimal_odds" REAL NOT NULL,
		"betslip_link" TEXT,
		"image_url" TEXT,
		"created_at" DATETIME NOT NULL,
		"status" TEXT NOT NULL DEFAULT 'pending',
		"graded_by" TEXT,
		"graded_at" DATETIME
	);`
	if _, err := s.db.Exec(createBetslipsSQL); err != nil {
		return err
	}

	createBetslipGuildIdxSQL := `CREATE INDEX IF NOT EXISTS idx_betslips_guild_capper
		ON betslips (guild_id, capper_id);`
	if _, err := s.db.Exec(createBetslipGuildIdxSQL); err != nil {
		return err
	}

	return nil
}
