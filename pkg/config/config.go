package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"betbuddies/pkg/logger"
)

type GeneralConfig struct {
	BotName       string
	Env           string
	EnableMetrics bool
	MetricsPort   string
	StatsTimezone string
	InviteURL     string
	SupportURL    string
}

var (
	Bot        GeneralConfig
	DBType     string
	ConnString string

	// Location is the fixed reference timezone for stats period boundaries.
	// Defaults to UTC so time formatting works before Load runs (tests
	// never call Load).
	Location = time.UTC
)

func Load() {
	Bot = GeneralConfig{
		BotName:       getEnv("BOT_NAME", "Bet Buddies"),
		Env:           getEnv("ENV", "local"),
		EnableMetrics: getEnv("ENABLE_METRICS", "true") == "true",
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		StatsTimezone: getEnv("STATS_TIMEZONE", "UTC"),
		InviteURL:     os.Getenv("INVITE_URL"),
		SupportURL:    os.Getenv("SUPPORT_URL"),
	}

	loc, err := time.LoadLocation(Bot.StatsTimezone)
	if err != nil {
		logger.Log.Fatalf("Invalid STATS_TIMEZONE %q: %v", Bot.StatsTimezone, err)
	}
	Location = loc

	setupDatabaseConfig()
}

func setupDatabaseConfig() {
	DBType = os.Getenv("DB_TYPE")
	if DBType == "" {
		DBType = "sqlite"
	}

	switch DBType {
	case "postgres":
		ConnString = buildPostgresConnectionString()
	case "sqlite":
		fallthrough
	default:
		ConnString = os.Getenv("SQLITE_PATH")
		if ConnString == "" {
			ConnString = "./betbuddies.db"
		}
		DBType = "sqlite"
	}
}

func buildPostgresConnectionString() string {
	// A full DATABASE_URL wins; pgx handles pooled URLs directly.
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		logger.Log.Info("Using DATABASE_URL from environment")
		return dbURL
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		logger.Log.Fatal("DB_HOST is required for PostgreSQL. Set it in .env or use DATABASE_URL")
	}

	portStr := os.Getenv("DB_PORT")
	port := 5432
	if portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		logger.Log.Fatal("DB_USER is required for PostgreSQL. Set it in .env")
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		logger.Log.Fatal("DB_PASSWORD is required for PostgreSQL. Set it in .env")
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "postgres"
	}

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
