package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationDefaultsToUTC(t *testing.T) {
	require.NotNil(t, Location)
	assert.Equal(t, time.UTC, Location)

	// Time conversion must not panic before Load runs.
	assert.NotPanics(t, func() {
		_ = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC).In(Location)
	})
}

func TestLoadReadsTimezone(t *testing.T) {
	t.Setenv("STATS_TIMEZONE", "America/New_York")
	t.Setenv("DB_TYPE", "sqlite")

	Load()

	require.NotNil(t, Location)
	assert.Equal(t, "America/New_York", Location.String())
	assert.Equal(t, "America/New_York", Bot.StatsTimezone)
}

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv clears the variable so the
	// getEnv defaults actually apply.
	for _, key := range []string{"BOT_NAME", "ENV", "ENABLE_METRICS", "METRICS_PORT", "STATS_TIMEZONE", "DB_TYPE", "SQLITE_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	Load()

	assert.Equal(t, "Bet Buddies", Bot.BotName)
	assert.Equal(t, "sqlite", DBType)
	assert.Equal(t, "./betbuddies.db", ConnString)
	assert.True(t, Bot.EnableMetrics)
	assert.Equal(t, "9090", Bot.MetricsPort)
}
