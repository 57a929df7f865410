package database

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) {
	t.Helper()
	db, err := NewSQLite("file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000")
	require.NoError(t, err)
	DB = db
	t.Cleanup(func() {
		_ = db.Close()
		DB = nil
	})
}

func testBetslip(messageID string, createdAt time.Time) *Betslip {
	return &Betslip{
		MessageID:    messageID,
		GuildID:      "guild-1",
		CapperID:     "capper-1",
		Platform:     "Stake",
		Sport:        "NBA",
		BetType:      "Money Line",
		Title:        "Lakers vs Celtics",
		Description:  "Lakers ML, home court edge",
		Units:        2,
		AmericanOdds: "+150",
		DecimalOdds:  2.5,
		CreatedAt:    createdAt,
		Status:       StatusPending,
	}
}

func TestCapperLifecycle(t *testing.T) {
	newTestDB(t)

	require.NoError(t, AddCapper("guild-1", "user-1", "alice"))

	c, err := GetCapper("guild-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Username)
	assert.Zero(t, c.Wins)

	// registration is unique per (guild, user)
	assert.Error(t, AddCapper("guild-1", "user-1", "alice"))

	// same user in another guild is a separate record
	require.NoError(t, AddCapper("guild-2", "user-1", "alice"))

	require.NoError(t, RemoveCapper("guild-1", "user-1"))
	_, err = GetCapper("guild-1", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, RemoveCapper("guild-1", "user-1"), ErrNotFound)
}

func TestIncrementCapperResult(t *testing.T) {
	newTestDB(t)
	require.NoError(t, AddCapper("guild-1", "user-1", "alice"))

	require.NoError(t, IncrementCapperResult("guild-1", "user-1", StatusWin))
	require.NoError(t, IncrementCapperResult("guild-1", "user-1", StatusWin))
	require.NoError(t, IncrementCapperResult("guild-1", "user-1", StatusPush))

	c, err := GetCapper("guild-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Wins)
	assert.Equal(t, 0, c.Losses)
	assert.Equal(t, 1, c.Pushes)

	assert.ErrorIs(t, IncrementCapperResult("guild-1", "ghost", StatusWin), ErrNotFound)
	assert.Error(t, IncrementCapperResult("guild-1", "user-1", "pending"))
}

func TestPlaysChannelSettings(t *testing.T) {
	newTestDB(t)

	_, err := GetPlaysChannel("guild-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, SetPlaysChannel("guild-1", "chan-1"))
	require.NoError(t, SetPlaysChannel("guild-1", "chan-2")) // idempotent upsert

	ch, err := GetPlaysChannel("guild-1")
	require.NoError(t, err)
	assert.Equal(t, "chan-2", ch)
}

func TestBetslipInsertAndLookup(t *testing.T) {
	newTestDB(t)

	created := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	b := testBetslip("msg-1", created)
	b.BetslipLink = "https://example.com/slip"
	require.NoError(t, InsertBetslip(b))

	got, err := GetBetslipByMessage("guild-1", "msg-1")
	require.NoError(t, err)
	assert.Equal(t, "Lakers vs Celtics", got.Title)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "https://example.com/slip", got.BetslipLink)
	assert.Empty(t, got.ImageURL)
	assert.True(t, got.GradedAt.IsZero())

	// message IDs are unique in the ledger
	assert.Error(t, InsertBetslip(testBetslip("msg-1", created)))

	_, err = GetBetslipByMessage("guild-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetGradedBetslipsFiltersPending(t *testing.T) {
	newTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, InsertBetslip(testBetslip("msg-1", now)))
	require.NoError(t, InsertBetslip(testBetslip("msg-2", now)))

	ok, err := GradeBetslipIfPending("guild-1", "msg-2", StatusWin, "grader", now)
	require.NoError(t, err)
	require.True(t, ok)

	graded, err := GetGradedBetslips("guild-1")
	require.NoError(t, err)
	require.Len(t, graded, 1)
	assert.Equal(t, "msg-2", graded[0].MessageID)
	assert.Equal(t, StatusWin, graded[0].Status)
}

func TestGradeBetslipIfPendingSingleShot(t *testing.T) {
	newTestDB(t)
	now := time.Now().UTC()
	require.NoError(t, InsertBetslip(testBetslip("msg-1", now)))

	ok, err := GradeBetslipIfPending("guild-1", "msg-1", StatusWin, "grader-1", now)
	require.NoError(t, err)
	assert.True(t, ok)

	// second attempt must not mutate
	ok, err = GradeBetslipIfPending("guild-1", "msg-1", StatusLoss, "grader-2", now)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := GetBetslipByMessage("guild-1", "msg-1")
	require.NoError(t, err)
	assert.Equal(t, StatusWin, got.Status)
	assert.Equal(t, "grader-1", got.GradedBy)
}

func TestGradeBetslipIfPendingConcurrent(t *testing.T) {
	newTestDB(t)
	now := time.Now().UTC()
	require.NoError(t, InsertBetslip(testBetslip("msg-1", now)))

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := GradeBetslipIfPending("guild-1", "msg-1", StatusWin, "grader", now)
			if err == nil && ok {
				results <- true
			}
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for range results {
		wins++
	}
	assert.Equal(t, 1, wins, "exactly one concurrent grade may succeed")
}
