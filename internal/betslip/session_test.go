package betslip

import (
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, userID string) *Session {
	t.Helper()
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID:   "guild-1",
			ChannelID: "channel-1",
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
		},
	}
	sess := newSession(i)
	t.Cleanup(func() { sess.finish() })
	return sess
}

func TestSessionRegistration(t *testing.T) {
	sess := newTestSession(t, "user-1")

	assert.Same(t, sess, lookupSession(sess.ID))
	assert.Same(t, sess, lookupSessionByUser("user-1"))

	require.True(t, sess.finish())
	assert.Nil(t, lookupSession(sess.ID))
	assert.Nil(t, lookupSessionByUser("user-1"))
}

func TestFinishIsSingleShot(t *testing.T) {
	sess := newTestSession(t, "user-2")

	assert.True(t, sess.finish())
	assert.False(t, sess.finish())
}

func TestFinishConcurrentSingleWinner(t *testing.T) {
	sess := newTestSession(t, "user-3")

	var wg sync.WaitGroup
	results := make(chan bool, 16)
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- sess.finish()
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for won := range results {
		if won {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
}

func TestDeadlineDoesNotFireAfterFinish(t *testing.T) {
	sess := newTestSession(t, "user-4")

	fired := make(chan struct{}, 1)
	sess.armDeadline(20*time.Millisecond, func() { fired <- struct{}{} })
	require.True(t, sess.finish())

	select {
	case <-fired:
		t.Fatal("deadline fired after session was finished")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDeadlineFiresAndClosesSession(t *testing.T) {
	sess := newTestSession(t, "user-5")

	fired := make(chan struct{}, 1)
	sess.armDeadline(10*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("deadline never fired")
	}
	assert.False(t, sess.finish(), "expiry should have closed the session")
}

func TestArmDeadlineReplacesPrevious(t *testing.T) {
	sess := newTestSession(t, "user-6")

	var mu sync.Mutex
	var order []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}

	sess.armDeadline(15*time.Millisecond, record("first"))
	sess.armDeadline(40*time.Millisecond, record("second"))

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second"}, order)
}

func TestSetSelectionOnlyWhileSelecting(t *testing.T) {
	sess := newTestSession(t, "user-7")

	assert.True(t, sess.setSelection("platform", "Stake"))
	assert.True(t, sess.setSelection("sport", "NBA"))
	assert.True(t, sess.setSelection("bettype", "Parlay"))
	assert.False(t, sess.setSelection("color", "red"))

	require.True(t, sess.transition(StateSelecting, StateAwaitingForm))
	assert.False(t, sess.setSelection("platform", "Bet365"))

	_, platform, sport, betType, _, _ := sess.snapshot()
	assert.Equal(t, "Stake", platform)
	assert.Equal(t, "NBA", sport)
	assert.Equal(t, "Parlay", betType)
}

func TestAttachImageOneShot(t *testing.T) {
	sess := newTestSession(t, "user-8")

	assert.True(t, sess.attachImage("https://cdn.example.com/a.png"))
	assert.False(t, sess.attachImage("https://cdn.example.com/b.png"))

	_, _, _, _, imageURL, _ := sess.snapshot()
	assert.Equal(t, "https://cdn.example.com/a.png", imageURL)
}

func TestSetFormAdvancesToConfirm(t *testing.T) {
	sess := newTestSession(t, "user-9")
	form := &FormData{Title: "Game", Description: "pick", Units: 1, AmericanOdds: "+100", DecimalOdds: 2.0}

	assert.False(t, sess.setForm(form), "form is only accepted in the awaiting-form stage")

	require.True(t, sess.transition(StateSelecting, StateAwaitingForm))
	assert.True(t, sess.setForm(form))

	state, _, _, _, _, got := sess.snapshot()
	assert.Equal(t, StateAwaitingConfirm, state)
	assert.Same(t, form, got)
}

func TestNewSessionReplacesUserIndex(t *testing.T) {
	first := newTestSession(t, "user-10")
	second := newTestSession(t, "user-10")

	assert.Same(t, second, lookupSessionByUser("user-10"))

	// Finishing the stale session must not evict the newer one.
	first.finish()
	assert.Same(t, second, lookupSessionByUser("user-10"))
}
