package betslip

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// State tracks where a betslip creation session is in its lifecycle.
type State int

const (
	StateSelecting State = iota
	StateAwaitingForm
	StateAwaitingConfirm
	StateClosed
)

const (
	selectTimeout  = 10 * time.Minute
	modalTimeout   = 5 * time.Minute
	confirmTimeout = 2 * time.Minute
)

// Session holds the in-flight state of one capper building a betslip.
// Each stage arms a fresh deadline; whichever fires or completes first
// closes the session and every later event is a no-op.
type Session struct {
	ID          string
	UserID      string
	GuildID     string
	ChannelID   string
	Interaction *discordgo.Interaction

	mu       sync.Mutex
	state    State
	platform string
	sport    string
	betType  string
	imageURL string
	form     *FormData
	timer    *time.Timer
}

var (
	activeSessions = make(map[string]*Session)
	sessionsByUser = make(map[string]string)
	sessionsMu     sync.Mutex
)

func newSession(i *discordgo.InteractionCreate) *Session {
	sess := &Session{
		ID:          uuid.NewString(),
		UserID:      i.Member.User.ID,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		Interaction: i.Interaction,
		state:       StateSelecting,
	}

	sessionsMu.Lock()
	activeSessions[sess.ID] = sess
	sessionsByUser[sess.UserID] = sess.ID
	sessionsMu.Unlock()

	return sess
}

func lookupSession(id string) *Session {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	return activeSessions[id]
}

func lookupSessionByUser(userID string) *Session {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	id, ok := sessionsByUser[userID]
	if !ok {
		return nil
	}
	return activeSessions[id]
}

// finish closes the session exactly once. It reports whether this call
// was the one that closed it, so timers and buttons racing each other
// resolve to a single winner that performs the side effects.
func (s *Session) finish() bool {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return false
	}
	s.state = StateClosed
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	sessionsMu.Lock()
	delete(activeSessions, s.ID)
	if sessionsByUser[s.UserID] == s.ID {
		delete(sessionsByUser, s.UserID)
	}
	sessionsMu.Unlock()

	return true
}

// armDeadline replaces the current stage timer. The expiry callback runs
// only if it wins the race against finish.
func (s *Session) armDeadline(d time.Duration, onExpire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, func() {
		if s.finish() {
			onExpire()
		}
	})
}

func (s *Session) snapshot() (State, string, string, string, string, *FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.platform, s.sport, s.betType, s.imageURL, s.form
}

func (s *Session) setSelection(kind, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSelecting {
		return false
	}
	switch kind {
	case "platform":
		s.platform = value
	case "sport":
		s.sport = value
	case "bettype":
		s.betType = value
	default:
		return false
	}
	return true
}

// attachImage stores the first uploaded image. Later uploads are ignored.
func (s *Session) attachImage(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSelecting || s.imageURL != "" {
		return false
	}
	s.imageURL = url
	return true
}

func (s *Session) transition(from, to State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return false
	}
	s.state = to
	return true
}

func (s *Session) setForm(form *FormData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingForm {
		return false
	}
	s.form = form
	s.state = StateAwaitingConfirm
	return true
}
