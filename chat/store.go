package chat

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultSessionTitle = "新对话"
	defaultSessionIcon  = "chat_bubble"

	// titleRuneLimit is the number of runes of the first user message kept as
	// the auto-derived session title.
	titleRuneLimit = 20
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyTitle      = errors.New("title is empty")
)

// Session is one conversation thread with its own message log and title.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `json:"timestamp"`
	Messages  []Message `json:"messages"`
}

// Store holds the ordered session list and the active-session pointer. It is
// the single owner of conversation state; all mutation goes through it.
//
// Invariant: the active id always resolves to a member of the list, or is ""
// when the list is empty.
type Store struct {
	mu       sync.RWMutex
	sessions []*Session
	activeID string
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// CreateSession inserts a new empty session at the front of the list and
// makes it active.
func (s *Store) CreateSession() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        s.newSessionID(),
		Title:     defaultSessionTitle,
		Icon:      defaultSessionIcon,
		Timestamp: s.now(),
		Messages:  []Message{},
	}
	s.sessions = append([]*Session{sess}, s.sessions...)
	s.activeID = sess.ID
	return *sess
}

// AppendMessage appends to the matching session's log, preserving order. The
// session's first message also derives its title. Per contract this is a
// no-op when no session matches; callers must ensure the id is valid.
func (s *Store) AppendMessage(sessionID string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(sessionID, msg)
}

// AppendOrRevive appends like AppendMessage, but when the session was deleted
// while an analysis was in flight it is recreated with the captured title so
// the settled result is never dropped.
func (s *Store) AppendOrRevive(sessionID, title string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appendLocked(sessionID, msg) {
		return
	}

	if strings.TrimSpace(title) == "" {
		title = defaultSessionTitle
	}
	sess := &Session{
		ID:        sessionID,
		Title:     title,
		Icon:      defaultSessionIcon,
		Timestamp: s.now(),
		Messages:  []Message{msg},
	}
	s.sessions = append([]*Session{sess}, s.sessions...)
	if s.activeID == "" {
		s.activeID = sess.ID
	}
}

func (s *Store) appendLocked(sessionID string, msg Message) bool {
	sess := s.findLocked(sessionID)
	if sess == nil {
		return false
	}
	if len(sess.Messages) == 0 {
		if plain, ok := msg.(*PlainMessage); ok && plain.Role == RoleUser {
			sess.Title = deriveTitle(plain.Content)
		}
	}
	sess.Messages = append(sess.Messages, msg)
	return true
}

// RenameSession replaces the title. Empty or whitespace-only titles are
// rejected.
func (s *Store) RenameSession(sessionID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return ErrSessionNotFound
	}
	sess.Title = title
	return nil
}

// DeleteSession removes the session. When the deleted session was active, the
// next remaining session by list order becomes active, or the pointer goes
// empty when none remain.
func (s *Store) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sess := range s.sessions {
		if sess.ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSessionNotFound
	}

	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	if s.activeID == sessionID {
		if len(s.sessions) > 0 {
			s.activeID = s.sessions[0].ID
		} else {
			s.activeID = ""
		}
	}
	return nil
}

// SetActive switches the active-session pointer.
func (s *Store) SetActive(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(sessionID) == nil {
		return ErrSessionNotFound
	}
	s.activeID = sessionID
	return nil
}

// ActiveID returns the active session id, or "" when no sessions exist.
func (s *Store) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Get returns a snapshot of the session with the given id.
func (s *Store) Get(sessionID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return Session{}, false
	}
	return snapshot(sess), true
}

// Sessions returns a snapshot of the session list in display order.
func (s *Store) Sessions() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = snapshot(sess)
	}
	return out
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Reset replaces all sessions, activating the first. Used by the demo
// login/logout flow to install or clear the seed state.
func (s *Store) Reset(sessions []*Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = sessions
	if len(sessions) > 0 {
		s.activeID = sessions[0].ID
	} else {
		s.activeID = ""
	}
}

func (s *Store) findLocked(sessionID string) *Session {
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return sess
		}
	}
	return nil
}

// newSessionID generates a short opaque numeric id. Collisions are unlikely
// at this scale; a few retries keep them out of practice.
func (s *Store) newSessionID() string {
	for {
		id := strconv.Itoa(1000 + rand.Intn(9000))
		if s.findLocked(id) == nil {
			return id
		}
	}
}

// snapshot copies a session; message values are immutable so the shared
// backing entries are safe to hand out.
func snapshot(sess *Session) Session {
	cp := *sess
	cp.Messages = make([]Message, len(sess.Messages))
	copy(cp.Messages, sess.Messages)
	return cp
}

// deriveTitle derives a session title from its first user message.
func deriveTitle(query string) string {
	runes := []rune(strings.TrimSpace(query))
	if len(runes) > titleRuneLimit {
		return string(runes[:titleRuneLimit]) + "..."
	}
	return string(runes)
}
