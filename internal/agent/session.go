package agent

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/apex-assurance/claims-backend/internal/claims"
)

// Session holds one conversation: its transcript and the claim facts
// accumulated so far. All access goes through the Agent, which locks
// the session for the duration of a turn.
type Session struct {
	ID      string
	mu      sync.Mutex
	History []Turn
	Claim   *claims.Context
}

func newSession(id string) *Session {
	return &Session{ID: id, Claim: claims.NewContext()}
}

// Reset drops the transcript and claim context, keeping the session ID.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History = nil
	s.Claim.Reset()
}

// TurnCount is the number of user messages sent so far.
func (s *Session) TurnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countUserTurnsLocked()
}

func (s *Session) countUserTurnsLocked() int {
	n := 0
	for _, t := range s.History {
		if t.Role == "user" && t.ToolCallID == "" {
			n++
		}
	}
	return n
}

// DispatchTool runs one tool against this session's claim context under
// the session lock. The claim context has a single writer at a time;
// callers outside a chat turn must go through here rather than handing
// the bare context to a dispatcher.
func (s *Session) DispatchTool(ctx context.Context, d *claims.Dispatcher, name string, args json.RawMessage) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return d.Dispatch(ctx, s.Claim, name, args)
}

// Summary is the digest served on the session context endpoint.
func (s *Session) Summary() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Claim.Summary(s.countUserTurnsLocked())
}

// SessionManager is an in-memory session registry keyed by session ID.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: map[string]*Session{}}
}

// Get returns the session with the given ID, creating it when absent.
// An empty ID allocates a fresh session with a random ID.
func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == "" {
		id = newSessionID()
	}
	s, ok := m.sessions[id]
	if !ok {
		s = newSession(id)
		m.sessions[id] = s
	}
	return s
}

// Lookup returns the session only if it already exists.
func (m *SessionManager) Lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "session-0"
	}
	return hex.EncodeToString(b)
}
