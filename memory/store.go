package memory

import (
	"context"
	"sync"
	"time"
)

// Speaker roles as sent to the completion backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a call transcript.
type Turn struct {
	Role string
	Text string
}

// session is one call's transcript. Its mutex serializes mutations for
// that call without blocking unrelated calls.
type session struct {
	mu       sync.Mutex
	turns    []Turn
	lastSeen time.Time
}

// Store is a registry of call sessions keyed by the provider call SID.
// All methods are safe for concurrent use and none of them fail.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*session
}

// NewStore returns an empty registry whose sessions expire after ttl of
// inactivity (only via Sweep; nothing expires mid-operation).
func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, sessions: make(map[string]*session)}
}

// Register creates an empty session for callSID, discarding any prior
// transcript under the same identifier (duplicate call-start events reset).
func (s *Store) Register(callSID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[callSID] = &session{lastSeen: time.Now()}
}

// Append adds a turn to callSID's transcript, creating the session when the
// identifier is unknown.
func (s *Store) Append(callSID string, t Turn) {
	s.mu.Lock()
	sess, ok := s.sessions[callSID]
	if !ok {
		sess = &session{}
		s.sessions[callSID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	sess.turns = append(sess.turns, t)
	sess.lastSeen = time.Now()
	sess.mu.Unlock()
}

// Turns returns a copy of callSID's transcript in chronological order, or
// an empty slice for an unknown identifier.
func (s *Store) Turns(callSID string) []Turn {
	s.mu.RLock()
	sess, ok := s.sessions[callSID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// Evict removes callSID's session. Idempotent.
func (s *Store) Evict(callSID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, callSID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle longer than the TTL as of now and returns how
// many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for sid, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen)
		sess.mu.Unlock()
		if idle > s.ttl {
			delete(s.sessions, sid)
			removed++
		}
	}
	return removed
}

// Janitor sweeps at the given interval until ctx is done.
func (s *Store) Janitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
