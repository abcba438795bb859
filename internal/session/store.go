// Package session maps anonymous browser sessions to practice trackers.
// Everything here is ephemeral: state is lost when an entry expires or
// the process exits, and no state is ever shared between sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"wordpractice/internal/practice"
)

// CookieName carries the session identifier in the browser.
const CookieName = "session_id"

// Store holds one practice tracker per browser session.
type Store struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	tracker  *practice.Tracker
	lastSeen time.Time
}

// NewStore creates a store whose entries expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// GetOrCreate returns the tracker for id, building one with create when
// the id is new or expired.
func (s *Store) GetOrCreate(id string, create func() *practice.Tracker) *practice.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &entry{tracker: create()}
		s.entries[id] = e
	}
	e.lastSeen = time.Now()
	return e.tracker
}

// Sweep drops entries idle for longer than the store TTL and returns
// how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// GenerateID creates a new UUID for session identification.
func GenerateID() string {
	return uuid.New().String()
}
