// Package store keeps live game sessions in memory, keyed by session id.
// Nothing is persisted; sessions vanish on restart or after going idle.
package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuiguess/internal/session"
)

// ErrNotFound is returned for unknown or evicted session ids.
var ErrNotFound = errors.New("session not found")

// Entry serialises access to one session.
type Entry struct {
	id       string
	mu       sync.Mutex
	sess     *session.Session
	lastSeen atomic.Int64
}

// ID returns the session id.
func (e *Entry) ID() string { return e.id }

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(*session.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

// Store is a concurrency-safe map of sessions.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	factory *session.Factory
	now     func() time.Time
}

// New returns an empty Store creating sessions from factory.
func New(factory *session.Factory) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		factory: factory,
		now:     time.Now,
	}
}

// Create registers a fresh session under a new random id.
func (s *Store) Create() *Entry {
	e := &Entry{id: uuid.NewString(), sess: s.factory.New()}
	e.lastSeen.Store(s.now().UnixNano())
	s.mu.Lock()
	s.entries[e.id] = e
	s.mu.Unlock()
	return e
}

// Get looks up a session and marks it as recently used.
func (s *Store) Get(id string) (*Entry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen.Store(s.now().UnixNano())
	return e, nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep evicts sessions idle for longer than maxIdle and returns how many were removed.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle).UnixNano()
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, e := range s.entries {
		if e.lastSeen.Load() < cutoff {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (s *Store) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	if interval <= 0 || maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				log.Debug().Int("evicted", n).Int("live", s.Len()).Msg("swept idle sessions")
			}
		}
	}
}
