// Package session keeps short-lived per-browser state on the server, keyed by
// an ID carried in a signed cookie.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when a session ID is unknown.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session outlived its TTL.
	ErrSessionExpired = errors.New("session expired")
)

type entry[T any] struct {
	value   *T
	expires time.Time
}

// Store is a TTL cache of session values. Every successful Get slides the
// expiry forward. Values are shared pointers; callers synchronize access to
// the value itself.
type Store[T any] struct {
	mu       sync.Mutex
	entries  map[string]*entry[T]
	ttl      time.Duration
	newValue func() *T
	now      func() time.Time
}

// NewStore creates a store whose entries live for ttl after last use.
func NewStore[T any](ttl time.Duration, newValue func() *T) *Store[T] {
	return &Store[T]{
		entries:  make(map[string]*entry[T]),
		ttl:      ttl,
		newValue: newValue,
		now:      time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (s *Store[T]) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Create starts a new session and returns its ID and value.
func (s *Store[T]) Create() (string, *T) {
	id := "s--" + uuid.NewString()
	v := s.newValue()
	s.mu.Lock()
	s.entries[id] = &entry[T]{value: v, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return id, v
}

// Get returns the session value for id.
func (s *Store[T]) Get(id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.now()
	if !now.Before(e.expires) {
		delete(s.entries, id)
		return nil, ErrSessionExpired
	}
	e.expires = now.Add(s.ttl)
	return e.value, nil
}

// Delete drops a session.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of live and not yet swept sessions.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps every interval until ctx is done. onSweep, if set, is
// called with the number of dropped sessions when it is non-zero.
func (s *Store[T]) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(int)) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
