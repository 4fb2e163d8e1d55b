package history

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store for tests and dry runs.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	attempts []Attempt

	// FailWith, when set, makes every operation return that error.
	// Lets tests exercise the store-unavailable degradation paths.
	FailWith error
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) FetchStatus(_ context.Context, userID string) (StatusMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailWith != nil {
		return StatusMap{}, s.FailWith
	}

	var rows []Attempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			rows = append(rows, a)
		}
	}
	return Reduce(rows), nil
}

func (s *MemoryStore) RecordAttempt(_ context.Context, a Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	a.ID = s.nextID
	s.nextID++
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	s.attempts = append(s.attempts, a)
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	kept := s.attempts[:0]
	for _, a := range s.attempts {
		if a.UserID != userID {
			kept = append(kept, a)
		}
	}
	s.attempts = kept
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Attempts returns a copy of all stored rows, for assertions.
func (s *MemoryStore) Attempts() []Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}
