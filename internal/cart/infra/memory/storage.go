// Package memory is a map-backed cart storage for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"
)

type Storage struct {
	mu    sync.Mutex
	data  []byte
	found bool

	// SaveErr, when set, makes every Save fail with it. Used to exercise
	// the store's rollback path.
	SaveErr error
}

func New() *Storage {
	return &Storage{}
}

// Seed pre-populates the storage with raw persisted bytes, as if a previous
// session had written them.
func Seed(data []byte) *Storage {
	return &Storage{data: data, found: true}
}

func (s *Storage) Load(_ context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.found {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

func (s *Storage) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.found = true
	return nil
}

// Bytes returns the last persisted value.
func (s *Storage) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}
