package kvstore

import (
	"context"
	"sync"
	"time"

	"movecar/internal/pkg/clock"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is a mutex-guarded in-process store with lazy expiry, used
// by tests and single-instance deployments (STORE_DRIVER=memory). Expiry
// is evaluated against the injected clock at read time.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   clock.Clock
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt) {
		s.mu.Lock()
		// re-check under the write lock; a Put may have replaced the entry
		if cur, ok := s.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	val := make([]byte, len(e.value))
	copy(val, e.value)
	return val, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.clock.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of live entries. Test use.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	now := s.clock.Now()
	for _, e := range s.entries {
		if e.expiresAt.IsZero() || now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}
