package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is an in-process Store used when Redis is unavailable and in
// tests. Sessions do not survive restarts.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Set(_ context.Context, token string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return 0, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token)
		return 0, false, nil
	}
	return entry.userID, true, nil
}

func (s *MemoryStore) Del(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
