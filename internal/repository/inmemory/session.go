package inmemory

import (
	"context"
	"sync"
	"time"
)

// SessionStore keeps session ids with a sliding expiry in process memory.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]time.Time
	now   func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		items: make(map[string]time.Time),
		now:   time.Now,
	}
}

func (s *SessionStore) Touch(_ context.Context, id string, ttl time.Duration) (bool, error) {
	now := s.now()

	s.mu.RLock()
	expiresAt, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok = s.items[id]
	if !ok || !expiresAt.After(now) {
		delete(s.items, id)
		return false, nil
	}
	s.items[id] = now.Add(ttl)
	return true, nil
}

func (s *SessionStore) Save(_ context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		s.Delete(id)
		return nil
	}

	s.mu.Lock()
	s.items[id] = s.now().Add(ttl)
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Sweep drops expired sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, expiresAt := range s.items {
		if !expiresAt.After(now) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
