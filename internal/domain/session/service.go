package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID      string
	Created bool
}

type Service struct {
	store Store
	ttl   time.Duration
}

func NewService(store Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Resolve returns the live session for token, or registers a new one when the
// token is empty, malformed, or expired.
func (s *Service) Resolve(ctx context.Context, token string) (Session, error) {
	token = strings.TrimSpace(token)
	if _, err := uuid.Parse(token); err == nil {
		ok, err := s.store.Touch(ctx, token, s.ttl)
		if err != nil {
			return Session{}, err
		}
		if ok {
			return Session{ID: token}, nil
		}
	}

	id := uuid.NewString()
	if err := s.store.Save(ctx, id, s.ttl); err != nil {
		return Session{}, err
	}
	return Session{ID: id, Created: true}, nil
}
