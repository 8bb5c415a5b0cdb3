package session

import (
	"context"
	"time"
)

type Store interface {
	// Touch extends a live session and reports whether it existed.
	Touch(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Save(ctx context.Context, id string, ttl time.Duration) error
}
