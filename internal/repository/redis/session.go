package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "protein-tracker:session:"

// SessionCommands is the subset of the client the session store issues.
type SessionCommands interface {
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// SessionStore keeps one key per session; the key TTL is the session expiry.
type SessionStore struct {
	client SessionCommands
	prefix string
	now    func() time.Time
}

func NewSessionStore(client SessionCommands, prefix string) *SessionStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &SessionStore{client: client, prefix: prefix, now: time.Now}
}

// Touch slides the expiry of a live session. A missing or expired key reports false.
func (s *SessionStore) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return s.client.Expire(ctx, s.key(id), ttl).Result()
}

// Save registers a session. A non-positive ttl removes it.
func (s *SessionStore) Save(ctx context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		return s.client.Del(ctx, s.key(id)).Err()
	}
	return s.client.Set(ctx, s.key(id), s.now().UTC().Format(time.RFC3339), ttl).Err()
}

func (s *SessionStore) key(id string) string {
	return s.prefix + id
}
