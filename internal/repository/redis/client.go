package redis

import (
	"context"
	"fmt"
	"time"

	"protein-tracker/internal/config"
	"protein-tracker/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient connects to cfg.URL and verifies the connection with a ping.
func NewClient(cfg config.RedisConfig, log logger.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis: connected", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}
