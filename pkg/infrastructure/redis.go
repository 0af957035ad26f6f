package infrastructure

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the template cache. The cache is optional;
// callers pass nil through when this fails.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
