package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSuppressor allows one alert per key per window across server instances.
// It relies on SET NX with a TTL.
type RedisSuppressor struct {
	client redis.Cmdable
	window time.Duration
	prefix string
}

// NewRedisSuppressor creates a suppressor backed by client.
func NewRedisSuppressor(client redis.Cmdable, window time.Duration) *RedisSuppressor {
	return &RedisSuppressor{client: client, window: window, prefix: "ordena:"}
}

// Allow claims key for the window. It returns false while a previous claim is live.
func (s *RedisSuppressor) Allow(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.prefix+key, time.Now().Unix(), s.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim alert key: %w", err)
	}
	return ok, nil
}
