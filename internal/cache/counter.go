package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// counterStore is satisfied by *wbfredis.Client: Incr is promoted from the
// embedded go-redis client, Expire is the wrapper's own.
type counterStore interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// WindowCounter counts hits per key inside fixed windows.
type WindowCounter struct {
	store  counterStore
	prefix string
}

func NewWindowCounter(store counterStore, prefix string) *WindowCounter {
	return &WindowCounter{store: store, prefix: prefix}
}

// Hit records one hit for key in the window containing now and returns the
// running count together with the time left until the window closes.
func (c *WindowCounter) Hit(ctx context.Context, key string, window time.Duration, now time.Time) (int64, time.Duration, error) {
	start := now.Truncate(window)
	redisKey := fmt.Sprintf("%s:%s:%d", c.prefix, key, start.Unix())

	n, err := c.store.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("incr %s: %w", redisKey, err)
	}
	if n == 1 {
		if err = c.store.Expire(ctx, redisKey, window); err != nil {
			return n, 0, fmt.Errorf("expire %s: %w", redisKey, err)
		}
	}

	return n, start.Add(window).Sub(now), nil
}
