package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
	wbfredis "github.com/wb-go/wbf/redis"
)

const (
	approvedEventsKey = "eventhub:events:approved"
	versionKey        = "eventhub:events:version"
)

// kvStore is the subset of *wbfredis.Client the cache needs.
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) *goredis.IntCmd
}

// EventCache keeps the public listing in Redis under a key suffixed with the
// current version. Invalidate bumps the version, which orphans every entry
// written for an older one, including fills still in flight. Every failure
// degrades to a miss so the database stays the source of truth.
type EventCache struct {
	store  kvStore
	ttl    time.Duration
	logger logger.Logger
}

func NewEventCache(store kvStore, ttl time.Duration, log logger.Logger) *EventCache {
	return &EventCache{store: store, ttl: ttl, logger: log}
}

func entryKey(version int64) string {
	return approvedEventsKey + ":" + strconv.FormatInt(version, 10)
}

// GetApproved returns the cached listing for the current version. On a miss
// the version is still returned so the caller can fill the right entry. A
// version of -1 means it could not be read and nothing should be stored.
func (c *EventCache) GetApproved(ctx context.Context) ([]*domain.Event, int64, bool) {
	version, err := c.version(ctx)
	if err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "event cache version read failed",
			logger.String("error", err.Error()),
		)
		return nil, -1, false
	}

	raw, err := c.store.Get(ctx, entryKey(version))
	if err != nil {
		if !errors.Is(err, wbfredis.NoMatches) {
			c.logger.LogAttrs(ctx, logger.WarnLevel, "event cache read failed",
				logger.String("error", err.Error()),
			)
		}
		return nil, version, false
	}

	var events []*domain.Event
	if err = json.Unmarshal([]byte(raw), &events); err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "event cache entry is corrupt",
			logger.String("error", err.Error()),
		)
		c.Invalidate(ctx)
		return nil, -1, false
	}

	return events, version, true
}

// SetApproved stores events read after GetApproved reported version.
func (c *EventCache) SetApproved(ctx context.Context, version int64, events []*domain.Event) {
	if version < 0 {
		return
	}

	raw, err := json.Marshal(events)
	if err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "encode event cache entry",
			logger.String("error", err.Error()),
		)
		return
	}

	if err = c.store.SetWithExpiration(ctx, entryKey(version), raw, c.ttl); err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "event cache write failed",
			logger.String("error", err.Error()),
		)
	}
}

func (c *EventCache) Invalidate(ctx context.Context) {
	if err := c.store.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.LogAttrs(ctx, logger.WarnLevel, "event cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
}

func (c *EventCache) version(ctx context.Context) (int64, error) {
	raw, err := c.store.Get(ctx, versionKey)
	if errors.Is(err, wbfredis.NoMatches) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Noop is used when Redis is disabled.
type Noop struct{}

func (Noop) GetApproved(context.Context) ([]*domain.Event, int64, bool) { return nil, -1, false }
func (Noop) SetApproved(context.Context, int64, []*domain.Event)        {}
func (Noop) Invalidate(context.Context)                                 {}
