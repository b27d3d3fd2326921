package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	wbfredis "github.com/wb-go/wbf/redis"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newMemStore() *memStore {
	return &memStore{
		data:   map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return "", m.failGet
	}
	v, ok := m.data[key]
	if !ok {
		return "", wbfredis.NoMatches
	}
	return v, nil
}

func (m *memStore) SetWithExpiration(_ context.Context, key string, value any, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttls[key] = exp
	return nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Incr(ctx context.Context, key string) *goredis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	cmd := goredis.NewIntCmd(ctx)
	cmd.SetVal(n)
	return cmd
}

func (m *memStore) Expire(_ context.Context, key string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttls[key] = exp
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestEventCache_RoundTrip(t *testing.T) {
	store := newMemStore()
	c := NewEventCache(store, time.Minute, newTestLogger(t))
	ctx := context.Background()

	_, version, ok := c.GetApproved(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(0), version)

	events := []*domain.Event{{
		ID:     "e1",
		Title:  "Concert",
		Price:  decimal.RequireFromString("25.50"),
		Status: domain.EventStatusApproved,
	}}
	c.SetApproved(ctx, version, events)
	assert.Equal(t, time.Minute, store.ttls[entryKey(0)])

	got, _, ok := c.GetApproved(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("25.5")))

	c.Invalidate(ctx)
	_, version, ok = c.GetApproved(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(1), version)
}

func TestEventCache_FillRacingInvalidateIsDiscarded(t *testing.T) {
	store := newMemStore()
	c := NewEventCache(store, time.Minute, newTestLogger(t))
	ctx := context.Background()

	// A reader misses and loads the listing while the event is still approved.
	_, version, ok := c.GetApproved(ctx)
	require.False(t, ok)
	stale := []*domain.Event{{ID: "e1", Status: domain.EventStatusApproved}}

	// The event is rejected before the reader stores what it loaded.
	c.Invalidate(ctx)
	c.SetApproved(ctx, version, stale)

	_, _, ok = c.GetApproved(ctx)
	assert.False(t, ok, "listing loaded before the invalidation must not be served")

	_, version, _ = c.GetApproved(ctx)
	c.SetApproved(ctx, version, []*domain.Event{})
	got, _, ok := c.GetApproved(ctx)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestEventCache_EmptyListIsAHit(t *testing.T) {
	c := NewEventCache(newMemStore(), time.Minute, newTestLogger(t))

	c.SetApproved(context.Background(), 0, []*domain.Event{})

	got, _, ok := c.GetApproved(context.Background())
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestEventCache_FailuresAreMisses(t *testing.T) {
	store := newMemStore()
	c := NewEventCache(store, time.Minute, newTestLogger(t))
	ctx := context.Background()

	store.failSet = errors.New("connection refused")
	c.SetApproved(ctx, 0, []*domain.Event{{ID: "e1"}})

	store.failGet = errors.New("connection refused")
	_, version, ok := c.GetApproved(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(-1), version)

	store.failSet = nil
	c.SetApproved(ctx, version, []*domain.Event{{ID: "e1"}})
	assert.Empty(t, store.ttls)
}

func TestEventCache_CorruptEntry(t *testing.T) {
	store := newMemStore()
	store.data[entryKey(0)] = "{not json"
	c := NewEventCache(store, time.Minute, newTestLogger(t))

	_, version, ok := c.GetApproved(context.Background())

	assert.False(t, ok)
	assert.Equal(t, int64(-1), version)
	assert.Equal(t, "1", store.data[versionKey])
}

func TestNoop_NeverStores(t *testing.T) {
	var c Noop
	c.SetApproved(context.Background(), 0, []*domain.Event{{ID: "e1"}})

	_, _, ok := c.GetApproved(context.Background())
	assert.False(t, ok)
}

func TestWindowCounter_Hit(t *testing.T) {
	store := newMemStore()
	c := NewWindowCounter(store, "rl")
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 10, 0, 20, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		n, left, err := c.Hit(ctx, "1.2.3.4", time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
		assert.Equal(t, 40*time.Second, left)
	}

	n, _, err := c.Hit(ctx, "1.2.3.4", time.Minute, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, _, err = c.Hit(ctx, "5.6.7.8", time.Minute, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
