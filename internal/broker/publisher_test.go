package broker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
)

type sent struct {
	routingKey string
	body       []byte
	msg        amqp091.Publishing
	ctxErr     error
}

type recordingSender struct {
	mu    sync.Mutex
	calls []sent
	err   error
	hold  chan struct{}
}

func (s *recordingSender) Publish(ctx context.Context, body []byte, routingKey string, opts ...rabbitmq.PublishOption) error {
	if s.hold != nil {
		<-s.hold
	}
	var pub amqp091.Publishing
	for _, opt := range opts {
		opt(&pub)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, sent{routingKey: routingKey, body: body, msg: pub, ctxErr: ctx.Err()})
	return s.err
}

func (s *recordingSender) published() []sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sent(nil), s.calls...)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestPublisher_BookingConfirmed(t *testing.T) {
	s := &recordingSender{}
	p := NewPublisher(s, time.Second, newTestLogger(t))

	userID := "u1"
	ctx := logger.SetRequestID(context.Background(), "req-42")
	p.BookingConfirmed(ctx, &domain.Booking{
		ID:          "b1",
		Reference:   "Xk3p9",
		EventID:     "e1",
		UserID:      &userID,
		Tickets:     2,
		TotalAmount: decimal.RequireFromString("51.00"),
		BookedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	p.Wait()

	calls := s.published()
	require.Len(t, calls, 1)
	call := calls[0]
	assert.Equal(t, RoutingBookingConfirmed, call.routingKey)
	assert.Equal(t, "req-42", call.msg.Headers["request_id"])
	assert.Equal(t, RoutingBookingConfirmed, call.msg.Headers["type"])

	var msg BookingConfirmed
	require.NoError(t, json.Unmarshal(call.body, &msg))
	assert.Equal(t, "b1", msg.BookingID)
	assert.Equal(t, "u1", msg.UserID)
	assert.Equal(t, 2, msg.Tickets)
	assert.True(t, msg.TotalAmount.Equal(decimal.NewFromInt(51)))
}

func TestPublisher_EventStatusChanged(t *testing.T) {
	s := &recordingSender{}
	p := NewPublisher(s, time.Second, newTestLogger(t))

	p.EventStatusChanged(context.Background(), &domain.Event{
		ID:         "e1",
		Status:     domain.EventStatusRejected,
		AdminNotes: "duplicate",
	})
	p.Wait()

	calls := s.published()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0].msg.Headers, "request_id")

	var msg EventStatusChanged
	require.NoError(t, json.Unmarshal(calls[0].body, &msg))
	assert.Equal(t, "rejected", msg.Status)
	assert.Equal(t, "duplicate", msg.AdminNotes)
}

func TestPublisher_DetachedFromRequest(t *testing.T) {
	s := &recordingSender{}
	p := NewPublisher(s, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.EventStatusChanged(ctx, &domain.Event{ID: "e1", Status: domain.EventStatusApproved})
	p.Wait()

	calls := s.published()
	require.Len(t, calls, 1)
	assert.NoError(t, calls[0].ctxErr)
}

func TestPublisher_DoesNotBlockCaller(t *testing.T) {
	s := &recordingSender{hold: make(chan struct{})}
	p := NewPublisher(s, time.Second, newTestLogger(t))

	returned := make(chan struct{})
	go func() {
		p.BookingConfirmed(context.Background(), &domain.Booking{ID: "b1"})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("BookingConfirmed waited for the broker")
	}
	assert.Empty(t, s.published())

	close(s.hold)
	p.Wait()
	assert.Len(t, s.published(), 1)
}

func TestPublisher_FailureIsSwallowed(t *testing.T) {
	s := &recordingSender{err: errors.New("channel closed")}
	p := NewPublisher(s, time.Second, newTestLogger(t))

	assert.NotPanics(t, func() {
		p.BookingConfirmed(context.Background(), &domain.Booking{ID: "b1"})
		p.Wait()
	})
	assert.Len(t, s.published(), 1)
}
