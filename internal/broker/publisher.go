package broker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
)

// sender is satisfied by *rabbitmq.Publisher.
type sender interface {
	Publish(ctx context.Context, body []byte, routingKey string, opts ...rabbitmq.PublishOption) error
}

// Publisher emits domain events after the state change they describe has
// been committed. Sends run in the background and delivery is best effort.
type Publisher struct {
	sender  sender
	timeout time.Duration
	logger  logger.Logger
	now     func() time.Time
	wg      sync.WaitGroup
}

func NewPublisher(s sender, timeout time.Duration, log logger.Logger) *Publisher {
	return &Publisher{
		sender:  s,
		timeout: timeout,
		logger:  log,
		now:     time.Now,
	}
}

func (p *Publisher) BookingConfirmed(ctx context.Context, b *domain.Booking) {
	msg := BookingConfirmed{
		BookingID:   b.ID,
		Reference:   b.Reference,
		EventID:     b.EventID,
		Tickets:     b.Tickets,
		TotalAmount: b.TotalAmount,
		BookedAt:    b.BookedAt,
	}
	if b.UserID != nil {
		msg.UserID = *b.UserID
	}
	p.publish(ctx, RoutingBookingConfirmed, msg)
}

func (p *Publisher) EventStatusChanged(ctx context.Context, e *domain.Event) {
	p.publish(ctx, RoutingEventStatusChanged, EventStatusChanged{
		EventID:    e.ID,
		Status:     string(e.Status),
		AdminNotes: e.AdminNotes,
		ChangedAt:  p.now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, routingKey string, msg any) {
	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.LogAttrs(ctx, logger.ErrorLevel, "encode domain event",
			logger.String("routing_key", routingKey),
			logger.String("error", err.Error()),
		)
		return
	}

	headers := amqp091.Table{"type": routingKey}
	if id := logger.GetRequestID(ctx); id != "" {
		headers["request_id"] = id
	}

	p.wg.Add(1)
	go p.send(context.WithoutCancel(ctx), routingKey, body, headers)
}

func (p *Publisher) send(ctx context.Context, routingKey string, body []byte, headers amqp091.Table) {
	defer p.wg.Done()

	pubCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.sender.Publish(pubCtx, body, routingKey, rabbitmq.WithHeaders(headers)); err != nil {
		p.logger.LogAttrs(ctx, logger.WarnLevel, "publish domain event failed",
			logger.String("routing_key", routingKey),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.LogAttrs(ctx, logger.DebugLevel, "domain event published",
		logger.String("routing_key", routingKey),
	)
}

// Wait blocks until every publish started so far has finished.
func (p *Publisher) Wait() {
	p.wg.Wait()
}

// Noop is used when RabbitMQ is disabled.
type Noop struct{}

func (Noop) BookingConfirmed(context.Context, *domain.Booking)  {}
func (Noop) EventStatusChanged(context.Context, *domain.Event) {}
