package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type BookingRepo interface {
	Insert(ctx context.Context, b *domain.Booking) error
	CountForEvent(ctx context.Context, eventID string) (int, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.BookingView, error)
}

type DomainPublisher interface {
	BookingConfirmed(ctx context.Context, b *domain.Booking)
	EventStatusChanged(ctx context.Context, e *domain.Event)
}
