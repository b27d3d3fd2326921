package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

// SeatStore is the atomic seat-count primitive. Implementations must perform
// the check and the decrement as one conditional write.
type SeatStore interface {
	DecrementSeats(ctx context.Context, eventID string, n int) (*domain.Reservation, error)
	IncrementSeats(ctx context.Context, eventID string, n int) error
}

type EventRepo interface {
	SeatStore
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListApproved(ctx context.Context) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	ListForAdmin(ctx context.Context) ([]*domain.Event, error)
	Insert(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus, notes string) (*domain.Event, error)
	UpdateFields(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// EventCache holds the public listing. GetApproved reports the cache version
// it saw; SetApproved stores under that version, so a fill that raced an
// Invalidate is never served.
type EventCache interface {
	GetApproved(ctx context.Context) (events []*domain.Event, version int64, ok bool)
	SetApproved(ctx context.Context, version int64, events []*domain.Event)
	Invalidate(ctx context.Context)
}
