package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	inventory *InventoryManager
	bookings  ports.BookingRepo
	cache     ports.EventCache
	publisher ports.DomainPublisher
	logger    logger.Logger
}

func NewBookingService(
	inventory *InventoryManager,
	bookings ports.BookingRepo,
	cache ports.EventCache,
	publisher ports.DomainPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		inventory: inventory,
		bookings:  bookings,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Book reserves seats and records a confirmed booking for p. If the booking
// row cannot be written the reservation is released before returning.
func (s *BookingService) Book(ctx context.Context, p *domain.Principal, in domain.BookInput) (*domain.BookingConfirmation, error) {
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	res, err := s.inventory.Reserve(ctx, in.EventID, in.Tickets)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	userID := p.ID
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		Reference:   shortuuid.New(),
		EventID:     in.EventID,
		UserID:      &userID,
		Tickets:     in.Tickets,
		TotalAmount: res.Total(),
		GuestName:   in.GuestName,
		GuestEmail:  in.GuestEmail,
		Status:      domain.BookingStatusConfirmed,
		BookedAt:    time.Now().UTC(),
	}

	if err = s.bookings.Insert(ctx, booking); err != nil {
		s.compensate(ctx, res, err)
		return nil, fmt.Errorf("%w: insert booking: %w", domain.ErrPersistence, err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.String("booking_id", booking.ID),
		logger.String("reference", booking.Reference),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", userID),
		logger.Int("tickets", booking.Tickets),
		logger.String("total_amount", booking.TotalAmount.StringFixed(2)),
	)

	s.cache.Invalidate(ctx)
	s.publisher.BookingConfirmed(ctx, booking)

	return &domain.BookingConfirmation{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		EventTitle:  res.Title,
		Tickets:     booking.Tickets,
		TotalAmount: booking.TotalAmount,
	}, nil
}

// compensate runs detached from ctx so a cancelled request still returns its seats.
func (s *BookingService) compensate(ctx context.Context, res *domain.Reservation, cause error) {
	rctx := context.WithoutCancel(ctx)
	if err := s.inventory.Release(rctx, res.EventID, res.Tickets); err != nil {
		s.logger.LogAttrs(rctx, logger.ErrorLevel, "seat release failed after booking insert error",
			logger.String("event_id", res.EventID),
			logger.Int("tickets", res.Tickets),
			logger.String("cause", cause.Error()),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.LogAttrs(rctx, logger.WarnLevel, "reservation released",
		logger.String("event_id", res.EventID),
		logger.Int("tickets", res.Tickets),
		logger.String("cause", cause.Error()),
	)
}

// ListMine returns the caller's bookings, newest first. Anonymous callers get an empty list.
func (s *BookingService) ListMine(ctx context.Context, p *domain.Principal) ([]*domain.BookingView, error) {
	if p == nil {
		return []*domain.BookingView{}, nil
	}

	bookings, err := s.bookings.ListForUser(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookings: %w", domain.ErrPersistence, err)
	}
	if bookings == nil {
		bookings = []*domain.BookingView{}
	}

	return bookings, nil
}
