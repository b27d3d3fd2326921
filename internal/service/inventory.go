package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// InventoryManager is the only writer of an event's available seat count.
type InventoryManager struct {
	seats   ports.SeatStore
	auditor ports.SeatAuditor
	logger  logger.Logger
}

func NewInventoryManager(seats ports.SeatStore, auditor ports.SeatAuditor, logger logger.Logger) *InventoryManager {
	return &InventoryManager{
		seats:   seats,
		auditor: auditor,
		logger:  logger,
	}
}

// Reserve takes tickets seats from an approved event in one conditional write.
// On failure nothing has been decremented.
func (m *InventoryManager) Reserve(ctx context.Context, eventID string, tickets int) (*domain.Reservation, error) {
	if tickets <= 0 {
		return nil, fmt.Errorf("%w: tickets must be positive", domain.ErrValidation)
	}

	res, err := m.seats.DecrementSeats(ctx, eventID, tickets)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientSeats) || errors.Is(err, domain.ErrEventNotBookable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: reserve seats: %w", domain.ErrPersistence, err)
	}

	return res, nil
}

// Release gives seats back to an event after a failed booking.
func (m *InventoryManager) Release(ctx context.Context, eventID string, tickets int) error {
	if tickets <= 0 {
		return fmt.Errorf("%w: tickets must be positive", domain.ErrValidation)
	}

	if err := m.seats.IncrementSeats(ctx, eventID, tickets); err != nil {
		return fmt.Errorf("%w: release seats: %w", domain.ErrPersistence, err)
	}

	return nil
}

// SeatDrift lists events whose available seats disagree with their confirmed
// bookings. A single audit also catches bookings whose seat decrement has
// committed but whose booking insert has not, so callers decide what counts
// as real drift.
func (m *InventoryManager) SeatDrift(ctx context.Context) ([]domain.SeatDrift, error) {
	drift, err := m.auditor.SeatDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit seats: %w", err)
	}

	for _, d := range drift {
		m.logger.LogAttrs(ctx, logger.DebugLevel, "seat count mismatch",
			logger.String("event_id", d.EventID),
			logger.String("title", d.Title),
			logger.Int("available_seats", d.AvailableSeats),
			logger.Int("expected_seats", d.Expected()),
		)
	}

	return drift, nil
}
