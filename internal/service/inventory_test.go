package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// casSeats mimics the conditional decrement of the events table.
type casSeats struct {
	mu        sync.Mutex
	status    domain.EventStatus
	total     int
	available int
	price     decimal.Decimal
}

func (s *casSeats) decrement(_ context.Context, eventID string, n int) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.EventStatusApproved {
		return nil, domain.ErrEventNotBookable
	}
	if s.available < n {
		return nil, domain.ErrInsufficientSeats
	}
	s.available -= n
	return &domain.Reservation{EventID: eventID, Title: "Jazz Night", Price: s.price, Tickets: n}, nil
}

func (s *casSeats) increment(_ context.Context, _ string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available += n
	return nil
}

func (s *casSeats) seatsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

func TestInventoryManager_Reserve_Success(t *testing.T) {
	seats := mocks.NewMockSeatStore(t)
	m := NewInventoryManager(seats, nil, newTestLogger(t))

	res := &domain.Reservation{EventID: "e1", Title: "Concert", Price: decimal.RequireFromString("12.50"), Tickets: 4}
	seats.EXPECT().DecrementSeats(mock.Anything, "e1", 4).Return(res, nil)

	got, err := m.Reserve(context.Background(), "e1", 4)

	require.NoError(t, err)
	assert.Equal(t, "Concert", got.Title)
	assert.True(t, got.Total().Equal(decimal.RequireFromString("50")))
}

func TestInventoryManager_Reserve_NonPositiveTickets(t *testing.T) {
	seats := mocks.NewMockSeatStore(t)
	m := NewInventoryManager(seats, nil, newTestLogger(t))

	_, err := m.Reserve(context.Background(), "e1", 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInventoryManager_Reserve_PassesDomainErrors(t *testing.T) {
	for _, want := range []error{domain.ErrInsufficientSeats, domain.ErrEventNotBookable} {
		seats := mocks.NewMockSeatStore(t)
		m := NewInventoryManager(seats, nil, newTestLogger(t))

		seats.EXPECT().DecrementSeats(mock.Anything, "e1", 2).Return(nil, want)

		_, err := m.Reserve(context.Background(), "e1", 2)

		assert.ErrorIs(t, err, want)
		assert.NotErrorIs(t, err, domain.ErrPersistence)
	}
}

func TestInventoryManager_Reserve_StoreError(t *testing.T) {
	seats := mocks.NewMockSeatStore(t)
	m := NewInventoryManager(seats, nil, newTestLogger(t))

	seats.EXPECT().DecrementSeats(mock.Anything, "e1", 1).Return(nil, errors.New("connection reset"))

	_, err := m.Reserve(context.Background(), "e1", 1)

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestInventoryManager_Reserve_NoOversellUnderContention(t *testing.T) {
	seats := mocks.NewMockSeatStore(t)
	m := NewInventoryManager(seats, nil, newTestLogger(t))

	store := &casSeats{status: domain.EventStatusApproved, total: 10, available: 10, price: decimal.NewFromInt(5)}
	seats.EXPECT().DecrementSeats(mock.Anything, "e1", 3).RunAndReturn(store.decrement)

	var (
		wg       sync.WaitGroup
		ok       atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Reserve(context.Background(), "e1", 3)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrInsufficientSeats):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), ok.Load())
	assert.Equal(t, int32(5), rejected.Load())
	assert.Equal(t, 1, store.seatsLeft())
}

func TestInventoryManager_Release(t *testing.T) {
	seats := mocks.NewMockSeatStore(t)
	m := NewInventoryManager(seats, nil, newTestLogger(t))

	seats.EXPECT().IncrementSeats(mock.Anything, "e1", 2).Return(nil)

	require.NoError(t, m.Release(context.Background(), "e1", 2))
}

func TestInventoryManager_Release_Error(t *testing.T) {
	seats := mocks.NewMockSeatStore(t)
	m := NewInventoryManager(seats, nil, newTestLogger(t))

	seats.EXPECT().IncrementSeats(mock.Anything, "e1", 2).Return(errors.New("no matching row"))

	err := m.Release(context.Background(), "e1", 2)

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestInventoryManager_SeatDrift(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	m := NewInventoryManager(nil, auditor, newTestLogger(t))

	drift := []domain.SeatDrift{{EventID: "e1", Title: "Gig", TotalSeats: 40, AvailableSeats: 50, BookedTickets: 0}}
	auditor.EXPECT().SeatDrift(mock.Anything).Return(drift, nil)

	got, err := m.SeatDrift(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 40, got[0].Expected())
}

func TestInventoryManager_SeatDrift_Error(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	m := NewInventoryManager(nil, auditor, newTestLogger(t))

	auditor.EXPECT().SeatDrift(mock.Anything).Return(nil, errors.New("db down"))

	_, err := m.SeatDrift(context.Background())

	assert.Error(t, err)
}
