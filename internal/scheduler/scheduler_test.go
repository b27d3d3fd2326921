package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReconciler_Tick_ReportsPersistentDrift(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Minute, newTestLogger(t))

	drift := []domain.SeatDrift{
		{EventID: "e1", Title: "Concert", TotalSeats: 10, AvailableSeats: 7, BookedTickets: 2},
	}
	auditor.EXPECT().SeatDrift(mock.Anything).Return(drift, nil).Twice()

	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 1, r.tick(context.Background()))
}

func TestReconciler_Tick_IgnoresInFlightBooking(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Minute, newTestLogger(t))

	// seat decremented, booking row not yet inserted
	auditor.EXPECT().SeatDrift(mock.Anything).Return([]domain.SeatDrift{
		{EventID: "e1", Title: "Concert", TotalSeats: 10, AvailableSeats: 9, BookedTickets: 0},
	}, nil).Once()
	auditor.EXPECT().SeatDrift(mock.Anything).Return(nil, nil).Once()
	auditor.EXPECT().SeatDrift(mock.Anything).Return([]domain.SeatDrift{
		{EventID: "e1", Title: "Concert", TotalSeats: 10, AvailableSeats: 8, BookedTickets: 1},
	}, nil).Once()

	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 0, r.tick(context.Background()))
}

func TestReconciler_Tick_GapChangeRestartsConfirmation(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Minute, newTestLogger(t))

	auditor.EXPECT().SeatDrift(mock.Anything).Return([]domain.SeatDrift{
		{EventID: "e1", TotalSeats: 10, AvailableSeats: 9, BookedTickets: 0},
	}, nil).Once()
	auditor.EXPECT().SeatDrift(mock.Anything).Return([]domain.SeatDrift{
		{EventID: "e1", TotalSeats: 10, AvailableSeats: 7, BookedTickets: 1},
	}, nil).Once()
	auditor.EXPECT().SeatDrift(mock.Anything).Return([]domain.SeatDrift{
		{EventID: "e1", TotalSeats: 10, AvailableSeats: 7, BookedTickets: 1},
	}, nil).Once()

	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 1, r.tick(context.Background()))
}

func TestReconciler_Tick_NoDrift(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Minute, newTestLogger(t))

	auditor.EXPECT().SeatDrift(mock.Anything).Return(nil, nil).Once()

	assert.Equal(t, 0, r.tick(context.Background()))
}

func TestReconciler_Tick_HandlesError(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Minute, newTestLogger(t))

	auditor.EXPECT().SeatDrift(mock.Anything).Return(nil, errors.New("db error")).Once()

	assert.Equal(t, 0, r.tick(context.Background()))
}

func TestReconciler_Tick_FailedAuditKeepsSuspects(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Minute, newTestLogger(t))

	drift := []domain.SeatDrift{{EventID: "e1", TotalSeats: 10, AvailableSeats: 4, BookedTickets: 2}}
	auditor.EXPECT().SeatDrift(mock.Anything).Return(drift, nil).Once()
	auditor.EXPECT().SeatDrift(mock.Anything).Return(nil, errors.New("db error")).Once()
	auditor.EXPECT().SeatDrift(mock.Anything).Return(drift, nil).Once()

	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 0, r.tick(context.Background()))
	assert.Equal(t, 1, r.tick(context.Background()))
}

func TestReconciler_RunsOnInterval(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, 20*time.Millisecond, newTestLogger(t))

	auditor.EXPECT().SeatDrift(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	require.NoError(t, r.Start(ctx))
	assert.GreaterOrEqual(t, len(auditor.Calls), 2)
}

func TestReconciler_StopsOnContextCancel(t *testing.T) {
	auditor := mocks.NewMockSeatAuditor(t)
	r := NewReconciler(auditor, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- r.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop on context cancel")
	}
}
