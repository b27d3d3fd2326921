package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type seatAuditor interface {
	SeatDrift(ctx context.Context) ([]domain.SeatDrift, error)
}

// Reconciler periodically compares each event's available seats with its
// confirmed bookings. Drift is reported, never repaired.
//
// A booking in flight between its seat decrement and its insert shows up as
// a one-seat mismatch. Such a mismatch is only reported once the same event
// shows the same gap on two consecutive audits.
type Reconciler struct {
	auditor  seatAuditor
	interval time.Duration
	logger   logger.Logger

	// event id -> gap seen on the previous audit
	suspects map[string]int
}

func NewReconciler(
	auditor seatAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Reconciler {
	return &Reconciler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
		suspects: make(map[string]int),
	}
}

// Start blocks until ctx is cancelled.
func (r *Reconciler) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.LogAttrs(ctx, logger.InfoLevel, "seat reconciler started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.LogAttrs(context.WithoutCancel(ctx), logger.InfoLevel, "seat reconciler stopped")
			return nil
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick runs one audit and returns the number of events with confirmed drift.
func (r *Reconciler) tick(ctx context.Context) int {
	drift, err := r.auditor.SeatDrift(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		r.logger.LogAttrs(ctx, logger.ErrorLevel, "seat audit failed",
			logger.String("error", err.Error()),
		)
		return 0
	}

	confirmed := r.confirm(drift)
	for _, d := range confirmed {
		r.logger.LogAttrs(ctx, logger.WarnLevel, "seat count drift",
			logger.String("event_id", d.EventID),
			logger.String("title", d.Title),
			logger.Int("available_seats", d.AvailableSeats),
			logger.Int("expected_seats", d.Expected()),
		)
	}

	if len(confirmed) > 0 {
		r.logger.LogAttrs(ctx, logger.WarnLevel, "seat audit found drift",
			logger.Int("events", len(confirmed)),
		)
	}

	return len(confirmed)
}

// confirm keeps the entries whose gap matches the previous audit and
// remembers the current audit for the next one.
func (r *Reconciler) confirm(drift []domain.SeatDrift) []domain.SeatDrift {
	next := make(map[string]int, len(drift))
	var confirmed []domain.SeatDrift

	for _, d := range drift {
		gap := d.AvailableSeats - d.Expected()
		next[d.EventID] = gap
		if prev, ok := r.suspects[d.EventID]; ok && prev == gap {
			confirmed = append(confirmed, d)
		}
	}

	r.suspects = next
	return confirmed
}
