package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type ReportRepo interface {
	OrganizerEvents(ctx context.Context, organizerID string) ([]*domain.OrganizerEvent, error)
	DashboardStats(ctx context.Context, organizerID string) (domain.DashboardStats, error)
	RecentBookings(ctx context.Context, organizerID string, limit int) ([]*domain.BookingView, error)
}

type SeatAuditor interface {
	SeatDrift(ctx context.Context) ([]domain.SeatDrift, error)
}
