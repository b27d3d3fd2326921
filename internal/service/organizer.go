package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
)

const (
	recentBookingsLimit = 10
	upcomingEventsLimit = 5
)

type OrganizerService struct {
	reports ports.ReportRepo
	events  ports.EventRepo
	now     func() time.Time
}

func NewOrganizerService(reports ports.ReportRepo, events ports.EventRepo) *OrganizerService {
	return &OrganizerService{
		reports: reports,
		events:  events,
		now:     time.Now,
	}
}

// Events lists the caller's events with booking aggregates, latest date first.
func (s *OrganizerService) Events(ctx context.Context, p *domain.Principal) ([]*domain.OrganizerEvent, error) {
	if err := requireRole(p, domain.RoleOrganizer); err != nil {
		return nil, err
	}

	events, err := s.reports.OrganizerEvents(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: organizer events: %w", domain.ErrPersistence, err)
	}
	if events == nil {
		events = []*domain.OrganizerEvent{}
	}

	return events, nil
}

func (s *OrganizerService) Dashboard(ctx context.Context, p *domain.Principal) (*domain.OrganizerDashboard, error) {
	if err := requireRole(p, domain.RoleOrganizer); err != nil {
		return nil, err
	}

	stats, err := s.reports.DashboardStats(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard stats: %w", domain.ErrPersistence, err)
	}

	recent, err := s.reports.RecentBookings(ctx, p.ID, recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: recent bookings: %w", domain.ErrPersistence, err)
	}
	if recent == nil {
		recent = []*domain.BookingView{}
	}

	events, err := s.events.ListByOrganizer(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: organizer events: %w", domain.ErrPersistence, err)
	}

	return &domain.OrganizerDashboard{
		Stats:          stats,
		RecentBookings: recent,
		UpcomingEvents: upcoming(events, s.now(), upcomingEventsLimit),
	}, nil
}

// upcoming keeps future events from a date-ascending list.
func upcoming(events []*domain.Event, now time.Time, limit int) []*domain.Event {
	out := make([]*domain.Event, 0, limit)
	for _, e := range events {
		if !e.Date.After(now) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}
