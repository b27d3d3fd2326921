package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

const DefaultImageURL = "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?w=500&h=300&fit=crop"

const (
	DefaultApproveNotes = "Event approved by admin"
	DefaultRejectNotes  = "Event rejected by admin"
)

type Event struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	Location       string          `json:"location"`
	Price          decimal.Decimal `json:"price"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	OrganizerID    string          `json:"organizer_id"`
	OrganizerName  string          `json:"organizer_name,omitempty"`
	OrganizerEmail string          `json:"organizer_email,omitempty"`
	ImageURL       string          `json:"image_url"`
	Status         EventStatus     `json:"status"`
	AdminNotes     string          `json:"admin_notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// VisibleTo reports whether p may see the event outside the public listing.
func (e *Event) VisibleTo(p *Principal) bool {
	if e.Status == EventStatusApproved {
		return true
	}
	if p == nil {
		return false
	}
	return p.Role == RoleAdmin || p.ID == e.OrganizerID
}

type EventDraft struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Price       decimal.Decimal
	TotalSeats  int
	ImageURL    string
}

func (d EventDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(d.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if d.TotalSeats <= 0 {
		return fmt.Errorf("%w: total_seats must be positive", ErrValidation)
	}
	return nil
}

// EventPatch holds the organizer-editable fields. Nil fields are left untouched.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Price       *decimal.Decimal
	TotalSeats  *int
	ImageURL    *string
}

func (p EventPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return fmt.Errorf("%w: location must not be empty", ErrValidation)
	}
	if p.Date != nil && p.Date.IsZero() {
		return fmt.Errorf("%w: date must not be empty", ErrValidation)
	}
	if p.Price != nil && p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.TotalSeats != nil && *p.TotalSeats <= 0 {
		return fmt.Errorf("%w: total_seats must be positive", ErrValidation)
	}
	return nil
}

// Apply copies the set fields onto e. AvailableSeats is never touched.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Price != nil {
		e.Price = *p.Price
	}
	if p.TotalSeats != nil {
		e.TotalSeats = *p.TotalSeats
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
}

type OrganizerEvent struct {
	Event
	TotalBookings int             `json:"total_bookings"`
	TicketsSold   int             `json:"total_tickets_sold"`
	Revenue       decimal.Decimal `json:"total_revenue"`
	OccupancyRate float64         `json:"occupancy_rate"`
}

type DashboardStats struct {
	TotalEvents      int             `json:"total_events"`
	TotalTicketsSold int             `json:"total_tickets_sold"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	AvgAttendance    float64         `json:"avg_attendance"`
}

type OrganizerDashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentBookings []*BookingView `json:"recent_bookings"`
	UpcomingEvents []*Event       `json:"upcoming_events"`
}

// SeatDrift is an event whose available_seats disagrees with its confirmed bookings.
type SeatDrift struct {
	EventID        string `json:"event_id" db:"id"`
	Title          string `json:"title" db:"title"`
	TotalSeats     int    `json:"total_seats" db:"total_seats"`
	AvailableSeats int    `json:"available_seats" db:"available_seats"`
	BookedTickets  int    `json:"booked_tickets" db:"booked_tickets"`
}

func (d SeatDrift) Expected() int {
	return d.TotalSeats - d.BookedTickets
}
