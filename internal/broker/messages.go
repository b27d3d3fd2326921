package broker

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoutingBookingConfirmed   = "booking.confirmed"
	RoutingEventStatusChanged = "event.status_changed"
)

type BookingConfirmed struct {
	BookingID   string          `json:"booking_id"`
	Reference   string          `json:"reference"`
	EventID     string          `json:"event_id"`
	UserID      string          `json:"user_id,omitempty"`
	Tickets     int             `json:"tickets"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	BookedAt    time.Time       `json:"booked_at"`
}

type EventStatusChanged struct {
	EventID    string    `json:"event_id"`
	Status     string    `json:"status"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}
