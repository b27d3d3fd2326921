package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          string          `json:"id"`
	Reference   string          `json:"reference"`
	EventID     string          `json:"event_id"`
	UserID      *string         `json:"user_id,omitempty"`
	Tickets     int             `json:"tickets"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	GuestName   string          `json:"guest_name,omitempty"`
	GuestEmail  string          `json:"guest_email,omitempty"`
	Status      BookingStatus   `json:"status"`
	BookedAt    time.Time       `json:"booking_date"`
}

// BookingView is a booking joined with the fields of its event and booker.
type BookingView struct {
	Booking
	EventTitle string          `json:"event_title"`
	EventDate  time.Time       `json:"event_date"`
	Location   string          `json:"location"`
	Price      decimal.Decimal `json:"price"`
	EventImage string          `json:"event_image"`
	UserName   string          `json:"user_name,omitempty"`
	UserEmail  string          `json:"user_email,omitempty"`
}

type BookInput struct {
	EventID    string
	Tickets    int
	GuestName  string
	GuestEmail string
}

func (in BookInput) Validate() error {
	if in.EventID == "" {
		return fmt.Errorf("%w: event id is required", ErrValidation)
	}
	if in.Tickets <= 0 {
		return fmt.Errorf("%w: tickets must be positive", ErrValidation)
	}
	return nil
}

// Reservation is the result of a successful seat decrement.
type Reservation struct {
	EventID string
	Title   string
	Price   decimal.Decimal
	Tickets int
}

func (r Reservation) Total() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Tickets)))
}

type BookingConfirmation struct {
	BookingID   string          `json:"booking_id"`
	Reference   string          `json:"reference"`
	EventTitle  string          `json:"event_title"`
	Tickets     int             `json:"tickets"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
