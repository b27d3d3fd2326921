package dto

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	Location    string          `json:"location" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	TotalSeats  int             `json:"total_seats" binding:"required"`
	ImageURL    string          `json:"image_url"`
}

// UpdateEventRequest carries only the fields being changed.
type UpdateEventRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	Location    *string          `json:"location"`
	Price       *decimal.Decimal `json:"price"`
	TotalSeats  *int             `json:"total_seats"`
	ImageURL    *string          `json:"image_url"`
}

type BookRequest struct {
	EventID    string `json:"event_id" binding:"required,uuid"`
	Tickets    int    `json:"tickets"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
}

type DecisionRequest struct {
	AdminNotes string `json:"admin_notes"`
}
