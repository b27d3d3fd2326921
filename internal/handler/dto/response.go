package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventHub/internal/domain"
)

type EventResponse struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Date           string      `json:"date"`
	Location       string      `json:"location"`
	Price          json.Number `json:"price"`
	TotalSeats     int         `json:"total_seats"`
	AvailableSeats int         `json:"available_seats"`
	OrganizerID    string      `json:"organizer_id"`
	OrganizerName  string      `json:"organizer_name,omitempty"`
	OrganizerEmail string      `json:"organizer_email,omitempty"`
	ImageURL       string      `json:"image_url"`
	Status         string      `json:"status"`
	AdminNotes     string      `json:"admin_notes,omitempty"`
	CreatedAt      string      `json:"created_at"`
}

type OrganizerEventResponse struct {
	EventResponse
	TotalBookings int         `json:"total_bookings"`
	TicketsSold   int         `json:"total_tickets_sold"`
	Revenue       json.Number `json:"total_revenue"`
	OccupancyRate float64     `json:"occupancy_rate"`
}

type BookingConfirmationResponse struct {
	BookingID   string      `json:"booking_id"`
	Reference   string      `json:"reference"`
	EventTitle  string      `json:"event_title"`
	Tickets     int         `json:"tickets"`
	TotalAmount json.Number `json:"total_amount"`
}

type BookingResponse struct {
	ID          string      `json:"id"`
	Reference   string      `json:"reference"`
	EventID     string      `json:"event_id"`
	Tickets     int         `json:"tickets"`
	TotalAmount json.Number `json:"total_amount"`
	GuestName   string      `json:"guest_name,omitempty"`
	GuestEmail  string      `json:"guest_email,omitempty"`
	Status      string      `json:"status"`
	BookingDate string      `json:"booking_date"`
	EventTitle  string      `json:"event_title"`
	EventDate   string      `json:"event_date"`
	Location    string      `json:"location"`
	Price       json.Number `json:"price"`
	EventImage  string      `json:"event_image"`
	UserName    string      `json:"user_name,omitempty"`
	UserEmail   string      `json:"user_email,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type MeResponse struct {
	LoggedIn bool          `json:"logged_in"`
	User     *UserResponse `json:"user,omitempty"`
}

type DashboardStatsResponse struct {
	TotalEvents      int         `json:"total_events"`
	TotalTicketsSold int         `json:"total_tickets_sold"`
	TotalRevenue     json.Number `json:"total_revenue"`
	AvgAttendance    float64     `json:"avg_attendance"`
}

type DashboardResponse struct {
	Stats          DashboardStatsResponse `json:"stats"`
	RecentBookings []BookingResponse      `json:"recent_bookings"`
	UpcomingEvents []EventResponse        `json:"upcoming_events"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// money renders an amount with two decimals as a JSON number.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date.Format(time.RFC3339),
		Location:       e.Location,
		Price:          money(e.Price),
		TotalSeats:     e.TotalSeats,
		AvailableSeats: e.AvailableSeats,
		OrganizerID:    e.OrganizerID,
		OrganizerName:  e.OrganizerName,
		OrganizerEmail: e.OrganizerEmail,
		ImageURL:       e.ImageURL,
		Status:         string(e.Status),
		AdminNotes:     e.AdminNotes,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToOrganizerEventResponse(e *domain.OrganizerEvent) OrganizerEventResponse {
	return OrganizerEventResponse{
		EventResponse: ToEventResponse(&e.Event),
		TotalBookings: e.TotalBookings,
		TicketsSold:   e.TicketsSold,
		Revenue:       money(e.Revenue),
		OccupancyRate: e.OccupancyRate,
	}
}

func ToBookingConfirmationResponse(b *domain.BookingConfirmation) BookingConfirmationResponse {
	return BookingConfirmationResponse{
		BookingID:   b.BookingID,
		Reference:   b.Reference,
		EventTitle:  b.EventTitle,
		Tickets:     b.Tickets,
		TotalAmount: money(b.TotalAmount),
	}
}

func ToBookingResponse(b *domain.BookingView) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		EventID:     b.EventID,
		Tickets:     b.Tickets,
		TotalAmount: money(b.TotalAmount),
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		Status:      string(b.Status),
		BookingDate: b.BookedAt.Format(time.RFC3339),
		EventTitle:  b.EventTitle,
		EventDate:   b.EventDate.Format(time.RFC3339),
		Location:    b.Location,
		Price:       money(b.Price),
		EventImage:  b.EventImage,
		UserName:    b.UserName,
		UserEmail:   b.UserEmail,
	}
}

func ToBookingResponses(views []*domain.BookingView) []BookingResponse {
	resp := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToBookingResponse(v))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(d *domain.OrganizerDashboard) DashboardResponse {
	return DashboardResponse{
		Stats: DashboardStatsResponse{
			TotalEvents:      d.Stats.TotalEvents,
			TotalTicketsSold: d.Stats.TotalTicketsSold,
			TotalRevenue:     money(d.Stats.TotalRevenue),
			AvgAttendance:    d.Stats.AvgAttendance,
		},
		RecentBookings: ToBookingResponses(d.RecentBookings),
		UpcomingEvents: ToEventResponses(d.UpcomingEvents),
	}
}
