package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// ReportRepository serves read models: organizer aggregates and the seat audit.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{db: sqlx.NewDb(db.Master, "postgres")}
}

type organizerEventRow struct {
	ID             string             `db:"id"`
	Title          string             `db:"title"`
	Description    string             `db:"description"`
	Date           time.Time          `db:"event_date"`
	Location       string             `db:"location"`
	Price          decimal.Decimal    `db:"price"`
	TotalSeats     int                `db:"total_seats"`
	AvailableSeats int                `db:"available_seats"`
	OrganizerID    string             `db:"organizer_id"`
	ImageURL       string             `db:"image_url"`
	Status         domain.EventStatus `db:"status"`
	AdminNotes     string             `db:"admin_notes"`
	CreatedAt      time.Time          `db:"created_at"`
	TotalBookings  int                `db:"total_bookings"`
	TicketsSold    int                `db:"tickets_sold"`
	Revenue        decimal.Decimal    `db:"revenue"`
	OccupancyRate  float64            `db:"occupancy_rate"`
}

func (row organizerEventRow) toDomain() *domain.OrganizerEvent {
	return &domain.OrganizerEvent{
		Event: domain.Event{
			ID:             row.ID,
			Title:          row.Title,
			Description:    row.Description,
			Date:           row.Date.UTC(),
			Location:       row.Location,
			Price:          row.Price,
			TotalSeats:     row.TotalSeats,
			AvailableSeats: row.AvailableSeats,
			OrganizerID:    row.OrganizerID,
			ImageURL:       row.ImageURL,
			Status:         row.Status,
			AdminNotes:     row.AdminNotes,
			CreatedAt:      row.CreatedAt.UTC(),
		},
		TotalBookings: row.TotalBookings,
		TicketsSold:   row.TicketsSold,
		Revenue:       row.Revenue,
		OccupancyRate: row.OccupancyRate,
	}
}

// OrganizerEvents counts only confirmed bookings towards tickets and revenue.
func (r *ReportRepository) OrganizerEvents(ctx context.Context, organizerID string) ([]*domain.OrganizerEvent, error) {
	if !validID(organizerID) {
		return nil, nil
	}

	query := `
		SELECT e.id, e.title, e.description, e.event_date, e.location, e.price,
		       e.total_seats, e.available_seats, e.organizer_id, e.image_url,
		       e.status, e.admin_notes, e.created_at,
		       COUNT(b.id) AS total_bookings,
		       COALESCE(SUM(b.tickets) FILTER (WHERE b.status = 'confirmed'), 0) AS tickets_sold,
		       COALESCE(SUM(b.total_amount) FILTER (WHERE b.status = 'confirmed'), 0) AS revenue,
		       ROUND(COALESCE(SUM(b.tickets) FILTER (WHERE b.status = 'confirmed'), 0) * 100.0
		             / e.total_seats, 2)::float8 AS occupancy_rate
		FROM events e
		LEFT JOIN bookings b ON b.event_id = e.id
		WHERE e.organizer_id = $1
		GROUP BY e.id
		ORDER BY e.event_date DESC`

	var rows []organizerEventRow
	if err := r.db.SelectContext(ctx, &rows, query, organizerID); err != nil {
		return nil, fmt.Errorf("select organizer events: %w", err)
	}

	res := make([]*domain.OrganizerEvent, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}

	return res, nil
}

func (r *ReportRepository) DashboardStats(ctx context.Context, organizerID string) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if !validID(organizerID) {
		return stats, nil
	}

	query := `
		WITH per_event AS (
			SELECT e.id,
			       COALESCE(SUM(b.tickets) FILTER (WHERE b.status = 'confirmed'), 0) AS sold,
			       COALESCE(SUM(b.total_amount) FILTER (WHERE b.status = 'confirmed'), 0) AS revenue
			FROM events e
			LEFT JOIN bookings b ON b.event_id = e.id
			WHERE e.organizer_id = $1
			GROUP BY e.id
		)
		SELECT COUNT(*) AS total_events,
		       COALESCE(SUM(sold), 0) AS total_tickets_sold,
		       COALESCE(SUM(revenue), 0) AS total_revenue,
		       ROUND(COALESCE(AVG(sold), 0), 2)::float8 AS avg_attendance
		FROM per_event`

	var row struct {
		TotalEvents      int             `db:"total_events"`
		TotalTicketsSold int             `db:"total_tickets_sold"`
		TotalRevenue     decimal.Decimal `db:"total_revenue"`
		AvgAttendance    float64         `db:"avg_attendance"`
	}
	if err := r.db.GetContext(ctx, &row, query, organizerID); err != nil {
		return stats, fmt.Errorf("get dashboard stats: %w", err)
	}

	return domain.DashboardStats{
		TotalEvents:      row.TotalEvents,
		TotalTicketsSold: row.TotalTicketsSold,
		TotalRevenue:     row.TotalRevenue,
		AvgAttendance:    row.AvgAttendance,
	}, nil
}

// RecentBookings lists the latest bookings on the organizer's events with the booker's name and email.
func (r *ReportRepository) RecentBookings(ctx context.Context, organizerID string, limit int) ([]*domain.BookingView, error) {
	if !validID(organizerID) {
		return nil, nil
	}

	query := `SELECT ` + bookingViewColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  LEFT JOIN users u ON u.id = b.user_id
			  WHERE e.organizer_id = $1
			  ORDER BY b.booked_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryxContext(ctx, query, organizerID, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

// SeatDrift lists events where available_seats differs from
// total_seats minus confirmed tickets.
func (r *ReportRepository) SeatDrift(ctx context.Context) ([]domain.SeatDrift, error) {
	query := `
		SELECT e.id, e.title, e.total_seats, e.available_seats,
		       COALESCE(SUM(b.tickets) FILTER (WHERE b.status = 'confirmed'), 0) AS booked_tickets
		FROM events e
		LEFT JOIN bookings b ON b.event_id = e.id
		GROUP BY e.id
		HAVING e.available_seats <> e.total_seats
		       - COALESCE(SUM(b.tickets) FILTER (WHERE b.status = 'confirmed'), 0)
		ORDER BY e.created_at`

	var drift []domain.SeatDrift
	if err := r.db.SelectContext(ctx, &drift, query); err != nil {
		return nil, fmt.Errorf("select seat drift: %w", err)
	}

	return drift, nil
}
