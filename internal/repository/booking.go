package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingViewColumns = `b.id, b.reference, b.event_id, b.user_id, b.tickets, b.total_amount,
		b.guest_name, b.guest_email, b.status, b.booked_at,
		e.title, e.event_date, e.location, e.price, e.image_url,
		COALESCE(u.name, ''), COALESCE(u.email, '')`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Insert is not retried: a retry after a lost response would either
// duplicate the row or fail on the primary key.
func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, reference, event_id, user_id, tickets, total_amount,
			  		guest_name, guest_email, status, booked_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(
		ctx, query,
		b.ID, b.Reference, b.EventID, b.UserID, b.Tickets, b.TotalAmount,
		b.GuestName, b.GuestEmail, b.Status, b.BookedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// CountForEvent counts bookings of any status; a cancelled booking still blocks deletion.
func (r *BookingRepository) CountForEvent(ctx context.Context, eventID string) (int, error) {
	if !validID(eventID) {
		return 0, nil
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*) FROM bookings WHERE event_id = $1`, eventID)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) ListForUser(ctx context.Context, userID string) ([]*domain.BookingView, error) {
	if !validID(userID) {
		return nil, nil
	}

	query := `SELECT ` + bookingViewColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  LEFT JOIN users u ON u.id = b.user_id
			  WHERE b.user_id = $1
			  ORDER BY b.booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
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

func scanBookingView(row scanner) (*domain.BookingView, error) {
	var (
		v      domain.BookingView
		userID sql.NullString
	)
	err := row.Scan(
		&v.ID, &v.Reference, &v.EventID, &userID, &v.Tickets, &v.TotalAmount,
		&v.GuestName, &v.GuestEmail, &v.Status, &v.BookedAt,
		&v.EventTitle, &v.EventDate, &v.Location, &v.Price, &v.EventImage,
		&v.UserName, &v.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		v.UserID = &userID.String
	}
	v.BookedAt = v.BookedAt.UTC()
	v.EventDate = v.EventDate.UTC()
	return &v, nil
}
