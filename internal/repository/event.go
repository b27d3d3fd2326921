package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `e.id, e.title, e.description, e.event_date, e.location, e.price,
		e.total_seats, e.available_seats, e.organizer_id,
		COALESCE(u.name, ''), COALESCE(u.email, ''),
		e.image_url, e.status, e.admin_notes, e.created_at`

const eventFrom = `FROM events e LEFT JOIN users u ON u.id = e.organizer_id`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, location, price,
			  		total_seats, available_seats, organizer_id, image_url, status, admin_notes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Location, e.Price,
		e.TotalSeats, e.AvailableSeats, e.OrganizerID, e.ImageURL, e.Status, e.AdminNotes, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !validID(id) {
		return nil, domain.ErrEventNotFound
	}

	query := `SELECT ` + eventColumns + ` ` + eventFrom + ` WHERE e.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListApproved(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` ` + eventFrom + `
			  WHERE e.status = $1
			  ORDER BY e.event_date ASC`

	return r.list(ctx, "list approved events", query, domain.EventStatusApproved)
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	if !validID(organizerID) {
		return nil, nil
	}

	query := `SELECT ` + eventColumns + ` ` + eventFrom + `
			  WHERE e.organizer_id = $1
			  ORDER BY e.event_date ASC`

	return r.list(ctx, "list organizer events", query, organizerID)
}

// ListForAdmin orders pending events first, then approved, then rejected;
// newest first inside each group.
func (r *EventRepository) ListForAdmin(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` ` + eventFrom + `
			  ORDER BY CASE e.status WHEN 'pending' THEN 1 WHEN 'approved' THEN 2 ELSE 3 END,
			  		e.created_at DESC`

	return r.list(ctx, "list admin events", query)
}

// UpdateStatus has no precondition on the current status.
func (r *EventRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.EventStatus,
	notes string,
) (*domain.Event, error) {
	if !validID(id) {
		return nil, domain.ErrEventNotFound
	}

	query := `WITH updated AS (
			  		UPDATE events SET status = $2, admin_notes = $3
			  		WHERE id = $1
			  		RETURNING *
			  )
			  SELECT ` + eventColumns + `
			  FROM updated e LEFT JOIN users u ON u.id = e.organizer_id`

	e, err := scanEvent(r.db.Master.QueryRowContext(ctx, query, id, status, notes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event status: %w", err)
	}

	return e, nil
}

// UpdateFields writes the organizer-editable columns. Status and available_seats are not touched.
func (r *EventRepository) UpdateFields(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, event_date = $4, location = $5,
			  	  price = $6, total_seats = $7, image_url = $8
			  WHERE id = $1`
	res, err := r.db.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Location, e.Price, e.TotalSeats, e.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

// Delete relies on the bookings foreign key to refuse booked events, so a
// booking racing with the delete cannot be orphaned.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrEventNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrHasActiveBookings
		}
		return fmt.Errorf("delete event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

// DecrementSeats checks and takes seats in one conditional UPDATE, so
// concurrent reservations on the same row serialize on its lock and cannot
// oversell. It is not retried: a lost response would hide a committed decrement.
func (r *EventRepository) DecrementSeats(ctx context.Context, eventID string, n int) (*domain.Reservation, error) {
	if !validID(eventID) {
		return nil, domain.ErrEventNotBookable
	}

	query := `UPDATE events
			  SET available_seats = available_seats - $2
			  WHERE id = $1 AND status = $3 AND available_seats >= $2
			  RETURNING title, price`

	res := domain.Reservation{EventID: eventID, Tickets: n}
	err := r.db.Master.QueryRowContext(ctx, query, eventID, n, domain.EventStatusApproved).
		Scan(&res.Title, &res.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.rejection(ctx, eventID)
		}
		return nil, fmt.Errorf("decrement seats: %w", err)
	}

	return &res, nil
}

// rejection explains why a decrement matched no row.
func (r *EventRepository) rejection(ctx context.Context, eventID string) error {
	var status domain.EventStatus
	err := r.db.Master.QueryRowContext(ctx, `SELECT status FROM events WHERE id = $1`, eventID).Scan(&status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrEventNotBookable
	case err != nil:
		return fmt.Errorf("check event status: %w", err)
	case status != domain.EventStatusApproved:
		return domain.ErrEventNotBookable
	default:
		return domain.ErrInsufficientSeats
	}
}

// IncrementSeats returns seats taken by DecrementSeats. It is the exact
// inverse of a committed decrement, so it is not capped at total_seats: an
// edit may have lowered total_seats below available_seats.
func (r *EventRepository) IncrementSeats(ctx context.Context, eventID string, n int) error {
	if !validID(eventID) {
		return domain.ErrEventNotFound
	}

	query := `UPDATE events
			  SET available_seats = available_seats + $2
			  WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, eventID, n)
	if err != nil {
		return fmt.Errorf("increment seats: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvent(row scanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Price,
		&e.TotalSeats, &e.AvailableSeats, &e.OrganizerID,
		&e.OrganizerName, &e.OrganizerEmail,
		&e.ImageURL, &e.Status, &e.AdminNotes, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Date = e.Date.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}
