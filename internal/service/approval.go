package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ApprovalWorkflow owns the event lifecycle: submission by organizers,
// decisions by admins, and owner-only edits and removal.
type ApprovalWorkflow struct {
	events    ports.EventRepo
	bookings  ports.BookingRepo
	cache     ports.EventCache
	publisher ports.DomainPublisher
	logger    logger.Logger
}

func NewApprovalWorkflow(
	events ports.EventRepo,
	bookings ports.BookingRepo,
	cache ports.EventCache,
	publisher ports.DomainPublisher,
	logger logger.Logger,
) *ApprovalWorkflow {
	return &ApprovalWorkflow{
		events:    events,
		bookings:  bookings,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

func (w *ApprovalWorkflow) Submit(ctx context.Context, p *domain.Principal, draft domain.EventDraft) (*domain.Event, error) {
	if err := requireRole(p, domain.RoleOrganizer); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	image := strings.TrimSpace(draft.ImageURL)
	if image == "" {
		image = domain.DefaultImageURL
	}

	event := &domain.Event{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(draft.Title),
		Description:    draft.Description,
		Date:           draft.Date.UTC(),
		Location:       strings.TrimSpace(draft.Location),
		Price:          draft.Price.Round(2),
		TotalSeats:     draft.TotalSeats,
		AvailableSeats: draft.TotalSeats,
		OrganizerID:    p.ID,
		ImageURL:       image,
		Status:         domain.EventStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := w.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: insert event: %w", domain.ErrPersistence, err)
	}

	w.logger.LogAttrs(ctx, logger.InfoLevel, "event submitted",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", p.ID),
	)

	return event, nil
}

func (w *ApprovalWorkflow) Approve(ctx context.Context, p *domain.Principal, eventID, notes string) (*domain.Event, error) {
	return w.decide(ctx, p, eventID, domain.EventStatusApproved, notes, domain.DefaultApproveNotes)
}

func (w *ApprovalWorkflow) Reject(ctx context.Context, p *domain.Principal, eventID, notes string) (*domain.Event, error) {
	return w.decide(ctx, p, eventID, domain.EventStatusRejected, notes, domain.DefaultRejectNotes)
}

// decide has no precondition on the current status; a repeated decision
// overwrites the previous one.
func (w *ApprovalWorkflow) decide(
	ctx context.Context,
	p *domain.Principal,
	eventID string,
	status domain.EventStatus,
	notes, defaultNotes string,
) (*domain.Event, error) {
	if err := requireRole(p, domain.RoleAdmin); err != nil {
		return nil, err
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = defaultNotes
	}

	event, err := w.events.UpdateStatus(ctx, eventID, status, notes)
	if err != nil {
		return nil, storeErr("update event status", err)
	}

	w.logger.LogAttrs(ctx, logger.InfoLevel, "event status changed",
		logger.String("event_id", eventID),
		logger.String("status", string(status)),
		logger.String("admin_id", p.ID),
	)

	w.cache.Invalidate(ctx)
	w.publisher.EventStatusChanged(ctx, event)

	return event, nil
}

// Edit changes organizer-editable fields. Status and available seats are left as they are.
func (w *ApprovalWorkflow) Edit(ctx context.Context, p *domain.Principal, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	event, err := w.owned(ctx, p, eventID)
	if err != nil {
		return nil, err
	}
	if err = patch.Validate(); err != nil {
		return nil, err
	}

	patch.Apply(event)
	event.Date = event.Date.UTC()
	event.Price = event.Price.Round(2)

	if err = w.events.UpdateFields(ctx, event); err != nil {
		return nil, storeErr("update event", err)
	}

	w.logger.LogAttrs(ctx, logger.InfoLevel, "event updated",
		logger.String("event_id", eventID),
		logger.String("organizer_id", p.ID),
	)

	w.cache.Invalidate(ctx)

	return event, nil
}

// Remove deletes an owned event that has never been booked.
func (w *ApprovalWorkflow) Remove(ctx context.Context, p *domain.Principal, eventID string) error {
	if _, err := w.owned(ctx, p, eventID); err != nil {
		return err
	}

	n, err := w.bookings.CountForEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%w: count bookings: %w", domain.ErrPersistence, err)
	}
	if n > 0 {
		return domain.ErrHasActiveBookings
	}

	if err = w.events.Delete(ctx, eventID); err != nil {
		return storeErr("delete event", err)
	}

	w.logger.LogAttrs(ctx, logger.InfoLevel, "event deleted",
		logger.String("event_id", eventID),
		logger.String("organizer_id", p.ID),
	)

	w.cache.Invalidate(ctx)

	return nil
}

// Get returns an event the caller may see. Hidden events look missing.
func (w *ApprovalWorkflow) Get(ctx context.Context, p *domain.Principal, eventID string) (*domain.Event, error) {
	event, err := w.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, storeErr("get event", err)
	}
	if !event.VisibleTo(p) {
		return nil, domain.ErrEventNotFound
	}

	return event, nil
}

// ListPublic returns approved events ordered by date.
func (w *ApprovalWorkflow) ListPublic(ctx context.Context) ([]*domain.Event, error) {
	events, version, ok := w.cache.GetApproved(ctx)
	if ok {
		return events, nil
	}

	events, err := w.events.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list approved events: %w", domain.ErrPersistence, err)
	}
	if events == nil {
		events = []*domain.Event{}
	}

	w.cache.SetApproved(ctx, version, events)

	return events, nil
}

// ListAdmin returns every event, pending first, newest first within a status.
func (w *ApprovalWorkflow) ListAdmin(ctx context.Context, p *domain.Principal) ([]*domain.Event, error) {
	if err := requireRole(p, domain.RoleAdmin); err != nil {
		return nil, err
	}

	events, err := w.events.ListForAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %w", domain.ErrPersistence, err)
	}
	if events == nil {
		events = []*domain.Event{}
	}

	return events, nil
}

// owned loads an event for its organizer. Missing and foreign events both
// report ErrEventNotFound.
func (w *ApprovalWorkflow) owned(ctx context.Context, p *domain.Principal, eventID string) (*domain.Event, error) {
	if err := requireRole(p, domain.RoleOrganizer); err != nil {
		return nil, err
	}

	event, err := w.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, storeErr("get event", err)
	}
	if event.OrganizerID != p.ID {
		return nil, domain.ErrEventNotFound
	}

	return event, nil
}

func requireRole(p *domain.Principal, role domain.Role) error {
	if p == nil {
		return domain.ErrUnauthorized
	}
	if p.Role != role {
		return fmt.Errorf("%w: %s role required", domain.ErrForbidden, role)
	}
	return nil
}

// storeErr keeps domain sentinels from the store and marks everything else as a persistence failure.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrHasActiveBookings),
		errors.Is(err, domain.ErrEmailTaken):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
	}
}
