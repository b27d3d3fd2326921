package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workflowDeps struct {
	events    *mocks.MockEventRepo
	bookings  *mocks.MockBookingRepo
	cache     *mocks.MockEventCache
	publisher *mocks.MockDomainPublisher
	wf        *ApprovalWorkflow
}

func newWorkflowDeps(t *testing.T) workflowDeps {
	t.Helper()
	d := workflowDeps{
		events:    mocks.NewMockEventRepo(t),
		bookings:  mocks.NewMockBookingRepo(t),
		cache:     mocks.NewMockEventCache(t),
		publisher: mocks.NewMockDomainPublisher(t),
	}
	d.wf = NewApprovalWorkflow(d.events, d.bookings, d.cache, d.publisher, newTestLogger(t))
	return d
}

var (
	organizer = &domain.Principal{ID: "org1", Role: domain.RoleOrganizer}
	rival     = &domain.Principal{ID: "org2", Role: domain.RoleOrganizer}
	admin     = &domain.Principal{ID: "adm1", Role: domain.RoleAdmin}
)

func validDraft() domain.EventDraft {
	return domain.EventDraft{
		Title:      "Tech Conference",
		Date:       time.Now().Add(72 * time.Hour),
		Location:   "Hall A",
		Price:      decimal.RequireFromString("49.99"),
		TotalSeats: 50,
	}
}

func ownedEvent(status domain.EventStatus) *domain.Event {
	return &domain.Event{
		ID:             "e1",
		Title:          "Tech Conference",
		Date:           time.Now().Add(72 * time.Hour),
		Location:       "Hall A",
		Price:          decimal.NewFromInt(50),
		TotalSeats:     50,
		AvailableSeats: 45,
		OrganizerID:    "org1",
		Status:         status,
	}
}

// --- Submit ---

func TestApprovalWorkflow_Submit_Success(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Status == domain.EventStatusPending &&
			e.AvailableSeats == 50 && e.TotalSeats == 50 &&
			e.OrganizerID == "org1" &&
			e.ImageURL == domain.DefaultImageURL
	})).Return(nil)

	event, err := d.wf.Submit(context.Background(), organizer, validDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusPending, event.Status)
	assert.Equal(t, "49.99", event.Price.StringFixed(2))
}

func TestApprovalWorkflow_Submit_KeepsImage(t *testing.T) {
	d := newWorkflowDeps(t)

	draft := validDraft()
	draft.ImageURL = "https://cdn.example.com/poster.png"
	d.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	event, err := d.wf.Submit(context.Background(), organizer, draft)

	require.NoError(t, err)
	assert.Equal(t, draft.ImageURL, event.ImageURL)
}

func TestApprovalWorkflow_Submit_RoleChecks(t *testing.T) {
	d := newWorkflowDeps(t)

	_, err := d.wf.Submit(context.Background(), nil, validDraft())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = d.wf.Submit(context.Background(), alice, validDraft())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = d.wf.Submit(context.Background(), admin, validDraft())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApprovalWorkflow_Submit_Validation(t *testing.T) {
	d := newWorkflowDeps(t)

	cases := map[string]func(*domain.EventDraft){
		"empty title":    func(dr *domain.EventDraft) { dr.Title = " " },
		"zero seats":     func(dr *domain.EventDraft) { dr.TotalSeats = 0 },
		"negative price": func(dr *domain.EventDraft) { dr.Price = decimal.NewFromInt(-1) },
		"missing date":   func(dr *domain.EventDraft) { dr.Date = time.Time{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			draft := validDraft()
			mutate(&draft)
			_, err := d.wf.Submit(context.Background(), organizer, draft)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestApprovalWorkflow_Submit_RepoError(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := d.wf.Submit(context.Background(), organizer, validDraft())

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

// --- Approve / Reject ---

func TestApprovalWorkflow_Approve_DefaultNotes(t *testing.T) {
	d := newWorkflowDeps(t)

	approved := ownedEvent(domain.EventStatusApproved)
	approved.AdminNotes = domain.DefaultApproveNotes
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, domain.DefaultApproveNotes).
		Return(approved, nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()
	d.publisher.EXPECT().EventStatusChanged(mock.Anything, approved).Return()

	event, err := d.wf.Approve(context.Background(), admin, "e1", "")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusApproved, event.Status)
}

func TestApprovalWorkflow_Approve_Twice(t *testing.T) {
	d := newWorkflowDeps(t)

	approved := ownedEvent(domain.EventStatusApproved)
	approved.AdminNotes = "ok"
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, "ok").
		Return(approved, nil).Times(2)
	d.cache.EXPECT().Invalidate(mock.Anything).Return().Times(2)
	d.publisher.EXPECT().EventStatusChanged(mock.Anything, mock.Anything).Return().Times(2)

	for i := 0; i < 2; i++ {
		event, err := d.wf.Approve(context.Background(), admin, "e1", "ok")
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusApproved, event.Status)
		assert.Equal(t, "ok", event.AdminNotes)
	}
}

func TestApprovalWorkflow_Reject_AfterApproval(t *testing.T) {
	d := newWorkflowDeps(t)

	rejected := ownedEvent(domain.EventStatusRejected)
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, "duplicate listing").
		Return(rejected, nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()
	d.publisher.EXPECT().EventStatusChanged(mock.Anything, rejected).Return()

	event, err := d.wf.Reject(context.Background(), admin, "e1", "  duplicate listing ")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusRejected, event.Status)
}

func TestApprovalWorkflow_Reject_DefaultNotes(t *testing.T) {
	d := newWorkflowDeps(t)

	rejected := ownedEvent(domain.EventStatusRejected)
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, domain.DefaultRejectNotes).
		Return(rejected, nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()
	d.publisher.EXPECT().EventStatusChanged(mock.Anything, rejected).Return()

	_, err := d.wf.Reject(context.Background(), admin, "e1", "")

	require.NoError(t, err)
}

func TestApprovalWorkflow_Approve_RequiresAdmin(t *testing.T) {
	d := newWorkflowDeps(t)

	_, err := d.wf.Approve(context.Background(), organizer, "e1", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = d.wf.Reject(context.Background(), nil, "e1", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestApprovalWorkflow_Approve_NotFound(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().UpdateStatus(mock.Anything, "missing", domain.EventStatusApproved, mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	_, err := d.wf.Approve(context.Background(), admin, "missing", "")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
}

// --- Edit ---

func TestApprovalWorkflow_Edit_KeepsStatusAndSeats(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusApproved), nil)
	d.events.EXPECT().UpdateFields(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.TotalSeats == 20 && e.AvailableSeats == 45 && e.Status == domain.EventStatusApproved
	})).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()

	seats := 20
	title := "Tech Conference 2"
	event, err := d.wf.Edit(context.Background(), organizer, "e1", domain.EventPatch{TotalSeats: &seats, Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Tech Conference 2", event.Title)
	assert.Equal(t, 45, event.AvailableSeats)
	assert.Equal(t, domain.EventStatusApproved, event.Status)
}

func TestApprovalWorkflow_Edit_NotOwner(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusPending), nil)

	title := "Hijacked"
	_, err := d.wf.Edit(context.Background(), rival, "e1", domain.EventPatch{Title: &title})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestApprovalWorkflow_Edit_Missing(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := d.wf.Edit(context.Background(), organizer, "missing", domain.EventPatch{})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestApprovalWorkflow_Edit_InvalidPatch(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusPending), nil)

	seats := -5
	_, err := d.wf.Edit(context.Background(), organizer, "e1", domain.EventPatch{TotalSeats: &seats})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApprovalWorkflow_Edit_Admin(t *testing.T) {
	d := newWorkflowDeps(t)

	_, err := d.wf.Edit(context.Background(), admin, "e1", domain.EventPatch{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// --- Remove ---

func TestApprovalWorkflow_Remove_HasBookings(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusApproved), nil)
	d.bookings.EXPECT().CountForEvent(mock.Anything, "e1").Return(1, nil)

	err := d.wf.Remove(context.Background(), organizer, "e1")

	assert.ErrorIs(t, err, domain.ErrHasActiveBookings)
}

func TestApprovalWorkflow_Remove_Success(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusPending), nil)
	d.bookings.EXPECT().CountForEvent(mock.Anything, "e1").Return(0, nil)
	d.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()

	require.NoError(t, d.wf.Remove(context.Background(), organizer, "e1"))
}

func TestApprovalWorkflow_Remove_BookedConcurrently(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusApproved), nil)
	d.bookings.EXPECT().CountForEvent(mock.Anything, "e1").Return(0, nil)
	d.events.EXPECT().Delete(mock.Anything, "e1").Return(domain.ErrHasActiveBookings)

	err := d.wf.Remove(context.Background(), organizer, "e1")

	assert.ErrorIs(t, err, domain.ErrHasActiveBookings)
}

func TestApprovalWorkflow_Remove_NotOwner(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusPending), nil)

	err := d.wf.Remove(context.Background(), rival, "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

// --- Reads ---

func TestApprovalWorkflow_Get_Visibility(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusPending), nil)

	_, err := d.wf.Get(context.Background(), nil, "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = d.wf.Get(context.Background(), rival, "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = d.wf.Get(context.Background(), organizer, "e1")
	assert.NoError(t, err)

	_, err = d.wf.Get(context.Background(), admin, "e1")
	assert.NoError(t, err)
}

func TestApprovalWorkflow_Get_ApprovedIsPublic(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(ownedEvent(domain.EventStatusApproved), nil)

	event, err := d.wf.Get(context.Background(), nil, "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
}

func TestApprovalWorkflow_ListPublic_CacheHit(t *testing.T) {
	d := newWorkflowDeps(t)

	cached := []*domain.Event{ownedEvent(domain.EventStatusApproved)}
	d.cache.EXPECT().GetApproved(mock.Anything).Return(cached, 4, true)

	events, err := d.wf.ListPublic(context.Background())

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestApprovalWorkflow_ListPublic_CacheMiss(t *testing.T) {
	d := newWorkflowDeps(t)

	fromDB := []*domain.Event{ownedEvent(domain.EventStatusApproved)}
	d.cache.EXPECT().GetApproved(mock.Anything).Return(nil, 4, false)
	d.events.EXPECT().ListApproved(mock.Anything).Return(fromDB, nil)
	d.cache.EXPECT().SetApproved(mock.Anything, int64(4), fromDB).Return()

	events, err := d.wf.ListPublic(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fromDB, events)
}

func TestApprovalWorkflow_ListPublic_RejectDuringFill(t *testing.T) {
	d := newWorkflowDeps(t)

	stale := []*domain.Event{ownedEvent(domain.EventStatusApproved)}
	rejected := ownedEvent(domain.EventStatusRejected)

	var order []string
	d.cache.EXPECT().GetApproved(mock.Anything).Return(nil, 7, false)
	d.events.EXPECT().ListApproved(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*domain.Event, error) {
			_, err := d.wf.Reject(ctx, admin, "e1", "duplicate")
			require.NoError(t, err)
			return stale, nil
		})
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, "duplicate").Return(rejected, nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Run(func(context.Context) { order = append(order, "invalidate") }).Return()
	d.publisher.EXPECT().EventStatusChanged(mock.Anything, rejected).Return()
	// The fill is stored under the version seen before the read, which the
	// invalidation has already retired.
	d.cache.EXPECT().SetApproved(mock.Anything, int64(7), stale).
		Run(func(context.Context, int64, []*domain.Event) { order = append(order, "set") }).Return()

	_, err := d.wf.ListPublic(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"invalidate", "set"}, order)
}

func TestApprovalWorkflow_ListPublic_Error(t *testing.T) {
	d := newWorkflowDeps(t)

	d.cache.EXPECT().GetApproved(mock.Anything).Return(nil, 4, false)
	d.events.EXPECT().ListApproved(mock.Anything).Return(nil, errors.New("db error"))

	_, err := d.wf.ListPublic(context.Background())

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestApprovalWorkflow_ListAdmin(t *testing.T) {
	d := newWorkflowDeps(t)

	d.events.EXPECT().ListForAdmin(mock.Anything).Return(nil, nil)

	events, err := d.wf.ListAdmin(context.Background(), admin)
	require.NoError(t, err)
	assert.NotNil(t, events)

	_, err = d.wf.ListAdmin(context.Background(), organizer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
