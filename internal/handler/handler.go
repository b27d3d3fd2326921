package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Submit(ctx context.Context, p *domain.Principal, draft domain.EventDraft) (*domain.Event, error)
	Edit(ctx context.Context, p *domain.Principal, eventID string, patch domain.EventPatch) (*domain.Event, error)
	Remove(ctx context.Context, p *domain.Principal, eventID string) error
	Get(ctx context.Context, p *domain.Principal, eventID string) (*domain.Event, error)
	ListPublic(ctx context.Context) ([]*domain.Event, error)
	ListAdmin(ctx context.Context, p *domain.Principal) ([]*domain.Event, error)
	Approve(ctx context.Context, p *domain.Principal, eventID, notes string) (*domain.Event, error)
	Reject(ctx context.Context, p *domain.Principal, eventID, notes string) (*domain.Event, error)
}

type BookingSvc interface {
	Book(ctx context.Context, p *domain.Principal, in domain.BookInput) (*domain.BookingConfirmation, error)
	ListMine(ctx context.Context, p *domain.Principal) ([]*domain.BookingView, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Me(ctx context.Context, p *domain.Principal) (*domain.User, error)
}

type OrganizerSvc interface {
	Events(ctx context.Context, p *domain.Principal) ([]*domain.OrganizerEvent, error)
	Dashboard(ctx context.Context, p *domain.Principal) (*domain.OrganizerDashboard, error)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	eventService     EventSvc
	bookingService   BookingSvc
	userService      UserSvc
	organizerService OrganizerSvc
	db               Pinger
}

func NewHandler(
	eventService EventSvc,
	bookingService BookingSvc,
	userService UserSvc,
	organizerService OrganizerSvc,
	db Pinger,
) *Handler {
	return &Handler{
		eventService:     eventService,
		bookingService:   bookingService,
		userService:      userService,
		organizerService: organizerService,
		db:               db,
	}
}

func principal(c *ginext.Context) *domain.Principal {
	return auth.PrincipalFromContext(c.Request.Context())
}

// eventID reads the :id path parameter and answers 400 when it is not a uuid.
func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrEventNotBookable),
		errors.Is(err, domain.ErrHasActiveBookings),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
