package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListAdminEvents(c *ginext.Context) {
	events, err := h.eventService.ListAdmin(c.Request.Context(), principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ApproveEvent(c *ginext.Context) {
	h.decide(c, h.eventService.Approve)
}

func (h *Handler) RejectEvent(c *ginext.Context) {
	h.decide(c, h.eventService.Reject)
}

type decision func(ctx context.Context, p *domain.Principal, eventID, notes string) (*domain.Event, error)

// decide accepts an empty body; the service fills in default notes.
func (h *Handler) decide(c *ginext.Context, fn decision) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	event, err := fn(c.Request.Context(), principal(c), id, req.AdminNotes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
