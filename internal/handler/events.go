package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.ListPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	draft := domain.EventDraft{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Price:       req.Price,
		TotalSeats:  req.TotalSeats,
		ImageURL:    req.ImageURL,
	}

	event, err := h.eventService.Submit(c.Request.Context(), principal(c), draft)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		TotalSeats:  req.TotalSeats,
		ImageURL:    req.ImageURL,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected RFC3339",
			})
			return
		}
		patch.Date = &date
	}

	event, err := h.eventService.Edit(c.Request.Context(), principal(c), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Remove(c.Request.Context(), principal(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "event deleted"})
}
