package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) BookEvent(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	confirmation, err := h.bookingService.Book(c.Request.Context(), principal(c), domain.BookInput{
		EventID:    req.EventID,
		Tickets:    req.Tickets,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingConfirmationResponse(confirmation))
}

// MyBookings answers anonymous callers with an empty list.
func (h *Handler) MyBookings(c *ginext.Context) {
	views, err := h.bookingService.ListMine(c.Request.Context(), principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(views))
}
