package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) OrganizerEvents(c *ginext.Context) {
	events, err := h.organizerService.Events(c.Request.Context(), principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrganizerEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToOrganizerEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) OrganizerDashboard(c *ginext.Context) {
	dash, err := h.organizerService.Dashboard(c.Request.Context(), principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dash))
}
