package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const healthTimeout = 2 * time.Second

func (h *Handler) Health(c *ginext.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Database: "disconnected"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "connected"})
}
