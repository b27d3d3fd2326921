package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		User:      dto.ToUserResponse(session.User),
	})
}

func (h *Handler) Me(c *ginext.Context) {
	p := principal(c)
	if p == nil {
		c.JSON(http.StatusOK, dto.MeResponse{LoggedIn: false})
		return
	}

	user, err := h.userService.Me(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.MeResponse{LoggedIn: true, User: &resp})
}
