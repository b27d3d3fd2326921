package router

import (
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)

	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	BookEvent(c *ginext.Context)
	MyBookings(c *ginext.Context)

	OrganizerEvents(c *ginext.Context)
	OrganizerDashboard(c *ginext.Context)

	ListAdminEvents(c *ginext.Context)
	ApproveEvent(c *ginext.Context)
	RejectEvent(c *ginext.Context)

	Health(c *ginext.Context)
}

// InitRouter registers the API. Middlewares in mw apply to every route, in order.
func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", h.Me)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Bookings
		api.POST("/bookings", h.BookEvent)
		api.GET("/bookings/my", h.MyBookings)

		// Organizer
		api.GET("/organizer/events", h.OrganizerEvents)
		api.GET("/organizer/dashboard", h.OrganizerDashboard)

		// Admin
		api.GET("/admin/events", h.ListAdminEvents)
		api.PUT("/admin/events/:id/approve", h.ApproveEvent)
		api.PUT("/admin/events/:id/reject", h.RejectEvent)
	}

	return router
}
