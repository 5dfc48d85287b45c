package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	GetVenue(c *ginext.Context)
	GetVenueBookings(c *ginext.Context)
	CheckAvailability(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ChangeBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	ApproveChange(c *ginext.Context)
	RejectChange(c *ginext.Context)
	StreamBookings(c *ginext.Context)

	SendMessage(c *ginext.Context)
	GetConversation(c *ginext.Context)
	MarkRead(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetUnread(c *ginext.Context)
	StreamUnread(c *ginext.Context)

	Health(c *ginext.Context)
}

// InitRouter mounts the API. metrics may be nil when the exporter is disabled.
func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.GET("/venues/:id/bookings", h.GetVenueBookings)
		api.POST("/venues/:id/availability", h.CheckAvailability)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/stream", h.StreamBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.ChangeBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/changes/approve", h.ApproveChange)
		api.POST("/bookings/:id/changes/reject", h.RejectChange)

		// Messages
		api.POST("/messages", h.SendMessage)
		api.GET("/messages", h.GetConversation)
		api.POST("/messages/read", h.MarkRead)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/unread", h.GetUnread)
		api.GET("/users/:id/unread/stream", h.StreamUnread)
	}

	router.GET("/health", h.Health)

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
