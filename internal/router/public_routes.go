package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/middleware"
)

// RegisterPublic registers the unauthenticated catalog and booking routes.
// Catalog reads go through the Redis response cache; booking submissions
// through the rate limiter.
func RegisterPublic(e *echo.Echo, d Deps) {
	cache := middleware.ResponseCache(d.Cache, d.Redis, d.Log)

	api := e.Group("/api")
	api.GET("/events", d.Catalog.Events, cache)
	api.GET("/events/featured", d.Catalog.Featured, cache)
	api.GET("/events/:id", d.Catalog.Event, cache)
	api.GET("/testimonials", d.Catalog.Testimonials, cache)
	api.GET("/services", d.Catalog.Services, cache)
	api.GET("/team", d.Catalog.Team, cache)

	api.POST("/bookings", d.Booking.Create, middleware.RateLimit(d.RateLimit, d.Redis, d.Log))
}
