package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/middleware"
	"github.com/iliyamo/eventsphere/internal/model"
)

// RegisterAdmin registers dashboard endpoints under /api/admin.  All routes
// require a valid session and the admin role.
func RegisterAdmin(e *echo.Echo, d Deps) {
	g := e.Group("/api/admin",
		middleware.SessionAuth(d.Cfg.JWTSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.GET("/bookings", d.Admin.ListBookings)
	g.GET("/bookings/:id", d.Admin.GetBooking)
	g.GET("/stats", d.Admin.Stats)
}
