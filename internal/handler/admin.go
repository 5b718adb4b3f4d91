package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/service"
)

// AdminHandler serves the admin dashboard.  Routes are guarded by
// SessionAuth and RequireRole("admin").
type AdminHandler struct {
	Bookings  *service.BookingService
	Dashboard *service.DashboardService
	Log       *slog.Logger
}

func NewAdminHandler(bookings *service.BookingService, dashboard *service.DashboardService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Dashboard: dashboard, Log: log}
}

// ListBookings: GET /api/admin/bookings?status=pending
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	out, err := h.Bookings.ListBookings(ctx, c.QueryParam("status"))
	if errors.Is(err, service.ErrInvalidStatus) {
		return message(c, http.StatusBadRequest, "Unknown booking status")
	}
	if err != nil {
		return internalError(c, h.Log, "list bookings", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) GetBooking(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	b, ok, err := h.Bookings.GetBooking(ctx, c.Param("id"))
	if err != nil {
		return internalError(c, h.Log, "get booking", err)
	}
	if !ok {
		return message(c, http.StatusNotFound, "Booking not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	st, err := h.Dashboard.Stats(ctx)
	if err != nil {
		return internalError(c, h.Log, "dashboard stats", err)
	}
	return c.JSON(http.StatusOK, st)
}
