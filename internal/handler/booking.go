package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/service"
)

// BookingHandler accepts booking requests from the public site.
type BookingHandler struct {
	Bookings *service.BookingService
	Log      *slog.Logger
}

func NewBookingHandler(bookings *service.BookingService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Log: log}
}

// bookingReq accepts any well-typed payload; only the numbers are bounded.
type bookingReq struct {
	EventID     string  `json:"eventId"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	EventDate   string  `json:"eventDate"`
	GuestCount  int     `json:"guestCount" validate:"gte=0"`
	Package     string  `json:"package"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Message     string  `json:"message"`
}

// Create stores a booking request and answers 201 {id, status}.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingReq
	if msg, ok := bindValid(c, &req); !ok {
		return message(c, http.StatusBadRequest, msg)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()

	id, err := h.Bookings.CreateBooking(ctx, service.BookingInput{
		EventID:     req.EventID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		EventDate:   req.EventDate,
		GuestCount:  req.GuestCount,
		Package:     req.Package,
		Budget:      req.Budget,
		Message:     req.Message,
	})
	if errors.Is(err, service.ErrInvalidBooking) {
		return message(c, http.StatusBadRequest, "Invalid booking request")
	}
	if err != nil {
		return internalError(c, h.Log, "create booking", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "status": model.BookingPending})
}
