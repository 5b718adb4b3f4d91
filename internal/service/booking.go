package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
)

// BookingEvents receives notifications about new booking requests.  The
// RabbitMQ publisher implements it; failures never fail the request.
type BookingEvents interface {
	BookingRequested(ctx context.Context, b model.Booking)
}

// NopBookingEvents drops every notification.
type NopBookingEvents struct{}

func (NopBookingEvents) BookingRequested(context.Context, model.Booking) {}

// BookingInput is the payload accepted by CreateBooking.
type BookingInput struct {
	EventID     string
	ClientName  string
	ClientEmail string
	ClientPhone string
	EventDate   string
	GuestCount  int
	Package     string
	Budget      float64
	Message     string
}

// BookingService records booking requests.
type BookingService struct {
	bookings repository.BookingStore
	catalog  repository.CatalogStore
	events   BookingEvents
	now      func() time.Time
}

// NewBookingService builds the intake service.  catalog may be nil, in which
// case budgets are stored exactly as submitted.
func NewBookingService(bookings repository.BookingStore, catalog repository.CatalogStore, events BookingEvents) *BookingService {
	if events == nil {
		events = NopBookingEvents{}
	}
	return &BookingService{
		bookings: bookings,
		catalog:  catalog,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateBooking stores the request with status pending and returns its id.
// Only shape is checked: the guest count and budget must not be negative
// and a supplied event id must be well formed.  A zero budget for a known
// event and tier is filled with that tier's price.
func (s *BookingService) CreateBooking(ctx context.Context, in BookingInput) (string, error) {
	if in.GuestCount < 0 || in.Budget < 0 {
		return "", ErrInvalidBooking
	}
	if in.EventID != "" && !repository.IsValidID(in.EventID) {
		return "", ErrInvalidBooking
	}

	b := model.Booking{
		EventID:     in.EventID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		EventDate:   in.EventDate,
		GuestCount:  in.GuestCount,
		Package:     in.Package,
		Budget:      in.Budget,
		Message:     in.Message,
		Status:      model.BookingPending,
		CreatedAt:   s.now(),
	}
	if b.Budget == 0 && b.EventID != "" && s.catalog != nil {
		price, err := s.tierPrice(ctx, b.EventID, b.Package)
		if err != nil {
			return "", err
		}
		b.Budget = price
	}
	if err := s.bookings.Insert(ctx, &b); err != nil {
		return "", upstream("create booking", err)
	}
	s.events.BookingRequested(ctx, b)
	return b.ID, nil
}

// tierPrice looks up the price of tier for eventID.  Unknown events and
// tiers price at zero.
func (s *BookingService) tierPrice(ctx context.Context, eventID, tier string) (float64, error) {
	ev, err := s.catalog.FindEvent(ctx, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, upstream("find event", err)
	}
	price, _ := ev.Pricing.Tier(tier)
	return price, nil
}

// GetBooking returns a booking by id, or false when none exists.
func (s *BookingService) GetBooking(ctx context.Context, id string) (model.Booking, bool, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Booking{}, false, nil
	}
	if err != nil {
		return model.Booking{}, false, upstream("find booking", err)
	}
	return b, true, nil
}

// ListBookings returns bookings, filtered by status when status is set.
func (s *BookingService) ListBookings(ctx context.Context, status string) ([]model.Booking, error) {
	switch status {
	case "", model.BookingPending, model.BookingConfirmed, model.BookingCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	out, err := s.bookings.List(ctx, status)
	if err != nil {
		return nil, upstream("list bookings", err)
	}
	return out, nil
}
