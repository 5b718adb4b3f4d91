// Package queue carries booking notifications over RabbitMQ: a publisher
// used by the booking service and a consumer that appends them to a log.
package queue

import (
	"time"

	"github.com/iliyamo/eventsphere/internal/model"
)

// BookingQueueName is the durable queue new booking requests are sent to.
const BookingQueueName = "booking.requested"

// BookingRequestedEvent is published after a booking request is stored.  It
// carries enough for downstream consumers to log or notify without reading
// the primary store.
type BookingRequestedEvent struct {
	BookingID   string  `json:"booking_id"`
	EventID     string  `json:"event_id,omitempty"`
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	EventDate   string  `json:"event_date"`
	GuestCount  int     `json:"guest_count"`
	Package     string  `json:"package"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
}

// NewBookingRequestedEvent builds the message payload for b.
func NewBookingRequestedEvent(b model.Booking) BookingRequestedEvent {
	return BookingRequestedEvent{
		BookingID:   b.ID,
		EventID:     b.EventID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		EventDate:   b.EventDate,
		GuestCount:  b.GuestCount,
		Package:     b.Package,
		Budget:      b.Budget,
		Status:      b.Status,
		RequestedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
