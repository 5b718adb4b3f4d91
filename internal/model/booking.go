package model

import "time"

// Booking status values.  Only BookingPending is written by the API; the
// other two are reserved for the admin team.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a request from a prospective client to plan an event.  It
// optionally references a catalog package and records the tier they picked
// together with the tier's price as budget.
type Booking struct {
	ID          string    `json:"_id" bson:"_id"`
	EventID     string    `json:"eventId,omitempty" bson:"eventId,omitempty"`
	ClientName  string    `json:"clientName" bson:"clientName"`
	ClientEmail string    `json:"clientEmail" bson:"clientEmail"`
	ClientPhone string    `json:"clientPhone" bson:"clientPhone"`
	EventDate   string    `json:"eventDate" bson:"eventDate"`
	GuestCount  int       `json:"guestCount" bson:"guestCount"`
	Package     string    `json:"package" bson:"package"`
	Budget      float64   `json:"budget" bson:"budget"`
	Message     string    `json:"message" bson:"message"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingStats summarises bookings for the admin dashboard.
type BookingStats struct {
	TotalBookings int `json:"totalBookings"`
	Pending       int `json:"pending"`
	Confirmed     int `json:"confirmed"`
	Cancelled     int `json:"cancelled"`
	ActiveEvents  int `json:"activeEvents"`
}
