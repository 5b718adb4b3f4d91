package repository

import (
	"context"

	"github.com/rs/xid"

	"github.com/iliyamo/eventsphere/internal/model"
)

// AccountStore persists accounts.  Email and GoogleID are unique; Insert
// returns ErrDuplicate when either constraint is violated.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (model.Account, error)
	FindByID(ctx context.Context, id string) (model.Account, error)
	Insert(ctx context.Context, acc *model.Account) error
	UpdateProfile(ctx context.Context, id, name, picture string) error
}

// BookingStore persists booking requests.  List filters by status when
// status is non-empty (backed by the status index).
type BookingStore interface {
	Insert(ctx context.Context, b *model.Booking) error
	FindByID(ctx context.Context, id string) (model.Booking, error)
	List(ctx context.Context, status string) ([]model.Booking, error)
}

// CatalogStore exposes the reference collections rendered on public pages.
// The insert methods are only used by the seeder.
type CatalogStore interface {
	ListEvents(ctx context.Context) ([]model.EventPackage, error)
	ListEventsByCategory(ctx context.Context, category string) ([]model.EventPackage, error)
	ListFeaturedEvents(ctx context.Context, limit int) ([]model.EventPackage, error)
	FindEvent(ctx context.Context, id string) (model.EventPackage, error)
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListTeam(ctx context.Context) ([]model.TeamMember, error)

	InsertEvent(ctx context.Context, e *model.EventPackage) error
	InsertTestimonial(ctx context.Context, t *model.Testimonial) error
	InsertService(ctx context.Context, s *model.Service) error
	InsertTeamMember(ctx context.Context, m *model.TeamMember) error
}

// Store groups the three stores backed by one connection.
type Store struct {
	Accounts AccountStore
	Bookings BookingStore
	Catalog  CatalogStore

	// Close releases the underlying connection.  Nil for the memory driver.
	Close func(ctx context.Context) error
}

// NewID returns a new document identifier.  Every driver uses the same
// xid-based string ids so records can move between stores.
func NewID() string {
	return xid.New().String()
}

// IsValidID reports whether id has the shape produced by NewID.
func IsValidID(id string) bool {
	_, err := xid.FromString(id)
	return err == nil
}

func ensureID(id *string) {
	if *id == "" {
		*id = NewID()
	}
}
