package repository

import (
	"context"
	"sync"

	"github.com/iliyamo/eventsphere/internal/model"
)

// MemoryAccountRepo keeps accounts in a map.  It enforces the same unique
// constraints as the database drivers.
type MemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
}

func NewMemoryAccountRepo() *MemoryAccountRepo {
	return &MemoryAccountRepo{accounts: map[string]*model.Account{}}
}

func (r *MemoryAccountRepo) FindByEmail(_ context.Context, email string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return *a, nil
		}
	}
	return model.Account{}, ErrNotFound
}

func (r *MemoryAccountRepo) FindByID(_ context.Context, id string) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.accounts[id]; ok {
		return *a, nil
	}
	return model.Account{}, ErrNotFound
}

func (r *MemoryAccountRepo) Insert(_ context.Context, acc *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == acc.Email || (acc.GoogleID != "" && a.GoogleID == acc.GoogleID) {
			return ErrDuplicate
		}
	}
	ensureID(&acc.ID)
	if _, ok := r.accounts[acc.ID]; ok {
		return ErrDuplicate
	}
	stored := *acc
	r.accounts[acc.ID] = &stored
	return nil
}

func (r *MemoryAccountRepo) UpdateProfile(_ context.Context, id, name, picture string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return ErrNotFound
	}
	a.Name = name
	a.Picture = picture
	return nil
}

// MemoryBookingRepo keeps bookings in insertion order.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo { return &MemoryBookingRepo{} }

func (r *MemoryBookingRepo) Insert(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ensureID(&b.ID)
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *MemoryBookingRepo) FindByID(_ context.Context, id string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrNotFound
}

func (r *MemoryBookingRepo) List(_ context.Context, status string) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// MemoryCatalogRepo is the local mock data layer.  Slices keep insertion
// order, which stands in for the store-defined order of the real drivers.
type MemoryCatalogRepo struct {
	mu           sync.RWMutex
	events       []model.EventPackage
	testimonials []model.Testimonial
	services     []model.Service
	team         []model.TeamMember
}

func NewMemoryCatalogRepo() *MemoryCatalogRepo { return &MemoryCatalogRepo{} }

func (r *MemoryCatalogRepo) ListEvents(_ context.Context) ([]model.EventPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.EventPackage{}, r.events...), nil
}

func (r *MemoryCatalogRepo) ListEventsByCategory(_ context.Context, category string) ([]model.EventPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.EventPackage{}
	for _, e := range r.events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepo) ListFeaturedEvents(_ context.Context, limit int) ([]model.EventPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.EventPackage{}
	for _, e := range r.events {
		if limit > 0 && len(out) == limit {
			break
		}
		if e.IsFeatured {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepo) FindEvent(_ context.Context, id string) (model.EventPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.EventPackage{}, ErrNotFound
}

func (r *MemoryCatalogRepo) ListTestimonials(_ context.Context) ([]model.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Testimonial{}, r.testimonials...), nil
}

func (r *MemoryCatalogRepo) ListServices(_ context.Context) ([]model.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Service{}, r.services...), nil
}

func (r *MemoryCatalogRepo) ListTeam(_ context.Context) ([]model.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.TeamMember{}, r.team...), nil
}

func (r *MemoryCatalogRepo) InsertEvent(_ context.Context, e *model.EventPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ensureID(&e.ID)
	r.events = append(r.events, *e)
	return nil
}

func (r *MemoryCatalogRepo) InsertTestimonial(_ context.Context, t *model.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ensureID(&t.ID)
	r.testimonials = append(r.testimonials, *t)
	return nil
}

func (r *MemoryCatalogRepo) InsertService(_ context.Context, s *model.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ensureID(&s.ID)
	r.services = append(r.services, *s)
	return nil
}

func (r *MemoryCatalogRepo) InsertTeamMember(_ context.Context, m *model.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ensureID(&m.ID)
	r.team = append(r.team, *m)
	return nil
}

// NewMemoryStore wires the three in-memory repositories.
func NewMemoryStore() Store {
	return Store{
		Accounts: NewMemoryAccountRepo(),
		Bookings: NewMemoryBookingRepo(),
		Catalog:  NewMemoryCatalogRepo(),
	}
}
