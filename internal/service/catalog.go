package service

import (
	"context"
	"errors"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
)

// FeaturedLimit caps the featured events listing.
const FeaturedLimit = 6

// CatalogService is a read-only pass-through over the catalog store.
type CatalogService struct {
	catalog repository.CatalogStore
}

func NewCatalogService(catalog repository.CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) AllEvents(ctx context.Context) ([]model.EventPackage, error) {
	out, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return nil, upstream("list events", err)
	}
	return out, nil
}

// EventsByCategory returns events whose category equals category exactly.
func (s *CatalogService) EventsByCategory(ctx context.Context, category string) ([]model.EventPackage, error) {
	out, err := s.catalog.ListEventsByCategory(ctx, category)
	if err != nil {
		return nil, upstream("list events by category", err)
	}
	return out, nil
}

// FeaturedEvents returns at most FeaturedLimit featured events in store order.
func (s *CatalogService) FeaturedEvents(ctx context.Context) ([]model.EventPackage, error) {
	out, err := s.catalog.ListFeaturedEvents(ctx, FeaturedLimit)
	if err != nil {
		return nil, upstream("list featured events", err)
	}
	if len(out) > FeaturedLimit {
		out = out[:FeaturedLimit]
	}
	return out, nil
}

// EventByID returns the event and true, or false when it does not exist.
// A missing or malformed id is not an error.
func (s *CatalogService) EventByID(ctx context.Context, id string) (model.EventPackage, bool, error) {
	if !repository.IsValidID(id) {
		return model.EventPackage{}, false, nil
	}
	e, err := s.catalog.FindEvent(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.EventPackage{}, false, nil
	}
	if err != nil {
		return model.EventPackage{}, false, upstream("find event", err)
	}
	return e, true, nil
}

func (s *CatalogService) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	out, err := s.catalog.ListTestimonials(ctx)
	if err != nil {
		return nil, upstream("list testimonials", err)
	}
	return out, nil
}

func (s *CatalogService) Services(ctx context.Context) ([]model.Service, error) {
	out, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, upstream("list services", err)
	}
	return out, nil
}

func (s *CatalogService) Team(ctx context.Context) ([]model.TeamMember, error) {
	out, err := s.catalog.ListTeam(ctx)
	if err != nil {
		return nil, upstream("list team", err)
	}
	return out, nil
}
