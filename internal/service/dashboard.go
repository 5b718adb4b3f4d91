package service

import (
	"context"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
)

// DashboardService aggregates figures for the admin overview.
type DashboardService struct {
	bookings repository.BookingStore
	catalog  repository.CatalogStore
}

func NewDashboardService(bookings repository.BookingStore, catalog repository.CatalogStore) *DashboardService {
	return &DashboardService{bookings: bookings, catalog: catalog}
}

// Stats counts bookings per status and the events in the catalog.
func (s *DashboardService) Stats(ctx context.Context) (model.BookingStats, error) {
	bookings, err := s.bookings.List(ctx, "")
	if err != nil {
		return model.BookingStats{}, upstream("list bookings", err)
	}
	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return model.BookingStats{}, upstream("list events", err)
	}

	st := model.BookingStats{TotalBookings: len(bookings), ActiveEvents: len(events)}
	for _, b := range bookings {
		switch b.Status {
		case model.BookingPending:
			st.Pending++
		case model.BookingConfirmed:
			st.Confirmed++
		case model.BookingCancelled:
			st.Cancelled++
		}
	}
	return st, nil
}
