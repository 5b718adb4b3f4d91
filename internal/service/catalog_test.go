package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
	"github.com/iliyamo/eventsphere/internal/seed"
)

func seededCatalog(t *testing.T) *repository.MemoryCatalogRepo {
	t.Helper()
	catalog := repository.NewMemoryCatalogRepo()
	_, err := seed.Load(context.Background(), catalog)
	require.NoError(t, err)
	return catalog
}

func TestCatalogService_EventsByCategory(t *testing.T) {
	svc := NewCatalogService(seededCatalog(t))

	weddings, err := svc.EventsByCategory(context.Background(), "Wedding")
	require.NoError(t, err)
	require.Len(t, weddings, 1)
	assert.Equal(t, "Luxury Wedding Package", weddings[0].Title)

	none, err := svc.EventsByCategory(context.Background(), "wedding")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogService_FeaturedIsCapped(t *testing.T) {
	ctx := context.Background()
	catalog := repository.NewMemoryCatalogRepo()
	for i := 0; i < 10; i++ {
		e := model.EventPackage{Title: fmt.Sprintf("E%d", i), IsFeatured: i != 3}
		require.NoError(t, catalog.InsertEvent(ctx, &e))
	}
	svc := NewCatalogService(catalog)

	featured, err := svc.FeaturedEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, FeaturedLimit)
	for _, e := range featured {
		assert.True(t, e.IsFeatured)
	}
	assert.Equal(t, "E0", featured[0].Title)
	assert.Equal(t, "E4", featured[3].Title)
}

func TestCatalogService_EventByID(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(seededCatalog(t))

	all, err := svc.AllEvents(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	e, ok, err := svc.EventByID(ctx, all[1].ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, all[1], e)

	for _, id := range []string{"", "1", repository.NewID()} {
		_, ok, err := svc.EventByID(ctx, id)
		assert.NoError(t, err, id)
		assert.False(t, ok, id)
	}
}

func TestCatalogService_ReferenceLists(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(seededCatalog(t))

	testimonials, err := svc.Testimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 2)

	services, err := svc.Services(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 3)

	team, err := svc.Team(ctx)
	require.NoError(t, err)
	assert.Len(t, team, 1)
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	bookings := repository.NewMemoryBookingRepo()
	for _, status := range []string{model.BookingPending, model.BookingPending, model.BookingConfirmed, model.BookingCancelled} {
		b := model.Booking{Status: status}
		require.NoError(t, bookings.Insert(ctx, &b))
	}
	svc := NewDashboardService(bookings, seededCatalog(t))

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStats{TotalBookings: 4, Pending: 2, Confirmed: 1, Cancelled: 1, ActiveEvents: 3}, st)
}
