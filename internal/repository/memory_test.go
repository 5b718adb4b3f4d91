package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eventsphere/internal/model"
)

func TestMemoryAccountRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryAccountRepo()

	a := model.Account{Email: "a@gmail.com", Name: "A", GoogleID: "g1", Role: model.RoleUser}
	require.NoError(t, r.Insert(ctx, &a))
	assert.True(t, IsValidID(a.ID))

	tests := []struct {
		acc     model.Account
		wantErr error
	}{
		{model.Account{Email: "a@gmail.com"}, ErrDuplicate},
		{model.Account{Email: "b@gmail.com", GoogleID: "g1"}, ErrDuplicate},
		{model.Account{Email: "A@gmail.com"}, nil},
		{model.Account{Email: "c@gmail.com"}, nil},
		{model.Account{Email: "d@gmail.com"}, nil},
	}
	for _, tt := range tests {
		acc := tt.acc
		assert.Equal(t, tt.wantErr, r.Insert(ctx, &acc), tt.acc.Email)
	}

	got, err := r.FindByEmail(ctx, "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = r.FindByEmail(ctx, "nobody@gmail.com")
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, r.UpdateProfile(ctx, a.ID, "A2", "pic"))
	got, err = r.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, "pic", got.Picture)
	assert.Equal(t, "g1", got.GoogleID)

	assert.Equal(t, ErrNotFound, r.UpdateProfile(ctx, NewID(), "x", ""))
}

func TestMemoryAccountRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryAccountRepo()
	a := model.Account{Email: "a@gmail.com", Name: "A"}
	require.NoError(t, r.Insert(ctx, &a))

	a.Name = "mutated"
	got, err := r.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestMemoryBookingRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryBookingRepo()
	for _, s := range []string{model.BookingPending, model.BookingConfirmed, model.BookingPending} {
		b := model.Booking{Status: s}
		require.NoError(t, r.Insert(ctx, &b))
	}

	all, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	pending, err := r.List(ctx, model.BookingPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	got, err := r.FindByID(ctx, all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, got.Status)

	_, err = r.FindByID(ctx, "missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryCatalogRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryCatalogRepo()
	for i, cat := range []string{"Wedding", "Party", "Wedding", "Corporate"} {
		e := model.EventPackage{Title: cat, Category: cat, IsFeatured: i != 1}
		require.NoError(t, r.InsertEvent(ctx, &e))
	}

	weddings, err := r.ListEventsByCategory(ctx, "Wedding")
	require.NoError(t, err)
	assert.Len(t, weddings, 2)

	featured, err := r.ListFeaturedEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "Wedding", featured[0].Category)
	assert.Equal(t, "Wedding", featured[1].Category)

	unlimited, err := r.ListFeaturedEvents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, unlimited, 3)

	e, err := r.FindEvent(ctx, weddings[1].ID)
	require.NoError(t, err)
	assert.Equal(t, weddings[1], e)
	_, err = r.FindEvent(ctx, NewID())
	assert.Equal(t, ErrNotFound, err)

	tm := model.Testimonial{ClientName: "S", Rating: 5}
	require.NoError(t, r.InsertTestimonial(ctx, &tm))
	svc := model.Service{Title: "Weddings"}
	require.NoError(t, r.InsertService(ctx, &svc))
	m := model.TeamMember{Name: "E"}
	require.NoError(t, r.InsertTeamMember(ctx, &m))

	ts, _ := r.ListTestimonials(ctx)
	ss, _ := r.ListServices(ctx)
	team, _ := r.ListTeam(ctx)
	assert.Len(t, ts, 1)
	assert.Len(t, ss, 1)
	assert.Len(t, team, 1)
}

func TestIDs(t *testing.T) {
	id := NewID()
	assert.True(t, IsValidID(id))
	assert.NotEqual(t, id, NewID())
	for _, bad := range []string{"", "1", "not-an-xid-at-all!!"} {
		assert.False(t, IsValidID(bad), bad)
	}

	keep := "existing"
	ensureID(&keep)
	assert.Equal(t, "existing", keep)
}
