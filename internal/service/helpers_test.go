package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
)

const testCost = bcrypt.MinCost

// fakeVerifier accepts tokens present in its map.
type fakeVerifier map[string]Identity

func (f fakeVerifier) Verify(_ context.Context, token string) (Identity, error) {
	id, ok := f[token]
	if !ok {
		return Identity{}, errors.New("token rejected")
	}
	return id, nil
}

// verifierFunc adapts a function to CredentialVerifier.
type verifierFunc func(ctx context.Context, token string) (Identity, error)

func (f verifierFunc) Verify(ctx context.Context, token string) (Identity, error) { return f(ctx, token) }

var errStoreDown = errors.New("connection refused")

// brokenAccounts fails every call.
type brokenAccounts struct{}

func (brokenAccounts) FindByEmail(context.Context, string) (model.Account, error) {
	return model.Account{}, errStoreDown
}
func (brokenAccounts) FindByID(context.Context, string) (model.Account, error) {
	return model.Account{}, errStoreDown
}
func (brokenAccounts) Insert(context.Context, *model.Account) error { return errStoreDown }
func (brokenAccounts) UpdateProfile(context.Context, string, string, string) error {
	return errStoreDown
}

// racingAccounts reports no account on the first lookup and then rejects
// the insert, as if a concurrent request created the same email.
type racingAccounts struct {
	*repository.MemoryAccountRepo
	missed bool
}

func (r *racingAccounts) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	if !r.missed {
		r.missed = true
		return model.Account{}, repository.ErrNotFound
	}
	return r.MemoryAccountRepo.FindByEmail(ctx, email)
}

// bookingEventsSpy records published bookings.
type bookingEventsSpy struct {
	published []model.Booking
}

func (s *bookingEventsSpy) BookingRequested(_ context.Context, b model.Booking) {
	s.published = append(s.published, b)
}

func newTestAccountService(accounts repository.AccountStore, v CredentialVerifier) *AccountService {
	return NewAccountService(accounts, v, DomainAllowList("gmail.com"), testCost)
}
