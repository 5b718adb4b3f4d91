package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
)

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()
	accounts := repository.NewMemoryAccountRepo()
	svc := newTestAccountService(accounts, fakeVerifier{})

	tests := []struct {
		email, password, name string
		wantErr               error
	}{
		{"a@outlook.com", "secret1", "Alice", ErrPolicyViolation},
		{"a@gmail.com", "secret1", "Alice", nil},
		{"a@gmail.com", "other22", "Mallory", ErrDuplicateAccount},
		{"b@gmail.com", "secret2", "Bob", nil},
	}
	for _, tt := range tests {
		acc, err := svc.Register(ctx, tt.email, tt.password, tt.name)
		assert.ErrorIs(t, err, tt.wantErr, tt.email)
		if tt.wantErr != nil {
			continue
		}
		assert.True(t, repository.IsValidID(acc.ID))
		assert.Equal(t, tt.email, acc.Email)
		assert.Equal(t, tt.name, acc.Name)
		assert.Equal(t, model.RoleUser, acc.Role)
		assert.Empty(t, acc.PasswordHash)
		assert.False(t, acc.CreatedAt.IsZero())
	}

	_, err := accounts.FindByEmail(ctx, "a@outlook.com")
	assert.ErrorIs(t, err, repository.ErrNotFound, "policy violation must not create an account")

	stored, err := accounts.FindByEmail(ctx, "a@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name, "duplicate registration must leave the account unchanged")
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, stored.HasPassword())
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAccountService(repository.NewMemoryAccountRepo(), fakeVerifier{})

	reg, err := svc.Register(ctx, "a@gmail.com", "secret1", "Alice")
	require.NoError(t, err)

	got, err := svc.Login(ctx, "a@gmail.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Empty(t, got.PasswordHash)
}

func TestAccountService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	accounts := repository.NewMemoryAccountRepo()
	svc := newTestAccountService(accounts, fakeVerifier{
		"google-only": {Email: "g@gmail.com", Name: "G", Subject: "sub-g"},
	})

	_, err := svc.Register(ctx, "a@gmail.com", "secret1", "Alice")
	require.NoError(t, err)
	_, err = svc.ResolveByThirdPartyToken(ctx, "google-only")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "a@gmail.com", "nope")
	_, unknownEmail := svc.Login(ctx, "nobody@gmail.com", "secret1")
	_, noPassword := svc.Login(ctx, "g@gmail.com", "")

	assert.Equal(t, ErrInvalidCredential, wrongPassword)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, wrongPassword, noPassword)
}

func TestAccountService_ResolveByThirdPartyToken(t *testing.T) {
	ctx := context.Background()
	accounts := repository.NewMemoryAccountRepo()
	svc := newTestAccountService(accounts, fakeVerifier{
		"t1": {Email: "x@gmail.com", Name: "X", Picture: "p1", Subject: "sub-x"},
		"t2": {Email: "x@gmail.com", Name: "X2", Picture: "p2", Subject: "sub-x"},
	})

	first, err := svc.ResolveByThirdPartyToken(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "X", first.Name)
	assert.Equal(t, "sub-x", first.GoogleID)
	assert.Equal(t, model.RoleUser, first.Role)
	assert.False(t, first.HasPassword())

	second, err := svc.ResolveByThirdPartyToken(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "X2", second.Name)
	assert.Equal(t, "p2", second.Picture)

	stored, err := accounts.FindByEmail(ctx, "x@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "X2", stored.Name)

	_, err = svc.ResolveByThirdPartyToken(ctx, "forged")
	assert.Equal(t, ErrInvalidCredential, err)
}

func TestAccountService_GoogleSignInKeepsPasswordAndRole(t *testing.T) {
	ctx := context.Background()
	accounts := repository.NewMemoryAccountRepo()
	svc := newTestAccountService(accounts, fakeVerifier{
		"t": {Email: "a@gmail.com", Name: "Alice G", Picture: "pic", Subject: "sub-a"},
	})

	reg, err := svc.Register(ctx, "a@gmail.com", "secret1", "Alice")
	require.NoError(t, err)

	acc, err := svc.ResolveByThirdPartyToken(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, acc.ID)
	assert.Equal(t, "Alice G", acc.Name)
	assert.Empty(t, acc.PasswordHash)

	_, err = svc.Login(ctx, "a@gmail.com", "secret1")
	assert.NoError(t, err)
}

func TestAccountService_ResolveRecoversFromInsertRace(t *testing.T) {
	ctx := context.Background()
	mem := repository.NewMemoryAccountRepo()
	existing := model.Account{Email: "x@gmail.com", Name: "Old", GoogleID: "sub-x", Role: model.RoleUser}
	require.NoError(t, mem.Insert(ctx, &existing))

	svc := newTestAccountService(&racingAccounts{MemoryAccountRepo: mem}, fakeVerifier{
		"t": {Email: "x@gmail.com", Name: "New", Subject: "sub-x"},
	})
	acc, err := svc.ResolveByThirdPartyToken(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, acc.ID)
	assert.Equal(t, "New", acc.Name)
}

func TestAccountService_UpstreamFailures(t *testing.T) {
	ctx := context.Background()
	svc := newTestAccountService(brokenAccounts{}, fakeVerifier{"t": {Email: "x@gmail.com", Subject: "s"}})

	_, err := svc.ResolveByThirdPartyToken(ctx, "t")
	assert.ErrorIs(t, err, ErrUpstream)
	_, err = svc.Register(ctx, "a@gmail.com", "secret1", "A")
	assert.ErrorIs(t, err, ErrUpstream)
	_, err = svc.Login(ctx, "a@gmail.com", "secret1")
	assert.ErrorIs(t, err, ErrUpstream)
	_, _, err = svc.Account(ctx, "x")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAccountService_VerifierUnavailable(t *testing.T) {
	ctx := context.Background()
	accounts := repository.NewMemoryAccountRepo()
	svc := newTestAccountService(accounts, verifierFunc(func(context.Context, string) (Identity, error) {
		return Identity{}, fmt.Errorf("%w: dial tcp: i/o timeout", ErrVerifierUnavailable)
	}))

	_, err := svc.ResolveByThirdPartyToken(ctx, "t")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrInvalidCredential)

	_, err = accounts.FindByEmail(ctx, "x@gmail.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAccountService_Account(t *testing.T) {
	ctx := context.Background()
	svc := newTestAccountService(repository.NewMemoryAccountRepo(), fakeVerifier{})

	reg, err := svc.Register(ctx, "a@gmail.com", "secret1", "Alice")
	require.NoError(t, err)

	acc, ok, err := svc.Account(ctx, reg.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, reg.Email, acc.Email)
	assert.Empty(t, acc.PasswordHash)

	_, ok, err = svc.Account(ctx, repository.NewID())
	assert.NoError(t, err)
	assert.False(t, ok)
}
