package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/repository"
	"github.com/iliyamo/eventsphere/internal/utils"
)

// AccountService resolves accounts from Google tokens or email/password
// pairs.  Every returned account has its password hash stripped.
type AccountService struct {
	accounts   repository.AccountStore
	verifier   CredentialVerifier
	policy     EmailPolicy
	bcryptCost int
	now        func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAccountService wires the resolver.  A nil policy accepts any email.
func NewAccountService(accounts repository.AccountStore, verifier CredentialVerifier, policy EmailPolicy, bcryptCost int) *AccountService {
	if policy == nil {
		policy = DomainAllowList()
	}
	return &AccountService{
		accounts:   accounts,
		verifier:   verifier,
		policy:     policy,
		bcryptCost: bcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ResolveByThirdPartyToken verifies token and finds or creates the account
// for its email.  An existing account gets its name and picture replaced by
// the verified values; role and password are left alone.
func (s *AccountService) ResolveByThirdPartyToken(ctx context.Context, token string) (model.Account, error) {
	id, err := s.verifier.Verify(ctx, token)
	if errors.Is(err, ErrVerifierUnavailable) {
		return model.Account{}, upstream("verify token", err)
	}
	if err != nil || id.Email == "" {
		return model.Account{}, ErrInvalidCredential
	}

	acc, err := s.accounts.FindByEmail(ctx, id.Email)
	switch {
	case err == nil:
		return s.refreshProfile(ctx, acc, id)
	case !errors.Is(err, repository.ErrNotFound):
		return model.Account{}, upstream("find account", err)
	}

	acc = model.Account{
		Email:     id.Email,
		Name:      id.Name,
		Picture:   id.Picture,
		GoogleID:  id.Subject,
		Role:      model.RoleUser,
		CreatedAt: s.now(),
	}
	if err := s.accounts.Insert(ctx, &acc); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return model.Account{}, upstream("create account", err)
		}
		// A concurrent sign-in created the account first.
		existing, ferr := s.accounts.FindByEmail(ctx, id.Email)
		if ferr != nil {
			return model.Account{}, upstream("find account", ferr)
		}
		return s.refreshProfile(ctx, existing, id)
	}
	return acc.Sanitized(), nil
}

func (s *AccountService) refreshProfile(ctx context.Context, acc model.Account, id Identity) (model.Account, error) {
	if err := s.accounts.UpdateProfile(ctx, acc.ID, id.Name, id.Picture); err != nil {
		return model.Account{}, upstream("update account", err)
	}
	acc.Name = id.Name
	acc.Picture = id.Picture
	return acc.Sanitized(), nil
}

// Register creates a password account.  The email must satisfy the domain
// policy and must not be registered yet.
func (s *AccountService) Register(ctx context.Context, email, password, name string) (model.Account, error) {
	email = strings.TrimSpace(email)
	if !s.policy(email) {
		return model.Account{}, ErrPolicyViolation
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return model.Account{}, ErrDuplicateAccount
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.Account{}, upstream("find account", err)
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return model.Account{}, upstream("hash password", err)
	}
	acc := model.Account{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    s.now(),
	}
	if err := s.accounts.Insert(ctx, &acc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Account{}, ErrDuplicateAccount
		}
		return model.Account{}, upstream("create account", err)
	}
	return acc.Sanitized(), nil
}

// Login checks an email/password pair.  Unknown emails, Google-only
// accounts and wrong passwords all yield ErrInvalidCredential.
func (s *AccountService) Login(ctx context.Context, email, password string) (model.Account, error) {
	acc, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		// Spend the same bcrypt work as a real comparison.
		utils.VerifyPassword(s.fakeHash(), password)
		return model.Account{}, ErrInvalidCredential
	}
	if err != nil {
		return model.Account{}, upstream("find account", err)
	}
	if !acc.HasPassword() || !utils.VerifyPassword(acc.PasswordHash, password) {
		return model.Account{}, ErrInvalidCredential
	}
	return acc.Sanitized(), nil
}

// Account returns the account with the given id, or false when none exists.
func (s *AccountService) Account(ctx context.Context, id string) (model.Account, bool, error) {
	acc, err := s.accounts.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, upstream("find account", err)
	}
	return acc.Sanitized(), true, nil
}

func (s *AccountService) fakeHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = utils.HashPassword("eventsphere-unknown-account", s.bcryptCost)
	})
	return s.dummyHash
}
