package service

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/iliyamo/eventsphere/internal/repository"
)

func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty account store and a gmail.com policy", t, func() {
		accounts := repository.NewMemoryAccountRepo()
		svc := newTestAccountService(accounts, fakeVerifier{
			"alice-google": {Email: "a@gmail.com", Name: "Alice (Google)", Picture: "https://pic", Subject: "sub-a"},
		})

		Convey("When Alice registers with a@gmail.com and secret1", func() {
			reg, err := svc.Register(ctx, "a@gmail.com", "secret1", "Alice")
			So(err, ShouldBeNil)
			So(repository.IsValidID(reg.ID), ShouldBeTrue)
			So(reg.Role, ShouldEqual, "user")

			Convey("Then she can log in with the same password", func() {
				acc, err := svc.Login(ctx, "a@gmail.com", "secret1")
				So(err, ShouldBeNil)
				So(acc.ID, ShouldEqual, reg.ID)
				So(acc.PasswordHash, ShouldBeEmpty)
			})

			Convey("Then a wrong password is rejected", func() {
				_, err := svc.Login(ctx, "a@gmail.com", "secret2")
				So(err, ShouldEqual, ErrInvalidCredential)
			})

			Convey("Then registering the email again fails", func() {
				_, err := svc.Register(ctx, "a@gmail.com", "secret1", "Alice")
				So(err, ShouldEqual, ErrDuplicateAccount)
			})

			Convey("Then signing in with Google reuses her account", func() {
				acc, err := svc.ResolveByThirdPartyToken(ctx, "alice-google")
				So(err, ShouldBeNil)
				So(acc.ID, ShouldEqual, reg.ID)
				So(acc.Name, ShouldEqual, "Alice (Google)")
			})
		})

		Convey("When someone registers with an outlook.com address", func() {
			_, err := svc.Register(ctx, "a@outlook.com", "secret1", "Alice")

			Convey("Then the policy rejects it and nothing is stored", func() {
				So(err, ShouldEqual, ErrPolicyViolation)
				_, ferr := accounts.FindByEmail(ctx, "a@outlook.com")
				So(ferr, ShouldEqual, repository.ErrNotFound)
			})
		})
	})
}
