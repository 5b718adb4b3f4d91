// Package repository persists accounts, bookings and the public catalog.
// Each store has three implementations: MongoDB (the primary document
// store), MySQL and an in-memory variant used for local development and
// tests.  All of them honour the same sentinel errors so the service layer
// never inspects driver errors directly.
package repository

import "errors"

// ErrNotFound is returned when no document matches the requested key.
// Catalog readers translate it into an absent value.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique index, such as
// a second account with the same email.  Handlers never see it directly;
// the account service maps it to a duplicate-account error.
var ErrDuplicate = errors.New("duplicate key")
