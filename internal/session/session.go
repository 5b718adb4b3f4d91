// Package session carries the authenticated caller through a request.  The
// session is decoded from the bearer token once, by middleware, and read by
// handlers from the request context; nothing else stores it.
package session

import (
	"context"
	"time"
)

// Session is the identity attached to an authenticated request.
type Session struct {
	AccountID string
	Email     string
	Role      string
	ExpiresAt time.Time
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
