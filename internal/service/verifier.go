package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"google.golang.org/api/idtoken"
)

// Identity is the verified claim set extracted from a third-party token.
type Identity struct {
	Email   string
	Name    string
	Picture string
	Subject string
}

// CredentialVerifier validates a third-party identity token.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// GoogleVerifier validates Google ID tokens issued for ClientID.
type GoogleVerifier struct {
	ClientID string
}

var errNoClientID = errors.New("google client id not configured")

// ErrVerifierUnavailable marks a verification that could not reach the
// identity provider.  Any other verifier error rejects the token.
var ErrVerifierUnavailable = errors.New("identity provider unavailable")

// Verify checks the token signature, expiry and audience against Google's
// published keys and extracts the profile claims.
func (v GoogleVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if v.ClientID == "" {
		return Identity{}, errNoClientID
	}
	payload, err := idtoken.Validate(ctx, token, v.ClientID)
	if err != nil {
		return Identity{}, classifyVerifyError(err)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return Identity{}, errors.New("google email not verified")
	}
	id := Identity{
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
		Subject: payload.Subject,
	}
	if id.Email == "" || id.Subject == "" {
		return Identity{}, errors.New("google token missing email or subject")
	}
	return id, nil
}

// classifyVerifyError tags transport failures fetching Google's keys.
func classifyVerifyError(err error) error {
	var uerr *url.Error
	var nerr net.Error
	if errors.As(err, &uerr) || errors.As(err, &nerr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrVerifierUnavailable, err)
	}
	return err
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
