package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVerifyError(t *testing.T) {
	unreachable := &url.Error{Op: "Get", URL: "https://www.googleapis.com/oauth2/v3/certs", Err: errors.New("dial tcp: connection refused")}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"cert fetch failed", unreachable, true},
		{"wrapped cert fetch", fmt.Errorf("idtoken: %w", unreachable), true},
		{"deadline", context.DeadlineExceeded, true},
		{"bad signature", errors.New("idtoken: invalid token signature"), false},
		{"wrong audience", errors.New("idtoken: audience provided does not match aud claim in the JWT"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyVerifyError(tt.err)
			assert.Equal(t, tt.want, errors.Is(got, ErrVerifierUnavailable))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestGoogleVerifierWithoutClientID(t *testing.T) {
	_, err := GoogleVerifier{}.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, errNoClientID)
	assert.NotErrorIs(t, err, ErrVerifierUnavailable)
}
