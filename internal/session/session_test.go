package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	want := Session{AccountID: "abc", Email: "a@gmail.com", Role: "admin"}
	got, ok := FromContext(NewContext(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
