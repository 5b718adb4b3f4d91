package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainAllowList(t *testing.T) {
	gmail := DomainAllowList("gmail.com", "@Example.org ")
	anyDomain := DomainAllowList()

	tests := []struct {
		policy EmailPolicy
		email  string
		want   bool
	}{
		{gmail, "a@gmail.com", true},
		{gmail, "a@GMAIL.com", true},
		{gmail, "a@example.org", true},
		{gmail, "a@outlook.com", false},
		{gmail, "a@mail.gmail.com", false},
		{gmail, "gmail.com", false},
		{gmail, "@gmail.com", false},
		{gmail, "a@", false},
		{anyDomain, "a@outlook.com", true},
		{anyDomain, "anything", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.policy(tt.email), tt.email)
	}
}
