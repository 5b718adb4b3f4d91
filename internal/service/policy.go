package service

import "strings"

// EmailPolicy decides whether an address may register.
type EmailPolicy func(email string) bool

// DomainAllowList accepts addresses whose domain matches one of domains,
// ignoring case.  With no domains every address is accepted.
func DomainAllowList(domains ...string) EmailPolicy {
	allowed := make(map[string]bool, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "@"))
		if d != "" {
			allowed[d] = true
		}
	}
	return func(email string) bool {
		if len(allowed) == 0 {
			return true
		}
		at := strings.LastIndex(email, "@")
		if at < 1 || at == len(email)-1 {
			return false
		}
		return allowed[strings.ToLower(email[at+1:])]
	}
}
