package validator

import (
	"net/mail"
	"strings"
)

// Email validates an address for typical web use: parseable by net/mail,
// no display name, and a dotted domain.
func Email[T any](value func(T) string) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "email"},
		pass: func(obj T) bool {
			return isEmail(value(obj))
		},
		failed: func(property string) ValidationError {
			return fieldError(property, "must be a valid email address", "validation.email", nil)
		},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
