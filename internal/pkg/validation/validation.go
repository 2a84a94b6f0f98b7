package validation

import "regexp"

// emailRe matches the permissive format check used on signup:
// something@something.something, no whitespace.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MinPasswordLen is the minimum signup password length.
	MinPasswordLen = 8
	// MinUsernameLen is the minimum signup username length.
	MinUsernameLen = 3
)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
