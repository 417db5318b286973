// Package validation holds input validators shared by services and handlers.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

const (
	minPasswordLen = 12
	maxPasswordLen = 128
	maxEmailLen    = 254
)

var nicknameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{1,30}[a-zA-Z0-9]$`)

var reservedNicknames = map[string]struct{}{
	"admin":   {},
	"api":     {},
	"auth":    {},
	"me":      {},
	"users":   {},
	"catches": {},
	"spots":   {},
	"health":  {},
	"metrics": {},
	"login":   {},
	"signup":  {},
	"upload":  {},
}

// ValidatePassword checks length and character class requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain upper and lower case letters, a digit, and a special character")
	}
	return nil
}

// ValidateNickname checks nickname format and reserved names.
func ValidateNickname(nickname string) error {
	if !nicknameRegex.MatchString(nickname) {
		return fmt.Errorf("nickname must be 3-32 characters, start and end with a letter or digit, and contain only letters, digits, hyphens, and underscores")
	}
	if _, reserved := reservedNicknames[strings.ToLower(nickname)]; reserved {
		return fmt.Errorf("nickname %q is reserved", nickname)
	}
	return nil
}

// ValidateEmail checks RFC 5322 format and total length.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLen {
		return fmt.Errorf("email must be at most %d characters", maxEmailLen)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
