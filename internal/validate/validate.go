// Package validate holds the pure input validation rules of the
// registration core. Every function is total: any input, including the
// empty string, yields a result rather than a panic.
package validate

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Password strength failures. Each carries the specific reason shown to
// the registrant.
var (
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordNeedsLetter = errors.New("password must contain at least one letter")
	ErrPasswordNeedsDigit  = errors.New("password must contain at least one number")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether the text, after trimming surrounding
// whitespace, looks like local-part@domain.tld with a top-level segment
// of at least two letters.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	return emailPattern.MatchString(email)
}

// CheckPasswordStrength applies the portal's single password policy:
// at least 6 characters, at least one letter, at least one digit.
// It returns nil for an acceptable password and the first specific
// failure otherwise.
func CheckPasswordStrength(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if !hasLetter {
		return ErrPasswordNeedsLetter
	}
	if !hasDigit {
		return ErrPasswordNeedsDigit
	}

	return nil
}

// IsValidPostalCode reports whether the text is exactly 5 or 6 decimal digits.
func IsValidPostalCode(code string) bool {
	if len(code) != 5 && len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// MissingRequiredFields returns the names of required fields that are
// absent, empty, or blank after trimming, in the order of required.
func MissingRequiredFields(fields map[string]string, required []string) []string {
	var missing []string
	for _, name := range required {
		value, ok := fields[name]
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	return missing
}
