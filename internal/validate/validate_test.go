package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "test@example.com", true},
		{"subdomain", "user@mail.hospital.org", true},
		{"plus and dots in local part", "first.last+tag@example.co.uk", true},
		{"surrounding whitespace is trimmed", "  jane@clinic.io  ", true},
		{"two letter tld", "a@b.io", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"missing at sign", "invalid-email.com", false},
		{"missing dot", "user@domain", false},
		{"single character tld", "user@domain.c", false},
		{"numeric tld", "user@domain.12", false},
		{"missing local part", "@example.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestCheckPasswordStrength(t *testing.T) {
	t.Run("accepts letter plus digit passwords of length six or more", func(t *testing.T) {
		for _, password := range []string{"abc123", "password1", "1a2b3c4d", "A1B2C3"} {
			assert.NoError(t, CheckPasswordStrength(password), "password: %s", password)
		}
	})

	testCases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"empty", "", ErrPasswordRequired},
		{"too short", "a1b2c", ErrPasswordTooShort},
		{"digits only", "123456", ErrPasswordNeedsLetter},
		{"letters only", "abcdef", ErrPasswordNeedsDigit},
		{"symbols only", "!@#$%^", ErrPasswordNeedsLetter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckPasswordStrength(tc.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestIsValidPostalCode(t *testing.T) {
	assert.True(t, IsValidPostalCode("12345"))
	assert.True(t, IsValidPostalCode("123456"))

	assert.False(t, IsValidPostalCode("1234"))
	assert.False(t, IsValidPostalCode("1234567"))
	assert.False(t, IsValidPostalCode("12a45"))
	assert.False(t, IsValidPostalCode(""))
	assert.False(t, IsValidPostalCode("12 45"))
}

func TestMissingRequiredFields(t *testing.T) {
	fields := map[string]string{
		"firstName": "John",
		"lastName":  "   ",
		"email":     "john@example.com",
		"password":  "",
	}
	required := []string{"firstName", "lastName", "email", "password", "city"}

	missing := MissingRequiredFields(fields, required)

	assert.Equal(t, []string{"lastName", "password", "city"}, missing)
}

func TestMissingRequiredFieldsAllPresent(t *testing.T) {
	fields := map[string]string{"username": "johndoe", "email": "j@d.com"}

	assert.Empty(t, MissingRequiredFields(fields, []string{"username", "email"}))
}
