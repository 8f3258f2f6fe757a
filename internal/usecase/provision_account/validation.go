package provision_account

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

type field struct {
	name  string
	value string
}

// validateRequired reports every blank field; passwords are not trimmed
func validateRequired(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

func validateConfirmation(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// validatePasswordStrength at least 8 characters with a lowercase letter,
// an uppercase letter, a digit and a symbol (anything else, including '_')
func validatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: shorter than %d characters", ErrWeakPassword, domain.MinPasswordLength)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}

	var lacking []string
	if !lower {
		lacking = append(lacking, "lowercase")
	}
	if !upper {
		lacking = append(lacking, "uppercase")
	}
	if !digit {
		lacking = append(lacking, "digit")
	}
	if !symbol {
		lacking = append(lacking, "symbol")
	}
	if len(lacking) > 0 {
		return fmt.Errorf("%w: missing %s", ErrWeakPassword, strings.Join(lacking, ", "))
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
