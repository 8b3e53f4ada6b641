package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// Required fails when the value is empty after trimming.
func Required(field, value string) Rule {
	return func() (ValidationError, bool) {
		if strings.TrimSpace(value) == "" {
			return ValidationError{Field: field, Message: "is required"}, true
		}
		return ValidationError{}, false
	}
}

// ValidEmail fails when the value is not a parseable address.
func ValidEmail(field, value string) Rule {
	return func() (ValidationError, bool) {
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return ValidationError{Field: field, Message: "must be a valid email address"}, true
		}
		return ValidationError{}, false
	}
}

// MinLength fails when the value is shorter than min bytes.
func MinLength(field, value string, min int) Rule {
	return func() (ValidationError, bool) {
		if len(value) < min {
			return ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)}, true
		}
		return ValidationError{}, false
	}
}

// OneOf fails when the value is not in the allowed set.
func OneOf(field, value string, allowed ...string) Rule {
	return func() (ValidationError, bool) {
		for _, a := range allowed {
			if value == a {
				return ValidationError{}, false
			}
		}
		return ValidationError{Field: field, Message: "must be one of: " + strings.Join(allowed, ", ")}, true
	}
}
