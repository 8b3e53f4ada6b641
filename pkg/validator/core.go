package validator

import (
	"fmt"
	"strings"
)

// ValidationError represents a single failed rule.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of validation errors. It
// implements error so handlers can return it directly.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(parts, "; ")
}

// Rule is a single validation check. A passing rule returns the zero value
// with ok=false.
type Rule func() (ValidationError, bool)

// Apply runs all rules and returns the collected errors, or nil if every
// rule passed.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if ve, failed := rule(); failed {
			errs = append(errs, ve)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
