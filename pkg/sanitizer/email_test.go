package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchbase/backend/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "User@Example.COM", "user@example.com"},
		{"trims whitespace", "  a@x.com  ", "a@x.com"},
		{"consolidates dots", "a..b...c@x.com", "a.b.c@x.com"},
		{"strips edge dots", ".ab.@x.com", "ab@x.com"},
		{"leaves invalid input alone", "not-an-email", "not-an-email"},
		{"leaves double-at alone", "a@b@c", "a@b@c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}
