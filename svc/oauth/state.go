package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateState returns a random CSRF state token. The caller stores it in a
// short-lived signed cookie and verifies it on callback; one round trip, no
// server-side state.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("oauth: failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
