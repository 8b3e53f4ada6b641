// Package cookie provides HMAC-signed cookies with secret rotation.
// Signing prevents clients from forging session tokens or OAuth state
// values; the payload itself is not encrypted.
package cookie
