// Package oauth provides Google and Facebook login adapters behind a single
// ProviderAdapter interface. Adapters expose the authorization URL and a
// code-to-profile exchange; everything else (state cookies, account linking,
// redirects) lives in the account service and HTTP layer.
package oauth
