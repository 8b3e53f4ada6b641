// Package billing wraps the hosted subscription-billing API behind a small
// Provider interface and derives the plan/status view the application reads.
//
// The provider is the single source of truth for subscription state. Account
// documents store only the customer and subscription ids; plan and status are
// re-derived from the provider on every request that needs them, with defined
// fallbacks when no subscription exists or the provider is unreachable.
package billing
