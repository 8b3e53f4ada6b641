// Package account holds the account document store and the lifecycle
// orchestrator: signup, login, OAuth callback resolution, cancellation,
// reactivation, trial conversion, and the admin operations.
//
// The account document is never the source of truth for subscription state.
// It stores only the subscription id; every access decision asks the billing
// provider for live state and folds the answer into an explicit lifecycle
// State via DeriveState.
package account
