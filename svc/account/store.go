package account

import "context"

// ListParams selects a page of accounts. Search matches email and names
// case-insensitively.
type ListParams struct {
	Page   int64
	Limit  int64
	Search string
}

// ListResult is one page of accounts plus the unpaginated total.
type ListResult struct {
	Accounts []Account
	Total    int64
}

// Store is the persistence interface for accounts. MongoStore is the
// production implementation; MemoryStore backs tests.
type Store interface {
	// FindByEmail returns the account with the given (normalized) email, or
	// ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByID returns the account with the given hex id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*Account, error)

	// Insert stores a new account, assigning its id and timestamps.
	// Returns ErrEmailTaken on a duplicate email.
	Insert(ctx context.Context, a *Account) error

	// Update applies a partial field update to the account with the given
	// hex id and stamps updatedAt. Returns ErrNotFound when no document
	// matched.
	Update(ctx context.Context, id string, fields map[string]any) error

	// List returns a page of accounts sorted by creation time, newest first.
	List(ctx context.Context, params ListParams) (*ListResult, error)
}
