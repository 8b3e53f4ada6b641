package api

import (
	"context"

	"github.com/launchbase/backend/svc/account"
)

type contextKey struct{ name string }

var accountCtxKey = &contextKey{"account"}

func withAccount(ctx context.Context, acc *account.Account) context.Context {
	return context.WithValue(ctx, accountCtxKey, acc)
}

// accountFromContext returns the account the secured middleware resolved.
// Only reachable behind that middleware, so a missing value is a programming
// error.
func accountFromContext(ctx context.Context) *account.Account {
	acc, ok := ctx.Value(accountCtxKey).(*account.Account)
	if !ok {
		panic("api: no account in context; handler mounted outside secured tier")
	}
	return acc
}
