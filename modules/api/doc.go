// Package api is the HTTP route layer. It mounts the auth, account, and
// admin routes on a chi router, enforces the public/secured/admin tiers via
// session middleware, and serializes every failure to the uniform
// {error, redirect?} envelope.
package api
