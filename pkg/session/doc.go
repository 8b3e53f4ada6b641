// Package session implements server-side sessions keyed by a signed cookie.
// A session carries the authenticated user's id and email, lives for a fixed
// TTL, and expires passively. Persistence is pluggable via Store; production
// uses MongoStore with a TTL index, tests use MemoryStore.
package session
