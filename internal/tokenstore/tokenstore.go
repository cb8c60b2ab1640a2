// Package tokenstore persists the auth token in a local SQLite database,
// sealed at rest with a key derived from a machine-local secret. It is the
// durable half of the token lifecycle; see Cache for the in-memory front.
package tokenstore

import "context"

// Repository is durable storage for the auth token. A missing token is not
// an error: Token returns "" with a nil error.
type Repository interface {
	Token(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
