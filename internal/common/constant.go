// Package common contains shared constants and helpers used across
// shopfront components.
package common

// TokenHeaderName is the HTTP header used to carry the auth token on
// outbound requests. The backend expects the raw token, not a Bearer scheme.
const TokenHeaderName = "token"

// TokenStorageKey is the fixed key under which the auth token is persisted
// in durable client storage.
const TokenStorageKey = "auth_token"
