// Package api implements the typed REST client for the storefront backend.
//
// The backend signals logical failure inside 200 responses using sentinel
// fields that differ per endpoint (message, status, statusMsg, presence of
// token). This package normalizes all of them at the boundary: every method
// returns either a typed payload, a *Error carrying the server's message
// (logical rejection), or an error matching ErrUnavailable (transport
// failure). Callers never see the raw envelopes.
//
// The client performs exactly one HTTP round trip per operation: no retries,
// no caching. The auth token is read per request from the injected
// TokenSource; the client itself never persists it.
package api
