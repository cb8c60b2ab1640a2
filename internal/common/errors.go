package common

import "errors"

// ErrInvalidToken marks a stored token that cannot be unsealed, e.g. after
// the key file was replaced. Callers treat it as "no token".
var ErrInvalidToken = errors.New("invalid token")
