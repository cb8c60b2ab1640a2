package api

import "errors"

// ErrUnavailable indicates a transport-level failure: the request never
// produced a decodable backend response (network error, timeout, bad JSON).
var ErrUnavailable = errors.New("server unavailable")

// Error is a logical rejection: the backend answered but refused the
// operation. Message is surfaced to the user verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// reject builds a *Error from the backend's message, falling back to a
// caller-supplied message when the backend sent none.
func reject(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return &Error{Message: message}
}
