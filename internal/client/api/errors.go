package api

import "errors"

// ErrUnauthorized marks a 401 from the server: the token is missing,
// invalid, or no longer accepted. Match with errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// Error is the normalized failure returned by every Client method.
//
// Status is the HTTP status code, or 0 when the request never reached the
// server (transport failure). Message is safe to show to the user: it is
// the server-supplied message when one exists, otherwise a per-operation
// fallback. Err carries the underlying cause, if any, for errors.Is/As.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// newError builds an *Error, preferring the server message over the
// fallback and tagging 401 responses with ErrUnauthorized.
func newError(status int, serverMsg, fallback string, cause error) *Error {
	msg := serverMsg
	if msg == "" {
		msg = fallback
	}
	if status == 401 && cause == nil {
		cause = ErrUnauthorized
	}
	return &Error{Status: status, Message: msg, Err: cause}
}
