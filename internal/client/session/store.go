// Package session persists the bearer token for the current sign-in.
//
// At most one token exists at a time. Save overwrites, Remove is
// idempotent, and Get distinguishes "no session" (ErrNoSession) from a
// storage failure so callers can tell a signed-out user from a broken
// local database.
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned by Get when no token has been saved, or the
// last one was removed. Match with errors.Is.
var ErrNoSession = errors.New("no session")

// Store holds the single session token.
type Store interface {
	// Save writes the token, replacing any previous value.
	Save(ctx context.Context, token string) error

	// Get returns the current token, or ErrNoSession when absent.
	// Any other error is a storage failure, not an absent session.
	Get(ctx context.Context) (string, error)

	// Remove deletes the token. Removing an absent token is not an error.
	Remove(ctx context.Context) error
}
