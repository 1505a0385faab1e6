// Package api implements the client for the store REST service.
//
// The client is a pure translation layer: it builds requests, decodes
// responses, and normalizes every failure (non-2xx status, transport
// error, malformed body) into an *Error carrying a user-facing message.
// Callers never see a raw transport error.
package api

import (
	"context"

	"storedash/internal/client/models"
)

// Client defines the remote operations the application consumes.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (*models.AuthResult, error)

	// Profile fetches the account owning the given token.
	Profile(ctx context.Context, token string) (*models.Profile, error)

	// Products fetches one page of the catalog. skip must be >= 0 and
	// limit > 0; the server, not the client, bounds the page size.
	Products(ctx context.Context, skip, limit int) (*models.ProductPage, error)
}
