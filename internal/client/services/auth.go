// Package services contains application services for the storedash client.
// This file defines the authentication service: login, logout, the session
// gate used by authenticated screens, and profile retrieval.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storedash/internal/client/api"
	"storedash/internal/client/models"
	"storedash/internal/client/session"
)

// ErrCredentialsRequired is returned by Login when the username or
// password is empty. This check runs before any network call.
var ErrCredentialsRequired = errors.New("username and password are required")

// AuthService defines session-lifecycle operations for the client.
//
// Contract:
//   - Login: validate credentials, authenticate, persist the token.
//   - CurrentToken: read the persisted token; session.ErrNoSession when
//     the user is signed out.
//   - Profile: fetch the account owning the current token.
//   - Logout: drop the persisted token; a no-op when already signed out.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AuthResult, error)
	CurrentToken(ctx context.Context) (string, error)
	Profile(ctx context.Context) (*models.Profile, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Login authenticates and persists the returned token. When the server
// accepts the credentials but persisting the token fails, the result is
// returned alongside the storage error: the session is usable until the
// process exits, it just will not survive a restart.
func (a *authService) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrCredentialsRequired
	}

	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.store.Save(ctx, result.AccessToken); err != nil {
		return result, fmt.Errorf("saving session: %w", err)
	}
	return result, nil
}

func (a *authService) CurrentToken(ctx context.Context) (string, error) {
	return a.store.Get(ctx)
}

func (a *authService) Profile(ctx context.Context) (*models.Profile, error) {
	token, err := a.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return a.client.Profile(ctx, token)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Remove(ctx)
}
