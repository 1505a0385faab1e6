package cli

import (
	"context"
	"errors"
	"fmt"

	"storedash/internal/client/api"
	"storedash/internal/client/services"
	"storedash/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts the user for credentials and tries to authenticate.
//
// Empty fields are rejected before any network call. On success the token
// is persisted, the session state is updated, and the dashboard is loaded.
// Authentication failures print the normalized API message ("Invalid
// credentials" when the server says so). The password is securely wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	result, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, services.ErrCredentialsRequired) {
			fmt.Fprintln(a.out, "Username and password are required.")
			return err
		}
		if result != nil {
			// Authenticated, but the token could not be persisted: the
			// session works until the program exits.
			fmt.Fprintf(a.out, "Warning: session will not be remembered: %v\n", err)
		} else {
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				fmt.Fprintln(a.out, apiErr.Message)
			} else {
				fmt.Fprintf(a.out, "Login failed: %v\n", err)
			}
			return err
		}
	}

	a.loggedIn = true
	a.userName = result.Username
	fmt.Fprintf(a.out, "Signed in as %s.\n", result.Username)

	a.enterDashboard(ctx)
	return nil
}

// Logout asks for confirmation, removes the stored token, and returns to
// the login gate. Declining leaves the token and the dashboard untouched.
// Logging out without a stored token is not an error.
func (a *App) Logout(ctx context.Context) error {
	confirmed, err := getConfirmation(a.reader, "Log out?", a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Logout cancelled.")
		return nil
	}

	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}

	a.loggedIn = false
	a.userName = ""
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
