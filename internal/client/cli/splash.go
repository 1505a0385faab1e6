package cli

import (
	"context"
	"errors"
	"fmt"

	"storedash/internal/client/session"
)

// Splash is the startup gate: it checks the local store for a session
// token and routes to the dashboard or the login prompt accordingly.
// A storage failure is reported as such, not treated as a missing session.
func (a *App) Splash(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to storedash (type 'help' for commands)")

	_, err := a.authService.CurrentToken(ctx)
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(a.out, "Please type 'login' to sign in.")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Local storage unavailable: %v\n", err)
		return
	}

	a.loggedIn = true
	a.enterDashboard(ctx)
}

// expireSession drops the in-memory session state and routes the user back
// to the login prompt. The stored token is kept: validity is owned by the
// server, and an explicit logout is the only thing that removes it.
func (a *App) expireSession() {
	a.loggedIn = false
	a.userName = ""
	fmt.Fprintln(a.out, "Session is no longer valid. Please type 'login' to sign in again.")
}
