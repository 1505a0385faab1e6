package cli

import (
	"context"
	"errors"
	"fmt"

	"storedash/internal/client/api"
	"storedash/internal/client/session"
)

// Profile fetches and prints the signed-in account. The profile is always
// fetched fresh; nothing is cached locally.
func (a *App) Profile(ctx context.Context) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	profile, err := a.authService.Profile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, session.ErrNoSession) {
			a.expireSession()
			return err
		}
		fmt.Fprintf(a.out, "Failed to fetch profile: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "%s\n", profile.FullName())
	fmt.Fprintf(a.out, "  Username: %s\n", profile.Username)
	fmt.Fprintf(a.out, "  Email:    %s\n", profile.Email)
	if profile.Phone != "" {
		fmt.Fprintf(a.out, "  Phone:    %s\n", profile.Phone)
	}
	if profile.Gender != "" {
		fmt.Fprintf(a.out, "  Gender:   %s\n", profile.Gender)
	}
	if profile.Age > 0 {
		fmt.Fprintf(a.out, "  Age:      %d\n", profile.Age)
	}
	if profile.BirthDate != "" {
		fmt.Fprintf(a.out, "  Born:     %s\n", profile.BirthDate)
	}
	if profile.Image != "" {
		fmt.Fprintf(a.out, "  Image:    %s\n", profile.Image)
	}
	return nil
}
