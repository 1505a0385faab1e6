package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"storedash/internal/client/api"
	"storedash/internal/client/catalog"
	"storedash/internal/client/models"
	"storedash/internal/client/session"
	"storedash/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- fakes ----

type fakeAuth struct {
	LoginRet *models.AuthResult
	LoginErr error

	Token    string
	TokenErr error

	ProfileRet *models.Profile
	ProfileErr error

	LogoutErr error

	LoginCalls  int
	LogoutCalls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	f.LoginCalls++
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuth) CurrentToken(ctx context.Context) (string, error) {
	if f.TokenErr != nil {
		return "", f.TokenErr
	}
	return f.Token, nil
}

func (f *fakeAuth) Profile(ctx context.Context) (*models.Profile, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

type fakeFetcher struct {
	calls int
	err   error
	items []models.Product
}

func (f *fakeFetcher) Products(ctx context.Context, skip, limit int) (*models.ProductPage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if skip > len(f.items) {
		skip = len(f.items)
	}
	end := skip + limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return &models.ProductPage{Products: f.items[skip:end], Total: len(f.items), Skip: skip, Limit: limit}, nil
}

func makeProducts(n int) []models.Product {
	items := make([]models.Product, n)
	for i := range items {
		items[i] = models.Product{
			ID:       i + 1,
			Title:    fmt.Sprintf("Product %d", i+1),
			Category: "cat",
			Price:    float64(i + 1),
		}
	}
	return items
}

// newTestApp builds an App with fakes and a captured output buffer.
func newTestApp(auth *fakeAuth, fetcher *fakeFetcher, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		authService: auth,
		loader:      catalog.NewLoader(fetcher, 10, testLogger()),
		log:         testLogger(),
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         out,
	}, out
}

// stubInputs replaces the interactive input seams for the duration of a test.
func stubInputs(t *testing.T, username, password string, confirm bool) {
	t.Helper()

	origText, origPass, origConfirm := getSimpleText, getPassword, getConfirmation
	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirmation = origText, origPass, origConfirm
	})

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	getConfirmation = func(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
		return confirm, nil
	}
}

// ---- tests ----

func TestAppLogin_Success_EntersDashboard(t *testing.T) {
	stubInputs(t, "emilys", "emilyspass", false)

	auth := &fakeAuth{
		LoginRet:   &models.AuthResult{AccessToken: "tok", Username: "emilys"},
		ProfileRet: &models.Profile{Username: "emilys", FirstName: "Emily", LastName: "Johnson"},
	}
	fetcher := &fakeFetcher{items: makeProducts(25)}
	a, out := newTestApp(auth, fetcher, "")

	require.NoError(t, a.Login(context.Background()))

	require.True(t, a.isLoggedIn())
	require.Equal(t, "emilys", a.userName)
	require.Contains(t, out.String(), "Signed in as emilys.")
	require.Contains(t, out.String(), "Hello, Emily Johnson!")
	require.Contains(t, out.String(), "[1] Product 1")
	require.Len(t, a.loader.Snapshot().Items, 10)
}

func TestAppLogin_InvalidCredentials(t *testing.T) {
	stubInputs(t, "emilys", "wrong", false)

	auth := &fakeAuth{LoginErr: &api.Error{Status: 401, Message: "Invalid credentials", Err: api.ErrUnauthorized}}
	a, out := newTestApp(auth, &fakeFetcher{}, "")

	require.Error(t, a.Login(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Invalid credentials")
}

func TestAppLogout_Declined_LeavesSessionUntouched(t *testing.T) {
	stubInputs(t, "", "", false)

	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(5)}
	a, out := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	a.userName = "emilys"
	require.NoError(t, a.loader.Load(context.Background()))
	before := a.loader.Snapshot()

	require.NoError(t, a.Logout(context.Background()))

	require.Equal(t, 0, auth.LogoutCalls)
	require.True(t, a.isLoggedIn())
	require.Equal(t, "emilys", a.userName)
	require.Equal(t, before.Items, a.loader.Snapshot().Items)
	require.Contains(t, out.String(), "Logout cancelled.")
}

func TestAppLogout_Confirmed(t *testing.T) {
	stubInputs(t, "", "", true)

	auth := &fakeAuth{Token: "tok"}
	a, out := newTestApp(auth, &fakeFetcher{}, "")
	a.loggedIn = true
	a.userName = "emilys"

	require.NoError(t, a.Logout(context.Background()))

	require.Equal(t, 1, auth.LogoutCalls)
	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Signed out.")
}

func TestAppSplash_NoSession_PromptsLogin(t *testing.T) {
	auth := &fakeAuth{TokenErr: session.ErrNoSession}
	a, out := newTestApp(auth, &fakeFetcher{}, "")

	a.Splash(context.Background())

	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Please type 'login' to sign in.")
}

func TestAppSplash_StorageFailure_Reported(t *testing.T) {
	auth := &fakeAuth{TokenErr: errors.New("disk error")}
	a, out := newTestApp(auth, &fakeFetcher{}, "")

	a.Splash(context.Background())

	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Local storage unavailable")
}

func TestAppSplash_WithSession_LoadsDashboard(t *testing.T) {
	auth := &fakeAuth{
		Token:      "tok",
		ProfileRet: &models.Profile{Username: "emilys", FirstName: "Emily"},
	}
	fetcher := &fakeFetcher{items: makeProducts(3)}
	a, out := newTestApp(auth, fetcher, "")

	a.Splash(context.Background())

	require.True(t, a.isLoggedIn())
	require.Contains(t, out.String(), "[3] Product 3")
}

func TestAppSplash_StaleToken_ExpiresSession(t *testing.T) {
	auth := &fakeAuth{
		Token:      "stale",
		ProfileErr: &api.Error{Status: 401, Message: "Token Expired!", Err: api.ErrUnauthorized},
	}
	a, out := newTestApp(auth, &fakeFetcher{}, "")

	a.Splash(context.Background())

	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Session is no longer valid.")
}

func TestAppMore_AppendsNextPage(t *testing.T) {
	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(25)}
	a, out := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	require.NoError(t, a.loader.Load(context.Background()))

	require.NoError(t, a.More(context.Background()))

	require.Contains(t, out.String(), "[11] Product 11")
	require.NotContains(t, out.String(), "[1] Product 1 ")
	require.Contains(t, out.String(), "Showing 20 of 25 products.")
}

func TestAppMore_Exhausted_NoRequest(t *testing.T) {
	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(5)}
	a, out := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	require.NoError(t, a.loader.Load(context.Background()))
	calls := fetcher.calls

	require.NoError(t, a.More(context.Background()))

	require.Equal(t, calls, fetcher.calls)
	require.Contains(t, out.String(), "No more products to load.")
}

func TestAppMore_Failure_Surfaced(t *testing.T) {
	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(25)}
	a, out := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	require.NoError(t, a.loader.Load(context.Background()))

	fetcher.err = errors.New("network down")
	require.Error(t, a.More(context.Background()))
	require.Contains(t, out.String(), "Failed to load more products")

	// State is intact and the next attempt succeeds.
	fetcher.err = nil
	require.NoError(t, a.More(context.Background()))
	require.Len(t, a.loader.Snapshot().Items, 20)
}

func TestAppRefresh_ReplacesList(t *testing.T) {
	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(25)}
	a, _ := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	require.NoError(t, a.loader.Load(context.Background()))
	_, err := a.loader.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, a.loader.Snapshot().Items, 20)

	require.NoError(t, a.Refresh(context.Background()))
	require.Len(t, a.loader.Snapshot().Items, 10)
}

func TestAppStats_OverLoadedItems(t *testing.T) {
	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(25)}
	a, out := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	require.NoError(t, a.loader.Load(context.Background()))

	require.NoError(t, a.Stats(context.Background()))

	// Average of prices 1..10 is 5.5.
	require.Contains(t, out.String(), "Loaded: 10 of 25")
	require.Contains(t, out.String(), "Average price: $5.50")
}

func TestAppShow_FoundAndMissing(t *testing.T) {
	auth := &fakeAuth{Token: "tok"}
	fetcher := &fakeFetcher{items: makeProducts(25)}
	a, out := newTestApp(auth, fetcher, "")
	a.loggedIn = true
	require.NoError(t, a.loader.Load(context.Background()))

	require.NoError(t, a.Show(context.Background(), "3"))
	require.Contains(t, out.String(), "Product 3")

	require.NoError(t, a.Show(context.Background(), "21"))
	require.Contains(t, out.String(), "Product 21 is not loaded.")

	require.Error(t, a.Show(context.Background(), "abc"))
	require.Contains(t, out.String(), "Invalid product id: abc")
}

func TestAppCommands_RequireLogin(t *testing.T) {
	auth := &fakeAuth{TokenErr: session.ErrNoSession}
	a, out := newTestApp(auth, &fakeFetcher{}, "")

	require.NoError(t, a.List(context.Background()))
	require.NoError(t, a.More(context.Background()))
	require.NoError(t, a.Refresh(context.Background()))
	require.NoError(t, a.Stats(context.Background()))
	require.NoError(t, a.Show(context.Background(), "1"))
	require.NoError(t, a.Profile(context.Background()))

	require.Contains(t, out.String(), "Please login first.")
}
