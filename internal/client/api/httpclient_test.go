package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"storedash/internal/common"
	"storedash/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get(common.RequestIDHeaderName))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "emilys", body["username"])
		require.Equal(t, "emilyspass", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"tok123","id":1,"username":"emilys","firstName":"Emily"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	res, err := c.Login(context.Background(), "emilys", "emilyspass")
	require.NoError(t, err)
	require.Equal(t, "tok123", res.AccessToken)
	require.Equal(t, "Emily", res.FirstName)
}

func TestLogin_InvalidCredentials_ServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	_, err := c.Login(context.Background(), "emilys", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid credentials", apiErr.Message)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_ServerError_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	_, err := c.Login(context.Background(), "emilys", "emilyspass")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Login failed. Please try again.", apiErr.Message)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, nil, testLogger())
	_, err := c.Login(context.Background(), "emilys", "emilyspass")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 0, apiErr.Status)
	require.Equal(t, "Login failed. Please try again.", apiErr.Message)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":1,"firstName":"Emily","lastName":"Johnson","email":"emily@x.com"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	p, err := c.Profile(context.Background(), "tok123")
	require.NoError(t, err)
	require.Equal(t, "Emily Johnson", p.FullName())
}

func TestProfile_Expired_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token Expired!"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	_, err := c.Profile(context.Background(), "stale")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestProducts_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		require.Equal(t, "20", r.URL.Query().Get("skip"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"products":[{"id":21,"title":"Pen","price":1.5}],"total":25,"skip":20,"limit":10}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	page, err := c.Products(context.Background(), 20, 10)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	require.Equal(t, 25, page.Total)
	require.Equal(t, 21, page.Products[0].ID)
}

func TestProducts_InvalidBounds(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:0", nil, testLogger())

	_, err := c.Products(context.Background(), -1, 10)
	require.Error(t, err)

	_, err = c.Products(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestProducts_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, nil, testLogger())
	_, err := c.Products(context.Background(), 0, 10)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Failed to fetch products.", apiErr.Message)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := newError(0, "", "fallback", cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "fallback", err.Error())
}
