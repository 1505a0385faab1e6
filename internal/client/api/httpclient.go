package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"storedash/internal/client/models"
	"storedash/internal/common"
	"storedash/internal/logging"
)

// Fallback messages used when the server does not supply one.
const (
	msgLoginFailed    = "Login failed. Please try again."
	msgProfileFailed  = "Failed to fetch profile."
	msgProductsFailed = "Failed to fetch products."
)

// HTTPClient is the concrete Client over net/http.
//
// Timeout and retry behavior belong to the injected http.Client; HTTPClient
// adds no policy of its own.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient constructs a client for the service at baseURL.
// If httpClient is nil, http.DefaultClient is used.
func NewHTTPClient(baseURL string, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log.With("component", "api"),
	}
}

var _ Client = (*HTTPClient)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// errorBody is the shape of server error payloads; only message is used.
type errorBody struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResult, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, newError(0, "", msgLoginFailed, err)
	}

	var result models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", bytes.NewReader(body), &result, msgLoginFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.Profile, error) {
	var result models.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &result, msgProfileFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Products(ctx context.Context, skip, limit int) (*models.ProductPage, error) {
	if skip < 0 || limit <= 0 {
		return nil, newError(0, "", msgProductsFailed,
			fmt.Errorf("invalid page bounds: skip=%d limit=%d", skip, limit))
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var result models.ProductPage
	if err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), "", nil, &result, msgProductsFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

// do performs one round trip and decodes the response into out.
// Every failure path returns an *Error built with the given fallback.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body io.Reader, out any, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newError(0, "", fallback, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api transport failure", "path", path, "request_id", requestID, "error", err)
		return newError(0, "", fallback, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response", "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A non-JSON error body is fine; the fallback message covers it.
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb)
		return newError(resp.StatusCode, eb.Message, fallback, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newError(0, "", fallback, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
