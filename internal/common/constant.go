// Package common contains shared constants and helpers used across
// storedash components.
package common

// SessionTokenKey is the metadata key under which the client persists
// the bearer token for the current session.
const SessionTokenKey = "session_token"

// RequestIDHeaderName is the HTTP header used to carry the per-request
// correlation ID on outbound API calls.
const RequestIDHeaderName = "X-Request-Id"
