package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrTokenMissing indicates an authenticated request was attempted with
// no token in the store. The request is rejected before any network I/O.
var ErrTokenMissing = errors.New("authentication required, but no token is stored")

// StatusError carries the server's human-readable message for a non-2xx
// response. The message comes from the error body when one could be
// parsed, otherwise from the status text.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// ErrInvalidResponse indicates the server returned a body that does not
// conform to the endpoint's response schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid API response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// IsAuthFailure reports whether err means the caller's identity was
// rejected: a missing local token, or a 401/403 from the server.
// Transport failures and other statuses are not auth failures.
func IsAuthFailure(err error) bool {
	if errors.Is(err, ErrTokenMissing) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden
	}
	return false
}
