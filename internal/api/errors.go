package api

import "errors"

var (
	// ErrUnauthorized indicates the backend rejected the session token.
	// The stored token has already been cleared when this is returned.
	ErrUnauthorized = errors.New("session expired or invalid")

	// ErrUnavailable indicates the backend is unreachable.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNoToken indicates no session token is stored for the scope.
	ErrNoToken = errors.New("not logged in")
)

// ServerError carries the backend's own error message for a non-2xx
// response, so forms can surface it verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "server error"
}
