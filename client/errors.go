package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound maps a 404 without a server-supplied message.
	ErrNotFound = errors.New("resource not found")
	// ErrNetwork wraps transport failures (no response at all).
	ErrNetwork = errors.New("network error")
)

// APIError is a non-2xx response that carried a structured message. The
// message is surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.StatusCode))
}

// UserMessage converts any error coming out of the client into the inline
// text a form should show.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, ErrNotFound):
		return "Resource not found."
	case errors.Is(err, ErrNetwork):
		return "Network error. Please check your internet connection."
	default:
		return "An unexpected error occurred."
	}
}
