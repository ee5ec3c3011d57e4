package etherpad

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotInitialized is returned when the Etherpad client is not initialized.
	ErrClientNotInitialized = errors.New("etherpad client not initialized")
)

// APIError is returned when the editing service reports a non zero response
// code or the HTTP call itself fails. Callers branch on it to surface
// upstream failures explicitly instead of propagating raw payloads.
type APIError struct {
	// Function is the API function that failed.
	Function string
	// Code is the response code reported by the service (-1 for transport
	// level failures).
	Code int
	// Message is the human readable message reported by the service.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("etherpad %s failed: code %d: %s", e.Function, e.Code, e.Message)
}

// IsAPIError reports whether err is an upstream editing service failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
