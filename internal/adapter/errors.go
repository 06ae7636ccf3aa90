package adapter

import (
	"errors"
	"fmt"
)

// Transport errors. HTTP failures are mapped by mapHTTPError; failed API
// payloads carry one of them through [APIError] when the code is known.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNotFound            = errors.New("not found")
	ErrEndpointNotFound    = errors.New("endpoint not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// APIError is returned when the remote answers with a failed status payload.
// Kind holds the classified sentinel, if any, so errors.Is works through it.
type APIError struct {
	Method  string
	Code    int
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed with code %d: %s", e.Method, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// HasCode reports whether err is an [APIError] with the given code.
func HasCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
