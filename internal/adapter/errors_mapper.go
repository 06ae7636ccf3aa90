package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Remote API error codes shared by every method.
const (
	codeNotFound           = 1
	codeNotAvailable       = 2
	codeSSLRequired        = 95
	codeInvalidSignature   = 96
	codeMissingSignature   = 97
	codeLoginFailed        = 98
	codeInsufficientPerms  = 99
	codeInvalidAPIKey      = 100
	codeServiceUnavailable = 105
	codeWriteFailed        = 106
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrEndpointNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// classifyAPIError builds an [APIError] for a failed payload. Code 2 means
// different things per method and is left unclassified; methods that care
// check it with HasCode.
func classifyAPIError(method string, code int, message string) *APIError {
	apiErr := &APIError{Method: method, Code: code, Message: message}

	switch code {
	case codeNotFound:
		apiErr.Kind = ErrNotFound
	case codeInsufficientPerms:
		apiErr.Kind = ErrPermissionDenied
	case codeSSLRequired, codeInvalidSignature, codeMissingSignature, codeLoginFailed, codeInvalidAPIKey:
		apiErr.Kind = ErrUnauthorized
	case codeServiceUnavailable, codeWriteFailed:
		apiErr.Kind = ErrBadGateway
	}

	return apiErr
}
