package esa

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoTeam is returned when an operation needs a team before it can build
// its request and neither an explicit team nor a session default is set.
var ErrNoTeam = errors.New("esa: no team specified: set a default team or pass one explicitly")

// APIError represents a non-2xx response from the esa API. Rate-limit
// responses are retried internally and only reach the caller as an
// APIError once the configured retry budget is exhausted.
type APIError struct {
	StatusCode int             // HTTP status code of the response
	Type       string          // error slug reported by the API, e.g. "not_found"
	Message    string          // human-readable message from the API
	Body       json.RawMessage // raw response body as received
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("esa: %s (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("esa: request failed (status %d): %s", e.StatusCode, e.Message)
}

// fallbackErrorMessage is used when an error response body cannot be
// decoded or read at all.
const fallbackErrorMessage = "unexpected response from server"

// newAPIError builds an APIError from a non-2xx response body. It decodes
// the API's {error, message} shape when possible, falls back to the raw
// body as the message, and finally to a fixed message.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && (payload.Error != "" || payload.Message != "") {
		apiErr.Type = payload.Error
		apiErr.Message = payload.Message
		return apiErr
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		apiErr.Message = msg
		return apiErr
	}

	apiErr.Message = fallbackErrorMessage
	return apiErr
}

// rateLimitError marks a 429 exchange for the retry loop. It wraps an
// APIError so an exhausted retry budget still surfaces the status to the
// caller through errors.As.
type rateLimitError struct {
	retryAfter time.Duration
	apiErr     *APIError
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("esa: rate limited, retry after %s", e.retryAfter)
}

func (e *rateLimitError) Unwrap() error {
	return e.apiErr
}

// isRateLimited reports whether err is a retryable rate-limit error.
func isRateLimited(err error) bool {
	var rl *rateLimitError
	return errors.As(err, &rl)
}

var _ error = &APIError{}
var _ error = &rateLimitError{}
