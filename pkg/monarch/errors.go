package monarch

import (
	"errors"

	"github.com/monarch-agent/monarch-mcp/internal/types"
)

// Sentinel errors surfaced by the transport. These alias the internal
// definitions so errors.Is matches across package boundaries.
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = types.ErrNotAuthenticated

	// ErrMFARequired is returned when MFA is required
	ErrMFARequired = types.ErrMFARequired

	// ErrLoginFailed is returned when login fails
	ErrLoginFailed = types.ErrLoginFailed

	// ErrSessionExpired is returned when session has expired
	ErrSessionExpired = types.ErrSessionExpired

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = types.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = types.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = types.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = types.ErrServerError
)

// Error represents an API error
type Error = types.Error

// GraphQLError represents a GraphQL error
type GraphQLError = types.GraphQLError

// GraphQLErrors represents multiple GraphQL errors
type GraphQLErrors = types.GraphQLErrors

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrMFARequired) ||
		errors.Is(err, ErrLoginFailed) ||
		errors.Is(err, ErrSessionExpired)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
