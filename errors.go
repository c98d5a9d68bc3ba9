package schedgen

import "errors"

// Sentinel errors for common failure modes. Every failure is terminal for
// the invocation: callers report the error and exit, there is no local
// recovery path.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration indicates missing or contradictory configuration
	// (credentials, arguments) detected before any network or file activity.
	ErrConfiguration = errors.New("configuration error")

	// ErrResourceUnavailable indicates the canonical source file could not
	// be read or written.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrExternalService indicates the completion service failed: network
	// interruption, authentication failure, or a protocol error mid-stream.
	ErrExternalService = errors.New("external service error")
)
