package health

import "errors"

// Sentinel errors for the health package.
var (
	// ErrCheckFailed is returned by Run when one or more health checks fail.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout marks a check that exceeded the configured timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
