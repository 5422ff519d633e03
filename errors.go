package rectpack

import "errors"

// Sentinel errors for rectpack package.
var (
	// ErrAllocationFailed is returned when no free region on any face can
	// hold the requested size. It is an expected outcome: callers evict
	// and retry.
	ErrAllocationFailed = errors.New("rectpack: no free region fits the requested size")

	// ErrInvalidHandle is returned when Clear or Release is given a region
	// that is not currently occupied (double free or foreign handle).
	ErrInvalidHandle = errors.New("rectpack: handle does not match an occupied region")
)

// ConfigError represents a construction or argument validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "rectpack: invalid " + e.Field + ": " + e.Reason
}
