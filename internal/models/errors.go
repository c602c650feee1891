package models

import (
	"errors"
)

var (
	// ErrValidation marks client input that fails sanitization bounds.
	ErrValidation = errors.New("validation error")

	// ErrRateLimited marks requests rejected by the fixed-window limiter.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrGenerationDisabled is returned by providers constructed without an
	// API key.
	ErrGenerationDisabled = errors.New("generation provider is not configured")
)
