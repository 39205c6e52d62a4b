package edge

import "errors"

// Sentinel errors returned by the detector. Every error produced by this
// package wraps exactly one of them, so callers can branch with errors.Is.
var (
	// ErrInvalidInput reports an empty or ragged pixel grid, or scratch
	// planes whose dimensions disagree.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig reports a configuration that cannot be run: threshold
	// ordering violated, negative thresholds, minimum edge size below 1, an
	// unknown norm, border policy or mode, or malformed kernels.
	ErrInvalidConfig = errors.New("invalid config")
)
