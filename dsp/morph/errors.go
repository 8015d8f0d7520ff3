package morph

import "errors"

// Errors returned by the morph package.
var (
	// ErrConfig indicates an engine was constructed or reconfigured with
	// an invalid parameter combination.
	ErrConfig = errors.New("morph: invalid configuration")

	// ErrLengthMismatch indicates Process was called with main, side, and
	// out buffers of differing lengths.
	ErrLengthMismatch = errors.New("morph: buffer length mismatch")
)
