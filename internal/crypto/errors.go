package crypto

import "errors"

var (
	// ErrSealFailed is returned when the primitive cannot produce a sealed box.
	ErrSealFailed = errors.New("seal failed")

	// ErrOpenFailed is returned for every sealed box that does not verify.
	// It deliberately carries no detail about the cause.
	ErrOpenFailed = errors.New("open failed")

	// ErrBufferSize is returned when an output buffer does not have the
	// exact size the operation writes.
	ErrBufferSize = errors.New("invalid buffer size")

	// ErrLowOrderPoint is returned when key agreement yields the all-zero
	// shared secret.
	ErrLowOrderPoint = errors.New("low order point")

	// ErrSelfTest is returned when a primitive fails its known-answer check.
	ErrSelfTest = errors.New("primitive self-test failed")
)
