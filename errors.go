package sealedbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeyLength is returned when a key does not have its fixed size.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrEncryptionFailed is returned when the primitive fails to seal a
	// message. It indicates an internal fault, not bad input.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned for every sealed box that cannot be
	// opened, whatever the cause.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPrimitiveUnavailable is returned when the box primitive fails its
	// initialization self-test.
	ErrPrimitiveUnavailable = errors.New("box primitive unavailable")
)

// SealedBoxError is implemented by all typed errors in this package.
type SealedBoxError interface {
	error
	SealedBoxError() // marker method
}

// KeyLengthError reports a key argument of the wrong size.
type KeyLengthError struct {
	// Argument names the offending parameter, e.g. "recipientPublicKey".
	Argument string
	// Length is the size that was supplied.
	Length int
	// Want is the required size.
	Want int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("invalid key length: %s is %d bytes, want %d", e.Argument, e.Length, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// SealedBoxError implements the SealedBoxError interface.
func (e *KeyLengthError) SealedBoxError() {}

// EncryptionError wraps a primitive failure during sealing.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// SealedBoxError implements the SealedBoxError interface.
func (e *EncryptionError) SealedBoxError() {}

// checkKeyLength validates key against its fixed size.
func checkKeyLength(argument string, key []byte, want int) error {
	if len(key) != want {
		return &KeyLengthError{Argument: argument, Length: len(key), Want: want}
	}
	return nil
}
