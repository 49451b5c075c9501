package sealedbox

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidKeyLength", ErrInvalidKeyLength},
		{"ErrEncryptionFailed", ErrEncryptionFailed},
		{"ErrDecryptionFailed", ErrDecryptionFailed},
		{"ErrPrimitiveUnavailable", ErrPrimitiveUnavailable},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestKeyLengthError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *KeyLengthError
		expected string
	}{
		{
			name:     "short public key",
			err:      &KeyLengthError{Argument: "recipientPublicKey", Length: 31, Want: 32},
			expected: "invalid key length: recipientPublicKey is 31 bytes, want 32",
		},
		{
			name:     "missing secret key",
			err:      &KeyLengthError{Argument: "recipientSecretKey", Length: 0, Want: 32},
			expected: "invalid key length: recipientSecretKey is 0 bytes, want 32",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeyLengthError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &KeyLengthError{Argument: "recipientPublicKey", Length: 33, Want: 32})

	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Error("KeyLengthError should match ErrInvalidKeyLength")
	}
	if errors.Is(err, ErrDecryptionFailed) {
		t.Error("KeyLengthError should not match ErrDecryptionFailed")
	}
	if errors.Is(err, ErrEncryptionFailed) {
		t.Error("KeyLengthError should not match ErrEncryptionFailed")
	}
}

func TestEncryptionError(t *testing.T) {
	cause := errors.New("rng exhausted")
	err := &EncryptionError{Err: cause}

	if got, want := err.Error(), "encryption failed: rng exhausted"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrEncryptionFailed) {
		t.Error("EncryptionError should match ErrEncryptionFailed")
	}
	if !errors.Is(err, cause) {
		t.Error("EncryptionError should unwrap to its cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestSealedBoxError_Interface(t *testing.T) {
	var errs []SealedBoxError
	errs = append(errs, &KeyLengthError{}, &EncryptionError{})

	for _, err := range errs {
		err.SealedBoxError()
	}
}
