package crypto

import "fmt"

// Primitive seals and opens anonymous boxes.
//
// Seal writes exactly len(message)+SealOverhead bytes into out. Open writes
// exactly len(sealed)-SealOverhead bytes into out. Both must be safe for
// concurrent use.
type Primitive interface {
	Seal(out, message []byte, recipientPublicKey *[PublicKeySize]byte) error
	Open(out, sealed []byte, recipientPublicKey *[PublicKeySize]byte, recipientSecretKey *[SecretKeySize]byte) error
}

func checkSealBuffer(out, message []byte) error {
	if want := len(message) + SealOverhead; len(out) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(out), want)
	}
	return nil
}

func checkOpenBuffer(out, sealed []byte) error {
	if len(sealed) < SealOverhead {
		return ErrOpenFailed
	}
	if want := len(sealed) - SealOverhead; len(out) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(out), want)
	}
	return nil
}
