package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"
)

// NaClPrimitive implements [Primitive] with golang.org/x/crypto/nacl/box.
type NaClPrimitive struct {
	// Rand is the source of ephemeral keys. Nil uses crypto/rand.
	Rand io.Reader
}

// Seal encrypts message to recipientPublicKey into out.
func (p *NaClPrimitive) Seal(out, message []byte, recipientPublicKey *[PublicKeySize]byte) error {
	if err := checkSealBuffer(out, message); err != nil {
		return err
	}

	sealed, err := box.SealAnonymous(out[:0], message, recipientPublicKey, randSource(p.Rand))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}

	// SealAnonymous appends in place when out has room; anything else means
	// the result did not land in the caller's buffer.
	if len(sealed) != len(out) || &sealed[0] != &out[0] {
		return fmt.Errorf("%w: output not written in place", ErrSealFailed)
	}

	return nil
}

// Open decrypts sealed into out using the recipient key pair.
func (p *NaClPrimitive) Open(out, sealed []byte, recipientPublicKey *[PublicKeySize]byte, recipientSecretKey *[SecretKeySize]byte) error {
	if err := checkOpenBuffer(out, sealed); err != nil {
		return err
	}

	if _, ok := box.OpenAnonymous(out[:0], sealed, recipientPublicKey, recipientSecretKey); !ok {
		Wipe(out)
		return ErrOpenFailed
	}

	return nil
}
