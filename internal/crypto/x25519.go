package crypto

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/salsa20/salsa"
)

// X25519Primitive implements [Primitive] from its parts: circl X25519 key
// agreement, HSalsa20 key derivation and an XSalsa20-Poly1305 secretbox.
//
// Output is byte-compatible with [NaClPrimitive]. Unlike nacl/box it refuses
// key agreement with low-order points.
type X25519Primitive struct {
	// Rand is the source of ephemeral keys. Nil uses crypto/rand.
	Rand io.Reader
}

// Seal encrypts message to recipientPublicKey into out.
func (p *X25519Primitive) Seal(out, message []byte, recipientPublicKey *[PublicKeySize]byte) error {
	if err := checkSealBuffer(out, message); err != nil {
		return err
	}

	var ephemeralSecret, ephemeralPublic x25519.Key
	defer Wipe(ephemeralSecret[:])

	if _, err := io.ReadFull(randSource(p.Rand), ephemeralSecret[:]); err != nil {
		return fmt.Errorf("%w: read ephemeral key: %v", ErrSealFailed, err)
	}
	x25519.KeyGen(&ephemeralPublic, &ephemeralSecret)

	key, err := boxKey((*[SecretKeySize]byte)(&ephemeralSecret), recipientPublicKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSealFailed, err)
	}
	defer Wipe(key[:])

	nonce := SealNonce(ephemeralPublic[:], recipientPublicKey[:])

	copy(out, ephemeralPublic[:])
	secretbox.Seal(out[PublicKeySize:PublicKeySize], message, &nonce, &key)

	return nil
}

// Open decrypts sealed into out using the recipient key pair.
func (p *X25519Primitive) Open(out, sealed []byte, recipientPublicKey *[PublicKeySize]byte, recipientSecretKey *[SecretKeySize]byte) error {
	if err := checkOpenBuffer(out, sealed); err != nil {
		return err
	}

	ephemeralPublic := (*[PublicKeySize]byte)(sealed[:PublicKeySize])

	key, err := boxKey(recipientSecretKey, ephemeralPublic)
	if err != nil {
		return ErrOpenFailed
	}
	defer Wipe(key[:])

	nonce := SealNonce(ephemeralPublic[:], recipientPublicKey[:])

	if _, ok := secretbox.Open(out[:0], sealed[PublicKeySize:], &nonce, &key); !ok {
		Wipe(out)
		return ErrOpenFailed
	}

	return nil
}

// PublicKeyFromSecret derives the X25519 public key for secretKey.
func PublicKeyFromSecret(secretKey *[SecretKeySize]byte) [PublicKeySize]byte {
	var public x25519.Key
	x25519.KeyGen(&public, (*x25519.Key)(secretKey))
	return public
}

// boxKey computes the crypto_box key shared by secretKey and publicKey:
// HSalsa20 keyed with the X25519 shared secret over a zero input.
func boxKey(secretKey *[SecretKeySize]byte, publicKey *[PublicKeySize]byte) ([32]byte, error) {
	var shared x25519.Key
	defer Wipe(shared[:])

	var key [32]byte
	if !x25519.Shared(&shared, (*x25519.Key)(secretKey), (*x25519.Key)(publicKey)) {
		return key, ErrLowOrderPoint
	}

	var zeros [16]byte
	salsa.HSalsa20(&key, &zeros, (*[32]byte)(&shared), &salsa.Sigma)

	return key, nil
}
