package crypto

import "golang.org/x/crypto/nacl/box"

const (
	// PublicKeySize is the size of a Curve25519 public key in bytes.
	PublicKeySize = 32
	// SecretKeySize is the size of a Curve25519 secret key in bytes.
	SecretKeySize = 32
	// MACSize is the size of the Poly1305 authenticator in bytes.
	MACSize = box.Overhead
	// NonceSize is the size of an XSalsa20 nonce in bytes.
	NonceSize = 24

	// SealOverhead is the number of bytes a sealed box adds to its message:
	// the ephemeral public key followed by the authenticator.
	SealOverhead = PublicKeySize + MACSize
)

