package sealedbox

import (
	"io"

	"github.com/vaultsandbox/sealedbox/internal/crypto"
)

// Primitive seals and opens anonymous boxes for a [Codec].
//
// Seal must write exactly len(message)+SealOverhead bytes into out; Open must
// write exactly len(sealed)-SealOverhead bytes into out. Implementations must
// be safe for concurrent use.
type Primitive = crypto.Primitive

// NewNaClPrimitive returns the default primitive, backed by
// golang.org/x/crypto/nacl/box. A nil rand uses crypto/rand.
func NewNaClPrimitive(rand io.Reader) Primitive {
	return &crypto.NaClPrimitive{Rand: rand}
}

// NewX25519Primitive returns a primitive composed from circl X25519 and the
// x/crypto secretbox. It produces the same sealed boxes as
// [NewNaClPrimitive] and additionally rejects low-order public keys.
// A nil rand uses crypto/rand.
func NewX25519Primitive(rand io.Reader) Primitive {
	return &crypto.X25519Primitive{Rand: rand}
}

// codecConfig holds configuration for a codec.
type codecConfig struct {
	primitive Primitive
	rand      io.Reader
	selfTest  bool
}

// Option configures a codec.
type Option func(*codecConfig)

// WithPrimitive sets the box primitive. Default: [NewNaClPrimitive].
func WithPrimitive(p Primitive) Option {
	return func(c *codecConfig) {
		c.primitive = p
	}
}

// WithRandReader sets the source of ephemeral keys for the default
// primitive. It has no effect together with [WithPrimitive].
func WithRandReader(r io.Reader) Option {
	return func(c *codecConfig) {
		c.rand = r
	}
}

// WithSelfTest enables or disables the primitive self-test run by [New].
// Default: true
func WithSelfTest(enabled bool) Option {
	return func(c *codecConfig) {
		c.selfTest = enabled
	}
}
