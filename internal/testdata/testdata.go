// Package testdata provides a deterministic random bit generator for testing.
package testdata

import (
	"golang.org/x/crypto/sha3"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h sha3.ShakeHash
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewShake128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// KeyPair returns a deterministic X25519 key pair from the DRBG.
func (d *DRBG) KeyPair() (publicKey, secretKey *[32]byte) {
	var pk, sk x25519.Key
	copy(sk[:], d.Data(32))
	x25519.KeyGen(&pk, &sk)
	return (*[32]byte)(&pk), (*[32]byte)(&sk)
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Reader returns pseudorandom reader seeded with a value from this DRBG.
func (d *DRBG) Reader() io.Reader {
	h := sha3.NewShake128()
	_, _ = h.Write(d.Data(32))
	return h
}
