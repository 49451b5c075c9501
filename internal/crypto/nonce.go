package crypto

import "golang.org/x/crypto/blake2b"

// SealNonce derives the sealed box nonce: BLAKE2b with a 24-byte digest over
// the ephemeral public key followed by the recipient public key.
func SealNonce(ephemeralPublicKey, recipientPublicKey []byte) [NonceSize]byte {
	var nonce [NonceSize]byte

	h, err := blake2b.New(NonceSize, nil)
	if err != nil {
		// Only reachable with an invalid digest size or key.
		panic(err)
	}

	h.Write(ephemeralPublicKey)
	h.Write(recipientPublicKey)
	h.Sum(nonce[:0])

	return nonce
}
