// Package sealedbox implements anonymous public-key encryption ("sealed
// boxes").
//
// A sender with no long-term key encrypts a message to a recipient's
// Curve25519 public key. Only the holder of the matching key pair can open
// it, and the recipient learns nothing about who sealed it.
//
// Basic usage:
//
//	sealed, err := sealedbox.Create([]byte("hello"), recipientPublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	message, err := sealedbox.Open(sealed, recipientSecretKey, recipientPublicKey)
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, sealedbox.ErrDecryptionFailed)
//	}
//
// The output is compatible with libsodium's crypto_box_seal: the ephemeral
// public key followed by the XSalsa20-Poly1305 ciphertext, [SealOverhead]
// bytes longer than the message.
//
// Open reports every failure after key validation (short input, bad hex,
// tampering, wrong key pair) as the same [ErrDecryptionFailed] so that
// callers cannot be used as an oracle. Key length problems are reported as a
// [*KeyLengthError] by both Create and Open.
//
// Package-level functions share a default [Codec] that is built once, on
// first use, and is safe for concurrent use. Use [New] to choose a different
// [Primitive] or random source.
package sealedbox
