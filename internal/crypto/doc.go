// Package crypto provides the authenticated box primitive behind sealed boxes.
//
// # Construction
//
// A sealed box encrypts a message to a recipient's Curve25519 public key
// without identifying the sender:
//
//   - A fresh ephemeral X25519 key pair is generated for every message.
//
//   - The nonce is BLAKE2b-192 over the ephemeral public key followed by the
//     recipient public key, so it never needs to be transmitted.
//
//   - The message is encrypted and authenticated with XSalsa20-Poly1305 under
//     the key agreed between the ephemeral secret key and the recipient
//     public key.
//
// The output is the ephemeral public key (32 bytes) followed by the
// authenticated ciphertext (message length + 16 bytes). This is the libsodium
// crypto_box_seal format.
//
// # Primitives
//
// [Primitive] is the seam the sealedbox package builds on. Two
// implementations are provided and produce byte-identical output for the same
// random source:
//
//   - [NaClPrimitive] delegates to golang.org/x/crypto/nacl/box.
//
//   - [X25519Primitive] composes circl's X25519 with the x/crypto HSalsa20,
//     BLAKE2b and secretbox building blocks, and rejects low-order points.
//
// # Secret Material
//
// Ephemeral secret keys and agreed box keys are wiped with [Wipe] before a
// call returns. Callers' key slices are read in place and never copied.
package crypto
