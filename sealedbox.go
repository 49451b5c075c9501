package sealedbox

import (
	"encoding/hex"
	"fmt"

	"github.com/vaultsandbox/sealedbox/internal/crypto"
)

const (
	// RecipientPublicKeyBytes is the size of a recipient public key.
	RecipientPublicKeyBytes = crypto.PublicKeySize
	// RecipientSecretKeyBytes is the size of a recipient secret key.
	RecipientSecretKeyBytes = crypto.SecretKeySize
	// MACBytes is the size of the authenticator in every sealed box.
	MACBytes = crypto.MACSize
	// SealOverhead is how much longer a sealed box is than its message.
	SealOverhead = RecipientPublicKeyBytes + MACBytes
)

// Codec seals and opens sealed boxes with a fixed primitive.
// It holds no per-call state and is safe for concurrent use.
type Codec struct {
	primitive Primitive
}

// New creates a codec. Unless disabled with [WithSelfTest], the primitive
// must first pass a known-answer self-test.
func New(opts ...Option) (*Codec, error) {
	cfg := &codecConfig{
		selfTest: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	primitive := cfg.primitive
	if primitive == nil {
		primitive = NewNaClPrimitive(cfg.rand)
	}

	if cfg.selfTest {
		if err := crypto.SelfTest(primitive); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
		}
	}

	return &Codec{primitive: primitive}, nil
}

// Create seals message to recipientPublicKey.
//
// The result is len(message)+SealOverhead bytes and differs on every call,
// since each box carries a fresh ephemeral key.
func (c *Codec) Create(message, recipientPublicKey []byte) ([]byte, error) {
	if err := checkKeyLength("recipientPublicKey", recipientPublicKey, RecipientPublicKeyBytes); err != nil {
		return nil, err
	}

	out := make([]byte, len(message)+SealOverhead)
	if err := c.primitive.Seal(out, message, (*[RecipientPublicKeyBytes]byte)(recipientPublicKey)); err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return out, nil
}

// CreateString seals the UTF-8 bytes of message to recipientPublicKey.
func (c *Codec) CreateString(message string, recipientPublicKey []byte) ([]byte, error) {
	return c.Create([]byte(message), recipientPublicKey)
}

// CreateForKeyPair seals message to the public half of recipient.
// The secret half is never read.
func (c *Codec) CreateForKeyPair(message []byte, recipient *KeyPair) ([]byte, error) {
	return c.Create(message, recipient.publicKey())
}

// CreateStringForKeyPair seals the UTF-8 bytes of message to the public half
// of recipient.
func (c *Codec) CreateStringForKeyPair(message string, recipient *KeyPair) ([]byte, error) {
	return c.Create([]byte(message), recipient.publicKey())
}

// Open recovers the message sealed in cipherText.
//
// Keys are validated first, secret key before public key, and reported as a
// *KeyLengthError. Every later failure is ErrDecryptionFailed.
func (c *Codec) Open(cipherText, recipientSecretKey, recipientPublicKey []byte) ([]byte, error) {
	if err := checkKeyLength("recipientSecretKey", recipientSecretKey, RecipientSecretKeyBytes); err != nil {
		return nil, err
	}
	if err := checkKeyLength("recipientPublicKey", recipientPublicKey, RecipientPublicKeyBytes); err != nil {
		return nil, err
	}

	if len(cipherText) < SealOverhead {
		return nil, ErrDecryptionFailed
	}

	out := make([]byte, len(cipherText)-SealOverhead)
	err := c.primitive.Open(out, cipherText,
		(*[RecipientPublicKeyBytes]byte)(recipientPublicKey),
		(*[RecipientSecretKeyBytes]byte)(recipientSecretKey))
	if err != nil {
		crypto.Wipe(out)
		return nil, ErrDecryptionFailed
	}

	return out, nil
}

// OpenHex is Open for a hex-encoded sealed box. Invalid hex is reported as
// ErrDecryptionFailed.
func (c *Codec) OpenHex(cipherTextHex string, recipientSecretKey, recipientPublicKey []byte) ([]byte, error) {
	if err := checkKeyLength("recipientSecretKey", recipientSecretKey, RecipientSecretKeyBytes); err != nil {
		return nil, err
	}
	if err := checkKeyLength("recipientPublicKey", recipientPublicKey, RecipientPublicKeyBytes); err != nil {
		return nil, err
	}

	cipherText, err := hex.DecodeString(cipherTextHex)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return c.Open(cipherText, recipientSecretKey, recipientPublicKey)
}

// OpenWithKeyPair is Open using both halves of recipient.
func (c *Codec) OpenWithKeyPair(cipherText []byte, recipient *KeyPair) ([]byte, error) {
	return c.Open(cipherText, recipient.secretKey(), recipient.publicKey())
}

// OpenHexWithKeyPair is OpenHex using both halves of recipient.
func (c *Codec) OpenHexWithKeyPair(cipherTextHex string, recipient *KeyPair) ([]byte, error) {
	return c.OpenHex(cipherTextHex, recipient.secretKey(), recipient.publicKey())
}
