package sealedbox

import (
	"crypto/subtle"

	"github.com/vaultsandbox/sealedbox/internal/crypto"
)

// KeyPair is a recipient's Curve25519 key pair. The codec only reads it.
type KeyPair struct {
	// PublicKey is the raw 32-byte public key.
	PublicKey []byte
	// SecretKey is the raw 32-byte secret key.
	SecretKey []byte
}

// NewKeyPair creates a key pair from raw bytes, checking both sizes.
func NewKeyPair(publicKey, secretKey []byte) (*KeyPair, error) {
	if err := checkKeyLength("publicKey", publicKey, RecipientPublicKeyBytes); err != nil {
		return nil, err
	}
	if err := checkKeyLength("secretKey", secretKey, RecipientSecretKeyBytes); err != nil {
		return nil, err
	}

	return &KeyPair{
		PublicKey: publicKey,
		SecretKey: secretKey,
	}, nil
}

// ValidateKeyPair reports whether keypair has correctly sized keys and its
// public key belongs to its secret key.
func ValidateKeyPair(keypair *KeyPair) bool {
	if keypair == nil {
		return false
	}

	if len(keypair.PublicKey) != RecipientPublicKeyBytes {
		return false
	}

	if len(keypair.SecretKey) != RecipientSecretKeyBytes {
		return false
	}

	derived := crypto.PublicKeyFromSecret((*[RecipientSecretKeyBytes]byte)(keypair.SecretKey))

	return subtle.ConstantTimeCompare(derived[:], keypair.PublicKey) == 1
}

func (k *KeyPair) publicKey() []byte {
	if k == nil {
		return nil
	}
	return k.PublicKey
}

func (k *KeyPair) secretKey() []byte {
	if k == nil {
		return nil
	}
	return k.SecretKey
}
