package sealedbox

import "sync"

// defaultCodec builds the process-wide codec on first use. Concurrent first
// callers block until the single build finishes and all see its result.
var defaultCodec = sync.OnceValues(func() (*Codec, error) {
	return New()
})

// Init builds and self-tests the default codec used by the package-level
// functions. It is called implicitly on first use; calling it early surfaces
// an unusable primitive at startup. Safe to call any number of times from
// any goroutine.
func Init() error {
	_, err := defaultCodec()
	return err
}

// Create seals message to recipientPublicKey with the default codec.
func Create(message, recipientPublicKey []byte) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.Create(message, recipientPublicKey)
}

// CreateString seals the UTF-8 bytes of message with the default codec.
func CreateString(message string, recipientPublicKey []byte) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.CreateString(message, recipientPublicKey)
}

// CreateForKeyPair seals message to the public half of recipient with the
// default codec.
func CreateForKeyPair(message []byte, recipient *KeyPair) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.CreateForKeyPair(message, recipient)
}

// CreateStringForKeyPair seals the UTF-8 bytes of message to the public half
// of recipient with the default codec.
func CreateStringForKeyPair(message string, recipient *KeyPair) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.CreateStringForKeyPair(message, recipient)
}

// Open recovers a sealed message with the default codec.
func Open(cipherText, recipientSecretKey, recipientPublicKey []byte) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.Open(cipherText, recipientSecretKey, recipientPublicKey)
}

// OpenHex recovers a hex-encoded sealed message with the default codec.
func OpenHex(cipherTextHex string, recipientSecretKey, recipientPublicKey []byte) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.OpenHex(cipherTextHex, recipientSecretKey, recipientPublicKey)
}

// OpenWithKeyPair recovers a sealed message for recipient with the default
// codec.
func OpenWithKeyPair(cipherText []byte, recipient *KeyPair) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.OpenWithKeyPair(cipherText, recipient)
}

// OpenHexWithKeyPair recovers a hex-encoded sealed message for recipient
// with the default codec.
func OpenHexWithKeyPair(cipherTextHex string, recipient *KeyPair) ([]byte, error) {
	c, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return c.OpenHexWithKeyPair(cipherTextHex, recipient)
}
