package sealedbox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vaultsandbox/sealedbox/internal/crypto"
	"github.com/vaultsandbox/sealedbox/internal/testdata"
)

func TestConstants(t *testing.T) {
	if RecipientPublicKeyBytes != 32 {
		t.Errorf("RecipientPublicKeyBytes = %d, want 32", RecipientPublicKeyBytes)
	}
	if RecipientSecretKeyBytes != 32 {
		t.Errorf("RecipientSecretKeyBytes = %d, want 32", RecipientSecretKeyBytes)
	}
	if MACBytes != 16 {
		t.Errorf("MACBytes = %d, want 16", MACBytes)
	}
	if SealOverhead != 48 {
		t.Errorf("SealOverhead = %d, want 48", SealOverhead)
	}
}

func TestWithPrimitive(t *testing.T) {
	cfg := &codecConfig{}
	p := NewX25519Primitive(nil)
	WithPrimitive(p)(cfg)
	if cfg.primitive != p {
		t.Error("primitive was not set")
	}
}

func TestWithRandReader(t *testing.T) {
	cfg := &codecConfig{}
	r := bytes.NewReader(nil)
	WithRandReader(r)(cfg)
	if cfg.rand != r {
		t.Error("rand was not set")
	}
}

func TestWithSelfTest(t *testing.T) {
	cfg := &codecConfig{selfTest: true}
	WithSelfTest(false)(cfg)
	if cfg.selfTest {
		t.Error("selfTest was not disabled")
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := c.primitive.(*crypto.NaClPrimitive); !ok {
		t.Errorf("default primitive = %T, want *crypto.NaClPrimitive", c.primitive)
	}
}

func TestNew_RandReaderMakesSealingReproducible(t *testing.T) {
	drbg := testdata.New("codec rand reader")
	seed := drbg.Data(32)
	message := []byte("reproducible")

	// The self-test consumes randomness, so it is disabled to keep both
	// codecs at the same position in the stream.
	nacl, err := New(WithRandReader(bytes.NewReader(seed)), WithSelfTest(false))
	if err != nil {
		t.Fatal(err)
	}
	x, err := New(WithPrimitive(NewX25519Primitive(bytes.NewReader(seed))), WithSelfTest(false))
	if err != nil {
		t.Fatal(err)
	}

	first, err := nacl.Create(message, bobKeyPair.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	second, err := x.Create(message, bobKeyPair.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("same random stream produced different sealed boxes")
	}

	// The stream is now exhausted.
	_, err = nacl.Create(message, bobKeyPair.PublicKey)
	if !errors.Is(err, ErrEncryptionFailed) {
		t.Errorf("expected ErrEncryptionFailed once randomness runs out, got %v", err)
	}
}

func TestNew_SelfTestFailure(t *testing.T) {
	broken := failingPrimitive{err: errors.New("not wired")}

	_, err := New(WithPrimitive(broken))
	if !errors.Is(err, ErrPrimitiveUnavailable) {
		t.Errorf("expected ErrPrimitiveUnavailable, got %v", err)
	}

	if _, err := New(WithPrimitive(broken), WithSelfTest(false)); err != nil {
		t.Errorf("New() without self-test error = %v", err)
	}
}
