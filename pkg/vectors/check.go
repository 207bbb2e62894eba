package vectors

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mahdiidarabi/ed25519ref/pkg/ed25519ref"
)

var (
	// ErrPublicKeyMismatch means the derived public key differs from the vector.
	ErrPublicKeyMismatch = errors.New("public key mismatch")

	// ErrSignatureMismatch means the produced signature differs from the vector.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrCrossCheck means filippo.io/edwards25519 disagrees with ed25519ref.
	ErrCrossCheck = errors.New("reference library disagrees")
)

// Check exercises PublicKey, Sign and Verify on v and compares every output
// byte for byte. With crossCheck the public key and signature are also
// validated by filippo.io/edwards25519.
func Check(v *Vector, crossCheck bool) error {
	pub, err := ed25519ref.PublicKey(v.Seed)
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}
	if !bytes.Equal(pub, v.PublicKey) {
		return fmt.Errorf("%w: got %x, want %x", ErrPublicKeyMismatch, pub, v.PublicKey)
	}

	sig, err := ed25519ref.Sign(v.Message, v.Seed, pub)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	if !bytes.Equal(sig, v.Signature) {
		return fmt.Errorf("%w: got %x, want %x", ErrSignatureMismatch, sig, v.Signature)
	}

	if err := ed25519ref.Verify(sig, v.Message, pub); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if crossCheck {
		ok, err := ed25519ref.CrossCheckPublicKey(v.Seed, pub)
		if err != nil {
			return fmt.Errorf("cross-check public key: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: public key %x", ErrCrossCheck, pub)
		}
		ok, err = ed25519ref.CrossCheckSignature(sig, v.Message, pub)
		if err != nil {
			return fmt.Errorf("cross-check signature: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: signature %x", ErrCrossCheck, sig)
		}
	}
	return nil
}
