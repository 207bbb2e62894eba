package ed25519ref

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// KeyPair bundles a seed with the public key derived from it.
type KeyPair struct {
	Seed      []byte
	PublicKey []byte
}

// clampedScalar derives the secret scalar from h = H(seed):
// a = 2^254 + sum(2^i * bit(h, i)) for i in [3, 253]. That clears bits 0-2
// and 255 and sets bit 254.
func clampedScalar(h []byte) *big.Int {
	a := new(big.Int).Lsh(one, b-2)
	for i := 3; i < b-2; i++ {
		if bit(h, i) == 1 {
			a.SetBit(a, i, 1)
		}
	}
	return a
}

func checkSeed(seed []byte) error {
	if len(seed) != SeedSize {
		return fmt.Errorf("%w: seed is %d bytes, want %d", ErrInvalidLength, len(seed), SeedSize)
	}
	return nil
}

// SecretScalar returns the clamped scalar a that a seed signs with.
func SecretScalar(seed []byte) (*big.Int, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	return clampedScalar(H(seed)), nil
}

// PublicKey derives the compressed public key encode(a*B) from a 32-byte seed.
//
// Args:
//   - seed: 32 secret bytes
//
// Returns:
//   - 32-byte public key, or ErrInvalidLength for a wrongly sized seed
func PublicKey(seed []byte) ([]byte, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	a := clampedScalar(H(seed))
	return encodePoint(scalarMult(basePoint, a))
}

// NewKeyPair derives the public key for seed and returns both.
func NewKeyPair(seed []byte) (*KeyPair, error) {
	pub, err := PublicKey(seed)
	if err != nil {
		return nil, err
	}
	s := make([]byte, len(seed))
	copy(s, seed)
	return &KeyPair{Seed: s, PublicKey: pub}, nil
}

// Sign signs message with the pair's seed.
func (k *KeyPair) Sign(message []byte) ([]byte, error) {
	return Sign(message, k.Seed, k.PublicKey)
}

// Verify checks signature against the pair's public key.
func (k *KeyPair) Verify(signature, message []byte) error {
	return Verify(signature, message, k.PublicKey)
}

// String returns the public key in hex. The seed is never printed.
func (k *KeyPair) String() string {
	return hex.EncodeToString(k.PublicKey)
}
