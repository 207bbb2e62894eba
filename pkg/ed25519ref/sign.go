package ed25519ref

import (
	"fmt"
	"math/big"
)

// Sign produces a deterministic Ed25519 signature of message.
//
// The nonce is r = Hint(H(seed)[32:64] || message); no randomness is read.
//
// Args:
//   - message: Bytes to sign (any length)
//   - seed: 32-byte secret seed
//   - publicKey: 32-byte public key derived from seed
//
// Returns:
//   - 64-byte signature encode(R) || encode(S)
//   - ErrInvalidLength for wrongly sized inputs, ErrInternalInvariant if an encoder self-check fails
func Sign(message, seed, publicKey []byte) ([]byte, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	if len(publicKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidLength, len(publicKey), PublicKeySize)
	}

	h := H(seed)
	a := clampedScalar(h)

	prefix := make([]byte, 0, b/8+len(message))
	prefix = append(prefix, h[b/8:b/4]...)
	prefix = append(prefix, message...)
	r := Hint(prefix)

	encodedR, err := encodePoint(scalarMult(basePoint, r))
	if err != nil {
		return nil, err
	}

	k := challenge(encodedR, publicKey, message)

	// S = (r + k*a) mod l
	s := new(big.Int).Mul(k, a)
	s = pmod(s.Add(s, r), l)

	encodedS, err := encodeInt(s)
	if err != nil {
		return nil, err
	}

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, encodedR...)
	sig = append(sig, encodedS...)
	return sig, nil
}
