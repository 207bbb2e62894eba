package ed25519ref

import (
	"bytes"
	"crypto/sha512"
	"errors"
	"fmt"
	"math/big"

	"filippo.io/edwards25519"
)

// refScalar converts a non-negative integer into an edwards25519 scalar,
// reducing it mod l first.
func refScalar(e *big.Int) (*edwards25519.Scalar, error) {
	if e.Sign() < 0 {
		return nil, errors.New("scalar must be non-negative")
	}
	le := toLittleEndian(pmod(e, l))
	return edwards25519.NewScalar().SetCanonicalBytes(le)
}

// CrossCheckScalarBaseMult recomputes e*B with filippo.io/edwards25519 and
// reports whether both implementations produce the same encoding.
func CrossCheckScalarBaseMult(e *big.Int) (bool, error) {
	s, err := refScalar(e)
	if err != nil {
		return false, err
	}
	want := edwards25519.NewIdentityPoint().ScalarBaseMult(s).Bytes()

	got, err := encodePoint(scalarMult(basePoint, e))
	if err != nil {
		return false, err
	}
	return bytes.Equal(got, want), nil
}

// CrossCheckPublicKey verifies that publicKey is what filippo.io/edwards25519
// derives from seed.
//
// In Ed25519 the public key is A = a*B where a is the clamped lower half of
// SHA-512(seed). The reference library clamps and reduces a mod l, which
// yields the same point because B has order l.
//
// Args:
//   - seed: 32-byte seed
//   - publicKey: Expected public key (32 bytes, compressed format)
//
// Returns:
//   - True if the reference library derives the same public key
//   - Error if the inputs are malformed
func CrossCheckPublicKey(seed, publicKey []byte) (bool, error) {
	if err := checkSeed(seed); err != nil {
		return false, err
	}
	if len(publicKey) != PublicKeySize {
		return false, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidLength, len(publicKey), PublicKeySize)
	}

	h := sha512.Sum512(seed)
	a, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return false, err
	}
	computed := edwards25519.NewIdentityPoint().ScalarBaseMult(a)

	expected, err := edwards25519.NewIdentityPoint().SetBytes(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}
	return computed.Equal(expected) == 1, nil
}

// CrossCheckSignature verifies signature with filippo.io/edwards25519 using
// the cofactorless equation R = S*B - k*A. Unlike Verify it requires S < l,
// as RFC 8032 does.
func CrossCheckSignature(signature, message, publicKey []byte) (bool, error) {
	if len(signature) != SignatureSize {
		return false, fmt.Errorf("%w: signature is %d bytes, want %d", ErrInvalidLength, len(signature), SignatureSize)
	}
	if len(publicKey) != PublicKeySize {
		return false, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidLength, len(publicKey), PublicKeySize)
	}

	A, err := edwards25519.NewIdentityPoint().SetBytes(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}
	minusA := edwards25519.NewIdentityPoint().Negate(A)

	kh := sha512.New()
	kh.Write(signature[:32])
	kh.Write(publicKey)
	kh.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(kh.Sum(nil))
	if err != nil {
		return false, err
	}

	S, err := edwards25519.NewScalar().SetCanonicalBytes(signature[32:])
	if err != nil {
		return false, nil
	}

	R := edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(k, minusA, S)
	return bytes.Equal(R.Bytes(), signature[:32]), nil
}
