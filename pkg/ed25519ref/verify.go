package ed25519ref

import "fmt"

// Verify checks signature over message against publicKey.
//
// Lengths are checked before any decoding. A nil result means the signature
// is valid; otherwise the error wraps exactly one of ErrInvalidLength,
// ErrNotOnCurve or ErrVerificationFailed.
func Verify(signature, message, publicKey []byte) error {
	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: signature is %d bytes, want %d", ErrInvalidLength, len(signature), SignatureSize)
	}
	if len(publicKey) != PublicKeySize {
		return fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidLength, len(publicKey), PublicKeySize)
	}

	R, err := decodePoint(signature[:b/8])
	if err != nil {
		return fmt.Errorf("decode R: %w", err)
	}
	A, err := decodePoint(publicKey)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	S := decodeInt(signature[b/8 : b/4])

	encodedR, err := encodePoint(R)
	if err != nil {
		return err
	}
	k := challenge(encodedR, publicKey, message)

	// S*B == R + k*A
	lhs := scalarMult(basePoint, S)
	rhs := edwards(R, scalarMult(A, k))
	if !lhs.Equal(rhs) {
		return ErrVerificationFailed
	}
	return nil
}

// Valid reports whether Verify accepts the signature.
func Valid(signature, message, publicKey []byte) bool {
	return Verify(signature, message, publicKey) == nil
}
