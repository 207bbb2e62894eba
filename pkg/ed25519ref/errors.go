package ed25519ref

import "errors"

var (
	// ErrInvalidLength is returned when a seed, public key or signature does
	// not have its mandated byte length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrNotOnCurve is returned when a 32-byte encoding does not decode to a
	// point on the curve.
	ErrNotOnCurve = errors.New("point is not on curve")

	// ErrInternalInvariant indicates an encode/decode self-check failed. It
	// points at an arithmetic bug, never at bad input.
	ErrInternalInvariant = errors.New("internal invariant violation")

	// ErrVerificationFailed is returned when decoding succeeded but the
	// signature equation does not hold.
	ErrVerificationFailed = errors.New("signature does not pass verification")
)
