// Package ed25519ref is a big-integer reference implementation of Ed25519
// (EdDSA over Curve25519): deterministic key derivation, signing and
// verification.
//
// Every value is an arbitrary-precision integer and every group operation
// goes through the affine twisted-Edwards formulas with a Fermat inversion.
// That makes it slow and variable-time, but each step maps one-to-one onto
// the math, which is the point: the package is meant for checking other
// implementations, generating test vectors, and studying the scheme.
//
// WARNING: This package is NOT constant-time. Do not use it to protect real
// secrets; use crypto/ed25519 for that.
//
// Basic Usage:
//
//	seed := make([]byte, ed25519ref.SeedSize) // 32 secret bytes
//	pub, err := ed25519ref.PublicKey(seed)
//	sig, err := ed25519ref.Sign(message, seed, pub)
//	err = ed25519ref.Verify(sig, message, pub)
//
// Verify distinguishes malformed input from a signature that simply does not
// hold:
//
//	switch {
//	case errors.Is(err, ed25519ref.ErrInvalidLength):
//	case errors.Is(err, ed25519ref.ErrNotOnCurve):
//	case errors.Is(err, ed25519ref.ErrVerificationFailed):
//	}
//
// Curve and encoding summary:
//
// - Field prime q = 2^255 - 19, group order l = 2^252 + 27742317777372353535851937790883648493
// - Curve: -x^2 + y^2 = 1 + d*x^2*y^2 with d = -121665/121666 mod q
// - Points are 32 bytes: y little-endian in the low 255 bits, the parity of x in the top bit
// - Signatures are 64 bytes: encode(R) || S little-endian, S = r + H(R||A||M)*a mod l
//
// CrossCheckPublicKey and CrossCheckSignature recompute results with
// filippo.io/edwards25519 as an independent oracle.
package ed25519ref
