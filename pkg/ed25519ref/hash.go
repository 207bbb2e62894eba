package ed25519ref

import (
	"crypto/sha512"
	"math/big"
)

// H returns the SHA-512 digest of m.
func H(m []byte) []byte {
	h := sha512.Sum512(m)
	return h[:]
}

// Hint interprets H(m) as an unreduced 512-bit little-endian integer.
func Hint(m []byte) *big.Int {
	return fromLittleEndian(H(m))
}

// challenge computes Hint(R || A || M), the value binding the commitment, the
// public key and the message.
func challenge(encodedR, publicKey, message []byte) *big.Int {
	data := make([]byte, 0, len(encodedR)+len(publicKey)+len(message))
	data = append(data, encodedR...)
	data = append(data, publicKey...)
	data = append(data, message...)
	return Hint(data)
}
