package ed25519ref

import (
	"fmt"
	"math/big"
)

const (
	// b is the bit length of encoded integers and points.
	b = 256

	// SeedSize is the size of the secret seed.
	SeedSize = b / 8
	// PublicKeySize is the size of a compressed public key.
	PublicKeySize = b / 8
	// SignatureSize is the size of encode(R) || encode(S).
	SignatureSize = b / 4
)

// bit returns bit i of h, least significant bit first within byte i/8.
func bit(h []byte, i int) uint {
	return uint(h[i/8]>>(i%8)) & 1
}

// toLittleEndian writes the low 32 bytes of y, least significant byte first.
func toLittleEndian(y *big.Int) []byte {
	out := make([]byte, b/8)
	be := y.Bytes()
	for i := 0; i < len(be) && i < len(out); i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}

// fromLittleEndian interprets s as an unsigned little-endian integer.
func fromLittleEndian(s []byte) *big.Int {
	be := make([]byte, len(s))
	for i := range s {
		be[len(s)-1-i] = s[i]
	}
	return new(big.Int).SetBytes(be)
}

// encodeInt packs a 256-bit non-negative integer into 32 little-endian bytes.
// Values outside [0, 2^256) fail the round-trip check.
func encodeInt(y *big.Int) ([]byte, error) {
	out := toLittleEndian(y)
	if selfCheck {
		if got := decodeInt(out); got.Cmp(y) != 0 {
			return nil, fmt.Errorf("%w: encodeInt(%s) decodes to %s", ErrInternalInvariant, y.Text(16), got.Text(16))
		}
	}
	return out, nil
}

// decodeInt reads the first 32 bytes of s as sum(bit(s, i) * 2^i).
func decodeInt(s []byte) *big.Int {
	return fromLittleEndian(s[:b/8])
}

// encodePoint stores y in the low 255 bits and the parity of x in the top bit.
func encodePoint(p Point) ([]byte, error) {
	out := toLittleEndian(p.Y)
	out[b/8-1] &= 0x7f
	out[b/8-1] |= byte(p.X.Bit(0)) << 7
	if selfCheck {
		got, err := decodePoint(out)
		if err != nil {
			return nil, fmt.Errorf("%w: encodePoint(%s): %v", ErrInternalInvariant, p, err)
		}
		if !got.Equal(p) {
			return nil, fmt.Errorf("%w: encodePoint(%s) decodes to %s", ErrInternalInvariant, p, got)
		}
	}
	return out, nil
}

// decodePoint inverts encodePoint. It rejects encodings whose y is not
// reduced, whose y has no matching x, and the x = 0 encoding with the sign bit
// set, since none of them round-trip.
func decodePoint(s []byte) (Point, error) {
	if len(s) != b/8 {
		return Point{}, fmt.Errorf("%w: point encoding is %d bytes, want %d", ErrInvalidLength, len(s), b/8)
	}
	raw := make([]byte, b/8)
	copy(raw, s)
	sign := bit(raw, b-1)
	raw[b/8-1] &= 0x7f

	y := fromLittleEndian(raw)
	if y.Cmp(q) >= 0 {
		return Point{}, fmt.Errorf("%w: y is not reduced mod q", ErrNotOnCurve)
	}
	x, ok := xrecover(y)
	if !ok {
		return Point{}, fmt.Errorf("%w: no x for y = %s", ErrNotOnCurve, y.Text(16))
	}
	if x.Bit(0) != sign {
		if x.Sign() == 0 {
			return Point{}, fmt.Errorf("%w: sign bit set for x = 0", ErrNotOnCurve)
		}
		x = new(big.Int).Sub(q, x)
	}
	p := Point{X: x, Y: y}
	if !isOnCurve(p) {
		return Point{}, fmt.Errorf("%w: no x for y = %s", ErrNotOnCurve, y.Text(16))
	}
	return p, nil
}

// EncodePoint returns the 32-byte compressed encoding of p.
func EncodePoint(p Point) ([]byte, error) { return encodePoint(p) }

// DecodePoint parses a 32-byte compressed point.
func DecodePoint(s []byte) (Point, error) { return decodePoint(s) }

// EncodeInt returns the 32-byte little-endian encoding of y.
func EncodeInt(y *big.Int) ([]byte, error) { return encodeInt(y) }

// DecodeInt parses a 32-byte little-endian integer. It panics if s is shorter
// than 32 bytes.
func DecodeInt(s []byte) *big.Int { return decodeInt(s) }
