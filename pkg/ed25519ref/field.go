package ed25519ref

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// q is the field prime 2^255 - 19.
var q = func() *big.Int {
	p := new(big.Int).Lsh(one, 255)
	return p.Sub(p, big.NewInt(19))
}()

// l is the prime order of the subgroup generated by the base point.
var l = func() *big.Int {
	n, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("ed25519ref: bad group order literal")
	}
	return n.Add(n, new(big.Int).Lsh(one, 252))
}()

// FieldPrime returns a copy of q = 2^255 - 19.
func FieldPrime() *big.Int { return new(big.Int).Set(q) }

// GroupOrder returns a copy of the base point order l.
func GroupOrder() *big.Int { return new(big.Int).Set(l) }

// pmod returns n mod m in [0, m). big.Int.Mod is already Euclidean, the extra
// branch keeps the result correct should a negative modulus ever be passed.
func pmod(n, m *big.Int) *big.Int {
	r := new(big.Int).Mod(n, m)
	if r.Sign() < 0 {
		r.Add(r, new(big.Int).Abs(m))
	}
	return r
}

// expmod computes base^exp mod m by left-to-right square-and-multiply.
// exp must be non-negative; exp = 0 yields 1.
func expmod(base, exp, m *big.Int) *big.Int {
	if exp.Sign() < 0 {
		panic("ed25519ref: negative exponent")
	}
	b := pmod(base, m)
	t := big.NewInt(1)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		t = pmod(t.Mul(t, t), m)
		if exp.Bit(i) == 1 {
			t = pmod(t.Mul(t, b), m)
		}
	}
	return pmod(t, m)
}

// inv returns x^-1 mod q via Fermat's little theorem. inv(0) is 0; callers on
// decode paths check for a zero denominator before relying on the result.
func inv(x *big.Int) *big.Int {
	return expmod(x, new(big.Int).Sub(q, two), q)
}
