package ed25519ref

import (
	"fmt"
	"math/big"
)

// Point is an affine point (X, Y) on the twisted Edwards curve
// -x^2 + y^2 = 1 + d*x^2*y^2 over GF(q). Both coordinates are kept reduced.
// Points are immutable: every operation returns a new Point.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Curve constants, computed once and never mutated.
var (
	d = pmod(new(big.Int).Mul(big.NewInt(-121665), inv(big.NewInt(121666))), q)

	// sqrtM1 is 2^((q-1)/4), a square root of -1 mod q.
	sqrtM1 = expmod(two, new(big.Int).Rsh(new(big.Int).Sub(q, one), 2), q)

	basePoint = func() Point {
		by := pmod(new(big.Int).Mul(big.NewInt(4), inv(big.NewInt(5))), q)
		bx, ok := xrecover(by)
		if !ok {
			panic("ed25519ref: base point recovery failed")
		}
		return Point{X: bx, Y: by}
	}()
)

// CurveD returns a copy of the curve parameter d.
func CurveD() *big.Int { return new(big.Int).Set(d) }

// SqrtMinusOne returns a copy of I = 2^((q-1)/4) mod q.
func SqrtMinusOne() *big.Int { return new(big.Int).Set(sqrtM1) }

// BasePoint returns the generator B.
func BasePoint() Point { return basePoint.clone() }

// Identity returns the neutral element (0, 1).
func Identity() Point { return Point{X: big.NewInt(0), Y: big.NewInt(1)} }

func (p Point) clone() Point {
	return Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}

// Equal reports whether both coordinates match.
func (p Point) Equal(o Point) bool {
	return p.X.Cmp(o.X) == 0 && p.Y.Cmp(o.Y) == 0
}

// String renders the coordinates in hex.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.Text(16), p.Y.Text(16))
}

// xrecover returns the even square root x of (y^2-1)/(d*y^2+1). The result is
// only meaningful when y belongs to a curve point; callers must check with
// isOnCurve. ok is false when the denominator vanishes, in which case no x
// exists and inv(0) must not be trusted.
func xrecover(y *big.Int) (x *big.Int, ok bool) {
	yy := new(big.Int).Mul(y, y)
	den := pmod(new(big.Int).Add(new(big.Int).Mul(d, yy), one), q)
	if den.Sign() == 0 {
		return big.NewInt(0), false
	}
	xx := new(big.Int).Sub(yy, one)
	xx = pmod(xx.Mul(xx, inv(den)), q)

	exp := new(big.Int).Rsh(new(big.Int).Add(q, big.NewInt(3)), 3)
	x = expmod(xx, exp, q)
	if pmod(new(big.Int).Sub(new(big.Int).Mul(x, x), xx), q).Sign() != 0 {
		x = pmod(x.Mul(x, sqrtM1), q)
	}
	if x.Bit(0) == 1 {
		x = new(big.Int).Sub(q, x)
	}
	return x, true
}

// edwards adds two points with the unified addition law, which also covers
// doubling.
func edwards(p1, p2 Point) Point {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y

	dxy := new(big.Int).Mul(x1, x2)
	dxy.Mul(dxy, y1)
	dxy.Mul(dxy, y2)
	dxy = pmod(dxy.Mul(dxy, d), q)

	xn := new(big.Int).Add(new(big.Int).Mul(x1, y2), new(big.Int).Mul(x2, y1))
	xd := new(big.Int).Add(one, dxy)
	x3 := pmod(xn.Mul(xn, inv(xd)), q)

	yn := new(big.Int).Add(new(big.Int).Mul(y1, y2), new(big.Int).Mul(x1, x2))
	yd := new(big.Int).Sub(one, dxy)
	y3 := pmod(yn.Mul(yn, inv(yd)), q)

	return Point{X: x3, Y: y3}
}

// scalarMult computes e*P with a left-to-right double-and-add loop. e may be
// any non-negative integer, including unreduced 512-bit hash values.
func scalarMult(p Point, e *big.Int) Point {
	if e.Sign() < 0 {
		panic("ed25519ref: negative scalar")
	}
	acc := Identity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = edwards(acc, acc)
		if e.Bit(i) == 1 {
			acc = edwards(acc, p)
		}
	}
	return acc
}

// isOnCurve reports whether -x^2 + y^2 - 1 - d*x^2*y^2 = 0 mod q.
func isOnCurve(p Point) bool {
	xx := new(big.Int).Mul(p.X, p.X)
	yy := new(big.Int).Mul(p.Y, p.Y)
	dxxyy := new(big.Int).Mul(d, xx)
	dxxyy.Mul(dxxyy, yy)

	v := new(big.Int).Sub(yy, xx)
	v.Sub(v, one)
	v.Sub(v, dxxyy)
	return pmod(v, q).Sign() == 0
}

// Add returns P + Q.
func Add(p1, p2 Point) Point { return edwards(p1, p2) }

// ScalarMult returns e*P for a non-negative e. It panics on a negative e.
func ScalarMult(p Point, e *big.Int) Point { return scalarMult(p, e) }

// ScalarBaseMult returns e*B.
func ScalarBaseMult(e *big.Int) Point { return scalarMult(basePoint, e) }

// IsOnCurve reports whether p satisfies the curve equation.
func IsOnCurve(p Point) bool { return isOnCurve(p) }
