// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// All group operations are performed using Jacobian coordinates.  For a given
// (x, y) position on the curve, the Jacobian coordinates are (x1, y1, z1)
// where x = x1/z1^2 and y = y1/z1^3. The greatest speedups come when the
// whole calculation can be performed within the transform (as in
// ScalarMultJacobian). But even for Add and Double, it's faster to apply and
// reverse the transform than to operate in affine coordinates.
//
// Unlike the rest of the corpus this package draws from, the curve's `A`
// coefficient is not assumed to be -3: secp256k1 uses A = 0, so the doubling
// and addition formulas below are the generic short-Weierstrass ones rather
// than the A=-3 specializations used by, e.g., crypto/elliptic's P-256 path.
//
// Following the source convention this package is modeled on, both affine
// and Jacobian points use Y = 0 as the point-at-infinity sentinel rather than
// a separate tagged "infinity" case.

import "math/big"

// JacobianPoint is a point on a Curve expressed in Jacobian projective
// coordinates: the affine point it represents is (X/Z², Y/Z³).
type JacobianPoint struct {
	X *big.Int
	Y *big.Int
	Z *big.Int
}

// Inv computes the modular inverse of x modulo n using the extended
// Euclidean algorithm. By convention, and per this package's documented
// precondition, Inv(0, n) returns 0; callers must never rely on that value
// as a genuine inverse.
func Inv(x, n *big.Int) *big.Int {
	if x.Sign() == 0 {
		return big.NewInt(0)
	}

	lm := big.NewInt(1)
	hm := big.NewInt(0)
	low := Modulo(x, n)
	high := new(big.Int).Set(n)

	quot := new(big.Int)
	rem := new(big.Int)

	for low.Sign() > 0 {
		quot.Div(high, low)
		rem.Mod(high, low)

		nm := new(big.Int).Mul(quot, lm)
		nm.Sub(hm, nm)

		nnew := new(big.Int).Set(rem)

		high, low = low, nnew
		hm, lm = lm, nm
	}

	return Modulo(hm, n)
}

// ToJacobian converts an affine point to Jacobian coordinates: (x, y, 1).
func ToJacobian(x, y *big.Int) *JacobianPoint {
	return &JacobianPoint{X: new(big.Int).Set(x), Y: new(big.Int).Set(y), Z: big.NewInt(1)}
}

// ToAffine converts p back to affine coordinates modulo the curve's P. The
// point at infinity (Z == 0) maps to (0, 0).
func (p *JacobianPoint) ToAffine(curve *Curve) (x, y *big.Int) {
	if p.Z.Sign() == 0 {
		return big.NewInt(0), big.NewInt(0)
	}

	zInv := Inv(p.Z, curve.P)
	zInv2 := Modulo(new(big.Int).Mul(zInv, zInv), curve.P)
	zInv3 := Modulo(new(big.Int).Mul(zInv2, zInv), curve.P)

	x = Modulo(new(big.Int).Mul(p.X, zInv2), curve.P)
	y = Modulo(new(big.Int).Mul(p.Y, zInv3), curve.P)
	return x, y
}

// identityJacobian returns the Jacobian identity element (0, 0, 0).
func identityJacobian() *JacobianPoint {
	return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(0)}
}

// DoubleJacobian returns 2*p on curve, in Jacobian coordinates.
func DoubleJacobian(p *JacobianPoint, curve *Curve) *JacobianPoint {
	if p.Y.Sign() == 0 {
		return identityJacobian()
	}

	P := curve.P
	mulMod := func(a, b *big.Int) *big.Int { return Modulo(new(big.Int).Mul(a, b), P) }
	addMod := func(a, b *big.Int) *big.Int { return Modulo(new(big.Int).Add(a, b), P) }
	subMod := func(a, b *big.Int) *big.Int { return Modulo(new(big.Int).Sub(a, b), P) }

	xx := mulMod(p.X, p.X)
	yy := mulMod(p.Y, p.Y)
	yyyy := mulMod(yy, yy)
	zz := mulMod(p.Z, p.Z)

	s := subMod(mulMod(addMod(p.X, yy), addMod(p.X, yy)), addMod(xx, yyyy))
	s = addMod(s, s)

	m := addMod(addMod(xx, xx), xx)
	zzzz := mulMod(zz, zz)
	m = addMod(m, mulMod(curve.A, zzzz))

	t := subMod(mulMod(m, m), addMod(s, s))
	x3 := t
	eightYYYY := addMod(addMod(yyyy, yyyy), addMod(yyyy, yyyy))
	eightYYYY = addMod(eightYYYY, eightYYYY)
	y3 := subMod(mulMod(m, subMod(s, t)), eightYYYY)
	z3 := subMod(subMod(mulMod(addMod(p.Y, p.Z), addMod(p.Y, p.Z)), yy), zz)

	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}

// AddJacobian returns p+q on curve, in Jacobian coordinates. If one operand
// is the identity (Y == 0, per the source convention), the other is returned
// unchanged. Equal-X, opposite-Y operands yield the identity; equal-X,
// equal-Y operands are delegated to DoubleJacobian.
func AddJacobian(p, q *JacobianPoint, curve *Curve) *JacobianPoint {
	if p.Y.Sign() == 0 {
		return q
	}
	if q.Y.Sign() == 0 {
		return p
	}

	P := curve.P
	mulMod := func(a, b *big.Int) *big.Int { return Modulo(new(big.Int).Mul(a, b), P) }
	addMod := func(a, b *big.Int) *big.Int { return Modulo(new(big.Int).Add(a, b), P) }
	subMod := func(a, b *big.Int) *big.Int { return Modulo(new(big.Int).Sub(a, b), P) }

	z1z1 := mulMod(p.Z, p.Z)
	z2z2 := mulMod(q.Z, q.Z)
	u1 := mulMod(p.X, z2z2)
	u2 := mulMod(q.X, z1z1)
	s1 := mulMod(mulMod(p.Y, q.Z), z2z2)
	s2 := mulMod(mulMod(q.Y, p.Z), z1z1)

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) != 0 {
			return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(1)}
		}
		return DoubleJacobian(p, curve)
	}

	h := subMod(u2, u1)
	i := mulMod(addMod(h, h), addMod(h, h))
	j := mulMod(h, i)
	r := addMod(subMod(s2, s1), subMod(s2, s1))
	v := mulMod(u1, i)

	x3 := subMod(subMod(mulMod(r, r), j), addMod(v, v))
	y3 := subMod(mulMod(r, subMod(v, x3)), addMod(mulMod(s1, j), mulMod(s1, j)))
	z3 := mulMod(subMod(subMod(mulMod(addMod(p.Z, q.Z), addMod(p.Z, q.Z)), z1z1), z2z2), h)

	return &JacobianPoint{X: x3, Y: y3, Z: z3}
}

// ScalarMultJacobian returns k*p on curve using double-and-add recursion, as
// specified: k is first normalized into [0, N), k == 0 or an identity base
// point yields the identity, and even/odd k recurse through doubling.
func ScalarMultJacobian(p *JacobianPoint, k *big.Int, curve *Curve) *JacobianPoint {
	if k.Sign() == 0 || p.Y.Sign() == 0 {
		return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(1)}
	}
	if k.Cmp(big.NewInt(1)) == 0 {
		return p
	}
	if k.Sign() < 0 || k.Cmp(curve.N) >= 0 {
		return ScalarMultJacobian(p, Modulo(k, curve.N), curve)
	}

	half := new(big.Int).Rsh(k, 1)
	doubled := DoubleJacobian(ScalarMultJacobian(p, half, curve), curve)
	if k.Bit(0) == 0 {
		return doubled
	}
	return AddJacobian(doubled, p, curve)
}

// Multiply returns k*(x, y) on curve in affine coordinates.
func Multiply(x, y *big.Int, k *big.Int, curve *Curve) (rx, ry *big.Int) {
	result := ScalarMultJacobian(ToJacobian(x, y), k, curve)
	return result.ToAffine(curve)
}

// AddAffine returns (x1, y1) + (x2, y2) on curve in affine coordinates.
func AddAffine(x1, y1, x2, y2 *big.Int, curve *Curve) (rx, ry *big.Int) {
	result := AddJacobian(ToJacobian(x1, y1), ToJacobian(x2, y2), curve)
	return result.ToAffine(curve)
}
