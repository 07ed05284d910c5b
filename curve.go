// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// Curve holds the parameters of a short Weierstrass curve
// y² = x³ + Ax + B (mod P) together with its generator, subgroup order, and
// the naming/OID needed to serialize keys that reference it. A Curve is
// immutable once built by the registry below and is safe for concurrent use.
type Curve struct {
	Name string
	Oid  []int

	P *big.Int
	A *big.Int
	B *big.Int
	N *big.Int
	Gx *big.Int
	Gy *big.Int
}

// registry holds the built-in curves, keyed by the canonical name used by
// GetCurveByName.
var registry = make(map[string]*Curve)

// registerCurve adds a curve to the built-in registry. It is only called
// from this file's init-time curve construction.
func registerCurve(c *Curve) *Curve {
	registry[c.Name] = c
	return c
}

func mustInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecdsa: invalid curve constant " + s)
	}
	return n
}

// Secp256k1 is the registered secp256k1 curve record, as standardized
// in SEC 2 and used throughout Bitcoin-derived systems.
var Secp256k1 = registerCurve(&Curve{
	Name: "secp256k1",
	Oid:  []int{1, 3, 132, 0, 10},
	P:    mustInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
	A:    big.NewInt(0),
	B:    big.NewInt(7),
	N:    mustInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	Gx:   mustInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
	Gy:   mustInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
})

// Prime256v1 is the registered prime256v1 curve record, also known as
// NIST P-256 or secp256r1.
var Prime256v1 = registerCurve(&Curve{
	Name: "prime256v1",
	Oid:  []int{1, 2, 840, 10045, 3, 1, 7},
	P:    mustInt("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF"),
	A:    mustInt("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC"),
	B:    mustInt("5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B"),
	N:    mustInt("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551"),
	Gx:   mustInt("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296"),
	Gy:   mustInt("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5"),
})

// GetCurveByName returns the registered curve with the given canonical name,
// e.g. "secp256k1" or "prime256v1".
func GetCurveByName(name string) (*Curve, error) {
	c, ok := registry[name]
	if !ok {
		return nil, makeError(ErrUnknownCurveName, fmt.Sprintf("ecdsa: unknown curve: %s", name))
	}
	return c, nil
}

// GetCurveByOid returns the registered curve whose ASN.1 OID matches oid.
func GetCurveByOid(oid []int) (*Curve, error) {
	for _, c := range registry {
		if oidEqual(c.Oid, oid) {
			return c, nil
		}
	}
	return nil, makeError(ErrUnknownCurveOid, fmt.Sprintf("ecdsa: unknown curve oid: %v", oid))
}

func oidEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether (x, y) lies on the curve: 0 <= x, y < P and
// y² ≡ x³ + Ax + B (mod P).
func (c *Curve) Contains(x, y *big.Int) bool {
	if x.Sign() < 0 || x.Cmp(c.P) >= 0 || y.Sign() < 0 || y.Cmp(c.P) >= 0 {
		return false
	}

	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, c.P)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	ax := new(big.Int).Mul(c.A, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return lhs.Cmp(rhs) == 0
}

// ByteLength returns the field element byte length of the curve, i.e. the
// number of bytes needed to hold a value modulo N. For both secp256k1 and
// prime256v1 this is 32.
func (c *Curve) ByteLength() int {
	return (1 + len(c.N.Text(16))) / 2
}
