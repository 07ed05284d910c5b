// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

const publicPemLabel = "PUBLIC KEY"

// PublicKey is an ECDSA public key: a curve point together with the curve
// it is defined over.
type PublicKey struct {
	X     *big.Int
	Y     *big.Int
	Curve *Curve
}

// NewPublicKey builds a PublicKey from an already-computed point.
func NewPublicKey(x, y *big.Int, curve *Curve) *PublicKey {
	return &PublicKey{X: x, Y: y, Curve: curve}
}

// Validate checks the invariants spec requires of a deserialized public
// key: coordinates in range, the point on the curve, not the point at
// infinity, and N*Q equal to the point at infinity.
func (pub *PublicKey) Validate() error {
	if pub.X.Sign() < 0 || pub.X.Cmp(pub.Curve.P) >= 0 ||
		pub.Y.Sign() < 0 || pub.Y.Cmp(pub.Curve.P) >= 0 {
		return makeError(ErrPointOutOfRange, "ecdsa: public key: coordinate out of range")
	}
	if pub.Y.Sign() == 0 {
		return makeError(ErrPointAtInfinity, "ecdsa: public key: point at infinity")
	}
	if !pub.Curve.Contains(pub.X, pub.Y) {
		return makeError(ErrPointNotOnCurve, "ecdsa: public key: point not on curve")
	}
	_, ny := Multiply(pub.X, pub.Y, pub.Curve.N, pub.Curve)
	if ny.Sign() != 0 {
		return makeError(ErrPointWrongOrder, "ecdsa: public key: N*Q is not the point at infinity")
	}
	return nil
}

// uncompressedPoint returns 0x04 || X || Y, the uncompressed SEC1 point
// encoding, with X and Y each left-zero-padded to the curve's byte length.
func (pub *PublicKey) uncompressedPoint() []byte {
	l := pub.Curve.ByteLength()
	out := make([]byte, 1+2*l)
	out[0] = 0x04
	copy(out[1:1+l], fixedWidth(pub.X, l))
	copy(out[1+l:], fixedWidth(pub.Y, l))
	return out
}

// ToRawString returns X||Y, each fixed-width big-endian and padded to the
// curve's byte length, with no point marker. Unlike ToDer/ToPem, this
// encoding carries no curve identifier; the caller must already know which
// curve to pass to PublicKeyFromRawString.
func (pub *PublicKey) ToRawString() []byte {
	l := pub.Curve.ByteLength()
	out := make([]byte, 2*l)
	copy(out[:l], fixedWidth(pub.X, l))
	copy(out[l:], fixedWidth(pub.Y, l))
	return out
}

// PublicKeyFromRawString rebuilds a public key from the X||Y encoding
// produced by ToRawString, interpreted over curve.
func PublicKeyFromRawString(raw []byte, curve *Curve) (*PublicKey, error) {
	l := curve.ByteLength()
	if len(raw) != 2*l {
		return nil, makeError(ErrKeyWrongLength, fmt.Sprintf("ecdsa: public key: want %d raw bytes, got %d", 2*l, len(raw)))
	}
	x := new(big.Int).SetBytes(raw[:l])
	y := new(big.Int).SetBytes(raw[l:])
	return NewPublicKey(x, y, curve), nil
}

// ToDer serializes pub as a SubjectPublicKeyInfo:
//
//	SEQUENCE {
//	  SEQUENCE { OID id-ecPublicKey, OID curve.oid },
//	  BIT STRING { 0x00 0x04 || X || Y }
//	}
func (pub *PublicKey) ToDer() []byte {
	return encodeSequence(
		encodeSequence(encodeObjectID(oidEcPublicKey), encodeObjectID(pub.Curve.Oid)),
		encodeBitString(pub.uncompressedPoint()),
	)
}

// ToPem serializes pub as a PEM-framed SubjectPublicKeyInfo, labeled
// "PUBLIC KEY".
func (pub *PublicKey) ToPem() string {
	return encodePem(publicPemLabel, pub.ToDer())
}

// PublicKeyFromDer parses a SubjectPublicKeyInfo holding an uncompressed EC
// point, validating that the algorithm OID is id-ecPublicKey and that the
// point marker byte is 0x04.
func PublicKeyFromDer(der []byte) (*PublicKey, error) {
	content, consumed, err := decodeSequence(der)
	if err != nil {
		return nil, err
	}
	if consumed != len(der) {
		return nil, makeError(ErrDerTrailingData, "ecdsa: public key: trailing data after sequence")
	}

	algContent, n, err := decodeSequence(content)
	if err != nil {
		return nil, err
	}
	content = content[n:]

	algOid, n, err := decodeObjectID(algContent)
	if err != nil {
		return nil, err
	}
	if !oidEqual(algOid, oidEcPublicKey) {
		return nil, makeError(ErrUnknownCurveOid, "ecdsa: public key: unexpected algorithm oid")
	}
	curveOid, _, err := decodeObjectID(algContent[n:])
	if err != nil {
		return nil, err
	}
	curve, err := GetCurveByOid(curveOid)
	if err != nil {
		return nil, err
	}

	point, _, err := decodeBitString(content)
	if err != nil {
		return nil, err
	}
	l := curve.ByteLength()
	if len(point) != 1+2*l {
		return nil, makeError(ErrKeyWrongLength, fmt.Sprintf("ecdsa: public key: want %d point bytes, got %d", 1+2*l, len(point)))
	}
	if point[0] != 0x04 {
		return nil, makeError(ErrKeyUnexpectedMarker, fmt.Sprintf("ecdsa: public key: unexpected point marker %#x", point[0]))
	}

	x := new(big.Int).SetBytes(point[1 : 1+l])
	y := new(big.Int).SetBytes(point[1+l:])
	return NewPublicKey(x, y, curve), nil
}

// MustPublicKeyFromDer is like PublicKeyFromDer but panics instead of
// returning an error.
func MustPublicKeyFromDer(der []byte) *PublicKey {
	pub, err := PublicKeyFromDer(der)
	if err != nil {
		panic(err)
	}
	return pub
}

// PublicKeyFromPem parses a PEM-framed SubjectPublicKeyInfo, labeled
// "PUBLIC KEY".
func PublicKeyFromPem(pemText string) (*PublicKey, error) {
	der, err := decodePem(publicPemLabel, pemText)
	if err != nil {
		return nil, err
	}
	return PublicKeyFromDer(der)
}

// MustPublicKeyFromPem is like PublicKeyFromPem but panics instead of
// returning an error.
func MustPublicKeyFromPem(pemText string) *PublicKey {
	pub, err := PublicKeyFromPem(pemText)
	if err != nil {
		panic(err)
	}
	return pub
}
