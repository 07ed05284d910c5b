// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

const privatePemLabel = "EC PRIVATE KEY"

// oidEcPublicKey is the id-ecPublicKey algorithm OID (1.2.840.10045.2.1)
// used inside the SubjectPublicKeyInfo AlgorithmIdentifier, alongside the
// curve OID (see pubkey.go). An ECPrivateKey carries only the curve OID.
var oidEcPublicKey = []int{1, 2, 840, 10045, 2, 1}

// PrivateKey is an ECDSA private key: a secret scalar together with the
// curve it is defined over.
type PrivateKey struct {
	Secret *big.Int
	Curve  *Curve
}

// NewPrivateKey builds a PrivateKey from an already-chosen secret.
func NewPrivateKey(secret *big.Int, curve *Curve) *PrivateKey {
	return &PrivateKey{Secret: secret, Curve: curve}
}

// GeneratePrivateKey returns a private key on curve. If secret is nil, a
// uniformly random scalar in [1, N-1] is drawn via Between; otherwise the
// provided secret is used as-is.
func GeneratePrivateKey(curve *Curve, secret *big.Int) (*PrivateKey, error) {
	if secret == nil {
		var err error
		secret, err = Between(big.NewInt(1), new(big.Int).Sub(curve.N, big.NewInt(1)))
		if err != nil {
			return nil, err
		}
	}
	return NewPrivateKey(secret, curve), nil
}

// PubKey computes and returns the public key corresponding to p: Q = d*G.
func (p *PrivateKey) PubKey() *PublicKey {
	x, y := Multiply(p.Curve.Gx, p.Curve.Gy, p.Secret, p.Curve)
	return NewPublicKey(x, y, p.Curve)
}

// rawString returns the private key's secret as a fixed-width big-endian
// string, padded to the curve's byte length.
func (p *PrivateKey) rawString() []byte {
	return fixedWidth(p.Secret, p.Curve.ByteLength())
}

// ToRawString returns the private key's secret as a fixed-width big-endian
// byte string, padded to the curve's byte length. Unlike ToDer/ToPem, this
// encoding carries no curve identifier; the caller must already know which
// curve to pass to PrivateKeyFromRawString.
func (p *PrivateKey) ToRawString() []byte {
	return p.rawString()
}

// PrivateKeyFromRawString rebuilds a private key from the fixed-width
// big-endian secret produced by ToRawString, interpreted over curve.
func PrivateKeyFromRawString(raw []byte, curve *Curve) (*PrivateKey, error) {
	if len(raw) != curve.ByteLength() {
		return nil, makeError(ErrKeyWrongLength, fmt.Sprintf("ecdsa: private key: want %d raw bytes, got %d", curve.ByteLength(), len(raw)))
	}
	return NewPrivateKey(new(big.Int).SetBytes(raw), curve), nil
}

// ToDer serializes p as a SEC1 ECPrivateKey:
//
//	SEQUENCE {
//	  INTEGER 1,
//	  OCTET STRING { fixed-width secret },
//	  [0] { OID curve.oid },
//	  [1] { BIT STRING { 0x00 0x04 || X || Y } }
//	}
func (p *PrivateKey) ToDer() []byte {
	pub := p.PubKey()
	return encodeSequence(
		encodeInteger(big.NewInt(1)),
		encodeOctetString(p.rawString()),
		encodeConstructed(0, encodeObjectID(p.Curve.Oid)),
		encodeConstructed(1, encodeBitString(pub.uncompressedPoint())),
	)
}

// ToPem serializes p as a PEM-framed SEC1 ECPrivateKey, labeled
// "EC PRIVATE KEY".
func (p *PrivateKey) ToPem() string {
	return encodePem(privatePemLabel, p.ToDer())
}

// PrivateKeyFromDer parses a SEC1 ECPrivateKey. The curve OID in the [0] field
// determines which registered curve the key is interpreted over; the
// derived public key in the [1] field is not required to be present and is
// not checked against the secret if it is.
func PrivateKeyFromDer(der []byte) (*PrivateKey, error) {
	content, consumed, err := decodeSequence(der)
	if err != nil {
		return nil, err
	}
	if consumed != len(der) {
		return nil, makeError(ErrDerTrailingData, "ecdsa: private key: trailing data after sequence")
	}

	version, n, err := decodeInteger(content)
	if err != nil {
		return nil, err
	}
	if version.Cmp(big.NewInt(1)) != 0 {
		return nil, makeError(ErrDerInvalidLength, fmt.Sprintf("ecdsa: private key: unsupported version %s", version))
	}
	content = content[n:]

	secretBytes, n, err := decodeOctetString(content)
	if err != nil {
		return nil, err
	}
	content = content[n:]

	oidContent, n, err := decodeConstructed(content, 0)
	if err != nil {
		return nil, err
	}
	content = content[n:]
	arcs, _, err := decodeObjectID(oidContent)
	if err != nil {
		return nil, err
	}
	curve, err := GetCurveByOid(arcs)
	if err != nil {
		return nil, err
	}

	return NewPrivateKey(new(big.Int).SetBytes(secretBytes), curve), nil
}

// MustPrivateKeyFromDer is like PrivateKeyFromDer but panics instead of
// returning an error.
func MustPrivateKeyFromDer(der []byte) *PrivateKey {
	priv, err := PrivateKeyFromDer(der)
	if err != nil {
		panic(err)
	}
	return priv
}

// PrivateKeyFromPem parses a PEM-framed SEC1 ECPrivateKey. Any EC PARAMETERS
// block preceding the EC PRIVATE KEY block is ignored.
func PrivateKeyFromPem(pemText string) (*PrivateKey, error) {
	der, err := decodePem(privatePemLabel, pemText)
	if err != nil {
		return nil, err
	}
	return PrivateKeyFromDer(der)
}

// MustPrivateKeyFromPem is like PrivateKeyFromPem but panics instead of
// returning an error.
func MustPrivateKeyFromPem(pemText string) *PrivateKey {
	priv, err := PrivateKeyFromPem(pemText)
	if err != nil {
		panic(err)
	}
	return priv
}
