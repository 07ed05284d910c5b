// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/sha256"
	"math/big"
)

// HashFunc hashes an arbitrary-length message into a fixed-length digest.
// Per spec, the hash primitive is an opaque collaborator; this package only
// ever calls it as a deterministic byte-to-byte function.
type HashFunc func(message []byte) []byte

// defaultHash is SHA-256, matching spec's default hashfunc.
func defaultHash(message []byte) []byte {
	sum := sha256.Sum256(message)
	return sum[:]
}

// SignOptions configures Sign and Verify. A nil *SignOptions, or a zero
// value with Hash left nil, selects SHA-256.
type SignOptions struct {
	Hash HashFunc
}

func (o *SignOptions) hashFunc() HashFunc {
	if o == nil || o.Hash == nil {
		return defaultHash
	}
	return o.Hash
}

// Sign produces an ECDSA signature over message using priv. Per spec, the
// nonce k is drawn fresh for every call via Between and the signature is
// retried with a new k if either r or s comes out to zero.
func Sign(message []byte, priv *PrivateKey, opts *SignOptions) (*Signature, error) {
	curve := priv.Curve
	e := new(big.Int).SetBytes(opts.hashFunc()(message))

	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(curve.N, one)

	for {
		k, err := Between(one, nMinus1)
		if err != nil {
			return nil, err
		}

		x1, _ := Multiply(curve.Gx, curve.Gy, k, curve)
		r := Modulo(x1, curve.N)
		if r.Sign() == 0 {
			continue
		}

		kInv := Inv(k, curve.N)
		s := Modulo(new(big.Int).Mul(r, priv.Secret), curve.N)
		s.Add(s, e)
		s.Mul(s, kInv)
		s = Modulo(s, curve.N)
		if s.Sign() == 0 {
			continue
		}

		return NewSignature(r, s), nil
	}
}

// Verify reports whether sig is a valid ECDSA signature over message under
// pub. Every failure mode named in spec — out-of-range r/s, a resulting
// point at infinity, or a mismatched x-coordinate — is absorbed into a
// false return rather than an error; only a genuine precondition violation
// (e.g. a nil argument) panics.
func Verify(message []byte, sig *Signature, pub *PublicKey, opts *SignOptions) bool {
	curve := pub.Curve
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(curve.N, one)

	if sig.R.Cmp(one) < 0 || sig.R.Cmp(nMinus1) > 0 {
		return false
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(nMinus1) > 0 {
		return false
	}

	e := new(big.Int).SetBytes(opts.hashFunc()(message))

	w := Inv(sig.S, curve.N)
	u1 := Modulo(new(big.Int).Mul(e, w), curve.N)
	u2 := Modulo(new(big.Int).Mul(sig.R, w), curve.N)

	x1, y1 := Multiply(curve.Gx, curve.Gy, u1, curve)
	x2, y2 := Multiply(pub.X, pub.Y, u2, curve)
	vx, vy := AddAffine(x1, y1, x2, y2, curve)

	if vy.Sign() == 0 {
		return false
	}

	return Modulo(vx, curve.N).Cmp(sig.R) == 0
}
