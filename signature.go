// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"encoding/base64"
	"fmt"
	"math/big"
)

// Signature has no PEM label: signatures are only ever exchanged as raw DER
// or as Base64(DER), never as a PEM block.

// Signature is an ECDSA signature (r, s). Range checks against a curve's
// order are deferred to Verify rather than enforced on construction or
// decode, per spec.
type Signature struct {
	R *big.Int
	S *big.Int
}

// NewSignature builds a Signature from its two scalars.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{R: r, S: s}
}

// ToDer serializes sig as a DER SEQUENCE { INTEGER r, INTEGER s }.
func (sig *Signature) ToDer() []byte {
	return encodeSequence(encodeInteger(sig.R), encodeInteger(sig.S))
}

// SignatureFromDer parses a DER-encoded SEQUENCE { INTEGER r, INTEGER s }.
//
// The format of a DER encoded signature is as follows:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//	  - 0x30 is the ASN.1 identifier for a sequence
//	  - 0x02 is the ASN.1 identifier that specifies an integer follows
//
// This mirrors ParseDERSignature from the secp256k1-specific signature
// codec this package generalizes, but does not itself enforce that R and S
// lie in [1, N-1]; Verify does that, since spec requires the check at
// verification time rather than at decode time.
func SignatureFromDer(der []byte) (*Signature, error) {
	const minSigLen = 8
	if len(der) < minSigLen {
		return nil, makeError(ErrSigTooShort, fmt.Sprintf("ecdsa: malformed signature: too short: %d < %d", len(der), minSigLen))
	}

	content, consumed, err := decodeSequence(der)
	if err != nil {
		return nil, err
	}
	if consumed != len(der) {
		return nil, makeError(ErrDerTrailingData, "ecdsa: malformed signature: trailing data after sequence")
	}

	r, rConsumed, err := decodeInteger(content)
	if err != nil {
		return nil, err
	}
	s, sConsumed, err := decodeInteger(content[rConsumed:])
	if err != nil {
		return nil, err
	}
	if rConsumed+sConsumed != len(content) {
		return nil, makeError(ErrDerTrailingData, "ecdsa: malformed signature: trailing data after s")
	}

	return NewSignature(r, s), nil
}

// MustSignatureFromDer is like SignatureFromDer but panics instead of
// returning an error.
func MustSignatureFromDer(der []byte) *Signature {
	sig, err := SignatureFromDer(der)
	if err != nil {
		panic(err)
	}
	return sig
}

// ToBase64 serializes sig as Base64(DER).
func (sig *Signature) ToBase64() string {
	return base64.StdEncoding.EncodeToString(sig.ToDer())
}

// SignatureFromBase64 decodes a Base64(DER) encoded signature.
func SignatureFromBase64(s string) (*Signature, error) {
	der, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, makeError(ErrBase64Invalid, fmt.Sprintf("ecdsa: signature: invalid base64: %v", err))
	}
	return SignatureFromDer(der)
}

// MustSignatureFromBase64 is like SignatureFromBase64 but panics instead of
// returning an error.
func MustSignatureFromBase64(s string) *Signature {
	sig, err := SignatureFromBase64(s)
	if err != nil {
		panic(err)
	}
	return sig
}

// IsEqual reports whether sig and other have identical R and S values.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}
