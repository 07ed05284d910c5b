// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa implements the Elliptic Curve Digital Signature Algorithm over
configurable short Weierstrass curves in pure Go.

This package provides a pure Go implementation of elliptic curve arithmetic,
key generation, signing, and verification, together with ASN.1 DER, PEM, and
Base64 codecs for keys and signatures that interoperate with OpenSSL. Curve
parameters are supplied as data rather than hardcoded per curve; the registry
in this package ships secp256k1 and prime256v1 (NIST P-256) out of the box.

An overview of the features provided by this package are as follows:

  - Private key generation, serialization, and parsing
  - Public key derivation, serialization, and parsing per SEC1 and
    SubjectPublicKeyInfo
  - A registry of named curves, looked up by name or by ASN.1 OID
  - Elliptic curve operations in Jacobian projective coordinates
  - Point addition, doubling, and scalar multiplication over an arbitrary
    registered curve
  - ECDSA signing and verification
  - A self-contained ASN.1 DER encoder/decoder and PEM framing, used to
    produce and parse RFC 5915 / SEC1 / SubjectPublicKeyInfo envelopes

This package does not implement compressed point encoding, RFC 6979
deterministic nonces, or constant-time arithmetic; the scalar multiplier is
variable-time and branches on the bits of its scalar. It is intended for
interoperability and clarity rather than as a side-channel-hardened
implementation.

A comprehensive suite of tests is provided to ensure proper functionality,
including round-trip and OpenSSL interoperability fixtures.
*/
package ecdsa
