// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, c := range []*Curve{Secp256k1, Prime256v1} {
		priv, err := GeneratePrivateKey(c, nil)
		if err != nil {
			t.Fatalf("%s: GeneratePrivateKey: unexpected error: %v", c.Name, err)
		}
		pub := priv.PubKey()

		message := []byte("the quick brown fox jumps over the lazy dog")
		sig, err := Sign(message, priv, nil)
		if err != nil {
			t.Fatalf("%s: Sign: unexpected error: %v", c.Name, err)
		}

		if !Verify(message, sig, pub, nil) {
			t.Fatalf("%s: Verify: a freshly produced signature did not verify", c.Name)
		}
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv, err := GeneratePrivateKey(Secp256k1, nil)
	if err != nil {
		t.Fatalf("GeneratePrivateKey: unexpected error: %v", err)
	}
	pub := priv.PubKey()

	sig, err := Sign([]byte("original message"), priv, nil)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	if Verify([]byte("tampered message"), sig, pub, nil) {
		t.Fatalf("Verify: signature verified against a tampered message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	privA, _ := GeneratePrivateKey(Secp256k1, nil)
	privB, _ := GeneratePrivateKey(Secp256k1, nil)

	message := []byte("who signed this")
	sig, err := Sign(message, privA, nil)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	if Verify(message, sig, privB.PubKey(), nil) {
		t.Fatalf("Verify: signature verified against the wrong public key")
	}
}

func TestVerifyRejectsOutOfRangeScalars(t *testing.T) {
	priv, _ := GeneratePrivateKey(Secp256k1, nil)
	pub := priv.PubKey()

	tests := []struct {
		name string
		sig  *Signature
	}{
		{name: "r zero", sig: NewSignature(big.NewInt(0), big.NewInt(1))},
		{name: "s zero", sig: NewSignature(big.NewInt(1), big.NewInt(0))},
		{name: "r == N", sig: NewSignature(Secp256k1.N, big.NewInt(1))},
		{name: "s == N", sig: NewSignature(big.NewInt(1), Secp256k1.N)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if Verify([]byte("message"), test.sig, pub, nil) {
				t.Fatalf("Verify: out-of-range signature (%s) unexpectedly verified", test.name)
			}
		})
	}
}

func TestSignVerifyCustomHash(t *testing.T) {
	priv, _ := GeneratePrivateKey(Secp256k1, nil)
	pub := priv.PubKey()

	identityHash := func(message []byte) []byte { return message }
	opts := &SignOptions{Hash: identityHash}

	message := make([]byte, 32)
	for i := range message {
		message[i] = byte(i)
	}

	sig, err := Sign(message, priv, opts)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}
	if !Verify(message, sig, pub, opts) {
		t.Fatalf("Verify: signature produced with a custom hash did not verify under the same hash")
	}
	if Verify(message, sig, pub, nil) {
		t.Fatalf("Verify: signature produced with a custom hash verified under the default hash")
	}
}

func TestSignProducesFreshNonceEachTime(t *testing.T) {
	priv, _ := GeneratePrivateKey(Secp256k1, nil)
	message := []byte("same message, different nonce")

	sig1, err := Sign(message, priv, nil)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}
	sig2, err := Sign(message, priv, nil)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	if sig1.IsEqual(sig2) {
		t.Fatalf("Sign: two signatures over the same message and key were identical")
	}
}
