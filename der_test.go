// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestEncodeDecodeLength(t *testing.T) {
	tests := []int{0, 1, 127, 128, 255, 256, 65535, 70000}
	for _, l := range tests {
		enc := encodeLength(l)
		got, consumed, err := decodeLength(enc)
		if err != nil {
			t.Fatalf("decodeLength(%d): unexpected error: %v", l, err)
		}
		if got != l || consumed != len(enc) {
			t.Fatalf("decodeLength(encodeLength(%d)): got (%d, %d), want (%d, %d)", l, got, consumed, l, len(enc))
		}
	}
}

func TestEncodeDecodeInteger(t *testing.T) {
	tests := []string{"0", "1", "127", "128", "255", "256",
		"115792089237316195423570985008687907852837564279074904382605163141518161494337"}

	for _, s := range tests {
		n, _ := new(big.Int).SetString(s, 10)
		enc := encodeInteger(n)
		got, consumed, err := decodeInteger(enc)
		if err != nil {
			t.Fatalf("decodeInteger(%s): unexpected error: %v", s, err)
		}
		if got.Cmp(n) != 0 || consumed != len(enc) {
			t.Fatalf("decodeInteger(encodeInteger(%s)): got (%s, %d), want (%s, %d)\n%s",
				s, got, consumed, n, len(enc), spew.Sdump(enc))
		}
	}
}

func TestEncodeDecodeSequence(t *testing.T) {
	a := encodeInteger(big.NewInt(1))
	b := encodeInteger(big.NewInt(2))
	enc := encodeSequence(a, b)

	content, consumed, err := decodeSequence(enc)
	if err != nil {
		t.Fatalf("decodeSequence: unexpected error: %v", err)
	}
	if consumed != len(enc) {
		t.Fatalf("decodeSequence: consumed %d, want %d", consumed, len(enc))
	}
	want := append(append([]byte{}, a...), b...)
	if string(content) != string(want) {
		t.Fatalf("decodeSequence: got %s, want %s", spew.Sdump(content), spew.Sdump(want))
	}
}

func TestEncodeDecodeOctetString(t *testing.T) {
	content := []byte{0xde, 0xad, 0xbe, 0xef}
	enc := encodeOctetString(content)
	got, consumed, err := decodeOctetString(enc)
	if err != nil {
		t.Fatalf("decodeOctetString: unexpected error: %v", err)
	}
	if string(got) != string(content) || consumed != len(enc) {
		t.Fatalf("decodeOctetString: got (%x, %d), want (%x, %d)", got, consumed, content, len(enc))
	}
}

func TestEncodeDecodeBitString(t *testing.T) {
	content := []byte{0x04, 0x01, 0x02, 0x03}
	enc := encodeBitString(content)
	got, consumed, err := decodeBitString(enc)
	if err != nil {
		t.Fatalf("decodeBitString: unexpected error: %v", err)
	}
	if string(got) != string(content) || consumed != len(enc) {
		t.Fatalf("decodeBitString: got (%x, %d), want (%x, %d)", got, consumed, content, len(enc))
	}
}

func TestEncodeDecodeObjectID(t *testing.T) {
	tests := [][]int{
		{1, 3, 132, 0, 10},
		{1, 2, 840, 10045, 2, 1},
		{1, 2, 840, 10045, 3, 1, 7},
	}
	for _, arcs := range tests {
		enc := encodeObjectID(arcs)
		got, consumed, err := decodeObjectID(enc)
		if err != nil {
			t.Fatalf("decodeObjectID(%v): unexpected error: %v", arcs, err)
		}
		if consumed != len(enc) || len(got) != len(arcs) {
			t.Fatalf("decodeObjectID(%v): got %v, consumed %d, want consumed %d", arcs, got, consumed, len(enc))
		}
		for i := range arcs {
			if got[i] != arcs[i] {
				t.Fatalf("decodeObjectID(%v): got %v", arcs, got)
			}
		}
	}
}

func TestEncodeDecodeConstructed(t *testing.T) {
	inner := encodeInteger(big.NewInt(42))
	enc := encodeConstructed(0, inner)
	got, consumed, err := decodeConstructed(enc, 0)
	if err != nil {
		t.Fatalf("decodeConstructed: unexpected error: %v", err)
	}
	if string(got) != string(inner) || consumed != len(enc) {
		t.Fatalf("decodeConstructed: got (%x, %d), want (%x, %d)", got, consumed, inner, len(enc))
	}

	_, _, err = decodeConstructed(enc, 1)
	if err == nil {
		t.Fatalf("decodeConstructed with wrong field: expected an error")
	}
}

func TestDecodeIntegerRejectsWrongTag(t *testing.T) {
	_, _, err := decodeInteger([]byte{tagOctetString, 0x01, 0x00})
	if err == nil {
		t.Fatalf("decodeInteger: expected an error for a non-integer tag")
	}
}

func TestDecodeLengthTruncated(t *testing.T) {
	_, _, err := decodeLength(nil)
	if err == nil {
		t.Fatalf("decodeLength(nil): expected an error")
	}
}

func TestFixedWidth(t *testing.T) {
	v := big.NewInt(0x0102)
	got := fixedWidth(v, 4)
	want := []byte{0x00, 0x00, 0x01, 0x02}
	if string(got) != string(want) {
		t.Fatalf("fixedWidth(0x0102, 4) = %x, want %x", got, want)
	}
}

func TestFixedWidthPanicsWhenTooNarrow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("fixedWidth: expected a panic for an oversized value")
		}
	}()
	fixedWidth(big.NewInt(0x010203), 2)
}
