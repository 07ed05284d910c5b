// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"strings"
	"testing"
)

func TestEncodeDecodePem(t *testing.T) {
	der := []byte("some arbitrary payload that is definitely longer than one pem line so it wraps across several lines of base64 text")
	text := encodePem("TEST LABEL", der)

	if !strings.HasPrefix(text, "-----BEGIN TEST LABEL-----\n") {
		t.Fatalf("encodePem: missing BEGIN marker:\n%s", text)
	}
	if !strings.HasSuffix(text, "-----END TEST LABEL-----\n") {
		t.Fatalf("encodePem: missing END marker:\n%s", text)
	}

	got, err := decodePem("TEST LABEL", text)
	if err != nil {
		t.Fatalf("decodePem: unexpected error: %v", err)
	}
	if string(got) != string(der) {
		t.Fatalf("decodePem(encodePem(der)): got %q, want %q", got, der)
	}
}

func TestDecodePemSkipsPrecedingBlock(t *testing.T) {
	params := "-----BEGIN EC PARAMETERS-----\nBggqhkjOPQMBBw==\n-----END EC PARAMETERS-----\n"
	der := []byte{0x01, 0x02, 0x03, 0x04}
	key := encodePem("EC PRIVATE KEY", der)

	got, err := decodePem("EC PRIVATE KEY", params+key)
	if err != nil {
		t.Fatalf("decodePem: unexpected error: %v", err)
	}
	if string(got) != string(der) {
		t.Fatalf("decodePem: got %x, want %x", got, der)
	}
}

func TestDecodePemMissingBlock(t *testing.T) {
	_, err := decodePem("PUBLIC KEY", "not a pem document")
	if err == nil {
		t.Fatalf("decodePem: expected an error for a missing block")
	}
}

func TestEncodePemLineWidth(t *testing.T) {
	der := make([]byte, 300)
	text := encodePem("PUBLIC KEY", der)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for _, line := range lines[1 : len(lines)-1] {
		if len(line) > pemLineWidth {
			t.Fatalf("encodePem: line %q exceeds %d characters", line, pemLineWidth)
		}
	}
}
