// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// PEM framing around the DER codec in der.go. The Base64 codec itself is an
// opaque external collaborator per spec; encoding/base64's standard encoding
// is used directly rather than hand-rolled, matching how this package treats
// SHA-2 (crypto/sha256) and the CSPRNG (crypto/rand) as supplied primitives.

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const pemLineWidth = 64

// encodePem frames der as a PEM block with the given label.
func encodePem(label string, der []byte) string {
	body := base64.StdEncoding.EncodeToString(der)

	var b strings.Builder
	fmt.Fprintf(&b, "-----BEGIN %s-----\n", label)
	for i := 0; i < len(body); i += pemLineWidth {
		end := i + pemLineWidth
		if end > len(body) {
			end = len(body)
		}
		b.WriteString(body[i:end])
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "-----END %s-----\n", label)
	return b.String()
}

// decodePem extracts the DER bytes from a PEM block labeled label. It
// tolerates CRLF or LF line endings, blank lines, and extra "-----"
// delimited lines (such as an EC PARAMETERS block preceding an EC PRIVATE
// KEY block); the caller's label selects which BEGIN/END pair to honor.
func decodePem(label string, pemText string) ([]byte, error) {
	beginMarker := "-----BEGIN " + label + "-----"
	endMarker := "-----END " + label + "-----"

	beginIdx := strings.Index(pemText, beginMarker)
	if beginIdx < 0 {
		return nil, makeError(ErrPemNoBlock, fmt.Sprintf("ecdsa: pem: no %q block found", label))
	}
	tail := pemText[beginIdx+len(beginMarker):]

	endIdx := strings.Index(tail, endMarker)
	if endIdx < 0 {
		return nil, makeError(ErrPemNoBlock, fmt.Sprintf("ecdsa: pem: %q block has no matching END", label))
	}
	body := tail[:endIdx]

	var sb strings.Builder
	for _, line := range strings.FieldsFunc(body, func(r rune) bool { return r == '\n' || r == '\r' }) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-----") {
			continue
		}
		sb.WriteString(line)
	}

	der, err := base64.StdEncoding.DecodeString(sb.String())
	if err != nil {
		return nil, makeError(ErrBase64Invalid, fmt.Sprintf("ecdsa: pem: invalid base64 body: %v", err))
	}
	return der, nil
}
