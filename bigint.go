// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/safenum"
)

// Modulo returns the unique integer m in [0, n) such that m is congruent to x
// modulo n. Unlike the % operator, the result is always non-negative.
func Modulo(x, n *big.Int) *big.Int {
	return new(big.Int).Mod(x, n)
}

// Ipow returns base raised to the non-negative power p. Ipow(base, 0) is 1
// for any base, matching the usual convention for integer exponentiation.
func Ipow(base *big.Int, p *big.Int) *big.Int {
	return new(big.Int).Exp(base, p, nil)
}

// Between draws a uniformly random integer in the closed interval
// [min, max] using rand.Reader, with no modulo bias.
//
// The algorithm computes the smallest byte count and bitmask covering the
// size of the interval, draws that many random bytes, masks off the excess
// high bits, and rejects and retries whenever the masked value falls outside
// the interval. This mirrors the way cronokirby-ctcrypto's elliptic.GenerateKey
// samples a private scalar: draw bytes sized to the modulus, mask, and use
// safenum's constant-time comparison to detect an out-of-range draw instead
// of reducing the raw bytes modulo the range, which would bias the result
// toward small values.
func Between(min, max *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))
	if span.Sign() <= 0 {
		return nil, makeError(ErrPointOutOfRange, "ecdsa: Between: empty interval")
	}

	bitLen := span.BitLen()
	byteLen := (bitLen + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	excessBits := uint(byteLen*8 - bitLen)
	topMask := byte(0xff >> excessBits)

	spanNat := new(safenum.Nat).SetBytes(span.Bytes())
	spanMod := safenum.ModulusFromNat(*spanNat)

	buf := make([]byte, byteLen)
	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		buf[0] &= topMask

		draw := new(safenum.Nat).SetBytes(buf)
		if draw.CmpMod(spanMod) >= 0 {
			continue
		}

		result := new(big.Int).SetBytes(draw.Bytes())
		return result.Add(result, min), nil
	}
}
