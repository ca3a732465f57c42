// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is the modified base58 alphabet.  It omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const alphabetIdx0 = '1'

var bigRadix = big.NewInt(58)

// b58 maps an ASCII character to its index in Alphabet, or 255 when the
// character is not part of it.
var b58 = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 255
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// Encode encodes a byte slice to a modified base58 string.  Every leading
// zero byte becomes a leading '1'.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	// The remainders come out least significant first.
	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, Alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabetIdx0)
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// Decode decodes a modified base58 string to a byte slice.  Every leading
// '1' becomes a leading zero byte.  No checksum is verified; see
// CheckDecode for that.
func Decode(s string) ([]byte, error) {
	answer := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := b58[s[i]]
		if idx == 255 {
			return nil, fmt.Errorf("%w: %q at position %d",
				ErrInvalidCharacter, s[i], i)
		}
		answer.Mul(answer, bigRadix)
		answer.Add(answer, digit.SetInt64(int64(idx)))
	}

	numZeros := len(s) - len(strings.TrimLeft(s, string(alphabetIdx0)))
	tmp := answer.Bytes()
	val := make([]byte, numZeros+len(tmp))
	copy(val[numZeros:], tmp)
	return val, nil
}
