// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ModChain/ecmath/hashes"
)

// ChecksumLen is the number of double-SHA256 bytes appended by CheckEncode.
const ChecksumLen = 4

var (
	// ErrInvalidCharacter indicates the input holds a character outside
	// Alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")

	// ErrInvalidFormat indicates the decoded input is too short to carry a
	// checksum.
	ErrInvalidFormat = errors.New("invalid format: checksum bytes missing")

	// ErrChecksum indicates that the checksum of a check-encoded string does
	// not verify against the checksum.
	ErrChecksum = errors.New("checksum error")
)

// checksum returns the first four bytes of sha256(sha256(input)).
func checksum(input []byte) (cksum [ChecksumLen]byte) {
	copy(cksum[:], hashes.DoubleSha256(input))
	return
}

// CheckEncode appends a four byte checksum to payload and base58 encodes
// the result.  An address payload is the version byte followed by the
// hash160 of the public key.
func CheckEncode(payload []byte) string {
	b := make([]byte, 0, len(payload)+ChecksumLen)
	b = append(b, payload...)
	cksum := checksum(payload)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and
// verifies the checksum.  It returns the payload without the checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumLen {
		return nil, fmt.Errorf("%w: decoded length %d", ErrInvalidFormat,
			len(decoded))
	}

	payload := decoded[:len(decoded)-ChecksumLen]
	got := decoded[len(decoded)-ChecksumLen:]
	want := checksum(payload)
	if !bytes.Equal(got, want[:]) {
		return nil, fmt.Errorf("%w: got %x, want %x", ErrChecksum, got, want)
	}
	return payload, nil
}
