// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"fmt"
	"math/big"
)

// References:
//   [SEC1] Elliptic Curve Cryptography
//     https://www.secg.org/sec1-v2.pdf

const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// PubKeyFormatCompressedEven is the identifier prefix byte for a public
	// key whose Y coordinate is even when serialized in the compressed
	// format per section 2.3.4 of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.4).
	PubKeyFormatCompressedEven byte = 0x02

	// PubKeyFormatCompressedOdd is the identifier prefix byte for a public key
	// whose Y coordinate is odd when serialized in the compressed format per
	// section 2.3.4 of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.4).
	PubKeyFormatCompressedOdd byte = 0x03

	// PubKeyFormatUncompressed is the identifier prefix byte for a public key
	// when serialized according in the uncompressed format per section 2.3.3
	// of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.3).
	PubKeyFormatUncompressed byte = 0x04
)

// SerializeUncompressed serializes a point in the 65-byte uncompressed
// format: 0x04 followed by the 32-byte big-endian X and Y.  The point at
// infinity has no encoding and yields ErrPointAtInfinity.
func (p Point) SerializeUncompressed() ([]byte, error) {
	if !p.finite {
		return nil, makeError(ErrPointAtInfinity,
			"cannot serialize the point at infinity")
	}

	// 0x04 || 32-byte x coordinate || 32-byte y coordinate
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = PubKeyFormatUncompressed
	p.x.num.FillBytes(b[1:33])
	p.y.num.FillBytes(b[33:65])
	return b, nil
}

// SerializeCompressed serializes a point in the 33-byte compressed format:
// 0x02 for an even Y or 0x03 for an odd Y, followed by the 32-byte
// big-endian X.  The point at infinity yields ErrPointAtInfinity.
func (p Point) SerializeCompressed() ([]byte, error) {
	if !p.finite {
		return nil, makeError(ErrPointAtInfinity,
			"cannot serialize the point at infinity")
	}

	// Choose the format byte depending on the oddness of the Y coordinate.
	format := PubKeyFormatCompressedEven
	if p.y.IsOdd() {
		format = PubKeyFormatCompressedOdd
	}

	// 0x02 or 0x03 || 32-byte x coordinate
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = format
	p.x.num.FillBytes(b[1:33])
	return b, nil
}

// ParsePubKey parses a secp256k1 point encoded in either the compressed or
// the uncompressed SEC format and ensures it is on the curve.
//
// For compressed input the Y coordinate is recovered as a square root of
// x^3 + 7.  The root whose parity matches the prefix byte is kept,
// otherwise its negation P - root is used.
func ParsePubKey(serialized []byte) (Point, error) {
	var x, y FieldElement
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		// Reject unsupported public key formats for the given length.
		format := serialized[0]
		if format != PubKeyFormatUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return Point{}, makeError(ErrPubKeyInvalidFormat, str)
		}

		// Parse the x and y coordinates while ensuring that they are in
		// the allowed range.
		var err error
		if x, err = parseCoordinate(serialized[1:33], ErrPubKeyXTooBig); err != nil {
			return Point{}, err
		}
		if y, err = parseCoordinate(serialized[33:], ErrPubKeyYTooBig); err != nil {
			return Point{}, err
		}

		// Ensure the point is on the secp256k1 curve.
		if !y.square().Equal(curveRHS(x)) {
			str := fmt.Sprintf("invalid public key: [%x,%x] not on secp256k1 "+
				"curve", x.num, y.num)
			return Point{}, makeError(ErrPubKeyNotOnCurve, str)
		}

	case PubKeyBytesLenCompressed:
		// Reject unsupported public key formats for the given length.
		format := serialized[0]
		switch format {
		case PubKeyFormatCompressedEven, PubKeyFormatCompressedOdd:
		default:
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return Point{}, makeError(ErrPubKeyInvalidFormat, str)
		}

		var err error
		if x, err = parseCoordinate(serialized[1:33], ErrPubKeyXTooBig); err != nil {
			return Point{}, err
		}

		// Attempt to calculate the y coordinate for the given x coordinate
		// such that the result pair is a point on the secp256k1 curve.  A
		// non-residue x^3 + 7 produces a root whose square does not match.
		alpha := curveRHS(x)
		beta := alpha.sqrt()
		if !beta.square().Equal(alpha) {
			str := fmt.Sprintf("invalid public key: x coordinate %x is not on "+
				"the secp256k1 curve", x.num)
			return Point{}, makeError(ErrPubKeyNotOnCurve, str)
		}
		wantOdd := format == PubKeyFormatCompressedOdd
		y = beta
		if beta.IsOdd() != wantOdd {
			y = beta.Negate()
		}

	default:
		str := fmt.Sprintf("malformed public key: invalid length: %d",
			len(serialized))
		return Point{}, makeError(ErrPubKeyInvalidLen, str)
	}

	return Point{finite: true, x: x, y: y}, nil
}

// parseCoordinate interprets 32 big-endian bytes as an element of the
// secp256k1 field, failing with kind when the value is not below P.
func parseCoordinate(b []byte, kind ErrorKind) (FieldElement, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(curveP) >= 0 {
		str := fmt.Sprintf("invalid public key: coordinate %x >= field prime",
			v)
		return FieldElement{}, makeError(kind, str)
	}
	return newFieldElement(v, curveP), nil
}
