// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"bytes"
	"fmt"
	"math/big"
)

// References:
//   [ISO/IEC 8825-1]: Information technology - ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02

	// maxDERDataLen is the largest value the single DER length byte can
	// hold.
	maxDERDataLen = 255
)

// Signature is an ECDSA signature over secp256k1.  R and S are kept as the
// big-endian bytes they were created from: R is 32 or 33 bytes and S is at
// most 32 bytes.
type Signature struct {
	r []byte
	s []byte
}

// NewSignature instantiates a new signature given the big-endian bytes of R
// and S.  R must be 32 or 33 bytes and S between 1 and 32 bytes.  The
// slices are copied.
func NewSignature(r, s []byte) (*Signature, error) {
	switch {
	case len(r) == 0:
		return nil, signatureError(ErrSigZeroRLen,
			"invalid signature: R is empty")
	case len(r) != 32 && len(r) != 33:
		str := fmt.Sprintf("invalid signature: R must be 32 or 33 bytes, "+
			"got %d", len(r))
		return nil, signatureError(ErrSigInvalidRLen, str)
	case len(s) == 0:
		return nil, signatureError(ErrSigZeroSLen,
			"invalid signature: S is empty")
	case len(s) > 32:
		str := fmt.Sprintf("invalid signature: S must be at most 32 bytes, "+
			"got %d", len(s))
		return nil, signatureError(ErrSigInvalidSLen, str)
	}
	return &Signature{
		r: append([]byte(nil), r...),
		s: append([]byte(nil), s...),
	}, nil
}

// newSignatureFromInts packs two scalars in [0, N) into a signature with a
// 32-byte R and S.
func newSignatureFromInts(r, s *big.Int) *Signature {
	return &Signature{
		r: r.FillBytes(make([]byte, 32)),
		s: s.FillBytes(make([]byte, 32)),
	}
}

// R returns a copy of the big-endian bytes of R.
func (sig *Signature) R() []byte {
	return append([]byte(nil), sig.r...)
}

// S returns a copy of the big-endian bytes of S.
func (sig *Signature) S() []byte {
	return append([]byte(nil), sig.s...)
}

func (sig *Signature) rInt() *big.Int { return new(big.Int).SetBytes(sig.r) }
func (sig *Signature) sInt() *big.Int { return new(big.Int).SetBytes(sig.s) }

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.  A signature is equivalent to another,
// if they both have the same integer value for R and S, regardless of
// padding.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.rInt().Cmp(otherSig.rInt()) == 0 &&
		sig.sInt().Cmp(otherSig.sInt()) == 0
}

// canonicalInt trims the leading zero bytes of b down to the minimal
// encoding and prepends a single zero byte when the high bit is set, so the
// value reads as a non-negative ASN.1 integer.
func canonicalInt(b []byte) []byte {
	for len(b) > 1 && b[0] == 0x00 {
		b = b[1:]
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return append([]byte(nil), b...)
}

// DER returns the ECDSA signature in the Distinguished Encoding Rules (DER)
// format per section 10 of [ISO/IEC 8825-1].
//
// R and S are written as is.  Signatures produced by Sign already carry a
// low S.
func (sig *Signature) DER() ([]byte, error) {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	//   - 0x30 is the ASN.1 identifier for a sequence.
	//   - Total length is 1 byte and specifies length of all remaining data.
	//   - 0x02 is the ASN.1 identifier that specifies an integer follows.
	//   - Length of R is 1 byte and specifies how many bytes R occupies.
	//   - R is the arbitrary length big-endian encoded number which
	//     represents the R value of the signature.  DER encoding dictates
	//     that the value must be encoded using the minimum possible number
	//     of bytes.  This implies the first byte can only be null if the
	//     highest bit of the next byte is set in order to prevent it from
	//     being interpreted as a negative number.
	//   - 0x02 is once again the ASN.1 integer identifier.
	//   - Length of S is 1 byte and specifies how many bytes S occupies.
	//   - S is the arbitrary length big-endian encoded number which
	//     represents the S value of the signature.  The encoding rules are
	//     identical as those for R.
	if len(sig.r) == 0 {
		return nil, signatureError(ErrSigZeroRLen,
			"cannot encode signature: R is empty")
	}
	if len(sig.s) == 0 {
		return nil, signatureError(ErrSigZeroSLen,
			"cannot encode signature: S is empty")
	}
	canonR, canonS := canonicalInt(sig.r), canonicalInt(sig.s)

	// Total length of returned signature is 1 byte for each magic and length
	// (6 total), plus lengths of R and S.
	totalLen := 6 + len(canonR) + len(canonS)
	if totalLen-2 > maxDERDataLen {
		str := fmt.Sprintf("cannot encode signature: data length %d "+
			"exceeds %d", totalLen-2, maxDERDataLen)
		return nil, signatureError(ErrSigTooLong, str)
	}
	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID)
	b = append(b, byte(totalLen-2))
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonS)))
	b = append(b, canonS...)
	return b, nil
}

// ParseDERSignature parses a signature in the Distinguished Encoding Rules
// (DER) format per section 10 of [ISO/IEC 8825-1] and enforces the following
// additional restrictions specific to secp256k1:
//
// - The R and S values must be in the valid range for secp256k1 scalars:
//   - Negative values are rejected
//   - Zero is rejected
//   - Values greater than or equal to the secp256k1 group order are rejected
//
// The returned signature holds R and S as 32-byte values.
func ParseDERSignature(sig []byte) (*Signature, error) {
	const (
		// minSigLen is the minimum length of a DER encoded signature and is
		// when both R and S are 1 byte each.
		//
		// 0x30 + <1-byte> + 0x02 + 0x01 + <byte> + 0x2 + 0x01 + <byte>
		minSigLen = 8

		// maxSigLen is the maximum length of a DER encoded signature and is
		// when both R and S are 33 bytes each.
		//
		// 0x30 + <1-byte> + 0x02 + 0x21 + <33 bytes> + 0x2 + 0x21 + <33 bytes>
		maxSigLen = 72

		sequenceOffset = 0
		dataLenOffset  = 1
		rTypeOffset    = 2
		rLenOffset     = 3
		rOffset        = 4
	)

	// The signature must adhere to the minimum and maximum allowed length.
	sigLen := len(sig)
	if sigLen < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", sigLen,
			minSigLen)
		return nil, signatureError(ErrSigTooShort, str)
	}
	if sigLen > maxSigLen {
		str := fmt.Sprintf("malformed signature: too long: %d > %d", sigLen,
			maxSigLen)
		return nil, signatureError(ErrSigTooLong, str)
	}

	// The signature must start with the ASN.1 sequence identifier.
	if sig[sequenceOffset] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: %#x",
			sig[sequenceOffset])
		return nil, signatureError(ErrSigInvalidSeqID, str)
	}

	// The signature must indicate the correct amount of data for all elements
	// related to R and S.
	if int(sig[dataLenOffset]) != sigLen-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d",
			sig[dataLenOffset], sigLen-2)
		return nil, signatureError(ErrSigInvalidDataLen, str)
	}

	// Calculate the offsets of the elements related to S and ensure S is
	// inside the signature.
	rLen := int(sig[rLenOffset])
	sTypeOffset := rOffset + rLen
	sLenOffset := sTypeOffset + 1
	if sTypeOffset >= sigLen {
		str := "malformed signature: S type indicator missing"
		return nil, signatureError(ErrSigMissingSTypeID, str)
	}
	if sLenOffset >= sigLen {
		str := "malformed signature: S length missing"
		return nil, signatureError(ErrSigMissingSLen, str)
	}

	// The lengths of R and S must match the overall length of the signature.
	sOffset := sLenOffset + 1
	sLen := int(sig[sLenOffset])
	if sOffset+sLen != sigLen {
		str := "malformed signature: invalid S length"
		return nil, signatureError(ErrSigInvalidSLen, str)
	}

	r, err := parseDERInt(sig[rTypeOffset], sig[rOffset:rOffset+rLen], derR)
	if err != nil {
		return nil, err
	}
	s, err := parseDERInt(sig[sTypeOffset], sig[sOffset:sOffset+sLen], derS)
	if err != nil {
		return nil, err
	}
	return newSignatureFromInts(r, s), nil
}

// derIntKinds groups the error kinds reported for one of the two integers
// of a DER signature.
type derIntKinds struct {
	name     string
	intID    ErrorKind
	zeroLen  ErrorKind
	negative ErrorKind
	padding  ErrorKind
	isZero   ErrorKind
	tooBig   ErrorKind
}

var (
	derR = derIntKinds{
		name:     "R",
		intID:    ErrSigInvalidRIntID,
		zeroLen:  ErrSigZeroRLen,
		negative: ErrSigNegativeR,
		padding:  ErrSigTooMuchRPadding,
		isZero:   ErrSigRIsZero,
		tooBig:   ErrSigRTooBig,
	}
	derS = derIntKinds{
		name:     "S",
		intID:    ErrSigInvalidSIntID,
		zeroLen:  ErrSigZeroSLen,
		negative: ErrSigNegativeS,
		padding:  ErrSigTooMuchSPadding,
		isZero:   ErrSigSIsZero,
		tooBig:   ErrSigSTooBig,
	}
)

// parseDERInt validates one ASN.1 integer of a DER signature and returns its
// value, which is in [1, N).
func parseDERInt(typeID byte, b []byte, kinds derIntKinds) (*big.Int, error) {
	// Elements must be ASN.1 integers.
	if typeID != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: %s integer marker: %#x != %#x",
			kinds.name, typeID, asn1IntegerID)
		return nil, signatureError(kinds.intID, str)
	}

	// Zero-length integers are not allowed.
	if len(b) == 0 {
		str := fmt.Sprintf("malformed signature: %s length is zero",
			kinds.name)
		return nil, signatureError(kinds.zeroLen, str)
	}

	// The integer must not be negative.
	if b[0]&0x80 != 0 {
		str := fmt.Sprintf("malformed signature: %s is negative", kinds.name)
		return nil, signatureError(kinds.negative, str)
	}

	// Null bytes at the start are not allowed, unless the value would
	// otherwise be interpreted as a negative number.
	if len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		str := fmt.Sprintf("malformed signature: %s value has too much "+
			"padding", kinds.name)
		return nil, signatureError(kinds.padding, str)
	}

	// The value must be in the range [1, N-1].
	v := new(big.Int).SetBytes(bytes.TrimLeft(b, "\x00"))
	if v.Cmp(curveN) >= 0 {
		str := fmt.Sprintf("invalid signature: %s >= group order", kinds.name)
		return nil, signatureError(kinds.tooBig, str)
	}
	if v.Sign() == 0 {
		str := fmt.Sprintf("invalid signature: %s is 0", kinds.name)
		return nil, signatureError(kinds.isZero, str)
	}
	return v, nil
}
