// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ModChain/ecmath/hashes"
)

const (
	// DigestLen is the required length of a message digest handed to the
	// signing, verification and nonce routines.
	DigestLen = 32

	// maxNonceIterations bounds the candidate loop of DeterministicK.  A
	// candidate is out of range with probability below 2^-127, so reaching
	// the bound means the inputs are broken.
	maxNonceIterations = 1000
)

var (
	// singleZero and singleOne are the domain separators mixed into K
	// while seeding and when rejecting a candidate.
	singleZero = []byte{0x00}
	singleOne  = []byte{0x01}

	// zeroInitializer and oneInitializer are the initial K and V.
	zeroInitializer = bytes.Repeat([]byte{0x00}, 32)
	oneInitializer  = bytes.Repeat([]byte{0x01}, 32)
)

// checkDigest ensures z is a 32-byte digest.
func checkDigest(z []byte) error {
	if len(z) != DigestLen {
		str := fmt.Sprintf("digest must be %d bytes, got %d", DigestLen,
			len(z))
		return makeError(ErrInvalidDigestLen, str)
	}
	return nil
}

// DeterministicK derives the signing nonce for the 32-byte private key and
// the 32-byte digest z per the HMAC-SHA256 construction of RFC6979 section
// 3.2.  The result is in [1, N) and depends only on its inputs.
//
// The private key bytes are mixed in as given, so a key that is not a valid
// scalar still produces a nonce.  Callers signing with a PrivateKey should
// use its DeterministicK method instead.
func DeterministicK(privKey, z []byte) (*big.Int, error) {
	if len(privKey) != PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d",
			len(privKey))
		return nil, makeError(ErrPrivKeyInvalidLen, str)
	}
	if err := checkDigest(z); err != nil {
		return nil, err
	}
	return nonceRFC6979(privKey, z, 0)
}

// nonceRFC6979 runs the RFC6979 generator and returns the first candidate in
// [1, N) after skipping extraIterations valid ones.  Skipping continues the
// generator exactly as a rejected candidate would, which is what signing
// needs when a nonce yields r = 0 or s = 0.
func nonceRFC6979(privKey, z []byte, extraIterations int) (*big.Int, error) {
	// Step B.
	//
	// V = 0x01 0x01 0x01 ... 0x01 such that the length of V, in bits, is
	// equal to 8*ceil(hashLen/8)
	//
	// Step C.
	//
	// K = 0x00 0x00 0x00 ... 0x00 such that the length of K, in bits, is
	// equal to 8*ceil(hashLen/8)
	v := append([]byte(nil), oneInitializer...)
	k := append([]byte(nil), zeroInitializer...)

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = hashes.HmacSha256(k, v, singleZero, privKey, z)

	// Step E.
	//
	// V = HMAC_K(V)
	v = hashes.HmacSha256(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = hashes.HmacSha256(k, v, singleOne, privKey, z)

	// Step G.
	//
	// V = HMAC_K(V)
	v = hashes.HmacSha256(k, v)

	// Step H.
	//
	// Repeat until the value is nonzero and less than the curve order.
	for i := 0; i < maxNonceIterations; i++ {
		// Step H1 and H2.
		//
		// Set T to the empty sequence.  The length of T (in bits) is
		// denoted tlen; thus, at that point, tlen = 0.
		//
		// While tlen < qlen, do the following:
		//   V = HMAC_K(V)
		//   T = T || V
		v = hashes.HmacSha256(k, v)

		// Step H3.
		//
		// k = bits2int(T)
		// If k is within the range [1,q-1], return it.
		//
		// Otherwise, compute:
		// K = HMAC_K(V || 0x00)
		// V = HMAC_K(V)
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(curveN) < 0 {
			if extraIterations == 0 {
				return candidate, nil
			}
			extraIterations--
		} else {
			log.Tracef("Rejected nonce candidate on iteration %d", i)
		}

		k = hashes.HmacSha256(k, v, singleZero)
		v = hashes.HmacSha256(k, v)
	}

	log.Warnf("Nonce derivation gave up after %d iterations",
		maxNonceIterations)
	str := fmt.Sprintf("no nonce in [1, N) after %d iterations",
		maxNonceIterations)
	return nil, makeError(ErrNonceExhausted, str)
}

// DeterministicK derives the RFC6979 signing nonce for the digest z with the
// private key.
func (k *PrivateKey) DeterministicK(z []byte) (*big.Int, error) {
	return DeterministicK(k.key[:], z)
}
