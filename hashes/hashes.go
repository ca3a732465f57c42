// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashes provides the digest and keyed-MAC primitives consumed by
// the curve, signature and address code.  Each function returns a freshly
// allocated slice.
package hashes

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

const (
	// Sha256Size is the size in bytes of a SHA-256 digest.
	Sha256Size = chainhash.HashSize

	// Ripemd160Size is the size in bytes of a RIPEMD-160 digest.
	Ripemd160Size = ripemd160.Size
)

// Sha256 returns sha256(b).
func Sha256(b []byte) []byte {
	return chainhash.HashB(b)
}

// DoubleSha256 returns sha256(sha256(b)).
func DoubleSha256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// Ripemd160 returns ripemd160(b).
func Ripemd160(b []byte) []byte {
	rmd := ripemd160.New()
	rmd.Write(b)
	return rmd.Sum(nil)
}

// Hash160 returns ripemd160(sha256(sha256(b))).
//
// Note this applies SHA-256 twice before RIPEMD-160, unlike the Bitcoin
// HASH160 which applies it once.  Addresses produced from it are therefore
// not interchangeable with Bitcoin addresses for the same key.
func Hash160(b []byte) []byte {
	return Ripemd160(DoubleSha256(b))
}

// HmacSha256 returns HMAC-SHA256 keyed with key over the concatenation of
// parts.
func HmacSha256(key []byte, parts ...[]byte) []byte {
	return mac(sha256.New, key, parts)
}

// HmacSha512 returns HMAC-SHA512 keyed with key over the concatenation of
// parts.
func HmacSha512(key []byte, parts ...[]byte) []byte {
	return mac(sha512.New, key, parts)
}

func mac(h func() hash.Hash, key []byte, parts [][]byte) []byte {
	m := hmac.New(h, key)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}
