// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

// GenerateSharedSecret generates a shared secret based on a private key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x, as 32 big-endian bytes.
//
// It is recommended to securely hash the result before using as a
// cryptographic key.
func GenerateSharedSecret(privkey *PrivateKey, pubkey Point) ([]byte, error) {
	if pubkey.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity,
			"cannot derive a shared secret with the point at infinity")
	}
	result := pubkey.ScalarMul(privkey.d)
	if result.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity,
			"shared point is the point at infinity")
	}
	return result.x.Bytes(), nil
}

// ECDH generates a shared secret and is an alias to GenerateSharedSecret,
// however by being part of the private key it is closer to go's own ecdh
// api.
func (privkey *PrivateKey) ECDH(remote Point) ([]byte, error) {
	return GenerateSharedSecret(privkey, remote)
}
