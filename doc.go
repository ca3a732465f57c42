// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecmath implements secp256k1 elliptic curve arithmetic and ECDSA
signatures from first principles on top of math/big.

The curve is y^2 = x^3 + 7 over the field of integers modulo
P = 2^256 - 2^32 - 977.  See https://www.secg.org/sec2-v2.pdf for details on
the standard.

An overview of the features provided by this package are as follows:

  - FieldElement type for exact arithmetic modulo an arbitrary prime
  - Point type for the secp256k1 group with an explicit point at infinity
  - Point addition, doubling, negation and scalar multiplication
  - Public key serialization and parsing in the compressed and uncompressed
    SEC formats
  - Private key parsing and serialization
  - Nonce generation via RFC6979
  - Deterministic ECDSA signing with canonical low S values and verification
  - DER signature encoding and strict parsing
  - ECDH shared secrets
  - Pay-to-pubkey-hash addresses through the base58 and hashes sub packages

Every failure on caller input is reported as an Error wrapping one of the
ErrorKind values, so callers can match it with errors.Is or errors.As.

The arithmetic is not constant time and must not be used where timing side
channels matter.

Logging is disabled by default.  Call UseLogger with a btclog.Logger to
trace nonce derivation.
*/
package ecmath
