// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"crypto"
	"io"
	"math/big"
)

// SignOptions carries the hash function that produced a digest handed to
// PrivateKey.Sign.  Signing does not depend on it.
type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// inverseModN returns v^(N-2) mod N, the inverse of v modulo the prime group
// order.
func inverseModN(v *big.Int) *big.Int {
	return modPow(v, new(big.Int).Sub(curveN, two), curveN)
}

// Sign generates an ECDSA signature over the secp256k1 curve for the 32-byte
// digest z using the private key.  The nonce is derived per RFC6979, so the
// same key and digest always give the same signature, and S is canonical:
// it never exceeds N/2.
//
// z is interpreted as an unsigned big-endian integer and reduced modulo N.
func Sign(key *PrivateKey, z []byte) (*Signature, error) {
	if err := checkDigest(z); err != nil {
		return nil, err
	}
	e := new(big.Int).SetBytes(z)
	d := key.scalar()

	for iteration := 0; ; iteration++ {
		k, err := nonceRFC6979(key.key[:], z, iteration)
		if err != nil {
			return nil, err
		}

		// r = (k·G).x mod N
		R := ScalarBaseMul(k)
		r := R.X()
		r.Mod(r, curveN)
		if r.Sign() == 0 {
			log.Debugf("Nonce produced r = 0 on iteration %d, retrying",
				iteration)
			continue
		}

		// s = k^-1 (z + r·d) mod N
		s := new(big.Int).Mul(r, d)
		s.Add(s, e)
		s.Mul(s, inverseModN(k))
		s.Mod(s, curveN)
		if s.Sign() == 0 {
			log.Debugf("Nonce produced s = 0 on iteration %d, retrying",
				iteration)
			continue
		}

		// Both s and N - s verify, only the lower one is emitted.
		if s.Cmp(curveHalfN) > 0 {
			s.Sub(curveN, s)
		}
		return newSignatureFromInts(r, s), nil
	}
}

// Verify reports whether sig is a valid signature of the 32-byte digest z
// for the public key pub.  R and S must be in [1, N).
func (sig *Signature) Verify(z []byte, pub Point) bool {
	if len(z) != DigestLen || pub.IsInfinity() {
		return false
	}
	r, s := sig.rInt(), sig.sInt()
	if r.Sign() == 0 || r.Cmp(curveN) >= 0 {
		return false
	}
	if s.Sign() == 0 || s.Cmp(curveN) >= 0 {
		return false
	}

	// u = z·s^-1 mod N, v = r·s^-1 mod N
	sInv := inverseModN(s)
	u := new(big.Int).SetBytes(z)
	u.Mul(u, sInv)
	u.Mod(u, curveN)
	v := new(big.Int).Mul(r, sInv)
	v.Mod(v, curveN)

	// The signature is valid when (u·G + v·P).x mod N == r.
	total := ScalarBaseMul(u).Add(pub.ScalarMul(v))
	if total.IsInfinity() {
		return false
	}
	x := total.X()
	return x.Mod(x, curveN).Cmp(r) == 0
}

// Verify reports whether sig is a valid signature of the digest z for the
// public key of k.
func (k *PrivateKey) Verify(z []byte, sig *Signature) bool {
	return sig.Verify(z, k.pubKey)
}

// Sign will sign the provided digest, returning the resulting signature in
// DER format.  rand is ignored because the nonce is deterministic and opts
// may be nil.  It makes PrivateKey a crypto.Signer.
func (k *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig, err := Sign(k, digest)
	if err != nil {
		return nil, err
	}
	return sig.DER()
}

// Public returns the public point of the key.
func (k *PrivateKey) Public() crypto.PublicKey {
	return k.pubKey
}

var _ crypto.Signer = (*PrivateKey)(nil)
