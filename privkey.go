// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey provides facilities for working with secp256k1 private keys
// within this package and includes functionality such as serializing,
// signing and deriving the associated public key.
//
// The private scalar d satisfies 0 < d < N and is set once at construction.
type PrivateKey struct {
	key    [PrivKeyBytesLen]byte
	d      *big.Int
	pubKey Point
}

// scalarFromBytes interprets exactly 32 bytes as an unsigned big-endian
// integer strictly less than the group order.
func scalarFromBytes(b []byte) (*big.Int, error) {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d",
			len(b))
		return nil, makeError(ErrPrivKeyInvalidLen, str)
	}
	d := new(big.Int).SetBytes(b)
	if d.Cmp(curveN) >= 0 {
		return nil, makeError(ErrPrivKeyOutOfRange,
			"private scalar is not less than the group order")
	}
	return d, nil
}

// PublicFromBytes interprets the 32 bytes as an unsigned integer e < N and
// returns e·G.  A zero scalar yields the point at infinity.
func PublicFromBytes(privKey []byte) (Point, error) {
	e, err := scalarFromBytes(privKey)
	if err != nil {
		return Point{}, err
	}
	return ScalarBaseMul(e), nil
}

// PrivKeyFromBytes returns a private key for the 32-byte big-endian scalar
// along with its public point.  The scalar must be in [1, N).
func PrivKeyFromBytes(privKey []byte) (*PrivateKey, error) {
	d, err := scalarFromBytes(privKey)
	if err != nil {
		return nil, err
	}
	if d.Sign() == 0 {
		return nil, makeError(ErrPrivKeyOutOfRange, "private scalar is zero")
	}

	k := &PrivateKey{d: d, pubKey: ScalarBaseMul(d)}
	copy(k.key[:], privKey)
	return k, nil
}

// PrivKeyFromHex decodes a 64 character hex string into a private key.
func PrivKeyFromHex(privKey string) (*PrivateKey, error) {
	b, err := hex.DecodeString(privKey)
	if err != nil {
		return nil, makeError(ErrPrivKeyInvalidLen,
			fmt.Sprintf("malformed private key: %v", err))
	}
	return PrivKeyFromBytes(b)
}

// PubKey returns the public point d·G of the private key.
func (k *PrivateKey) PubKey() Point {
	return k.pubKey
}

// Serialize returns the private key as a 32-byte big-endian binary-encoded
// number.
func (k *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	copy(b, k.key[:])
	return b
}

// scalar returns a copy of the private scalar.
func (k *PrivateKey) scalar() *big.Int {
	return new(big.Int).Set(k.d)
}
