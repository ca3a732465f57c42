// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"errors"
	"testing"

	"github.com/ModChain/ecmath/hashes"
)

// TestDeterministicK checks RFC6979 nonces against known values.
func TestDeterministicK(t *testing.T) {
	msg := []byte("Hello, world")
	tests := []struct {
		name string
		key  string
		z    []byte
		want string
	}{{
		name: "key 1, sha256",
		key:  privKeyOne,
		z:    hashes.Sha256(msg),
		want: "8fc7795566c7334fafe97624b655e2e4223988a150773243f75c4b5d9774f740",
	}, {
		name: "key 1, double sha256",
		key:  privKeyOne,
		z:    hashes.DoubleSha256(msg),
		want: "a13eadba29ac81390b8ac4243398cd072c28645e9b790e23ad4642d148bdad57",
	}}

	for _, test := range tests {
		k, err := DeterministicK(hexToBytes(t, test.key), test.z)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if want := hexToBig(t, test.want); k.Cmp(want) != 0 {
			t.Errorf("%s: got %x, want %x", test.name, k, want)
			continue
		}

		// Repeated derivation is stable and matches the key method.
		priv, _ := PrivKeyFromHex(test.key)
		again, err := priv.DeterministicK(test.z)
		if err != nil || again.Cmp(k) != 0 {
			t.Errorf("%s: unstable nonce %x (%v)", test.name, again, err)
		}
	}
}

// TestDeterministicKInputs ensures malformed inputs are rejected.
func TestDeterministicKInputs(t *testing.T) {
	z := hashes.Sha256([]byte("x"))
	if _, err := DeterministicK([]byte{1}, z); !errors.Is(err, ErrPrivKeyInvalidLen) {
		t.Errorf("short key: mismatched err -- got %v, want %v", err,
			ErrPrivKeyInvalidLen)
	}
	key := hexToBytes(t, privKeyOne)
	if _, err := DeterministicK(key, z[:31]); !errors.Is(err, ErrInvalidDigestLen) {
		t.Errorf("short digest: mismatched err -- got %v, want %v", err,
			ErrInvalidDigestLen)
	}
}

// TestNonceExtraIterations ensures skipped candidates continue the generator
// and produce distinct nonces.
func TestNonceExtraIterations(t *testing.T) {
	key := hexToBytes(t, privKeyOne)
	z := hashes.Sha256([]byte("Hello, world"))
	seen := make(map[string]int)
	for i := 0; i < 4; i++ {
		k, err := nonceRFC6979(key, z, i)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		if k.Sign() <= 0 || k.Cmp(curveN) >= 0 {
			t.Fatalf("#%d: nonce %x out of range", i, k)
		}
		if prev, ok := seen[k.String()]; ok {
			t.Fatalf("#%d: nonce repeats iteration %d", i, prev)
		}
		seen[k.String()] = i
	}

	first, _ := nonceRFC6979(key, z, 0)
	want, _ := DeterministicK(key, z)
	if first.Cmp(want) != 0 {
		t.Fatalf("got %x, want %x", first, want)
	}

	if _, err := nonceRFC6979(key, z, maxNonceIterations); !errors.Is(err, ErrNonceExhausted) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrNonceExhausted)
	}
}
