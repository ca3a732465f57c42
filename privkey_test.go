// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

const (
	privKeyOne  = "0000000000000000000000000000000000000000000000000000000000000001"
	privKeyZero = "0000000000000000000000000000000000000000000000000000000000000000"
	curveOrder  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	orderMinus1 = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"
)

// TestPrivKeyFromBytes ensures private keys are only created from scalars in
// [1, N) and carry the matching public point.
func TestPrivKeyFromBytes(t *testing.T) {
	tests := []struct {
		name string
		key  string
		err  error
	}{{
		name: "one",
		key:  privKeyOne,
	}, {
		name: "order minus one",
		key:  orderMinus1,
	}, {
		name: "zero",
		key:  privKeyZero,
		err:  ErrPrivKeyOutOfRange,
	}, {
		name: "order",
		key:  curveOrder,
		err:  ErrPrivKeyOutOfRange,
	}, {
		name: "all ones",
		key:  "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		err:  ErrPrivKeyOutOfRange,
	}, {
		name: "short",
		key:  privKeyOne[2:],
		err:  ErrPrivKeyInvalidLen,
	}, {
		name: "long",
		key:  "00" + privKeyOne,
		err:  ErrPrivKeyInvalidLen,
	}}

	for _, test := range tests {
		raw := hexToBytes(t, test.key)
		k, err := PrivKeyFromBytes(raw)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			continue
		}
		if !bytes.Equal(k.Serialize(), raw) {
			t.Errorf("%s: serialize -- got %x, want %x", test.name,
				k.Serialize(), raw)
		}
		want := ScalarBaseMul(new(big.Int).SetBytes(raw))
		if !k.PubKey().Equal(want) {
			t.Errorf("%s: public key -- got %v, want %v", test.name,
				k.PubKey(), want)
		}
	}
}

// TestPrivKeyOneIsGenerator ensures the scalar 1 maps to the generator.
func TestPrivKeyOneIsGenerator(t *testing.T) {
	k, err := PrivKeyFromHex(privKeyOne)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !k.PubKey().Equal(Generator()) {
		t.Fatalf("got %v, want G", k.PubKey())
	}
	if pub, ok := k.Public().(Point); !ok || !pub.Equal(Generator()) {
		t.Fatalf("crypto public key: got %v", k.Public())
	}
}

// TestPrivKeyFromHex ensures hex decoding failures are reported.
func TestPrivKeyFromHex(t *testing.T) {
	for _, s := range []string{"zz", "0x01", privKeyOne[1:], ""} {
		if _, err := PrivKeyFromHex(s); !errors.Is(err, ErrPrivKeyInvalidLen) {
			t.Errorf("%q: mismatched err -- got %v, want %v", s, err,
				ErrPrivKeyInvalidLen)
		}
	}
}

// TestPublicFromBytes checks the public point of raw scalars, including
// zero which maps to the identity.
func TestPublicFromBytes(t *testing.T) {
	p, err := PublicFromBytes(hexToBytes(t, privKeyOne))
	if err != nil || !p.Equal(Generator()) {
		t.Fatalf("one: got %v (%v), want G", p, err)
	}
	p, err = PublicFromBytes(hexToBytes(t, privKeyZero))
	if err != nil || !p.IsInfinity() {
		t.Fatalf("zero: got %v (%v), want infinity", p, err)
	}
	_, err = PublicFromBytes(hexToBytes(t, curveOrder))
	if !errors.Is(err, ErrPrivKeyOutOfRange) {
		t.Fatalf("order: mismatched err -- got %v, want %v", err,
			ErrPrivKeyOutOfRange)
	}
	_, err = PublicFromBytes([]byte{1})
	if !errors.Is(err, ErrPrivKeyInvalidLen) {
		t.Fatalf("short: mismatched err -- got %v, want %v", err,
			ErrPrivKeyInvalidLen)
	}
}

// TestPrivKeySerializeIsCopy ensures callers cannot modify a key through its
// serialization.
func TestPrivKeySerializeIsCopy(t *testing.T) {
	k, _ := PrivKeyFromHex(privKeyOne)
	b := k.Serialize()
	b[31] = 2
	if k.Serialize()[31] != 1 {
		t.Fatal("key modified through Serialize")
	}
}
