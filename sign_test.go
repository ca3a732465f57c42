// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"bytes"
	"crypto"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ModChain/ecmath/hashes"
)

// TestSign checks deterministic signatures against known values.
func TestSign(t *testing.T) {
	msg := []byte("Hello, world")
	tests := []struct {
		name string
		key  string
		z    []byte
		r, s string
		der  string
	}{{
		name: "key 1, sha256",
		key:  privKeyOne,
		z:    hashes.Sha256(msg),
		r:    "286b5770f0190627b553b79a2b7f7faf34696ccd2ef0558938ea8181bf077fed",
		s:    "7d3c6a8a41b02497542cd7469b4f1c228cdd7c44300b824c72162a08fb101e6f",
		der: "30440220286b5770f0190627b553b79a2b7f7faf34696ccd2ef0558938ea8181" +
			"bf077fed02207d3c6a8a41b02497542cd7469b4f1c228cdd7c44300b824c7216" +
			"2a08fb101e6f",
	}, {
		name: "key 1, double sha256",
		key:  privKeyOne,
		z:    hashes.DoubleSha256(msg),
		r:    "c32b2a2a80da74741be93e84fac51065e3dadfbd824c51a8b747b7509b3497be",
		s:    "0bf03a737e9b5a65ad0c297fa84aa97c96c413340d32dd47704c63d945acd9b8",
		der: "3045022100c32b2a2a80da74741be93e84fac51065e3dadfbd824c51a8b747b7" +
			"509b3497be02200bf03a737e9b5a65ad0c297fa84aa97c96c413340d32dd47704c" +
			"63d945acd9b8",
	}, {
		name: "key N-1, sha256 abc",
		key:  orderMinus1,
		z:    hashes.Sha256([]byte("abc")),
		r:    "4a8f571b7915171905f88275618335cea401a8ace744d71789c9361901afd13e",
		s:    "53a9847f0e51a8c2ec52c120db27476285baf27b2d97a0fb5b21174f6dc93ec5",
		der: "304402204a8f571b7915171905f88275618335cea401a8ace744d71789c93619" +
			"01afd13e022053a9847f0e51a8c2ec52c120db27476285baf27b2d97a0fb5b21" +
			"174f6dc93ec5",
	}}

	for _, test := range tests {
		key, err := PrivKeyFromHex(test.key)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		sig, err := Sign(key, test.z)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if want := hexToBytes(t, test.r); !bytes.Equal(sig.R(), want) {
			t.Errorf("%s: r -- got %x, want %x", test.name, sig.R(), want)
		}
		if want := hexToBytes(t, test.s); !bytes.Equal(sig.S(), want) {
			t.Errorf("%s: s -- got %x, want %x", test.name, sig.S(), want)
		}
		der, err := sig.DER()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if want := hexToBytes(t, test.der); !bytes.Equal(der, want) {
			t.Errorf("%s: der -- got %x, want %x", test.name, der, want)
		}
		if !key.Verify(test.z, sig) {
			t.Errorf("%s: signature does not verify", test.name)
		}

		// Signing is deterministic.
		again, _ := Sign(key, test.z)
		if !again.IsEqual(sig) {
			t.Errorf("%s: signature changed between calls", test.name)
		}
	}
}

// TestSignVerifyRoundTrip signs a series of digests with a series of keys
// and checks every signature verifies with a low S.
func TestSignVerifyRoundTrip(t *testing.T) {
	for i := int64(1); i <= 5; i++ {
		d := new(big.Int).Exp(big.NewInt(31337), big.NewInt(i), curveN)
		key, err := PrivKeyFromBytes(d.FillBytes(make([]byte, 32)))
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		for j := 0; j < 3; j++ {
			z := hashes.Sha256([]byte(fmt.Sprintf("message %d/%d", i, j)))
			sig, err := Sign(key, z)
			if err != nil {
				t.Fatalf("#%d/%d: unexpected error: %v", i, j, err)
			}
			if sig.sInt().Cmp(curveHalfN) > 0 {
				t.Fatalf("#%d/%d: s is above N/2", i, j)
			}
			if !sig.Verify(z, key.PubKey()) {
				t.Fatalf("#%d/%d: signature does not verify", i, j)
			}
		}
	}
}

// TestVerifyRejects ensures tampered inputs fail verification.
func TestVerifyRejects(t *testing.T) {
	key, _ := PrivKeyFromHex(privKeyOne)
	other, _ := PrivKeyFromHex(orderMinus1)
	z := hashes.Sha256([]byte("Hello, world"))
	sig, err := Sign(key, z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flipped := append([]byte(nil), z...)
	flipped[0] ^= 0x01

	highS := new(big.Int).Sub(curveN, sig.sInt())
	zero := make([]byte, 32)
	order := curveN.Bytes()

	mustSig := func(r, s []byte) *Signature {
		t.Helper()
		sig, err := NewSignature(r, s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return sig
	}

	tests := []struct {
		name string
		z    []byte
		sig  *Signature
		pub  Point
		want bool
	}{
		{"valid", z, sig, key.PubKey(), true},
		{"high s also verifies", z, mustSig(sig.R(), highS.Bytes()), key.PubKey(), true},
		{"other digest", flipped, sig, key.PubKey(), false},
		{"other key", z, sig, other.PubKey(), false},
		{"infinity key", z, sig, Infinity(), false},
		{"short digest", z[:31], sig, key.PubKey(), false},
		{"swapped r and s", z, mustSig(sig.S(), sig.R()), key.PubKey(), false},
		{"zero r", z, mustSig(zero, sig.S()), key.PubKey(), false},
		{"zero s", z, mustSig(sig.R(), zero[:1]), key.PubKey(), false},
		{"r equal to order", z, mustSig(order, sig.S()), key.PubKey(), false},
	}

	for _, test := range tests {
		if got := test.sig.Verify(test.z, test.pub); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

// TestSignDigestLen ensures the digest length is enforced.
func TestSignDigestLen(t *testing.T) {
	key, _ := PrivKeyFromHex(privKeyOne)
	for _, z := range [][]byte{nil, make([]byte, 31), make([]byte, 33)} {
		if _, err := Sign(key, z); !errors.Is(err, ErrInvalidDigestLen) {
			t.Errorf("len %d: mismatched err -- got %v, want %v", len(z), err,
				ErrInvalidDigestLen)
		}
	}
}

// TestCryptoSigner ensures PrivateKey works through the crypto.Signer
// interface and returns DER bytes.
func TestCryptoSigner(t *testing.T) {
	key, _ := PrivKeyFromHex(privKeyOne)
	var signer crypto.Signer = key
	z := hashes.Sha256([]byte("Hello, world"))

	der, err := signer.Sign(nil, z, &SignOptions{Hash: crypto.SHA256})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sig, err := ParseDERSignature(der)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pub, ok := signer.Public().(Point)
	if !ok {
		t.Fatalf("unexpected public key type %T", signer.Public())
	}
	if !sig.Verify(z, pub) {
		t.Fatal("signature does not verify")
	}
	if (&SignOptions{Hash: crypto.SHA256}).HashFunc() != crypto.SHA256 {
		t.Fatal("unexpected hash func")
	}

	if _, err := signer.Sign(nil, z[:20], nil); !errors.Is(err, ErrInvalidDigestLen) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrInvalidDigestLen)
	}
}
