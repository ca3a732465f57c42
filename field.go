// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"fmt"
	"math/big"
)

var (
	zero  = big.NewInt(0)
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// FieldElement is an element of the finite field of integers modulo a prime.
//
// A FieldElement is immutable: every arithmetic method returns a freshly
// allocated element and never modifies its receiver or arguments, so values
// may be shared freely between goroutines.  The zero value is not a valid
// element; use NewFieldElement.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// NewFieldElement returns the element num of the field of integers modulo
// prime.  It fails with ErrFieldOutOfRange unless 0 <= num < prime.
//
// The primality of prime is not checked.
func NewFieldElement(num, prime *big.Int) (FieldElement, error) {
	if num == nil || prime == nil {
		return FieldElement{}, makeError(ErrFieldOutOfRange,
			"field element requires both a value and a prime")
	}
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		str := fmt.Sprintf("%x is not in the field [0, %x)", num, prime)
		return FieldElement{}, makeError(ErrFieldOutOfRange, str)
	}
	return FieldElement{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// newFieldElement wraps an already reduced value without copying.  The
// caller hands over ownership of num.
func newFieldElement(num, prime *big.Int) FieldElement {
	return FieldElement{num: num, prime: prime}
}

// Num returns a copy of the integer value of the element.
func (f FieldElement) Num() *big.Int {
	return new(big.Int).Set(f.num)
}

// Prime returns a copy of the prime of the field the element belongs to.
func (f FieldElement) Prime() *big.Int {
	return new(big.Int).Set(f.prime)
}

// IsZero reports whether the element is the additive identity.
func (f FieldElement) IsZero() bool {
	return f.num.Sign() == 0
}

// IsOdd reports whether the integer value of the element is odd.
func (f FieldElement) IsOdd() bool {
	return f.num.Bit(0) == 1
}

// Equal reports whether both elements have the same value and belong to the
// same field.
func (f FieldElement) Equal(o FieldElement) bool {
	return f.num.Cmp(o.num) == 0 && f.prime.Cmp(o.prime) == 0
}

// Bytes returns the big-endian value of the element left padded with zeros
// to the byte length of the prime.
func (f FieldElement) Bytes() []byte {
	size := (f.prime.BitLen() + 7) / 8
	return f.num.FillBytes(make([]byte, size))
}

// String returns the element as FieldElement_<prime>(<num>) in hex.
func (f FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%x(%x)", f.prime, f.num)
}

func (f FieldElement) checkField(o FieldElement, op string) error {
	if f.prime.Cmp(o.prime) != 0 {
		str := fmt.Sprintf("cannot %s elements of fields %x and %x", op,
			f.prime, o.prime)
		return makeError(ErrFieldMismatch, str)
	}
	return nil
}

// Add returns f + o.
func (f FieldElement) Add(o FieldElement) (FieldElement, error) {
	if err := f.checkField(o, "add"); err != nil {
		return FieldElement{}, err
	}
	return f.add(o), nil
}

// Sub returns f - o.
func (f FieldElement) Sub(o FieldElement) (FieldElement, error) {
	if err := f.checkField(o, "subtract"); err != nil {
		return FieldElement{}, err
	}
	return f.sub(o), nil
}

// Mul returns f * o.
func (f FieldElement) Mul(o FieldElement) (FieldElement, error) {
	if err := f.checkField(o, "multiply"); err != nil {
		return FieldElement{}, err
	}
	return f.mul(o), nil
}

// Div returns f / o, that is f multiplied by the multiplicative inverse of
// o.  The inverse is o^(prime-2), which relies on prime being prime.
func (f FieldElement) Div(o FieldElement) (FieldElement, error) {
	if err := f.checkField(o, "divide"); err != nil {
		return FieldElement{}, err
	}
	if o.IsZero() {
		return FieldElement{}, makeError(ErrDivisionByZero,
			"cannot divide by the zero element")
	}
	return f.div(o), nil
}

// Negate returns the additive inverse of the element.
func (f FieldElement) Negate() FieldElement {
	n := new(big.Int).Neg(f.num)
	return newFieldElement(n.Mod(n, f.prime), f.prime)
}

// Pow returns f^exponent.  A negative exponent is reduced modulo prime-1,
// the order of the multiplicative group, so for |e| < prime-1 it is
// evaluated as prime-1-|e|.
func (f FieldElement) Pow(exponent *big.Int) FieldElement {
	exp := exponent
	if exp.Sign() < 0 {
		groupOrder := new(big.Int).Sub(f.prime, one)
		if groupOrder.Sign() <= 0 {
			exp = zero
		} else {
			exp = new(big.Int).Mod(exp, groupOrder)
		}
	}
	return newFieldElement(modPow(f.num, exp, f.prime), f.prime)
}

// Sqrt returns a square root of the element computed as
// num^((prime+1)/4).  Only one of the two roots is returned; the other one
// is its negation.  When the element is not a quadratic residue the result
// squared will not equal the element, so callers that need a guarantee
// must check it.
//
// The exponent trick only holds for primes congruent to 3 modulo 4, which
// includes the secp256k1 field prime.  Other primes yield
// ErrSqrtUnsupported.
func (f FieldElement) Sqrt() (FieldElement, error) {
	if new(big.Int).Mod(f.prime, four).Cmp(three) != 0 {
		str := fmt.Sprintf("square root unsupported for prime %x", f.prime)
		return FieldElement{}, makeError(ErrSqrtUnsupported, str)
	}
	return f.sqrt(), nil
}

// The unexported operations skip the field check.  They back the curve
// arithmetic where every element is known to share the secp256k1 prime.

func (f FieldElement) add(o FieldElement) FieldElement {
	n := new(big.Int).Add(f.num, o.num)
	return newFieldElement(n.Mod(n, f.prime), f.prime)
}

func (f FieldElement) sub(o FieldElement) FieldElement {
	n := new(big.Int).Sub(f.num, o.num)
	return newFieldElement(n.Mod(n, f.prime), f.prime)
}

func (f FieldElement) mul(o FieldElement) FieldElement {
	n := new(big.Int).Mul(f.num, o.num)
	return newFieldElement(n.Mod(n, f.prime), f.prime)
}

func (f FieldElement) square() FieldElement {
	return f.mul(f)
}

// inverse returns f^(prime-2).  The zero element maps to zero.
func (f FieldElement) inverse() FieldElement {
	exp := new(big.Int).Sub(f.prime, two)
	return newFieldElement(modPow(f.num, exp, f.prime), f.prime)
}

func (f FieldElement) div(o FieldElement) FieldElement {
	return f.mul(o.inverse())
}

func (f FieldElement) sqrt() FieldElement {
	exp := new(big.Int).Add(f.prime, one)
	exp.Rsh(exp, 2)
	return newFieldElement(modPow(f.num, exp, f.prime), f.prime)
}

// mulInt returns f multiplied by the small constant c.
func (f FieldElement) mulInt(c *big.Int) FieldElement {
	n := new(big.Int).Mul(f.num, c)
	return newFieldElement(n.Mod(n, f.prime), f.prime)
}

// modPow computes base^exp mod m by square-and-multiply, walking the bits of
// exp from least to most significant.  exp must not be negative.
func modPow(base, exp, m *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result.Mod(result, m)
}
