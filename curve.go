// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"fmt"
	"math/big"
)

// fromHex converts the passed hex string into a big integer.  It is only
// meant for the hard-coded curve constants, so it panics on malformed input.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// secp256k1 domain parameters, see https://www.secg.org/sec2-v2.pdf section
// 2.4.1.  They are never modified after package initialization.
var (
	// curveP is the prime of the field the curve is defined over,
	// 2^256 - 2^32 - 977.
	curveP = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// curveN is the order of the group generated by G.
	curveN = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	// curveHalfN is N/2 rounded down, the upper bound of a low-S value.
	curveHalfN = new(big.Int).Rsh(curveN, 1)

	curveGx = fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	curveGy = fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	// fieldB is the constant b of y^2 = x^3 + b.  The curve has a = 0.
	fieldB = newFieldElement(big.NewInt(7), curveP)

	generator = Point{
		finite: true,
		x:      newFieldElement(curveGx, curveP),
		y:      newFieldElement(curveGy, curveP),
	}
)

// CurveParams holds the secp256k1 domain parameters.
type CurveParams struct {
	// P is the prime of the underlying field.
	P *big.Int

	// N is the order of the generator.
	N *big.Int

	// B is the constant of the curve equation y^2 = x^3 + B.
	B *big.Int

	// Gx and Gy are the affine coordinates of the generator.
	Gx, Gy *big.Int

	// BitSize is the size of the underlying field.
	BitSize int

	// Name is the canonical name of the curve.
	Name string
}

// Params returns the secp256k1 domain parameters.  Every call returns fresh
// copies, so callers are free to modify the result.
func Params() *CurveParams {
	return &CurveParams{
		P:       new(big.Int).Set(curveP),
		N:       new(big.Int).Set(curveN),
		B:       big.NewInt(7),
		Gx:      new(big.Int).Set(curveGx),
		Gy:      new(big.Int).Set(curveGy),
		BitSize: 256,
		Name:    "secp256k1",
	}
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}

// Point is an element of the secp256k1 group: either the point at infinity
// or a finite affine point (x, y) with y^2 = x^3 + 7 over the field of
// integers modulo P.
//
// The zero value is the point at infinity.  Finite points can only be
// obtained through NewPoint, ParsePubKey or group arithmetic, so a Point
// always lies on the curve.  Points are immutable values.
type Point struct {
	finite bool
	x, y   FieldElement
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity() Point {
	return Point{}
}

// NewPoint constructs a point from optional coordinates.  Passing nil for
// both returns the point at infinity.  Passing only one of them fails with
// ErrPointMissingCoordinate.  Coordinates from a field other than the
// secp256k1 field fail with ErrFieldMismatch and coordinates that do not
// satisfy the curve equation fail with ErrPointNotOnCurve.
func NewPoint(x, y *FieldElement) (Point, error) {
	switch {
	case x == nil && y == nil:
		return Infinity(), nil
	case x == nil || y == nil:
		return Point{}, makeError(ErrPointMissingCoordinate,
			"both x and y must be provided, or neither for the point at "+
				"infinity")
	}
	if x.prime.Cmp(curveP) != 0 || y.prime.Cmp(curveP) != 0 {
		return Point{}, makeError(ErrFieldMismatch,
			"point coordinates must belong to the secp256k1 field")
	}
	p := Point{finite: true, x: *x, y: *y}
	if !p.isOnCurve() {
		str := fmt.Sprintf("invalid secp256k1 point: x = %x, y = %x",
			x.num, y.num)
		return Point{}, makeError(ErrPointNotOnCurve, str)
	}
	return p, nil
}

// curveRHS returns x^3 + 7.
func curveRHS(x FieldElement) FieldElement {
	return x.square().mul(x).add(fieldB)
}

func (p Point) isOnCurve() bool {
	if !p.finite {
		return true
	}
	return p.y.square().Equal(curveRHS(p.x))
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// Coordinates returns the affine coordinates of p.  ok is false for the
// point at infinity.
func (p Point) Coordinates() (x, y FieldElement, ok bool) {
	return p.x, p.y, p.finite
}

// X returns a copy of the x coordinate of p, or nil for the point at
// infinity.
func (p Point) X() *big.Int {
	if !p.finite {
		return nil
	}
	return p.x.Num()
}

// Y returns a copy of the y coordinate of p, or nil for the point at
// infinity.
func (p Point) Y() *big.Int {
	if !p.finite {
		return nil
	}
	return p.y.Num()
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// String returns the point as Point(x, y) in hex or Point(infinity).
func (p Point) String() string {
	if !p.finite {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%x, %x)", p.x.num, p.y.num)
}

// Negate returns -p, the point with the same x and the negated y.
func (p Point) Negate() Point {
	if !p.finite {
		return p
	}
	return Point{finite: true, x: p.x, y: p.y.Negate()}
}

// Add returns p + q under the group law.
func (p Point) Add(q Point) Point {
	// The identity leaves the other operand unchanged.
	if !p.finite {
		return q
	}
	if !q.finite {
		return p
	}

	if p.x.Equal(q.x) {
		// Same x with a different y means q = -p.  The same point with
		// y = 0 has a vertical tangent.  Both sum to infinity.
		if !p.y.Equal(q.y) || p.y.IsZero() {
			return Infinity()
		}
		return p.double()
	}

	// s = (y2 - y1) / (x2 - x1)
	s := q.y.sub(p.y).div(q.x.sub(p.x))

	// x3 = s^2 - x1 - x2
	x3 := s.square().sub(p.x).sub(q.x)

	// y3 = s(x1 - x3) - y1
	y3 := s.mul(p.x.sub(x3)).sub(p.y)

	return Point{finite: true, x: x3, y: y3}
}

// Double returns 2p.
func (p Point) Double() Point {
	if !p.finite || p.y.IsZero() {
		return Infinity()
	}
	return p.double()
}

// double assumes p is finite with y != 0.
func (p Point) double() Point {
	// s = 3x^2 / 2y
	s := p.x.square().mulInt(three).div(p.y.mulInt(two))

	// x3 = s^2 - 2x
	x3 := s.square().sub(p.x.mulInt(two))

	// y3 = s(x - x3) - y
	y3 := s.mul(p.x.sub(x3)).sub(p.y)

	return Point{finite: true, x: x3, y: y3}
}

// ScalarMul returns k·p using double-and-add over the bits of k from least
// to most significant.  k = 0 yields the point at infinity and a negative k
// multiplies -p by |k|.  k is not reduced modulo the group order.
func (p Point) ScalarMul(k *big.Int) Point {
	coef := k
	current := p
	if k.Sign() < 0 {
		coef = new(big.Int).Neg(k)
		current = p.Negate()
	}

	result := Infinity()
	for i := 0; i < coef.BitLen(); i++ {
		if coef.Bit(i) == 1 {
			result = result.Add(current)
		}
		current = current.Add(current)
	}
	return result
}

// ScalarBaseMul returns k·G.
func ScalarBaseMul(k *big.Int) Point {
	return generator.ScalarMul(k)
}
