// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific field, point or key Error.
const (
	// ErrFieldOutOfRange is returned when constructing a field element whose
	// value is negative or not strictly less than the prime.
	ErrFieldOutOfRange = ErrorKind("ErrFieldOutOfRange")

	// ErrFieldMismatch is returned when combining two field elements that
	// belong to fields with different primes.
	ErrFieldMismatch = ErrorKind("ErrFieldMismatch")

	// ErrDivisionByZero is returned when dividing a field element by the
	// zero element.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrSqrtUnsupported is returned when a square root is requested in a
	// field whose prime is not congruent to 3 modulo 4.
	ErrSqrtUnsupported = ErrorKind("ErrSqrtUnsupported")

	// ErrPointNotOnCurve is returned when the supplied coordinates do not
	// satisfy y^2 = x^3 + 7 over the secp256k1 field.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrPointMissingCoordinate is returned when exactly one of the two
	// coordinates of a point is supplied.
	ErrPointMissingCoordinate = ErrorKind("ErrPointMissingCoordinate")

	// ErrPointAtInfinity is returned when attempting to serialize the point
	// at infinity or when an operation that requires a finite point is
	// handed the identity.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrPubKeyInvalidLen indicates that the length of a serialized public
	// key is not one of the allowed lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat indicates an attempt was made to parse a public
	// key that does not specify one of the supported formats.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig indicates that the x coordinate for a public key
	// is greater than or equal to the prime of the field underlying the group.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig indicates that the y coordinate for a public key is
	// greater than or equal to the prime of the field underlying the group.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve indicates that a public key is not a point on the
	// secp256k1 curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPrivKeyInvalidLen is returned when a private key is not exactly
	// 32 bytes.
	ErrPrivKeyInvalidLen = ErrorKind("ErrPrivKeyInvalidLen")

	// ErrPrivKeyOutOfRange is returned when a private scalar is zero or not
	// less than the group order.
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrInvalidDigestLen is returned when a message digest handed to the
	// signing or verification routines is not 32 bytes.
	ErrInvalidDigestLen = ErrorKind("ErrInvalidDigestLen")

	// ErrNonceExhausted is returned when deterministic nonce derivation
	// fails to produce a value in [1, N) within the iteration limit.
	ErrNonceExhausted = ErrorKind("ErrNonceExhausted")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field, curve, key or signature
// handling.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
