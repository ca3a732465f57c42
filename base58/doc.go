// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and
Base58Check encodings.

# Modified Base58 Encoding

Standard base58 encoding is similar to standard base64 encoding except, as
the name implies, it uses a 58 character alphabet which results in an
alphanumeric string and allows some characters which are problematic for
humans to be excluded.  Due to this, there can be various base58 alphabets.

The modified base58 alphabet used here omits the 0, O, I, and l characters
that look the same in many fonts.

# Base58Check Encoding Scheme

The Base58Check encoding scheme is primarily used for addresses.  It
appends a four byte checksum, the first four bytes of the double SHA-256 of
the payload, before encoding.  CheckDecode rejects any string whose
checksum does not match, which catches typing mistakes.
*/
package base58
