// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecmath

import (
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/ModChain/ecmath/base58"
	"github.com/ModChain/ecmath/hashes"
)

// AddressFromPubKey returns the pay-to-pubkey-hash address of pub on the
// given network: the Base58Check encoding of the network's
// PubKeyHashAddrID followed by hash160 of the SEC serialization of pub.
// compressed selects the 33-byte or the 65-byte serialization.  A nil net
// selects the main network.
func AddressFromPubKey(pub Point, compressed bool, net *chaincfg.Params) (string, error) {
	if net == nil {
		net = &chaincfg.MainNetParams
	}

	var sec []byte
	var err error
	if compressed {
		sec, err = pub.SerializeCompressed()
	} else {
		sec, err = pub.SerializeUncompressed()
	}
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, 1+hashes.Ripemd160Size)
	payload = append(payload, net.PubKeyHashAddrID)
	payload = append(payload, hashes.Hash160(sec)...)
	return base58.CheckEncode(payload), nil
}

// Address returns the pay-to-pubkey-hash address of the key's public point.
func (k *PrivateKey) Address(compressed bool, net *chaincfg.Params) (string, error) {
	return AddressFromPubKey(k.pubKey, compressed, net)
}
