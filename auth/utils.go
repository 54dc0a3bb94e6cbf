// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/crypto/secp256k1"
)

// NewKeyPair loads raw secret bytes for [keyType].
func NewKeyPair(keyType crypto.KeyType, secret []byte) (KeyPair, error) {
	switch keyType {
	case ED25519ID:
		return NewED25519KeyPair(secret)
	case SECP256K1ID:
		return NewSECP256K1KeyPair(secret)
	default:
		return nil, fmt.Errorf("%w: %d", crypto.ErrUnknownCurve, keyType)
	}
}

// GenerateKeyPair draws a new key from crypto/rand. Failures of the random
// source are returned as-is.
func GenerateKeyPair(keyType crypto.KeyType) (KeyPair, error) {
	switch keyType {
	case ED25519ID:
		return GenerateED25519KeyPair()
	case SECP256K1ID:
		return GenerateSECP256K1KeyPair()
	default:
		return nil, fmt.Errorf("%w: %d", crypto.ErrUnknownCurve, keyType)
	}
}

// ParseKeyPair loads "<curve>:<base58 secret>". A string without a curve
// prefix is an ed25519 secret.
func ParseKeyPair(s string) (KeyPair, error) {
	keyType, encoded, err := crypto.SplitEncoded(s)
	if err != nil {
		return nil, err
	}
	secret, err := crypto.DecodeBase58(encoded, -1)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(keyType, secret)
}

// Verify checks [sig] over [msg] against [pk] without a secret key.
func Verify(msg []byte, pk crypto.PublicKey, sig crypto.Signature) bool {
	if pk.KeyType() != sig.KeyType() {
		return false
	}
	switch pk.KeyType() {
	case ED25519ID:
		return verifyED25519(msg, pk, sig)
	case SECP256K1ID:
		return secp256k1.Verify(msg, secp256k1.PublicKey(pk.Data()), secp256k1.Signature(sig.Data()))
	default:
		return false
	}
}
