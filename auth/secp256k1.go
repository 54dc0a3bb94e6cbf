// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/crypto/secp256k1"
)

var _ KeyPair = (*SECP256K1KeyPair)(nil)

type SECP256K1KeyPair struct {
	priv secp256k1.PrivateKey
	raw  secp256k1.PublicKey
	pub  crypto.PublicKey
}

// NewSECP256K1KeyPair accepts a 32 byte scalar in [1, n).
func NewSECP256K1KeyPair(secret []byte) (*SECP256K1KeyPair, error) {
	priv, err := secp256k1.PrivateKeyFromBytes(secret)
	if err != nil {
		return nil, err
	}
	return newSECP256K1KeyPair(priv)
}

func GenerateSECP256K1KeyPair() (*SECP256K1KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return newSECP256K1KeyPair(priv)
}

func newSECP256K1KeyPair(priv secp256k1.PrivateKey) (*SECP256K1KeyPair, error) {
	raw := priv.PublicKey()
	pk, err := crypto.NewPublicKey(SECP256K1ID, raw[:])
	if err != nil {
		return nil, err
	}
	return &SECP256K1KeyPair{priv: priv, raw: raw, pub: pk}, nil
}

func (*SECP256K1KeyPair) KeyType() crypto.KeyType {
	return SECP256K1ID
}

func (k *SECP256K1KeyPair) Sign(digest []byte) (crypto.Signature, error) {
	sig, err := k.priv.Sign(digest)
	if err != nil {
		return crypto.EmptySignature, err
	}
	return crypto.NewSignature(SECP256K1ID, sig[:])
}

func (k *SECP256K1KeyPair) Verify(digest []byte, sig crypto.Signature) bool {
	if sig.KeyType() != SECP256K1ID {
		return false
	}
	return secp256k1.Verify(digest, k.raw, secp256k1.Signature(sig.Data()))
}

func (k *SECP256K1KeyPair) PublicKey() crypto.PublicKey {
	return k.pub
}

func (k *SECP256K1KeyPair) SecretKey() string {
	return codec.ToBase58(k.priv[:])
}

func (k *SECP256K1KeyPair) String() string {
	return crypto.JoinEncoded(SECP256K1ID, k.priv[:])
}

func (*SECP256K1KeyPair) sealed() {}
