// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/crypto/ed25519"
)

var _ KeyPair = (*ED25519KeyPair)(nil)

type ED25519KeyPair struct {
	priv ed25519.PrivateKey
	pub  crypto.PublicKey
}

// NewED25519KeyPair accepts the 64 byte seed|publicKey secret.
func NewED25519KeyPair(secret []byte) (*ED25519KeyPair, error) {
	priv, err := ed25519.PrivateKeyFromBytes(secret)
	if err != nil {
		return nil, err
	}
	return newED25519KeyPair(priv)
}

// ED25519KeyPairFromSeed derives the key pair for a 32 byte seed.
func ED25519KeyPairFromSeed(seed []byte) (*ED25519KeyPair, error) {
	priv, err := ed25519.PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return newED25519KeyPair(priv)
}

func GenerateED25519KeyPair() (*ED25519KeyPair, error) {
	priv, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return newED25519KeyPair(priv)
}

func newED25519KeyPair(priv ed25519.PrivateKey) (*ED25519KeyPair, error) {
	pub := priv.PublicKey()
	pk, err := crypto.NewPublicKey(ED25519ID, pub[:])
	if err != nil {
		return nil, err
	}
	return &ED25519KeyPair{priv: priv, pub: pk}, nil
}

func (*ED25519KeyPair) KeyType() crypto.KeyType {
	return ED25519ID
}

func (k *ED25519KeyPair) Sign(msg []byte) (crypto.Signature, error) {
	sig := ed25519.Sign(msg, k.priv)
	return crypto.NewSignature(ED25519ID, sig[:])
}

func (k *ED25519KeyPair) Verify(msg []byte, sig crypto.Signature) bool {
	if sig.KeyType() != ED25519ID {
		return false
	}
	return verifyED25519(msg, k.pub, sig)
}

func (k *ED25519KeyPair) PublicKey() crypto.PublicKey {
	return k.pub
}

func (k *ED25519KeyPair) SecretKey() string {
	return codec.ToBase58(k.priv[:])
}

func (k *ED25519KeyPair) String() string {
	return crypto.JoinEncoded(ED25519ID, k.priv[:])
}

func (*ED25519KeyPair) sealed() {}

func verifyED25519(msg []byte, pk crypto.PublicKey, sig crypto.Signature) bool {
	return ed25519.Verify(msg, ed25519.PublicKey(pk.Data()), ed25519.Signature(sig.Data()))
}
