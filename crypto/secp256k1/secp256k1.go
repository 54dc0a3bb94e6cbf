// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ava-labs/nearsdk/crypto"
)

const (
	PrivateKeyLen = 32
	PublicKeyLen  = 64 // x || y, uncompressed without the 0x04 prefix
	SignatureLen  = 65 // r || s || recovery id
	DigestLen     = 32

	compactSigMagicOffset = 27
	uncompressedPrefix    = 0x04
)

type (
	PublicKey  [PublicKeyLen]byte
	PrivateKey [PrivateKeyLen]byte
	Signature  [SignatureLen]byte
)

var (
	EmptyPublicKey  = [PublicKeyLen]byte{}
	EmptyPrivateKey = [PrivateKeyLen]byte{}
	EmptySignature  = [SignatureLen]byte{}
)

// GeneratePrivateKey returns a secp256k1 private key drawn from crypto/rand.
func GeneratePrivateKey() (PrivateKey, error) {
	k, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k.Serialize()), nil
}

// PrivateKeyFromBytes checks that [b] is a scalar in [1, n).
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, fmt.Errorf("%w: must be %d bytes, got %d", crypto.ErrInvalidPrivateKey, PrivateKeyLen, len(b))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return EmptyPrivateKey, fmt.Errorf("%w: scalar out of range", crypto.ErrInvalidPrivateKey)
	}
	return PrivateKey(b), nil
}

func (p PrivateKey) key() *secp256k1.PrivateKey {
	return secp256k1.PrivKeyFromBytes(p[:])
}

// PublicKey returns the uncompressed public key without its prefix byte.
func (p PrivateKey) PublicKey() PublicKey {
	return fromPubKey(p.key().PubKey())
}

// Sign produces a deterministic (RFC6979) recoverable signature over a
// 32 byte digest.
func (p PrivateKey) Sign(digest []byte) (Signature, error) {
	if len(digest) != DigestLen {
		return EmptySignature, fmt.Errorf("%w: must be %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	// SignCompact returns [27+recid] || r || s.
	compact := ecdsa.SignCompact(p.key(), digest, false)
	var sig Signature
	copy(sig[:64], compact[1:])
	sig[64] = compact[0] - compactSigMagicOffset
	return sig, nil
}

// RecoverPublicKey returns the key that produced [s] over [digest].
func RecoverPublicKey(digest []byte, s Signature) (PublicKey, error) {
	if len(digest) != DigestLen {
		return EmptyPublicKey, fmt.Errorf("%w: must be %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	if s[64] > 3 {
		return EmptyPublicKey, fmt.Errorf("%w: recovery id %d", crypto.ErrRecoveryFailed, s[64])
	}
	compact := make([]byte, SignatureLen)
	compact[0] = s[64] + compactSigMagicOffset
	copy(compact[1:], s[:64])
	pub, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return EmptyPublicKey, fmt.Errorf("%w: %w", crypto.ErrRecoveryFailed, err)
	}
	return fromPubKey(pub), nil
}

// Verify recovers the signer of [s] and compares it to [p].
func Verify(digest []byte, p PublicKey, s Signature) bool {
	recovered, err := RecoverPublicKey(digest, s)
	if err != nil {
		return false
	}
	return recovered == p
}

// ParsePublicKey checks that [b] is a point on the curve.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return EmptyPublicKey, fmt.Errorf("%w: must be %d bytes, got %d", crypto.ErrInvalidPublicKey, PublicKeyLen, len(b))
	}
	if _, err := secp256k1.ParsePubKey(append([]byte{uncompressedPrefix}, b...)); err != nil {
		return EmptyPublicKey, fmt.Errorf("%w: %w", crypto.ErrInvalidPublicKey, err)
	}
	return PublicKey(b), nil
}

func fromPubKey(pub *secp256k1.PublicKey) PublicKey {
	return PublicKey(pub.SerializeUncompressed()[1:])
}
