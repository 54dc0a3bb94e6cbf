// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import "github.com/ava-labs/nearsdk/crypto"

// KeyPair signs messages for one of the supported curves.
//
// The set of implementations is closed: [*ED25519KeyPair] and
// [*SECP256K1KeyPair]. Values are immutable and safe for concurrent use.
type KeyPair interface {
	KeyType() crypto.KeyType
	// Sign returns a signature over [msg]. Ed25519 signs the raw bytes,
	// secp256k1 requires a 32 byte digest.
	Sign(msg []byte) (crypto.Signature, error)
	// Verify never errors: any malformed input is reported as false.
	Verify(msg []byte, sig crypto.Signature) bool
	PublicKey() crypto.PublicKey
	// SecretKey returns the base58 encoding of the secret bytes.
	SecretKey() string
	// String returns "<curve>:<base58 secret>".
	String() string

	sealed()
}
