// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import "github.com/ava-labs/nearsdk/crypto"

// Note: these IDs are the curve tags written in front of every public key and
// signature. We explicitly assign them to avoid accidental remapping.
const (
	ED25519ID   = crypto.ED25519
	SECP256K1ID = crypto.SECP256K1

	ED25519Key   = crypto.ED25519Name
	Secp256k1Key = crypto.SECP256K1Name
)

// KeyTypes lists the supported curves in tag order.
func KeyTypes() []crypto.KeyType {
	return []crypto.KeyType{ED25519ID, SECP256K1ID}
}
