// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package authtest holds fixed key material shared by tests.
package authtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/auth"
)

const (
	ED25519Secret    = "5JueXZhEEVqGVT5powZ5twyPP8wrap2K7RdAYGGdjBwiBdd7Hh6aQxMP1u3Ma9Yanq1nEv32EW7u8kUJsZ6f315C"
	ED25519PublicKey = "ed25519:EWrekY1deMND7N3Q7Dixxj12wD7AVjFRt2H9q21QHUSW"

	SECP256K1Secret    = "Cqmi5vHc59U1MHhq7JCxTSJentvVBYMcKGUA7s7kwnKn"
	SECP256K1PublicKey = "secp256k1:45KcWwYt6MYRnnWFSxyQVkuu9suAzxoSkUMEnFNBi9kDayTo5YPUaqMWUrf7YHUDNMMj3w75vKuvfAMgfiFXBy28"

	// TxSigner is the ed25519 key the reference transaction is signed with.
	TxSigner = "ed25519:2wyRcSwSuHtRVmkMCGjPwnzZmQLeXLzLLyED1NDMt4BjnKgQL6tF85yBx6Jr26D2dUNeC716RBoTxntVHsegogYw"
)

// MustParse loads an encoded key pair or fails the test.
func MustParse(tb testing.TB, s string) auth.KeyPair {
	tb.Helper()
	kp, err := auth.ParseKeyPair(s)
	require.NoError(tb, err)
	return kp
}

// ED25519 returns the fixed ed25519 key pair.
func ED25519(tb testing.TB) auth.KeyPair {
	return MustParse(tb, ED25519Secret)
}

// SECP256K1 returns the fixed secp256k1 key pair.
func SECP256K1(tb testing.TB) auth.KeyPair {
	return MustParse(tb, "secp256k1:"+SECP256K1Secret)
}
