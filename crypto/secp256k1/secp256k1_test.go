// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/crypto"
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)

	m := make(map[PrivateKey]bool)
	for i := 0; i < 10; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		require.NotEqual(EmptyPrivateKey, priv)
		require.False(m[priv], "duplicate private key generated")
		m[priv] = true
	}
}

func TestSignVerify(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	pub := priv.PublicKey()

	parsed, err := ParsePublicKey(pub[:])
	require.NoError(err)
	require.Equal(pub, parsed)

	digest := sha256.Sum256([]byte("message"))
	sig, err := priv.Sign(digest[:])
	require.NoError(err)
	require.LessOrEqual(sig[64], byte(3))
	require.True(Verify(digest[:], pub, sig))

	// Signing is deterministic.
	again, err := priv.Sign(digest[:])
	require.NoError(err)
	require.Equal(sig, again)

	recovered, err := RecoverPublicKey(digest[:], sig)
	require.NoError(err)
	require.Equal(pub, recovered)

	other := sha256.Sum256([]byte("other"))
	require.False(Verify(other[:], pub, sig))

	otherPriv, err := GeneratePrivateKey()
	require.NoError(err)
	require.False(Verify(digest[:], otherPriv.PublicKey(), sig))
}

func TestSignInvalidDigest(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	_, err = priv.Sign([]byte("message"))
	require.ErrorIs(err, crypto.ErrInvalidDigest)

	_, err = RecoverPublicKey([]byte("message"), EmptySignature)
	require.ErrorIs(err, crypto.ErrInvalidDigest)
}

func TestRecoverInvalidSignature(t *testing.T) {
	require := require.New(t)

	digest := sha256.Sum256([]byte("message"))
	sig := EmptySignature
	sig[64] = 9
	_, err := RecoverPublicKey(digest[:], sig)
	require.ErrorIs(err, crypto.ErrRecoveryFailed)

	_, err = RecoverPublicKey(digest[:], EmptySignature)
	require.ErrorIs(err, crypto.ErrRecoveryFailed)
	require.False(Verify(digest[:], EmptyPublicKey, EmptySignature))
}

func TestPrivateKeyFromBytes(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		err  error
	}{
		{
			name: "valid",
			key:  append(make([]byte, 31), 1),
		},
		{
			name: "zero",
			key:  make([]byte, PrivateKeyLen),
			err:  crypto.ErrInvalidPrivateKey,
		},
		{
			name: "overflow",
			key:  bytes.Repeat([]byte{0xff}, PrivateKeyLen),
			err:  crypto.ErrInvalidPrivateKey,
		},
		{
			name: "short",
			key:  []byte{1},
			err:  crypto.ErrInvalidPrivateKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PrivateKeyFromBytes(tt.key)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParsePublicKeyNotOnCurve(t *testing.T) {
	require := require.New(t)

	_, err := ParsePublicKey(bytes.Repeat([]byte{1}, PublicKeyLen))
	require.ErrorIs(err, crypto.ErrInvalidPublicKey)
	_, err = ParsePublicKey([]byte{1})
	require.ErrorIs(err, crypto.ErrInvalidPublicKey)
}
