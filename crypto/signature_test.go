// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
)

func TestSignatureRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, keyType := range []KeyType{ED25519, SECP256K1} {
		data := bytes.Repeat([]byte{0x5a}, keyType.SignatureLen())
		sig, err := NewSignature(keyType, data)
		require.NoError(err)
		require.Equal(data, sig.Data())

		parsed, err := ParseSignature(sig.String())
		require.NoError(err)
		require.True(sig == parsed)

		p := codec.NewWriter(sig.Size(), consts.NetworkSizeLimit)
		sig.Marshal(p)
		require.NoError(p.Err())

		r := codec.NewReader(p.Bytes(), consts.NetworkSizeLimit)
		decoded, err := UnmarshalSignature(r)
		require.NoError(err)
		require.NoError(r.Finish())
		require.Equal(sig, decoded)
	}
}

func TestNewSignatureErrors(t *testing.T) {
	require := require.New(t)

	_, err := NewSignature(ED25519, make([]byte, SECP256K1SignatureLen))
	require.ErrorIs(err, ErrInvalidSignature)
	require.ErrorIs(err, ErrSignature)

	_, err = NewSignature(KeyType(7), make([]byte, ED25519SignatureLen))
	require.ErrorIs(err, ErrUnknownCurve)
}
