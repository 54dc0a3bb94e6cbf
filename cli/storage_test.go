// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/auth/authtest"
)

func TestKeyStorage(t *testing.T) {
	require := require.New(t)
	h, _ := newTestHandler(t, "")

	_, err := h.GetDefaultKey()
	require.ErrorIs(err, ErrNoKeys)

	ed := authtest.ED25519(t)
	secp := authtest.SECP256K1(t)
	require.NoError(h.StoreKey("alice.testnet", ed))
	require.NoError(h.StoreKey("bob.testnet", secp))
	require.ErrorIs(h.StoreKey("alice.testnet", ed), ErrDuplicate)

	key, err := h.GetKey(secp.PublicKey())
	require.NoError(err)
	require.Equal("bob.testnet", key.AccountID)
	require.Equal(secp.PublicKey(), key.PublicKey)
	kp, err := key.KeyPair()
	require.NoError(err)
	require.Equal(secp.String(), kp.String())

	_, err = h.GetKey(authtest.MustParse(t, authtest.TxSigner).PublicKey())
	require.ErrorIs(err, ErrKeyNotFound)

	keys, err := h.GetKeys()
	require.NoError(err)
	require.Len(keys, 2)

	require.NoError(h.StoreDefaultKey(ed.PublicKey()))
	key, err = h.GetDefaultKey()
	require.NoError(err)
	require.Equal("alice.testnet", key.AccountID)
}

func TestNetworkStorage(t *testing.T) {
	require := require.New(t)
	h, _ := newTestHandler(t, "")

	network, err := h.GetDefaultNetwork()
	require.NoError(err)
	require.Equal(DefaultNetwork, network.Name)
	require.Equal("https://rpc.testnet.near.org", network.Endpoint)

	require.NoError(h.StoreNetwork(Network{Name: "local", Endpoint: "http://127.0.0.1:3030"}))
	require.ErrorIs(h.StoreNetwork(Network{Name: "local", Endpoint: "http://127.0.0.1:3031"}), ErrDuplicate)
	require.ErrorIs(h.StoreNetwork(Network{Name: "mainnet", Endpoint: "http://127.0.0.1:3031"}), ErrDuplicate)
	require.ErrorIs(h.StoreNetwork(Network{Name: "bad", Endpoint: "127.0.0.1:3030"}), ErrInvalidEndpoint)
	require.ErrorIs(h.StoreNetwork(Network{Name: "", Endpoint: "http://127.0.0.1:3030"}), ErrUnknownNetwork)

	networks, err := h.GetNetworks()
	require.NoError(err)
	require.Len(networks, 3)
	require.Equal("mainnet", networks[0].Name)
	require.Equal("testnet", networks[1].Name)
	require.Equal("local", networks[2].Name)

	require.ErrorIs(h.StoreDefaultNetwork("missing"), ErrUnknownNetwork)
	require.NoError(h.StoreDefaultNetwork("local"))
	network, err = h.GetDefaultNetwork()
	require.NoError(err)
	require.Equal("http://127.0.0.1:3030", network.Endpoint)
}

func TestKeyCommands(t *testing.T) {
	require := require.New(t)
	h, out := newTestHandler(t, "")

	ed := authtest.ED25519(t)
	require.NoError(h.ImportKey("alice.testnet", ed.String()))
	out.Reset()

	require.NoError(h.GenerateKey("bob.testnet", authtest.SECP256K1(t).KeyType()))
	var generated keyInfo
	require.NoError(json.Unmarshal(out.Bytes(), &generated))
	require.Equal("bob.testnet", generated.AccountID)
	require.True(generated.Default)
	require.Empty(generated.SecretKey)
	out.Reset()

	require.NoError(h.SetKey(ed.PublicKey().String()))
	require.NoError(h.ListKeys())
	var listed []*keyInfo
	require.NoError(json.Unmarshal(out.Bytes(), &listed))
	require.Len(listed, 2)
	for _, info := range listed {
		require.Equal(info.PublicKey == ed.PublicKey(), info.Default)
	}
	out.Reset()

	require.NoError(h.ShowKey(true))
	var shown keyInfo
	require.NoError(json.Unmarshal(out.Bytes(), &shown))
	require.Equal(ed.String(), shown.SecretKey)

	require.ErrorIs(h.SetKey(authtest.MustParse(t, authtest.TxSigner).PublicKey().String()), ErrKeyNotFound)
}

func TestNetworkCommands(t *testing.T) {
	require := require.New(t)
	h, out := newTestHandler(t, "")

	require.NoError(h.AddNetwork("local", "http://127.0.0.1:3030"))
	require.NoError(h.SetNetwork("local"))
	require.NoError(h.ListNetworks())

	var networks []*Network
	require.NoError(json.Unmarshal(out.Bytes(), &networks))
	require.Len(networks, 3)
	require.Equal("local", networks[2].Name)
}

func TestCloseDatabase(t *testing.T) {
	require := require.New(t)
	h, _ := newTestHandler(t, "")

	require.NoError(h.CloseDatabase())
	require.NoError(h.CloseDatabase())
}
