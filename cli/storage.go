// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/crypto"
)

const (
	defaultPrefix = 0x0
	keyPrefix     = 0x1
	networkPrefix = 0x2

	defaultKeyKey     = "key"
	defaultNetworkKey = "network"

	DefaultNetwork = "testnet"
)

// StoredKey is a key pair together with the account it signs for.
type StoredKey struct {
	AccountID string           `json:"accountId"`
	PublicKey crypto.PublicKey `json:"publicKey"`
	SecretKey string           `json:"secretKey"`
}

func (s *StoredKey) KeyPair() (auth.KeyPair, error) {
	return auth.ParseKeyPair(s.SecretKey)
}

type Network struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}

var builtinNetworks = []Network{
	{Name: "mainnet", Endpoint: "https://rpc.mainnet.near.org"},
	{Name: "testnet", Endpoint: "https://rpc.testnet.near.org"},
}

func prefixedKey(prefix byte, key string) []byte {
	k := make([]byte, 1+len(key))
	k[0] = prefix
	copy(k[1:], key)
	return k
}

func (h *Handler) StoreDefault(key string, value []byte) error {
	return h.db.Put(prefixedKey(defaultPrefix, key), value)
}

func (h *Handler) GetDefault(key string) ([]byte, error) {
	v, err := h.db.Get(prefixedKey(defaultPrefix, key))
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (h *Handler) StoreKey(accountID string, kp auth.KeyPair) error {
	publicKey := kp.PublicKey()
	k := prefixedKey(keyPrefix, publicKey.String())
	has, err := h.db.Has(k)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrDuplicate, publicKey)
	}
	v, err := json.Marshal(&StoredKey{
		AccountID: accountID,
		PublicKey: publicKey,
		SecretKey: kp.String(),
	})
	if err != nil {
		return err
	}
	return h.db.Put(k, v)
}

func (h *Handler) GetKey(publicKey crypto.PublicKey) (*StoredKey, error) {
	v, err := h.db.Get(prefixedKey(keyPrefix, publicKey.String()))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, publicKey)
	}
	if err != nil {
		return nil, err
	}
	var key StoredKey
	if err := json.Unmarshal(v, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// GetKeys returns every stored key, ordered by public key.
func (h *Handler) GetKeys() ([]*StoredKey, error) {
	keys := []*StoredKey{}
	err := h.db.Iterate([]byte{keyPrefix}, func(_ []byte, value []byte) error {
		var key StoredKey
		if err := json.Unmarshal(value, &key); err != nil {
			return err
		}
		keys = append(keys, &key)
		return nil
	})
	return keys, err
}

func (h *Handler) StoreDefaultKey(pk crypto.PublicKey) error {
	return h.StoreDefault(defaultKeyKey, []byte(pk.String()))
}

func (h *Handler) GetDefaultKey() (*StoredKey, error) {
	v, err := h.GetDefault(defaultKeyKey)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, ErrNoKeys
	}
	publicKey, err := crypto.ParsePublicKey(string(v))
	if err != nil {
		return nil, err
	}
	return h.GetKey(publicKey)
}

// StoreNetwork registers a custom network. Built-in names are reserved.
func (h *Handler) StoreNetwork(network Network) error {
	if len(network.Name) == 0 {
		return fmt.Errorf("%w: empty name", ErrUnknownNetwork)
	}
	u, err := url.ParseRequestURI(network.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, network.Endpoint)
	}
	for _, builtin := range builtinNetworks {
		if builtin.Name == network.Name {
			return fmt.Errorf("%w: %s is built in", ErrDuplicate, network.Name)
		}
	}
	k := prefixedKey(networkPrefix, network.Name)
	has, err := h.db.Has(k)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrDuplicate, network.Name)
	}
	v, err := json.Marshal(&network)
	if err != nil {
		return err
	}
	return h.db.Put(k, v)
}

func (h *Handler) GetNetwork(name string) (*Network, error) {
	for _, builtin := range builtinNetworks {
		if builtin.Name == name {
			network := builtin
			return &network, nil
		}
	}
	v, err := h.db.Get(prefixedKey(networkPrefix, name))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}
	if err != nil {
		return nil, err
	}
	var network Network
	if err := json.Unmarshal(v, &network); err != nil {
		return nil, err
	}
	return &network, nil
}

// GetNetworks returns the built-in networks followed by the stored ones
// in name order.
func (h *Handler) GetNetworks() ([]*Network, error) {
	stored := []*Network{}
	err := h.db.Iterate([]byte{networkPrefix}, func(_ []byte, value []byte) error {
		var network Network
		if err := json.Unmarshal(value, &network); err != nil {
			return err
		}
		stored = append(stored, &network)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].Name < stored[j].Name })

	networks := make([]*Network, 0, len(builtinNetworks)+len(stored))
	for i := range builtinNetworks {
		network := builtinNetworks[i]
		networks = append(networks, &network)
	}
	return append(networks, stored...), nil
}

func (h *Handler) StoreDefaultNetwork(name string) error {
	if _, err := h.GetNetwork(name); err != nil {
		return err
	}
	return h.StoreDefault(defaultNetworkKey, []byte(name))
}

// GetDefaultNetwork falls back to [DefaultNetwork] when none was set.
func (h *Handler) GetDefaultNetwork() (*Network, error) {
	v, err := h.GetDefault(defaultNetworkKey)
	if err != nil {
		return nil, err
	}
	name := DefaultNetwork
	if len(v) > 0 {
		name = string(v)
	}
	return h.GetNetwork(name)
}

func (h *Handler) CloseDatabase() error {
	if h.db == nil {
		return nil
	}
	if err := h.db.Close(); err != nil {
		return fmt.Errorf("unable to close database: %w", err)
	}
	// Allow DB to be closed multiple times
	h.db = nil
	return nil
}
