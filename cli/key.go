// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/cli/prompt"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/utils"
)

type keyInfo struct {
	AccountID string           `json:"accountId"`
	PublicKey crypto.PublicKey `json:"publicKey"`
	Default   bool             `json:"default"`
	SecretKey string           `json:"secretKey,omitempty"`
}

// GenerateKey creates a key for [accountID] and makes it the default.
func (h *Handler) GenerateKey(accountID string, keyType crypto.KeyType) error {
	kp, err := auth.GenerateKeyPair(keyType)
	if err != nil {
		return err
	}
	return h.addKey(accountID, kp, "created")
}

// ImportKey stores an existing "<curve>:<base58>" secret and makes it the
// default. An empty [secret] is read from an interactive prompt.
func (h *Handler) ImportKey(accountID string, secret string) error {
	var (
		kp  auth.KeyPair
		err error
	)
	if len(secret) == 0 {
		kp, err = prompt.Secret("secret key")
	} else {
		kp, err = auth.ParseKeyPair(secret)
	}
	if err != nil {
		return err
	}
	return h.addKey(accountID, kp, "imported")
}

func (h *Handler) addKey(accountID string, kp auth.KeyPair, verb string) error {
	if err := h.StoreKey(accountID, kp); err != nil {
		return err
	}
	if err := h.StoreDefaultKey(kp.PublicKey()); err != nil {
		return err
	}
	if ok, err := h.printJSON(&keyInfo{AccountID: accountID, PublicKey: kp.PublicKey(), Default: true}); ok {
		return err
	}
	utils.Outf(
		"{{green}}%s key:{{/}} %s {{green}}account:{{/}} %s\n",
		verb,
		kp.PublicKey(),
		accountID,
	)
	return nil
}

func (h *Handler) ListKeys() error {
	keys, err := h.GetKeys()
	if err != nil {
		return err
	}
	var defaultKey crypto.PublicKey
	if key, err := h.GetDefaultKey(); err == nil {
		defaultKey = key.PublicKey
	}
	infos := make([]*keyInfo, len(keys))
	for i, key := range keys {
		infos[i] = &keyInfo{
			AccountID: key.AccountID,
			PublicKey: key.PublicKey,
			Default:   key.PublicKey == defaultKey,
		}
	}
	if ok, err := h.printJSON(infos); ok {
		return err
	}
	if len(keys) == 0 {
		utils.Outf("{{red}}no stored keys{{/}}\n")
		return nil
	}
	utils.Outf("{{cyan}}stored keys:{{/}} %d\n", len(keys))
	for i, info := range infos {
		marker := ""
		if info.Default {
			marker = " {{yellow}}(default){{/}}"
		}
		utils.Outf(
			"%d) {{cyan}}account:{{/}} %s {{cyan}}public key:{{/}} %s"+marker+"\n",
			i,
			info.AccountID,
			info.PublicKey,
		)
	}
	return nil
}

// SetKey makes [publicKey] the default key. When it is empty the key is
// chosen interactively.
func (h *Handler) SetKey(publicKey string) error {
	if len(publicKey) > 0 {
		pk, err := crypto.ParsePublicKey(publicKey)
		if err != nil {
			return err
		}
		if _, err := h.GetKey(pk); err != nil {
			return err
		}
		return h.StoreDefaultKey(pk)
	}

	keys, err := h.GetKeys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return ErrNoKeys
	}
	utils.Outf("{{cyan}}stored keys:{{/}} %d\n", len(keys))
	for i, key := range keys {
		utils.Outf(
			"%d) {{cyan}}account:{{/}} %s {{cyan}}public key:{{/}} %s\n",
			i,
			key.AccountID,
			key.PublicKey,
		)
	}

	// Select key
	keyIndex, err := prompt.Choice("set default key", len(keys))
	if err != nil {
		return err
	}
	return h.StoreDefaultKey(keys[keyIndex].PublicKey)
}

// ShowKey prints the default key, including its secret when asked to.
func (h *Handler) ShowKey(showSecret bool) error {
	key, err := h.GetDefaultKey()
	if err != nil {
		return err
	}
	info := &keyInfo{
		AccountID: key.AccountID,
		PublicKey: key.PublicKey,
		Default:   true,
	}
	if showSecret {
		info.SecretKey = key.SecretKey
	}
	if ok, err := h.printJSON(info); ok {
		return err
	}
	utils.Outf("{{cyan}}account:{{/}} %s\n", info.AccountID)
	utils.Outf("{{cyan}}public key:{{/}} %s\n", info.PublicKey)
	if showSecret {
		utils.Outf("{{red}}secret key:{{/}} %s\n", info.SecretKey)
	}
	return nil
}
