// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"

	"github.com/ava-labs/nearsdk/client"
	"github.com/ava-labs/nearsdk/utils"
)

// account resolves [accountID], defaulting to the default key's account.
func (h *Handler) account(accountID string) (*client.Account, error) {
	if len(accountID) == 0 {
		key, err := h.GetDefaultKey()
		if err != nil {
			return nil, err
		}
		accountID = key.AccountID
	}
	cli, err := h.Client()
	if err != nil {
		return nil, err
	}
	h.infof("{{yellow}}account:{{/}} %s\n", accountID)
	return client.NewAccount(cli, accountID), nil
}

func (h *Handler) ViewAccount(ctx context.Context, accountID string) error {
	account, err := h.account(accountID)
	if err != nil {
		return err
	}
	state, err := account.State(ctx)
	if err != nil {
		return err
	}
	if ok, err := h.printJSON(state); ok {
		return err
	}
	utils.Outf("{{cyan}}amount:{{/}} %s NEAR\n", utils.FormatNear(state.Amount))
	utils.Outf("{{cyan}}locked:{{/}} %s NEAR\n", utils.FormatNear(state.Locked))
	utils.Outf("{{cyan}}code hash:{{/}} %s\n", state.CodeHash)
	utils.Outf("{{cyan}}storage usage:{{/}} %d bytes\n", state.StorageUsage)
	utils.Outf("{{cyan}}block:{{/}} %d %s\n", state.BlockHeight, state.BlockHash)
	return nil
}

func (h *Handler) Balance(ctx context.Context, accountID string) error {
	account, err := h.account(accountID)
	if err != nil {
		return err
	}
	balance, err := account.Balance(ctx)
	if err != nil {
		return err
	}
	if ok, err := h.printJSON(balance); ok {
		return err
	}
	utils.Outf("{{cyan}}total:{{/}} %s NEAR\n", utils.FormatNear(balance.Total))
	utils.Outf("{{cyan}}state staked:{{/}} %s NEAR\n", utils.FormatNear(balance.StateStaked))
	utils.Outf("{{cyan}}staked:{{/}} %s NEAR\n", utils.FormatNear(balance.Staked))
	utils.Outf("{{green}}available:{{/}} %s NEAR\n", utils.FormatNear(balance.Available))
	return nil
}

func (h *Handler) AccessKeys(ctx context.Context, accountID string) error {
	account, err := h.account(accountID)
	if err != nil {
		return err
	}
	keys, err := account.AccessKeys(ctx)
	if err != nil {
		return err
	}
	if ok, err := h.printJSON(keys); ok {
		return err
	}
	utils.Outf("{{cyan}}access keys:{{/}} %d\n", len(keys))
	for i, key := range keys {
		permission := "full access"
		if !key.AccessKey.IsFullAccess() {
			permission = "function call"
		}
		utils.Outf(
			"%d) {{cyan}}public key:{{/}} %s {{cyan}}nonce:{{/}} %d {{cyan}}permission:{{/}} %s\n",
			i,
			key.PublicKey,
			key.AccessKey.Nonce,
			permission,
		)
	}
	return nil
}
