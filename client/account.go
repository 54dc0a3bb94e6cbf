// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/nearsdk/actions"
	"github.com/ava-labs/nearsdk/api/jsonrpc"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/math"
)

// Balance is an account balance in yoctoNEAR.
type Balance struct {
	Total       math.Uint128 `json:"total"`
	StateStaked math.Uint128 `json:"stateStaked"`
	Staked      math.Uint128 `json:"staked"`
	Available   math.Uint128 `json:"available"`
}

// Account reads the on-chain state of a single account.
type Account struct {
	provider  Provider
	accountID string
}

func NewAccount(provider Provider, accountID string) *Account {
	return &Account{
		provider:  provider,
		accountID: accountID,
	}
}

func (a *Account) ID() string {
	return a.accountID
}

func (a *Account) State(ctx context.Context) (*jsonrpc.AccountView, error) {
	return a.provider.ViewAccount(ctx, a.accountID, jsonrpc.Optimistic())
}

func (a *Account) AccessKey(ctx context.Context, publicKey crypto.PublicKey) (*actions.AccessKey, error) {
	view, err := a.provider.ViewAccessKey(ctx, a.accountID, publicKey, jsonrpc.Optimistic())
	if err != nil {
		return nil, err
	}
	return view.AccessKey, nil
}

func (a *Account) AccessKeys(ctx context.Context) ([]jsonrpc.AccessKeyInfo, error) {
	list, err := a.provider.ViewAccessKeyList(ctx, a.accountID, jsonrpc.Optimistic())
	if err != nil {
		return nil, err
	}
	return list.Keys, nil
}

// Balance splits the account's funds into what is locked by staking, what
// is reserved for storage and what is available to spend.
func (a *Account) Balance(ctx context.Context) (*Balance, error) {
	var (
		config *jsonrpc.ProtocolConfig
		state  *jsonrpc.AccountView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		config, err = a.provider.ProtocolConfig(gctx, jsonrpc.Final())
		return err
	})
	g.Go(func() error {
		var err error
		state, err = a.provider.ViewAccount(gctx, a.accountID, jsonrpc.Optimistic())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	costPerByte, err := config.StorageAmountPerByte()
	if err != nil {
		return nil, err
	}
	return computeBalance(state, costPerByte)
}

func computeBalance(state *jsonrpc.AccountView, costPerByte math.Uint128) (*Balance, error) {
	stateStaked, err := costPerByte.Mul64(state.StorageUsage)
	if err != nil {
		return nil, fmt.Errorf("storage cost: %w", err)
	}
	staked := state.Locked
	total, err := state.Amount.Add(staked)
	if err != nil {
		return nil, fmt.Errorf("total balance: %w", err)
	}
	available, err := total.Sub(math.Max(staked, stateStaked))
	if err != nil {
		return nil, fmt.Errorf("%w: total %s, reserved %s", ErrStorageExceedsBalance, total, math.Max(staked, stateStaked))
	}
	return &Balance{
		Total:       total,
		StateStaked: stateStaked,
		Staked:      staked,
		Available:   available,
	}, nil
}
