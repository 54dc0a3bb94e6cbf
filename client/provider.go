// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:generate go run go.uber.org/mock/mockgen -package=clientmock -destination=clientmock/provider.go . Provider

package client

import (
	"context"

	"github.com/ava-labs/nearsdk/api/jsonrpc"
	"github.com/ava-labs/nearsdk/chain"
	"github.com/ava-labs/nearsdk/crypto"
)

var _ Provider = (*jsonrpc.JSONRPCClient)(nil)

// Provider is the subset of the node interface the account helpers use.
// [jsonrpc.JSONRPCClient] implements it.
type Provider interface {
	SendTransaction(ctx context.Context, tx *chain.SignedTransaction) (*jsonrpc.FinalExecutionOutcome, error)
	ViewAccount(ctx context.Context, accountID string, ref jsonrpc.BlockReference) (*jsonrpc.AccountView, error)
	ViewAccessKey(ctx context.Context, accountID string, publicKey crypto.PublicKey, ref jsonrpc.BlockReference) (*jsonrpc.AccessKeyView, error)
	ViewAccessKeyList(ctx context.Context, accountID string, ref jsonrpc.BlockReference) (*jsonrpc.AccessKeyList, error)
	ProtocolConfig(ctx context.Context, ref jsonrpc.BlockReference) (*jsonrpc.ProtocolConfig, error)
}
