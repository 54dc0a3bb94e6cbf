// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"fmt"

	"github.com/ava-labs/nearsdk/actions"
	"github.com/ava-labs/nearsdk/api/jsonrpc"
	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/chain"
)

// GenerateTransaction builds and signs a transaction from [signerID] to
// [receiverID]. The nonce is one past the access key's current nonce and
// the block hash is the one the access key was read at.
//
// The returned function broadcasts the transaction and waits for its
// outcome. Nothing is sent until it is called.
func GenerateTransaction(
	ctx context.Context,
	provider Provider,
	keyPair auth.KeyPair,
	signerID string,
	receiverID string,
	actionList []actions.Action,
) (func(context.Context) (*jsonrpc.FinalExecutionOutcome, error), *chain.SignedTransaction, error) {
	if len(actionList) == 0 {
		return nil, nil, ErrNoActions
	}

	publicKey := keyPair.PublicKey()
	accessKey, err := provider.ViewAccessKey(ctx, signerID, publicKey, jsonrpc.Final())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to fetch access key %s", err, publicKey)
	}

	tx := chain.NewTx(
		signerID,
		publicKey,
		accessKey.AccessKey.Nonce+1,
		receiverID,
		accessKey.BlockHash,
		actionList,
	)
	signed, err := tx.Sign(keyPair)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to sign transaction", err)
	}

	return func(ictx context.Context) (*jsonrpc.FinalExecutionOutcome, error) {
		return provider.SendTransaction(ictx, signed)
	}, signed, nil
}
