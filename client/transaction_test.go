// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/nearsdk/actions"
	"github.com/ava-labs/nearsdk/api/jsonrpc"
	"github.com/ava-labs/nearsdk/auth/authtest"
	"github.com/ava-labs/nearsdk/chain"
	"github.com/ava-labs/nearsdk/client/clientmock"
	"github.com/ava-labs/nearsdk/math"
)

func TestGenerateTransaction(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	kp := authtest.SECP256K1(t)
	blockHash, err := chain.ParseBlockHash("244ZQ9cgj3CQ6bWBdytfrJMuMQ1jdXLFGnr4HhvtCTnM")
	require.NoError(err)

	accessKey := actions.FullAccessKey()
	accessKey.Nonce = 7
	provider := clientmock.NewMockProvider(ctrl)
	provider.EXPECT().ViewAccessKey(gomock.Any(), testAccount, kp.PublicKey(), jsonrpc.Final()).Return(&jsonrpc.AccessKeyView{
		AccessKey: accessKey,
		BlockHash: blockHash,
	}, nil)

	submit, tx, err := GenerateTransaction(
		context.Background(),
		provider,
		kp,
		testAccount,
		"receiver.near",
		[]actions.Action{actions.NewTransfer(math.NewUint128(1))},
	)
	require.NoError(err)
	require.Equal(uint64(8), tx.Transaction.Nonce)
	require.Equal(blockHash, tx.Transaction.BlockHash)
	require.Equal(kp.PublicKey(), tx.Transaction.PublicKey)
	require.NoError(tx.Verify())

	outcome := &jsonrpc.FinalExecutionOutcome{Status: jsonrpc.ExecutionStatus{Kind: jsonrpc.StatusSuccessValue}}
	provider.EXPECT().SendTransaction(gomock.Any(), tx).Return(outcome, nil)
	res, err := submit(context.Background())
	require.NoError(err)
	require.True(res.Status.IsSuccess())
}

func TestGenerateTransactionErrors(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	kp := authtest.ED25519(t)
	provider := clientmock.NewMockProvider(ctrl)

	_, _, err := GenerateTransaction(context.Background(), provider, kp, testAccount, "receiver.near", nil)
	require.ErrorIs(err, ErrNoActions)

	errMissing := errors.New("access key does not exist")
	provider.EXPECT().ViewAccessKey(gomock.Any(), testAccount, kp.PublicKey(), gomock.Any()).Return(nil, errMissing)
	_, _, err = GenerateTransaction(
		context.Background(),
		provider,
		kp,
		testAccount,
		"receiver.near",
		[]actions.Action{&actions.CreateAccount{}},
	)
	require.ErrorIs(err, errMissing)
}
