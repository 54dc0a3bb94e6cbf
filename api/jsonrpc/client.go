// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ava-labs/nearsdk/chain"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/requester"
)

const (
	queryViewAccount       = "view_account"
	queryViewAccessKey     = "view_access_key"
	queryViewAccessKeyList = "view_access_key_list"
	queryCallFunction      = "call_function"

	changesAllAccessKeys   = "all_access_key_changes"
	changesSingleAccessKey = "single_access_key_changes"
	changesAccount         = "account_changes"
	changesData            = "data_changes"
	changesContractCode    = "contract_code_changes"
)

// noParams is sent for methods that take no arguments. The node rejects a
// null params field.
var noParams = []any{}

// JSONRPCClient talks to a node's JSON-RPC interface.
type JSONRPCClient struct {
	requester *requester.EndpointRequester

	networkLock sync.Mutex
	network     *Network
}

func NewJSONRPCClient(uri string, opts ...requester.Option) (*JSONRPCClient, error) {
	req, err := requester.New(uri, opts...)
	if err != nil {
		return nil, err
	}
	return &JSONRPCClient{requester: req}, nil
}

// SetNetwork pins the network returned by [Network] so it is never fetched.
func (cli *JSONRPCClient) SetNetwork(network Network) {
	cli.networkLock.Lock()
	defer cli.networkLock.Unlock()

	cli.network = &network
}

// Network returns the node's chain id. The first successful answer is
// cached for the life of the client.
func (cli *JSONRPCClient) Network(ctx context.Context) (Network, error) {
	cli.networkLock.Lock()
	defer cli.networkLock.Unlock()

	if cli.network != nil {
		return *cli.network, nil
	}
	status, err := cli.Status(ctx)
	if err != nil {
		return Network{}, err
	}
	cli.network = &Network{
		Name:    status.ChainID,
		ChainID: status.ChainID,
	}
	return *cli.network, nil
}

func (cli *JSONRPCClient) Status(ctx context.Context) (*StatusResult, error) {
	resp := new(StatusResult)
	err := cli.requester.SendRequest(
		ctx,
		"status",
		noParams,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) NetworkInfo(ctx context.Context) (*NetworkInfoResult, error) {
	resp := new(NetworkInfoResult)
	err := cli.requester.SendRequest(
		ctx,
		"network_info",
		noParams,
		resp,
	)
	return resp, err
}

// SendTransaction broadcasts [tx] and waits until it has executed.
func (cli *JSONRPCClient) SendTransaction(ctx context.Context, tx *chain.SignedTransaction) (*FinalExecutionOutcome, error) {
	encoded, err := tx.Base64()
	if err != nil {
		return nil, err
	}
	resp := new(FinalExecutionOutcome)
	err = cli.requester.SendRequest(
		ctx,
		"broadcast_tx_commit",
		[]string{encoded},
		resp,
	)
	return resp, err
}

// SendTransactionAsync broadcasts [tx] and returns its hash without waiting
// for execution.
func (cli *JSONRPCClient) SendTransactionAsync(ctx context.Context, tx *chain.SignedTransaction) (chain.Hash, error) {
	encoded, err := tx.Base64()
	if err != nil {
		return chain.EmptyHash, err
	}
	var resp chain.Hash
	err = cli.requester.SendRequest(
		ctx,
		"broadcast_tx_async",
		[]string{encoded},
		&resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) TxStatus(ctx context.Context, txHash chain.Hash, senderID string) (*FinalExecutionOutcome, error) {
	resp := new(FinalExecutionOutcome)
	err := cli.requester.SendRequest(
		ctx,
		"tx",
		[]string{txHash.String(), senderID},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) TxStatusWithReceipts(ctx context.Context, txHash chain.Hash, senderID string) (*FinalExecutionOutcome, error) {
	resp := new(FinalExecutionOutcome)
	err := cli.requester.SendRequest(
		ctx,
		"EXPERIMENTAL_tx_status",
		[]string{txHash.String(), senderID},
		resp,
	)
	return resp, err
}

// Query sends a raw "query" request and decodes the result into [reply].
// Errors reported inside the result are returned as [ErrQuery].
func (cli *JSONRPCClient) Query(ctx context.Context, params map[string]any, reply any) error {
	var raw json.RawMessage
	if err := cli.requester.SendRequest(ctx, "query", params, &raw); err != nil {
		return err
	}
	var qerr queryError
	if err := json.Unmarshal(raw, &qerr); err == nil && qerr.Error != "" {
		return fmt.Errorf("%w: %s", ErrQuery, qerr.Error)
	}
	return json.Unmarshal(raw, reply)
}

func (cli *JSONRPCClient) query(ctx context.Context, requestType string, ref BlockReference, extra map[string]any, reply any) error {
	params := ref.params()
	params["request_type"] = requestType
	for k, v := range extra {
		params[k] = v
	}
	return cli.Query(ctx, params, reply)
}

func (cli *JSONRPCClient) ViewAccount(ctx context.Context, accountID string, ref BlockReference) (*AccountView, error) {
	resp := new(AccountView)
	err := cli.query(ctx, queryViewAccount, ref, map[string]any{
		"account_id": accountID,
	}, resp)
	return resp, err
}

func (cli *JSONRPCClient) ViewAccessKey(ctx context.Context, accountID string, publicKey crypto.PublicKey, ref BlockReference) (*AccessKeyView, error) {
	resp := new(AccessKeyView)
	err := cli.query(ctx, queryViewAccessKey, ref, map[string]any{
		"account_id": accountID,
		"public_key": publicKey.String(),
	}, resp)
	return resp, err
}

func (cli *JSONRPCClient) ViewAccessKeyList(ctx context.Context, accountID string, ref BlockReference) (*AccessKeyList, error) {
	resp := new(AccessKeyList)
	err := cli.query(ctx, queryViewAccessKeyList, ref, map[string]any{
		"account_id": accountID,
	}, resp)
	return resp, err
}

// CallFunction runs a view method of a contract. [args] are passed to the
// contract as-is.
func (cli *JSONRPCClient) CallFunction(ctx context.Context, accountID string, method string, args []byte, ref BlockReference) (*CallResult, error) {
	resp := new(CallResult)
	err := cli.query(ctx, queryCallFunction, ref, map[string]any{
		"account_id":  accountID,
		"method_name": method,
		"args_base64": base64.StdEncoding.EncodeToString(args),
	}, resp)
	return resp, err
}

func (cli *JSONRPCClient) Block(ctx context.Context, ref BlockReference) (*BlockResult, error) {
	resp := new(BlockResult)
	err := cli.requester.SendRequest(
		ctx,
		"block",
		ref.params(),
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) BlockChanges(ctx context.Context, ref BlockReference) (*BlockChangesResult, error) {
	resp := new(BlockChangesResult)
	err := cli.requester.SendRequest(
		ctx,
		"EXPERIMENTAL_changes_in_block",
		ref.params(),
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Chunk(ctx context.Context, id ChunkID) (*ChunkResult, error) {
	resp := new(ChunkResult)
	err := cli.requester.SendRequest(
		ctx,
		"chunk",
		id.params(),
		resp,
	)
	return resp, err
}

// GasPrice returns the gas price at [blockID], or at the latest block when
// [blockID] is nil.
func (cli *JSONRPCClient) GasPrice(ctx context.Context, blockID *BlockID) (*GasPriceResult, error) {
	resp := new(GasPriceResult)
	err := cli.requester.SendRequest(
		ctx,
		"gas_price",
		[]*BlockID{blockID},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GenesisConfig(ctx context.Context) (*ProtocolConfig, error) {
	resp := new(ProtocolConfig)
	err := cli.requester.SendRequest(
		ctx,
		"EXPERIMENTAL_genesis_config",
		noParams,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) ProtocolConfig(ctx context.Context, ref BlockReference) (*ProtocolConfig, error) {
	resp := new(ProtocolConfig)
	err := cli.requester.SendRequest(
		ctx,
		"EXPERIMENTAL_protocol_config",
		ref.params(),
		resp,
	)
	return resp, err
}

// Validators returns the validator set of the epoch containing [blockID],
// or of the current epoch when [blockID] is nil.
func (cli *JSONRPCClient) Validators(ctx context.Context, blockID *BlockID) (*EpochValidatorInfo, error) {
	resp := new(EpochValidatorInfo)
	err := cli.requester.SendRequest(
		ctx,
		"validators",
		[]*BlockID{blockID},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) changes(ctx context.Context, changesType string, ref BlockReference, extra map[string]any) (*ChangesResult, error) {
	params := ref.params()
	params["changes_type"] = changesType
	for k, v := range extra {
		params[k] = v
	}
	resp := new(ChangesResult)
	err := cli.requester.SendRequest(
		ctx,
		"EXPERIMENTAL_changes",
		params,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) AccessKeyChanges(ctx context.Context, accountIDs []string, ref BlockReference) (*ChangesResult, error) {
	return cli.changes(ctx, changesAllAccessKeys, ref, map[string]any{
		"account_ids": accountIDs,
	})
}

func (cli *JSONRPCClient) SingleAccessKeyChanges(ctx context.Context, keys []AccessKeyWithPublicKey, ref BlockReference) (*ChangesResult, error) {
	return cli.changes(ctx, changesSingleAccessKey, ref, map[string]any{
		"keys": keys,
	})
}

func (cli *JSONRPCClient) AccountChanges(ctx context.Context, accountIDs []string, ref BlockReference) (*ChangesResult, error) {
	return cli.changes(ctx, changesAccount, ref, map[string]any{
		"account_ids": accountIDs,
	})
}

// ContractStateChanges reports storage changes of the given contracts,
// restricted to keys starting with [keyPrefix].
func (cli *JSONRPCClient) ContractStateChanges(ctx context.Context, accountIDs []string, keyPrefix []byte, ref BlockReference) (*ChangesResult, error) {
	return cli.changes(ctx, changesData, ref, map[string]any{
		"account_ids":       accountIDs,
		"key_prefix_base64": base64.StdEncoding.EncodeToString(keyPrefix),
	})
}

func (cli *JSONRPCClient) ContractCodeChanges(ctx context.Context, accountIDs []string, ref BlockReference) (*ChangesResult, error) {
	return cli.changes(ctx, changesContractCode, ref, map[string]any{
		"account_ids": accountIDs,
	})
}
