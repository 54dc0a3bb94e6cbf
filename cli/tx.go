// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ava-labs/nearsdk/actions"
	"github.com/ava-labs/nearsdk/api/jsonrpc"
	"github.com/ava-labs/nearsdk/chain"
	"github.com/ava-labs/nearsdk/cli/prompt"
	"github.com/ava-labs/nearsdk/client"
	"github.com/ava-labs/nearsdk/math"
	"github.com/ava-labs/nearsdk/utils"
)

// DefaultGas is attached to function calls when none is given (30 Tgas).
const DefaultGas uint64 = 30_000_000_000_000

const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
)

// Transfer sends [amount] yoctoNEAR from the default key's account.
func (h *Handler) Transfer(ctx context.Context, receiverID string, amount math.Uint128, skipConfirm bool) error {
	h.infof(
		"{{yellow}}transfer:{{/}} %s NEAR {{yellow}}to:{{/}} %s\n",
		utils.FormatNear(amount),
		receiverID,
	)
	return h.send(ctx, receiverID, []actions.Action{actions.NewTransfer(amount)}, skipConfirm)
}

// PromptTransfer asks for the receiver and amount when they are not given.
// The amount is bounded by the default account's available balance.
func (h *Handler) PromptTransfer(ctx context.Context, receiverID string, skipConfirm bool) error {
	if len(receiverID) == 0 {
		var err error
		receiverID, err = prompt.String("receiver", minAccountIDLen, maxAccountIDLen)
		if err != nil {
			return err
		}
	}
	account, err := h.account("")
	if err != nil {
		return err
	}
	balance, err := account.Balance(ctx)
	if err != nil {
		return err
	}
	h.infof("{{yellow}}available:{{/}} %s NEAR\n", utils.FormatNear(balance.Available))
	amount, err := prompt.Amount("amount", balance.Available, func(input math.Uint128) error {
		if input.Cmp(math.Zero) == 0 {
			return ErrZeroAmount
		}
		return nil
	})
	if err != nil {
		return err
	}
	return h.Transfer(ctx, receiverID, amount, skipConfirm)
}

// Call invokes [method] on [contractID] with JSON [args].
func (h *Handler) Call(
	ctx context.Context,
	contractID string,
	method string,
	args string,
	gas uint64,
	deposit math.Uint128,
	skipConfirm bool,
) error {
	if len(strings.TrimSpace(args)) == 0 {
		args = "{}"
	}
	call, err := actions.NewFunctionCallJSON(method, json.RawMessage(args), gas, deposit)
	if err != nil {
		return err
	}
	h.infof(
		"{{yellow}}call:{{/}} %s.%s {{yellow}}gas:{{/}} %d {{yellow}}deposit:{{/}} %s NEAR\n",
		contractID,
		method,
		gas,
		utils.FormatNear(deposit),
	)
	return h.send(ctx, contractID, []actions.Action{call}, skipConfirm)
}

func (h *Handler) send(ctx context.Context, receiverID string, actionList []actions.Action, skipConfirm bool) error {
	key, err := h.GetDefaultKey()
	if err != nil {
		return err
	}
	kp, err := key.KeyPair()
	if err != nil {
		return err
	}
	cli, err := h.Client()
	if err != nil {
		return err
	}
	submit, tx, err := client.GenerateTransaction(ctx, cli, kp, key.AccountID, receiverID, actionList)
	if err != nil {
		return err
	}
	hash, err := tx.Hash()
	if err != nil {
		return err
	}
	h.infof(
		"{{yellow}}signer:{{/}} %s {{yellow}}nonce:{{/}} %d {{yellow}}hash:{{/}} %s\n",
		key.AccountID,
		tx.Transaction.Nonce,
		hash,
	)
	if !skipConfirm {
		cont, err := prompt.Continue()
		if err != nil {
			return err
		}
		if !cont {
			return ErrAborted
		}
	}
	outcome, err := submit(ctx)
	if err != nil {
		return err
	}
	return h.printOutcome(outcome)
}

func (h *Handler) printOutcome(outcome *jsonrpc.FinalExecutionOutcome) error {
	var failure error
	if err := outcome.Status.Err(); err != nil {
		failure = fmt.Errorf("%w: %w", ErrTxFailed, err)
	}
	if ok, err := h.printJSON(outcome); ok {
		if err != nil {
			return err
		}
		return failure
	}
	for _, log := range outcome.Logs() {
		utils.Outf("{{blue}}log:{{/}} %s\n", log)
	}
	if failure != nil {
		utils.Outf("{{red}}transaction failed:{{/}} %s\n", outcome.Transaction.Hash)
		return failure
	}
	utils.Outf(
		"{{green}}transaction succeeded:{{/}} %s {{green}}status:{{/}} %s\n",
		outcome.Transaction.Hash,
		outcome.Status.Kind,
	)
	if value, err := outcome.Status.Value(); err == nil && len(value) > 0 {
		utils.Outf("{{green}}result:{{/}} %s\n", value)
	}
	return nil
}

type decodedTx struct {
	Hash        chain.Hash         `json:"hash"`
	Transaction *chain.Transaction `json:"transaction"`
	Signature   string             `json:"signature"`
	Valid       bool               `json:"valid"`
}

// Decode prints a base64 signed transaction and checks its signature.
func (h *Handler) Decode(encoded string) error {
	tx, err := chain.ParseSignedTxBase64(strings.TrimSpace(encoded))
	if err != nil {
		return err
	}
	hash, err := tx.Hash()
	if err != nil {
		return err
	}
	decoded := &decodedTx{
		Hash:        hash,
		Transaction: tx.Transaction,
		Signature:   tx.Signature.String(),
		Valid:       tx.Verify() == nil,
	}
	if ok, err := h.printJSON(decoded); ok {
		return err
	}
	body, err := json.MarshalIndent(tx.Transaction, "", "  ")
	if err != nil {
		return err
	}
	utils.Outf("{{cyan}}hash:{{/}} %s\n", decoded.Hash)
	utils.Outf("{{cyan}}transaction:{{/}}\n%s\n", body)
	utils.Outf("{{cyan}}signature:{{/}} %s\n", decoded.Signature)
	if decoded.Valid {
		utils.Outf("{{green}}signature is valid{{/}}\n")
	} else {
		utils.Outf("{{red}}signature is invalid{{/}}\n")
	}
	return nil
}

// Broadcast submits pre-signed base64 transactions without waiting for
// them to execute. Every signature is checked before anything is sent.
func (h *Handler) Broadcast(ctx context.Context, encoded []string, workers int) error {
	txs := make([]*chain.SignedTransaction, len(encoded))
	for i, s := range encoded {
		tx, err := chain.ParseSignedTxBase64(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("tx %d: %w", i, err)
		}
		txs[i] = tx
	}
	if err := chain.VerifyBatch(ctx, txs, workers); err != nil {
		return err
	}
	cli, err := h.Client()
	if err != nil {
		return err
	}
	hashes := make([]chain.Hash, 0, len(txs))
	for _, tx := range txs {
		hash, err := cli.SendTransactionAsync(ctx, tx)
		if err != nil {
			return err
		}
		hashes = append(hashes, hash)
		h.infof("{{green}}broadcast:{{/}} %s\n", hash)
	}
	_, err = h.printJSON(hashes)
	return err
}
