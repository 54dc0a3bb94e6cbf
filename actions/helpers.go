// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"encoding/json"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/math"
)

// NewFunctionCallJSON encodes [args] as JSON, which is what most contracts
// expect.
func NewFunctionCallJSON(methodName string, args any, gas uint64, deposit math.Uint128) (*FunctionCall, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s args: %w", methodName, err)
	}
	return &FunctionCall{
		MethodName: methodName,
		Args:       b,
		Gas:        gas,
		Deposit:    deposit,
	}, nil
}

// NewFunctionCallBorsh encodes [args] with borsh for contracts that take
// binary input. [args] must be a value borsh-go can serialize.
func NewFunctionCallBorsh(methodName string, args any, gas uint64, deposit math.Uint128) (*FunctionCall, error) {
	b, err := borsh.Serialize(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s args: %w", methodName, err)
	}
	return &FunctionCall{
		MethodName: methodName,
		Args:       b,
		Gas:        gas,
		Deposit:    deposit,
	}, nil
}

func NewTransfer(deposit math.Uint128) *Transfer {
	return &Transfer{Deposit: deposit}
}

func NewStake(stake math.Uint128, pk crypto.PublicKey) *Stake {
	return &Stake{Stake: stake, PublicKey: pk}
}

func NewAddKey(pk crypto.PublicKey, accessKey *AccessKey) *AddKey {
	return &AddKey{PublicKey: pk, AccessKey: accessKey}
}

func NewDeleteKey(pk crypto.PublicKey) *DeleteKey {
	return &DeleteKey{PublicKey: pk}
}

func NewDeleteAccount(beneficiaryID string) *DeleteAccount {
	return &DeleteAccount{BeneficiaryID: beneficiaryID}
}

func NewDeployContract(code []byte) *DeployContract {
	return &DeployContract{Code: code}
}
