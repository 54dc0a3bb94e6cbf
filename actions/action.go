// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
)

// Action is one of the eight on-chain operations a transaction carries.
//
// The set is closed. Use a type switch over the concrete pointer types to
// inspect an action.
type Action interface {
	// GetTypeID is the wire discriminant.
	GetTypeID() uint8
	// Name is a human readable label ("Function Call", ...).
	Name() string
	// Size is the encoded payload size, without the discriminant.
	Size() int
	// Marshal writes the payload, without the discriminant.
	Marshal(p *codec.Packer)

	sealed()
}

// Size returns the encoded size of [a] including its discriminant.
func Size(a Action) int {
	return consts.ByteLen + a.Size()
}

// Marshal writes the discriminant of [a] followed by its payload.
func Marshal(p *codec.Packer, a Action) {
	p.PackByte(a.GetTypeID())
	a.Marshal(p)
}

// Unmarshal reads a discriminant and the payload it selects. Unknown
// discriminants are reported as [codec.ErrUnknownVariant].
func Unmarshal(p *codec.Packer) (Action, error) {
	tag := p.UnpackByte()
	if err := p.Err(); err != nil {
		return nil, err
	}
	switch tag {
	case CreateAccountID:
		return UnmarshalCreateAccount(p)
	case DeployContractID:
		return UnmarshalDeployContract(p)
	case FunctionCallID:
		return UnmarshalFunctionCall(p)
	case TransferID:
		return UnmarshalTransfer(p)
	case StakeID:
		return UnmarshalStake(p)
	case AddKeyID:
		return UnmarshalAddKey(p)
	case DeleteKeyID:
		return UnmarshalDeleteKey(p)
	case DeleteAccountID:
		return UnmarshalDeleteAccount(p)
	default:
		p.UnknownVariant("Action", tag)
		return nil, p.Err()
	}
}

// MarshalActions writes a u32 count followed by each action.
func MarshalActions(p *codec.Packer, actions []Action) {
	codec.PackSlice(p, actions, Marshal)
}

// UnmarshalActions reads a list written by [MarshalActions].
func UnmarshalActions(p *codec.Packer) ([]Action, error) {
	n := p.UnpackLen(consts.ByteLen)
	if err := p.Err(); err != nil {
		return nil, err
	}
	actions := make([]Action, 0, n)
	for i := 0; i < n; i++ {
		action, err := Unmarshal(p)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// SizeActions returns the encoded size of a list of actions.
func SizeActions(actions []Action) int {
	size := consts.IntLen
	for _, action := range actions {
		size += Size(action)
	}
	return size
}

type namedAction struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON renders [a] as {"name": ..., "value": {...}}.
func MarshalJSON(a Action) ([]byte, error) {
	value, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return json.Marshal(namedAction{Name: a.Name(), Value: value})
}

// UnmarshalJSON parses the output of [MarshalJSON].
func UnmarshalJSON(b []byte) (Action, error) {
	var named namedAction
	if err := json.Unmarshal(b, &named); err != nil {
		return nil, err
	}
	var action Action
	switch named.Name {
	case CreateAccountName:
		action = &CreateAccount{}
	case DeployContractName:
		action = &DeployContract{}
	case FunctionCallName:
		action = &FunctionCall{}
	case TransferName:
		action = &Transfer{}
	case StakeName:
		action = &Stake{}
	case AddKeyName:
		action = &AddKey{}
	case DeleteKeyName:
		action = &DeleteKey{}
	case DeleteAccountName:
		action = &DeleteAccount{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, named.Name)
	}
	if len(named.Value) > 0 {
		if err := json.Unmarshal(named.Value, action); err != nil {
			return nil, fmt.Errorf("%s: %w", named.Name, err)
		}
	}
	return action, nil
}
