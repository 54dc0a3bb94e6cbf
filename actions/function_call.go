// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/math"
)

var _ Action = (*FunctionCall)(nil)

type FunctionCall struct {
	MethodName string       `json:"methodName"`
	Args       codec.Bytes  `json:"args"`
	Gas        uint64       `json:"gas"`
	Deposit    math.Uint128 `json:"deposit"`
}

func (*FunctionCall) GetTypeID() uint8 {
	return FunctionCallID
}

func (*FunctionCall) Name() string {
	return FunctionCallName
}

func (f *FunctionCall) Size() int {
	return codec.StringLen(f.MethodName) + codec.BytesLen(f.Args) + consts.Uint64Len + consts.Uint128Len
}

func (f *FunctionCall) Marshal(p *codec.Packer) {
	p.PackString(f.MethodName)
	p.PackBytes(f.Args)
	p.PackUint64(f.Gas)
	p.PackUint128(f.Deposit)
}

func UnmarshalFunctionCall(p *codec.Packer) (Action, error) {
	var f FunctionCall
	f.MethodName = p.UnpackString()
	f.Args = p.UnpackBytes()
	f.Gas = p.UnpackUint64()
	f.Deposit = p.UnpackUint128()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (*FunctionCall) sealed() {}
