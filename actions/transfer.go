// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/math"
)

var _ Action = (*Transfer)(nil)

type Transfer struct {
	// Deposit is denominated in yoctoNEAR.
	Deposit math.Uint128 `json:"deposit"`
}

func (*Transfer) GetTypeID() uint8 {
	return TransferID
}

func (*Transfer) Name() string {
	return TransferName
}

func (*Transfer) Size() int {
	return consts.Uint128Len
}

func (t *Transfer) Marshal(p *codec.Packer) {
	p.PackUint128(t.Deposit)
}

func UnmarshalTransfer(p *codec.Packer) (Action, error) {
	var t Transfer
	t.Deposit = p.UnpackUint128()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (*Transfer) sealed() {}
