// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/ava-labs/nearsdk/codec"

var _ Action = (*DeployContract)(nil)

type DeployContract struct {
	// Code is the compiled contract.
	Code codec.Bytes `json:"code"`
}

func (*DeployContract) GetTypeID() uint8 {
	return DeployContractID
}

func (*DeployContract) Name() string {
	return DeployContractName
}

func (d *DeployContract) Size() int {
	return codec.BytesLen(d.Code)
}

func (d *DeployContract) Marshal(p *codec.Packer) {
	p.PackBytes(d.Code)
}

func UnmarshalDeployContract(p *codec.Packer) (Action, error) {
	var d DeployContract
	d.Code = p.UnpackBytes()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (*DeployContract) sealed() {}
