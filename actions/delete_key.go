// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/crypto"
)

var _ Action = (*DeleteKey)(nil)

type DeleteKey struct {
	PublicKey crypto.PublicKey `json:"publicKey"`
}

func (*DeleteKey) GetTypeID() uint8 {
	return DeleteKeyID
}

func (*DeleteKey) Name() string {
	return DeleteKeyName
}

func (d *DeleteKey) Size() int {
	return d.PublicKey.Size()
}

func (d *DeleteKey) Marshal(p *codec.Packer) {
	d.PublicKey.Marshal(p)
}

func UnmarshalDeleteKey(p *codec.Packer) (Action, error) {
	pk, err := crypto.UnmarshalPublicKey(p)
	if err != nil {
		return nil, err
	}
	return &DeleteKey{PublicKey: pk}, nil
}

func (*DeleteKey) sealed() {}
