// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/crypto"
)

var _ Action = (*AddKey)(nil)

type AddKey struct {
	PublicKey crypto.PublicKey `json:"publicKey"`
	AccessKey *AccessKey       `json:"accessKey"`
}

func (*AddKey) GetTypeID() uint8 {
	return AddKeyID
}

func (*AddKey) Name() string {
	return AddKeyName
}

func (a *AddKey) Size() int {
	size := a.PublicKey.Size()
	if a.AccessKey != nil {
		size += a.AccessKey.Size()
	}
	return size
}

// Marshal records [ErrMissingAccessKey] on [p] if no access key is set.
func (a *AddKey) Marshal(p *codec.Packer) {
	if a.AccessKey == nil {
		p.AddErr(ErrMissingAccessKey)
		return
	}
	a.PublicKey.Marshal(p)
	a.AccessKey.Marshal(p)
}

func UnmarshalAddKey(p *codec.Packer) (Action, error) {
	pk, err := crypto.UnmarshalPublicKey(p)
	if err != nil {
		return nil, err
	}
	accessKey, err := UnmarshalAccessKey(p)
	if err != nil {
		return nil, err
	}
	return &AddKey{PublicKey: pk, AccessKey: accessKey}, nil
}

func (*AddKey) sealed() {}
