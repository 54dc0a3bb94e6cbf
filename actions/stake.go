// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/math"
)

var _ Action = (*Stake)(nil)

type Stake struct {
	Stake     math.Uint128     `json:"stake"`
	PublicKey crypto.PublicKey `json:"publicKey"`
}

func (*Stake) GetTypeID() uint8 {
	return StakeID
}

func (*Stake) Name() string {
	return StakeName
}

func (s *Stake) Size() int {
	return consts.Uint128Len + s.PublicKey.Size()
}

func (s *Stake) Marshal(p *codec.Packer) {
	p.PackUint128(s.Stake)
	s.PublicKey.Marshal(p)
}

func UnmarshalStake(p *codec.Packer) (Action, error) {
	var (
		s   Stake
		err error
	)
	s.Stake = p.UnpackUint128()
	s.PublicKey, err = crypto.UnmarshalPublicKey(p)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (*Stake) sealed() {}
