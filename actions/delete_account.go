// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/ava-labs/nearsdk/codec"

var _ Action = (*DeleteAccount)(nil)

// DeleteAccount removes the receiver account and sends its remaining balance
// to BeneficiaryID.
type DeleteAccount struct {
	BeneficiaryID string `json:"beneficiaryId"`
}

func (*DeleteAccount) GetTypeID() uint8 {
	return DeleteAccountID
}

func (*DeleteAccount) Name() string {
	return DeleteAccountName
}

func (d *DeleteAccount) Size() int {
	return codec.StringLen(d.BeneficiaryID)
}

func (d *DeleteAccount) Marshal(p *codec.Packer) {
	p.PackString(d.BeneficiaryID)
}

func UnmarshalDeleteAccount(p *codec.Packer) (Action, error) {
	var d DeleteAccount
	d.BeneficiaryID = p.UnpackString()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (*DeleteAccount) sealed() {}
