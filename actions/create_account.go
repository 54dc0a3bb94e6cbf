// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/ava-labs/nearsdk/codec"

var _ Action = (*CreateAccount)(nil)

// CreateAccount creates the receiver account. It has no payload.
type CreateAccount struct{}

func (*CreateAccount) GetTypeID() uint8 {
	return CreateAccountID
}

func (*CreateAccount) Name() string {
	return CreateAccountName
}

func (*CreateAccount) Size() int {
	return 0
}

func (*CreateAccount) Marshal(*codec.Packer) {}

func UnmarshalCreateAccount(*codec.Packer) (Action, error) {
	return &CreateAccount{}, nil
}

func (*CreateAccount) sealed() {}
