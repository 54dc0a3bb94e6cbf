// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Note: the type IDs are the wire discriminants of each action and equal its
// position in the declared order. Reordering them changes the hash of every
// transaction, so they are assigned explicitly and must never change.
const (
	CreateAccountID  uint8 = 0
	DeployContractID uint8 = 1
	FunctionCallID   uint8 = 2
	TransferID       uint8 = 3
	StakeID          uint8 = 4
	AddKeyID         uint8 = 5
	DeleteKeyID      uint8 = 6
	DeleteAccountID  uint8 = 7
)

const (
	CreateAccountName  = "Create Account"
	DeployContractName = "Deploy Contract"
	FunctionCallName   = "Function Call"
	TransferName       = "Transfer"
	StakeName          = "Stake"
	AddKeyName         = "Add Key"
	DeleteKeyName      = "Delete Key"
	DeleteAccountName  = "Delete Account"
)

// Access key permission tags.
const (
	FunctionCallPermissionID uint8 = 0
	FullAccessPermissionID   uint8 = 1
)

const (
	fullAccessLiteral = "FullAccess"
	functionCallKey   = "FunctionCall"
)
