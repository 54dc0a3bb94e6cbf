// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "errors"

var (
	ErrDuplicate       = errors.New("duplicate")
	ErrNoKeys          = errors.New("no available keys")
	ErrKeyNotFound     = errors.New("key not found")
	ErrNoNetworks      = errors.New("no available networks")
	ErrUnknownNetwork  = errors.New("unknown network")
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrTxFailed        = errors.New("tx failed on-chain")
	ErrAborted         = errors.New("aborted")
	ErrZeroAmount      = errors.New("amount must be positive")
)
