// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import "errors"

var (
	ErrStorageExceedsBalance = errors.New("storage cost exceeds balance")
	ErrNoActions             = errors.New("transaction has no actions")
)
