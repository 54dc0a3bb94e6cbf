// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import "errors"

var (
	ErrQuery                = errors.New("query failed")
	ErrUnknownStatus        = errors.New("unknown execution status")
	ErrExecutionFailed      = errors.New("execution failed")
	ErrMissingRuntimeConfig = errors.New("protocol config has no runtime config")
)
