// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidPermission = errors.New("invalid access key permission")
	ErrMissingAccessKey  = errors.New("missing access key")
)
