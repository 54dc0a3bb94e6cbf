// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/crypto"
)

var (
	ErrInvalidHash = fmt.Errorf("%w: invalid hash", codec.ErrDecode)

	ErrMissingTransaction = errors.New("missing transaction")
	ErrCurveMismatch      = fmt.Errorf("%w: signature curve does not match public key", crypto.ErrSignature)
	ErrInvalidSignature   = crypto.ErrInvalidSignature
)
