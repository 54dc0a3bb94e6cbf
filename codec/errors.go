// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"
)

// ErrDecode is wrapped by every error caused by malformed input, so callers
// can distinguish bad bytes from other failures with [errors.Is].
var ErrDecode = errors.New("decode error")

var (
	ErrInsufficientLength = fmt.Errorf("%w: insufficient length", ErrDecode)
	ErrInvalidSize        = fmt.Errorf("%w: invalid size", ErrDecode)
	ErrInvalidBool        = fmt.Errorf("%w: invalid bool", ErrDecode)
	ErrInvalidOption      = fmt.Errorf("%w: invalid option flag", ErrDecode)
	ErrUnknownVariant     = fmt.Errorf("%w: unknown variant", ErrDecode)
	ErrTrailingBytes      = fmt.Errorf("%w: trailing bytes", ErrDecode)
	ErrInvalidUTF8        = fmt.Errorf("%w: invalid utf-8", ErrDecode)
	ErrInvalidBase58      = fmt.Errorf("%w: invalid base58", ErrDecode)

	ErrLimitExceeded = errors.New("size limit exceeded")
	ErrTooManyItems  = errors.New("too many items")
	ErrInvalidString = errors.New("string is not valid utf-8")
)
