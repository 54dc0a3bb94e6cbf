// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the key and signature packages
// wraps exactly one of them.
var (
	ErrKey       = errors.New("key error")
	ErrSignature = errors.New("signature error")
	ErrFormat    = errors.New("format error")
)

var (
	ErrInvalidPrivateKey = fmt.Errorf("%w: invalid private key", ErrKey)
	ErrInvalidPublicKey  = fmt.Errorf("%w: invalid public key", ErrKey)
	ErrInvalidBase58     = fmt.Errorf("%w: invalid base58", ErrKey)
	ErrUnknownCurve      = fmt.Errorf("%w: unknown curve", ErrKey)

	ErrInvalidSignature = fmt.Errorf("%w: invalid signature", ErrSignature)
	ErrInvalidDigest    = fmt.Errorf("%w: invalid digest", ErrSignature)
	ErrRecoveryFailed   = fmt.Errorf("%w: public key recovery failed", ErrSignature)

	ErrInvalidFormat = fmt.Errorf("%w: expected <curve>:<base58>", ErrFormat)
)
