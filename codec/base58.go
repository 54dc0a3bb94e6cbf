// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// ToBase58 encodes b with the Bitcoin alphabet.
func ToBase58(b []byte) string {
	return base58.Encode(b)
}

// LoadBase58 decodes s. If [expectedSize] is not -1, the decoded value must
// have exactly that many bytes.
func LoadBase58(s string, expectedSize int) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase58, err)
	}
	if expectedSize != -1 && len(b) != expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSize, expectedSize, len(b))
	}
	return b, nil
}
