// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex returns the lowercase hex encoding of b without a 0x prefix.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// LoadHex converts a hex string (with or without 0x) into bytes. If
// [expectedSize] is not -1, the decoded value must have exactly that many
// bytes.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSize, expectedSize, len(bytes))
	}
	return bytes, nil
}

// Bytes is a byte slice that renders as hex in text and JSON.
type Bytes []byte

func (b Bytes) String() string {
	return ToHex(b)
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	bytes, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = bytes
	return nil
}
