// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
)

// Hash is a 32 byte SHA-256 digest rendered as base58.
type Hash [consts.HashLen]byte

// BlockHash references the block a transaction was built against.
type BlockHash = Hash

var EmptyHash = Hash{}

// ParseBlockHash decodes a base58 block hash.
func ParseBlockHash(s string) (BlockHash, error) {
	return ParseHash(s)
}

// BlockHashFromBytes copies exactly 32 bytes into a BlockHash.
func BlockHashFromBytes(b []byte) (BlockHash, error) {
	if len(b) != consts.HashLen {
		return EmptyHash, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHash, consts.HashLen, len(b))
	}
	return Hash(b), nil
}

func ParseHash(s string) (Hash, error) {
	b, err := codec.LoadBase58(s, -1)
	if err != nil {
		return EmptyHash, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return BlockHashFromBytes(b)
}

func (h Hash) String() string {
	return codec.ToBase58(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
