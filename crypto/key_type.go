// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"
	"strings"

	"github.com/ava-labs/nearsdk/codec"
)

// KeyType identifies the signature curve of a key or signature.
//
// The numeric values are the wire discriminants and must never change.
type KeyType uint8

const (
	ED25519   KeyType = 0
	SECP256K1 KeyType = 1
)

const (
	ED25519Name   = "ed25519"
	SECP256K1Name = "secp256k1"

	ED25519PublicKeyLen   = 32
	SECP256K1PublicKeyLen = 64 // x || y, without the 0x04 prefix
	ED25519SignatureLen   = 64
	SECP256K1SignatureLen = 65 // r || s || v

	maxPublicKeyLen = SECP256K1PublicKeyLen
	maxSignatureLen = SECP256K1SignatureLen

	separator = ":"
)

func (k KeyType) Valid() bool {
	return k == ED25519 || k == SECP256K1
}

func (k KeyType) String() string {
	switch k {
	case ED25519:
		return ED25519Name
	case SECP256K1:
		return SECP256K1Name
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// PublicKeyLen returns the raw public key length for the curve.
func (k KeyType) PublicKeyLen() int {
	switch k {
	case ED25519:
		return ED25519PublicKeyLen
	case SECP256K1:
		return SECP256K1PublicKeyLen
	default:
		return 0
	}
}

// SignatureLen returns the raw signature length for the curve.
func (k KeyType) SignatureLen() int {
	switch k {
	case ED25519:
		return ED25519SignatureLen
	case SECP256K1:
		return SECP256K1SignatureLen
	default:
		return 0
	}
}

// ParseKeyType maps a curve name to its KeyType.
func ParseKeyType(name string) (KeyType, error) {
	switch name {
	case ED25519Name:
		return ED25519, nil
	case SECP256K1Name:
		return SECP256K1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
}

func (k KeyType) Marshal(p *codec.Packer) {
	p.PackByte(uint8(k))
}

func UnmarshalKeyType(p *codec.Packer) KeyType {
	tag := p.UnpackByte()
	if p.Errored() {
		return ED25519
	}
	k := KeyType(tag)
	if !k.Valid() {
		p.UnknownVariant("KeyType", tag)
		return ED25519
	}
	return k
}

// SplitEncoded splits "<curve>:<data>". A string without a separator is an
// ed25519 value. More than one separator is a format error.
func SplitEncoded(s string) (KeyType, string, error) {
	parts := strings.Split(s, separator)
	switch len(parts) {
	case 1:
		return ED25519, parts[0], nil
	case 2:
		k, err := ParseKeyType(parts[0])
		if err != nil {
			return 0, "", err
		}
		return k, parts[1], nil
	default:
		return 0, "", fmt.Errorf("%w: found %d separators", ErrInvalidFormat, len(parts)-1)
	}
}

// JoinEncoded returns "<curve>:<base58(data)>".
func JoinEncoded(k KeyType, data []byte) string {
	return k.String() + separator + codec.ToBase58(data)
}

// DecodeBase58 decodes [s] and wraps failures as key errors.
func DecodeBase58(s string, expectedSize int) ([]byte, error) {
	b, err := codec.LoadBase58(s, expectedSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase58, err)
	}
	return b, nil
}
