// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"

	"github.com/ava-labs/nearsdk/codec"
)

// PublicKey is a curve-tagged public key.
//
// PublicKey is comparable: two keys are equal when they have the same curve
// and the same bytes, so it can be used with == and as a map key.
type PublicKey struct {
	keyType KeyType
	raw     [maxPublicKeyLen]byte
}

// EmptyPublicKey is the zero value. It is not a valid key.
var EmptyPublicKey = PublicKey{}

// NewPublicKey copies [data] into a PublicKey after checking its length for
// the curve.
func NewPublicKey(keyType KeyType, data []byte) (PublicKey, error) {
	if !keyType.Valid() {
		return EmptyPublicKey, fmt.Errorf("%w: %d", ErrUnknownCurve, keyType)
	}
	if len(data) != keyType.PublicKeyLen() {
		return EmptyPublicKey, fmt.Errorf("%w: %s key must be %d bytes, got %d", ErrInvalidPublicKey, keyType, keyType.PublicKeyLen(), len(data))
	}
	pk := PublicKey{keyType: keyType}
	copy(pk.raw[:], data)
	return pk, nil
}

// ParsePublicKey parses "<curve>:<base58>" (or bare base58 for ed25519).
func ParsePublicKey(s string) (PublicKey, error) {
	keyType, encoded, err := SplitEncoded(s)
	if err != nil {
		return EmptyPublicKey, err
	}
	data, err := DecodeBase58(encoded, -1)
	if err != nil {
		return EmptyPublicKey, err
	}
	return NewPublicKey(keyType, data)
}

func (pk PublicKey) KeyType() KeyType {
	return pk.keyType
}

// Data returns a copy of the raw key bytes. secp256k1 keys are returned
// without the uncompressed point prefix.
func (pk PublicKey) Data() []byte {
	n := pk.keyType.PublicKeyLen()
	out := make([]byte, n)
	copy(out, pk.raw[:n])
	return out
}

// Uncompressed returns 0x04 || x || y for secp256k1 keys and the raw bytes
// for ed25519 keys.
func (pk PublicKey) Uncompressed() []byte {
	if pk.keyType != SECP256K1 {
		return pk.Data()
	}
	return append([]byte{0x04}, pk.Data()...)
}

func (pk PublicKey) IsEmpty() bool {
	return pk == EmptyPublicKey
}

func (pk PublicKey) String() string {
	return JoinEncoded(pk.keyType, pk.Data())
}

func (pk PublicKey) Size() int {
	return 1 + pk.keyType.PublicKeyLen()
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// Marshal writes the curve tag followed by the raw key bytes.
func (pk PublicKey) Marshal(p *codec.Packer) {
	pk.keyType.Marshal(p)
	p.PackFixedBytes(pk.raw[:pk.keyType.PublicKeyLen()])
}

func UnmarshalPublicKey(p *codec.Packer) (PublicKey, error) {
	keyType := UnmarshalKeyType(p)
	data := p.UnpackFixedBytes(keyType.PublicKeyLen())
	if err := p.Err(); err != nil {
		return EmptyPublicKey, err
	}
	return NewPublicKey(keyType, data)
}
