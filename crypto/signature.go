// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"

	"github.com/ava-labs/nearsdk/codec"
)

// Signature is a curve-tagged signature. Like [PublicKey] it is comparable.
type Signature struct {
	keyType KeyType
	raw     [maxSignatureLen]byte
}

var EmptySignature = Signature{}

func NewSignature(keyType KeyType, data []byte) (Signature, error) {
	if !keyType.Valid() {
		return EmptySignature, fmt.Errorf("%w: %d", ErrUnknownCurve, keyType)
	}
	if len(data) != keyType.SignatureLen() {
		return EmptySignature, fmt.Errorf("%w: %s signature must be %d bytes, got %d", ErrInvalidSignature, keyType, keyType.SignatureLen(), len(data))
	}
	sig := Signature{keyType: keyType}
	copy(sig.raw[:], data)
	return sig, nil
}

// ParseSignature parses "<curve>:<base58>" (or bare base58 for ed25519).
func ParseSignature(s string) (Signature, error) {
	keyType, encoded, err := SplitEncoded(s)
	if err != nil {
		return EmptySignature, err
	}
	data, err := DecodeBase58(encoded, -1)
	if err != nil {
		return EmptySignature, err
	}
	return NewSignature(keyType, data)
}

func (s Signature) KeyType() KeyType {
	return s.keyType
}

// Data returns a copy of the raw signature bytes.
func (s Signature) Data() []byte {
	n := s.keyType.SignatureLen()
	out := make([]byte, n)
	copy(out, s.raw[:n])
	return out
}

func (s Signature) String() string {
	return JoinEncoded(s.keyType, s.Data())
}

func (s Signature) Size() int {
	return 1 + s.keyType.SignatureLen()
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Signature) Marshal(p *codec.Packer) {
	s.keyType.Marshal(p)
	p.PackFixedBytes(s.raw[:s.keyType.SignatureLen()])
}

func UnmarshalSignature(p *codec.Packer) (Signature, error) {
	keyType := UnmarshalKeyType(p)
	data := p.UnpackFixedBytes(keyType.SignatureLen())
	if err := p.Err(); err != nil {
		return EmptySignature, err
	}
	return NewSignature(keyType, data)
}
