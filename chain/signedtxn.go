// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/base64"
	"fmt"

	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/crypto"
)

// SignedTransaction is the artifact handed to the transport.
type SignedTransaction struct {
	Transaction *Transaction     `json:"transaction"`
	Signature   crypto.Signature `json:"signature"`
}

func (s *SignedTransaction) Size() int {
	return s.Transaction.Size() + s.Signature.Size()
}

// Marshal writes the transaction immediately followed by the signature.
func (s *SignedTransaction) Marshal(p *codec.Packer) {
	s.Transaction.Marshal(p)
	s.Signature.Marshal(p)
}

// Bytes is the submission payload.
func (s *SignedTransaction) Bytes() ([]byte, error) {
	if s.Transaction == nil {
		return nil, ErrMissingTransaction
	}
	p := codec.NewWriter(s.Size(), consts.NetworkSizeLimit)
	s.Marshal(p)
	return p.Bytes(), p.Err()
}

// Base64 is the encoding the node's broadcast methods expect.
func (s *SignedTransaction) Base64() (string, error) {
	b, err := s.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Hash returns the hash of the inner transaction.
func (s *SignedTransaction) Hash() (Hash, error) {
	if s.Transaction == nil {
		return EmptyHash, ErrMissingTransaction
	}
	return s.Transaction.Hash()
}

// Verify re-hashes the transaction and checks the signature against its
// public key.
func (s *SignedTransaction) Verify() error {
	hash, err := s.Hash()
	if err != nil {
		return err
	}
	if s.Signature.KeyType() != s.Transaction.PublicKey.KeyType() {
		return ErrCurveMismatch
	}
	if !auth.Verify(hash[:], s.Transaction.PublicKey, s.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

func UnmarshalSignedTx(p *codec.Packer) (*SignedTransaction, error) {
	tx, err := UnmarshalTx(p)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.UnmarshalSignature(p)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{Transaction: tx, Signature: sig}, nil
}

// ParseSignedTx decodes a full submission payload and rejects trailing bytes.
func ParseSignedTx(b []byte) (*SignedTransaction, error) {
	p := codec.NewReader(b, consts.NetworkSizeLimit)
	stx, err := UnmarshalSignedTx(p)
	if err != nil {
		return nil, err
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return stx, nil
}

// ParseSignedTxBase64 decodes the output of [SignedTransaction.Base64].
func ParseSignedTxBase64(s string) (*SignedTransaction, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrDecode, err)
	}
	return ParseSignedTx(b)
}
