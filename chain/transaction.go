// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/nearsdk/actions"
	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/crypto"
)

// Transaction is an unsigned list of actions from SignerID to ReceiverID.
//
// The field order is the wire order.
type Transaction struct {
	SignerID   string
	PublicKey  crypto.PublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  BlockHash
	Actions    []actions.Action
}

// NewTx assembles a transaction. [nonce] must be greater than the access
// key's current nonce and [blockHash] must reference a recent block; neither
// is checked here.
func NewTx(
	signerID string,
	publicKey crypto.PublicKey,
	nonce uint64,
	receiverID string,
	blockHash BlockHash,
	actionList []actions.Action,
) *Transaction {
	return &Transaction{
		SignerID:   signerID,
		PublicKey:  publicKey,
		Nonce:      nonce,
		ReceiverID: receiverID,
		BlockHash:  blockHash,
		Actions:    actionList,
	}
}

func (t *Transaction) Size() int {
	return codec.StringLen(t.SignerID) +
		t.PublicKey.Size() +
		consts.Uint64Len +
		codec.StringLen(t.ReceiverID) +
		consts.HashLen +
		actions.SizeActions(t.Actions)
}

func (t *Transaction) Marshal(p *codec.Packer) {
	p.PackString(t.SignerID)
	t.PublicKey.Marshal(p)
	p.PackUint64(t.Nonce)
	p.PackString(t.ReceiverID)
	p.PackFixedBytes(t.BlockHash[:])
	actions.MarshalActions(p, t.Actions)
}

// Bytes returns the canonical encoding of the transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	p := codec.NewWriter(t.Size(), consts.NetworkSizeLimit)
	t.Marshal(p)
	return p.Bytes(), p.Err()
}

// Hash is the SHA-256 of the canonical encoding. It is both the signing
// payload and the transaction id.
func (t *Transaction) Hash() (Hash, error) {
	b, err := t.Bytes()
	if err != nil {
		return EmptyHash, err
	}
	return hashing.ComputeHash256Array(b), nil
}

// Sign hashes the transaction and signs the hash with [kp].
func (t *Transaction) Sign(kp auth.KeyPair) (*SignedTransaction, error) {
	hash, err := t.Hash()
	if err != nil {
		return nil, err
	}
	sig, err := kp.Sign(hash[:])
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Transaction: t,
		Signature:   sig,
	}, nil
}

func UnmarshalTx(p *codec.Packer) (*Transaction, error) {
	var (
		t   Transaction
		err error
	)
	t.SignerID = p.UnpackString()
	if err := p.Err(); err != nil {
		return nil, err
	}
	t.PublicKey, err = crypto.UnmarshalPublicKey(p)
	if err != nil {
		return nil, err
	}
	t.Nonce = p.UnpackUint64()
	t.ReceiverID = p.UnpackString()
	copy(t.BlockHash[:], p.UnpackFixedBytes(consts.HashLen))
	if err := p.Err(); err != nil {
		return nil, err
	}
	t.Actions, err = actions.UnmarshalActions(p)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type txJSON struct {
	SignerID   string            `json:"signerId"`
	PublicKey  crypto.PublicKey  `json:"publicKey"`
	Nonce      uint64            `json:"nonce"`
	ReceiverID string            `json:"receiverId"`
	BlockHash  BlockHash         `json:"blockHash"`
	Actions    []json.RawMessage `json:"actions"`
}

func (t *Transaction) MarshalJSON() ([]byte, error) {
	actionsJSON := make([]json.RawMessage, len(t.Actions))
	for i, action := range t.Actions {
		b, err := actions.MarshalJSON(action)
		if err != nil {
			return nil, err
		}
		actionsJSON[i] = b
	}
	return json.Marshal(txJSON{
		SignerID:   t.SignerID,
		PublicKey:  t.PublicKey,
		Nonce:      t.Nonce,
		ReceiverID: t.ReceiverID,
		BlockHash:  t.BlockHash,
		Actions:    actionsJSON,
	})
}

func (t *Transaction) UnmarshalJSON(b []byte) error {
	var tx txJSON
	if err := json.Unmarshal(b, &tx); err != nil {
		return err
	}
	actionList := make([]actions.Action, len(tx.Actions))
	for i, raw := range tx.Actions {
		action, err := actions.UnmarshalJSON(raw)
		if err != nil {
			return err
		}
		actionList[i] = action
	}
	*t = Transaction{
		SignerID:   tx.SignerID,
		PublicKey:  tx.PublicKey,
		Nonce:      tx.Nonce,
		ReceiverID: tx.ReceiverID,
		BlockHash:  tx.BlockHash,
		Actions:    actionList,
	}
	return nil
}
