// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/nearsdk/actions"
	"github.com/ava-labs/nearsdk/chain"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/math"
)

type Network struct {
	Name    string `json:"name"`
	ChainID string `json:"chainId"`
}

type SyncInfo struct {
	LatestBlockHash   chain.Hash `json:"latest_block_hash"`
	LatestBlockHeight uint64     `json:"latest_block_height"`
	LatestBlockTime   string     `json:"latest_block_time"`
	LatestStateRoot   string     `json:"latest_state_root"`
	Syncing           bool       `json:"syncing"`
}

type NodeVersion struct {
	Version string `json:"version"`
	Build   string `json:"build"`
}

type StatusValidator struct {
	AccountID string `json:"account_id"`
	IsSlashed bool   `json:"is_slashed"`
}

type StatusResult struct {
	ChainID    string            `json:"chain_id"`
	RPCAddr    string            `json:"rpc_addr"`
	SyncInfo   SyncInfo          `json:"sync_info"`
	Validators []StatusValidator `json:"validators"`
	Version    NodeVersion       `json:"version"`
}

type NetworkInfoResult struct {
	PeerMaxCount        int    `json:"peer_max_count"`
	NumActivePeers      int    `json:"num_active_peers"`
	SentBytesPerSec     uint64 `json:"sent_bytes_per_sec"`
	ReceivedBytesPerSec uint64 `json:"received_bytes_per_sec"`
}

// TransactionView is a transaction as reported back by the node.
type TransactionView struct {
	SignerID   string            `json:"signer_id"`
	PublicKey  crypto.PublicKey  `json:"public_key"`
	Nonce      uint64            `json:"nonce"`
	ReceiverID string            `json:"receiver_id"`
	Actions    []json.RawMessage `json:"actions,omitempty"`
	Signature  string            `json:"signature"`
	Hash       chain.Hash        `json:"hash"`
}

type BlockHeader struct {
	Height            uint64       `json:"height"`
	EpochID           string       `json:"epoch_id"`
	NextEpochID       string       `json:"next_epoch_id"`
	Hash              chain.Hash   `json:"hash"`
	PrevHash          chain.Hash   `json:"prev_hash"`
	PrevStateRoot     string       `json:"prev_state_root"`
	ChunkReceiptsRoot string       `json:"chunk_receipts_root"`
	ChunkHeadersRoot  string       `json:"chunk_headers_root"`
	ChunkTxRoot       string       `json:"chunk_tx_root"`
	OutcomeRoot       string       `json:"outcome_root"`
	ChunksIncluded    uint64       `json:"chunks_included"`
	ChallengesRoot    string       `json:"challenges_root"`
	Timestamp         uint64       `json:"timestamp"`
	TimestampNanosec  string       `json:"timestamp_nanosec"`
	RandomValue       string       `json:"random_value"`
	ChunkMask         []bool       `json:"chunk_mask"`
	GasPrice          math.Uint128 `json:"gas_price"`
	TotalSupply       math.Uint128 `json:"total_supply"`
	LastFinalBlock    string       `json:"last_final_block"`
	LastDSFinalBlock  string       `json:"last_ds_final_block"`
	NextBPHash        string       `json:"next_bp_hash"`
	BlockMerkleRoot   string       `json:"block_merkle_root"`
}

type ChunkHeader struct {
	ChunkHash            string       `json:"chunk_hash"`
	PrevBlockHash        string       `json:"prev_block_hash"`
	OutcomeRoot          string       `json:"outcome_root"`
	PrevStateRoot        string       `json:"prev_state_root"`
	EncodedMerkleRoot    string       `json:"encoded_merkle_root"`
	EncodedLength        uint64       `json:"encoded_length"`
	HeightCreated        uint64       `json:"height_created"`
	HeightIncluded       uint64       `json:"height_included"`
	ShardID              uint64       `json:"shard_id"`
	GasUsed              uint64       `json:"gas_used"`
	GasLimit             uint64       `json:"gas_limit"`
	BalanceBurnt         math.Uint128 `json:"balance_burnt"`
	OutgoingReceiptsRoot string       `json:"outgoing_receipts_root"`
	TxRoot               string       `json:"tx_root"`
	Signature            string       `json:"signature"`
}

type BlockResult struct {
	Author string        `json:"author"`
	Header BlockHeader   `json:"header"`
	Chunks []ChunkHeader `json:"chunks"`
}

type ChunkResult struct {
	Author       string            `json:"author"`
	Header       ChunkHeader       `json:"header"`
	Transactions []TransactionView `json:"transactions"`
	Receipts     []json.RawMessage `json:"receipts"`
}

type BlockChange struct {
	Type      string `json:"type"`
	AccountID string `json:"account_id"`
}

type BlockChangesResult struct {
	BlockHash chain.Hash    `json:"block_hash"`
	Changes   []BlockChange `json:"changes"`
}

// StateChange is one entry of an EXPERIMENTAL_changes reply. The shape of
// Change depends on Type.
type StateChange struct {
	Cause  json.RawMessage `json:"cause"`
	Type   string          `json:"type"`
	Change json.RawMessage `json:"change"`
}

type ChangesResult struct {
	BlockHash chain.Hash    `json:"block_hash"`
	Changes   []StateChange `json:"changes"`
}

type RuntimeConfig struct {
	StorageAmountPerByte math.Uint128 `json:"storage_amount_per_byte"`
}

type ProtocolConfig struct {
	ChainID         string         `json:"chain_id"`
	GenesisHeight   uint64         `json:"genesis_height"`
	ProtocolVersion uint32         `json:"protocol_version"`
	EpochLength     uint64         `json:"epoch_length"`
	RuntimeConfig   *RuntimeConfig `json:"runtime_config"`
}

// StorageAmountPerByte returns the storage price, which only the protocol
// config (not the genesis config) is guaranteed to report.
func (p *ProtocolConfig) StorageAmountPerByte() (math.Uint128, error) {
	if p.RuntimeConfig == nil {
		return math.Zero, ErrMissingRuntimeConfig
	}
	return p.RuntimeConfig.StorageAmountPerByte, nil
}

type GasPriceResult struct {
	GasPrice math.Uint128 `json:"gas_price"`
}

type ValidatorStakeView struct {
	AccountID string           `json:"account_id"`
	PublicKey crypto.PublicKey `json:"public_key"`
	Stake     math.Uint128     `json:"stake"`
}

type CurrentEpochValidatorInfo struct {
	AccountID         string           `json:"account_id"`
	PublicKey         crypto.PublicKey `json:"public_key"`
	IsSlashed         bool             `json:"is_slashed"`
	Stake             math.Uint128     `json:"stake"`
	Shards            []uint64         `json:"shards"`
	NumProducedBlocks uint64           `json:"num_produced_blocks"`
	NumExpectedBlocks uint64           `json:"num_expected_blocks"`
}

type NextEpochValidatorInfo struct {
	AccountID string           `json:"account_id"`
	PublicKey crypto.PublicKey `json:"public_key"`
	Stake     math.Uint128     `json:"stake"`
	Shards    []uint64         `json:"shards"`
}

type EpochValidatorInfo struct {
	CurrentValidators []CurrentEpochValidatorInfo `json:"current_validators"`
	NextValidators    []NextEpochValidatorInfo    `json:"next_validators"`
	CurrentFishermen  []ValidatorStakeView        `json:"current_fishermen"`
	NextFishermen     []ValidatorStakeView        `json:"next_fishermen"`
	CurrentProposals  []ValidatorStakeView        `json:"current_proposals"`
	PrevEpochKickout  []json.RawMessage           `json:"prev_epoch_kickout"`
	EpochStartHeight  uint64                      `json:"epoch_start_height"`
}

// AccountView is the state of an account at a block.
type AccountView struct {
	Amount        math.Uint128 `json:"amount"`
	Locked        math.Uint128 `json:"locked"`
	CodeHash      string       `json:"code_hash"`
	StorageUsage  uint64       `json:"storage_usage"`
	StoragePaidAt uint64       `json:"storage_paid_at"`
	BlockHeight   uint64       `json:"block_height"`
	BlockHash     chain.Hash   `json:"block_hash"`
}

// AccessKeyView is an access key together with the block it was read at.
// BlockHash is recent enough to be used as a transaction's block hash.
type AccessKeyView struct {
	AccessKey   *actions.AccessKey
	BlockHeight uint64
	BlockHash   chain.Hash
}

func (a *AccessKeyView) UnmarshalJSON(b []byte) error {
	var block struct {
		BlockHeight uint64     `json:"block_height"`
		BlockHash   chain.Hash `json:"block_hash"`
	}
	if err := json.Unmarshal(b, &block); err != nil {
		return err
	}
	key := &actions.AccessKey{}
	if err := json.Unmarshal(b, key); err != nil {
		return err
	}
	*a = AccessKeyView{
		AccessKey:   key,
		BlockHeight: block.BlockHeight,
		BlockHash:   block.BlockHash,
	}
	return nil
}

type AccessKeyInfo struct {
	PublicKey crypto.PublicKey   `json:"public_key"`
	AccessKey *actions.AccessKey `json:"access_key"`
}

type AccessKeyList struct {
	Keys        []AccessKeyInfo `json:"keys"`
	BlockHeight uint64          `json:"block_height"`
	BlockHash   chain.Hash      `json:"block_hash"`
}

// AccessKeyWithPublicKey names a single key in SingleAccessKeyChanges.
type AccessKeyWithPublicKey struct {
	AccountID string           `json:"account_id"`
	PublicKey crypto.PublicKey `json:"public_key"`
}

// ByteArray decodes the JSON array of numbers the node uses for raw call
// results.
type ByteArray []byte

func (b *ByteArray) UnmarshalJSON(data []byte) error {
	var ints []uint8
	if err := json.Unmarshal(data, &ints); err != nil {
		return fmt.Errorf("expected byte array: %w", err)
	}
	*b = ints
	return nil
}

func (b ByteArray) MarshalJSON() ([]byte, error) {
	ints := make([]uint16, len(b))
	for i, v := range b {
		ints[i] = uint16(v)
	}
	return json.Marshal(ints)
}

type CallResult struct {
	Result      ByteArray  `json:"result"`
	Logs        []string   `json:"logs"`
	BlockHeight uint64     `json:"block_height"`
	BlockHash   chain.Hash `json:"block_hash"`
}

// queryError is the error shape some nodes return inside a successful
// query reply.
type queryError struct {
	Error       string     `json:"error"`
	Logs        []string   `json:"logs"`
	BlockHeight uint64     `json:"block_height"`
	BlockHash   chain.Hash `json:"block_hash"`
}
