// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"encoding/json"

	"github.com/ava-labs/nearsdk/chain"
)

type Finality string

const (
	FinalityFinal      Finality = "final"
	FinalityOptimistic Finality = "optimistic"
)

// BlockID identifies a block by height or by hash. The node accepts either
// a JSON number or a base58 string wherever a block id is expected.
type BlockID struct {
	height uint64
	hash   chain.Hash
	isHash bool
}

func BlockAtHeight(height uint64) BlockID {
	return BlockID{height: height}
}

func BlockWithHash(hash chain.Hash) BlockID {
	return BlockID{hash: hash, isHash: true}
}

func (b BlockID) MarshalJSON() ([]byte, error) {
	if b.isHash {
		return json.Marshal(b.hash.String())
	}
	return json.Marshal(b.height)
}

// BlockReference selects the block a request is answered against: either a
// finality level or a specific block.
type BlockReference struct {
	finality Finality
	blockID  *BlockID
}

// Final references the latest final block.
func Final() BlockReference {
	return BlockReference{finality: FinalityFinal}
}

// Optimistic references the latest block the node has seen.
func Optimistic() BlockReference {
	return BlockReference{finality: FinalityOptimistic}
}

func AtBlock(id BlockID) BlockReference {
	return BlockReference{blockID: &id}
}

// params returns the reference as request parameters. The zero value
// falls back to optimistic finality.
func (r BlockReference) params() map[string]any {
	params := map[string]any{}
	switch {
	case r.blockID != nil:
		params["block_id"] = *r.blockID
	case r.finality != "":
		params["finality"] = r.finality
	default:
		params["finality"] = FinalityOptimistic
	}
	return params
}

// ChunkID identifies a chunk by its hash or by block and shard.
type ChunkID struct {
	hash    *chain.Hash
	blockID BlockID
	shardID uint64
}

func ChunkWithHash(hash chain.Hash) ChunkID {
	return ChunkID{hash: &hash}
}

func ChunkInBlock(blockID BlockID, shardID uint64) ChunkID {
	return ChunkID{blockID: blockID, shardID: shardID}
}

func (c ChunkID) params() map[string]any {
	if c.hash != nil {
		return map[string]any{"chunk_id": c.hash.String()}
	}
	return map[string]any{
		"block_id": c.blockID,
		"shard_id": c.shardID,
	}
}
