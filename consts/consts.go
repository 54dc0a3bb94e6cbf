// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen    = 1
	BoolLen    = 1
	Uint16Len  = 2
	IntLen     = 4
	Uint32Len  = 4
	Uint64Len  = 8
	Uint128Len = 16
	HashLen    = 32

	MaxUint32 = ^uint32(0)

	// NetworkSizeLimit bounds the size of a single encoded transaction.
	// Nodes reject anything larger than 4 MiB.
	NetworkSizeLimit = 4 * 1024 * 1024

	// NearDecimals is the number of decimal places of the native token.
	NearDecimals = 24
)
