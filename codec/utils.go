// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "github.com/ava-labs/nearsdk/consts"

func BytesLen(msg []byte) int {
	return consts.IntLen + len(msg)
}

func StringLen(msg string) int {
	return consts.IntLen + len(msg)
}

func StringsLen(msgs []string) int {
	size := consts.IntLen
	for _, msg := range msgs {
		size += StringLen(msg)
	}
	return size
}

func OptionLen(present bool, size int) int {
	if !present {
		return consts.BoolLen
	}
	return consts.BoolLen + size
}
