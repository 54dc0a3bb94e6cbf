// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const oneNear = "1000000000000000000000000"

func TestUint128StringRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"18446744073709551615",
		"18446744073709551616",
		"10000000000000000000",
		"100000000000000000000",
		oneNear,
		"1000000000000000000000001",
		"340282366920938463463374607431768211455",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			require := require.New(t)
			u, err := ParseUint128(s)
			require.NoError(err)
			require.Equal(s, u.String())

			expected, ok := new(big.Int).SetString(s, 10)
			require.True(ok)
			require.Zero(expected.Cmp(u.Big()))

			fromBig, err := FromBig(expected)
			require.NoError(err)
			require.Equal(u, fromBig)
		})
	}
}

func TestParseUint128Invalid(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrInvalidUint128},
		{"-1", ErrInvalidUint128},
		{"+1", ErrInvalidUint128},
		{"1e24", ErrInvalidUint128},
		{"1,000", ErrInvalidUint128},
		{" 1", ErrInvalidUint128},
		{"340282366920938463463374607431768211456", ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseUint128(tt.input)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUint128Arithmetic(t *testing.T) {
	require := require.New(t)

	amount := MustParseUint128("5000000000000000000000000")
	locked := MustParseUint128(oneNear)

	total, err := amount.Add(locked)
	require.NoError(err)
	require.Equal("6000000000000000000000000", total.String())

	storage := MustParseUint128("1820000000000000000000")
	available, err := total.Sub(Max(locked, storage))
	require.NoError(err)
	require.Equal(amount, available)

	_, err = locked.Sub(amount)
	require.ErrorIs(err, ErrUnderflow)

	_, err = MaxUint.Add(NewUint128(1))
	require.ErrorIs(err, ErrOverflow)

	// Carry from the low half into the high half.
	carried, err := NewUint128(^uint64(0)).Add(NewUint128(1))
	require.NoError(err)
	require.Equal(Uint128{Hi: 1, Lo: 0}, carried)

	// Borrow from the high half.
	borrowed, err := carried.Sub(NewUint128(1))
	require.NoError(err)
	require.Equal(NewUint128(^uint64(0)), borrowed)
}

func TestUint128Mul(t *testing.T) {
	require := require.New(t)

	perByte := MustParseUint128("10000000000000000000")
	cost, err := perByte.Mul64(182)
	require.NoError(err)
	require.Equal("1820000000000000000000", cost.String())

	product, err := MustParseUint128(oneNear).Mul(NewUint128(1000))
	require.NoError(err)
	require.Equal("1000000000000000000000000000", product.String())

	_, err = MaxUint.Mul64(2)
	require.ErrorIs(err, ErrOverflow)

	_, err = Uint128{Hi: 1}.Mul(Uint128{Hi: 1})
	require.ErrorIs(err, ErrOverflow)
}

func TestUint128Cmp(t *testing.T) {
	require := require.New(t)

	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: ^uint64(0)}
	require.Equal(1, a.Cmp(b))
	require.Equal(-1, b.Cmp(a))
	require.Zero(a.Cmp(a))
	require.Equal(a, Max(a, b))
	require.Equal(b, Min(a, b))
	require.True(Zero.IsZero())
	require.False(a.IsZero())
}

func TestUint128Bytes(t *testing.T) {
	require := require.New(t)

	u := NewUint128(1000000)
	b := u.Bytes()
	require.Equal([]byte{0x40, 0x42, 0x0f, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, b[:])

	decoded, err := FromBytes(b[:])
	require.NoError(err)
	require.Equal(u, decoded)

	_, err = FromBytes(b[:15])
	require.ErrorIs(err, ErrInvalidUint128)
}

func TestUint128JSON(t *testing.T) {
	require := require.New(t)

	type balance struct {
		Amount Uint128 `json:"amount"`
	}
	b, err := json.Marshal(balance{Amount: MustParseUint128(oneNear)})
	require.NoError(err)
	require.JSONEq(`{"amount":"1000000000000000000000000"}`, string(b))

	var decoded balance
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal(oneNear, decoded.Amount.String())

	require.NoError(json.Unmarshal([]byte(`{"amount":42}`), &decoded))
	require.Equal(NewUint128(42), decoded.Amount)
}
