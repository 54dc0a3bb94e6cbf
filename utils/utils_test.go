// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/math"
)

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	p, err := InitSubDirectory(root, "keystore")
	require.NoError(err)
	info, err := os.Stat(p)
	require.NoError(err)
	require.True(info.IsDir())

	// Idempotent
	_, err = InitSubDirectory(root, "keystore")
	require.NoError(err)
}

func TestFormatNear(t *testing.T) {
	tests := []struct {
		yocto    string
		expected string
	}{
		{yocto: "0", expected: "0"},
		{yocto: "1", expected: "0.000000000000000000000001"},
		{yocto: "1000000000000000000000000", expected: "1"},
		{yocto: "1500000000000000000000000", expected: "1.5"},
		{yocto: "998180000000000000000000", expected: "0.99818"},
		{yocto: "340282366920938463463374607431768211455", expected: "340282366920938.463463374607431768211455"},
	}
	for _, tt := range tests {
		t.Run(tt.yocto, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatNear(math.MustParseUint128(tt.yocto)))
		})
	}
}

func TestParseNear(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		expectedErr error
	}{
		{input: "1", expected: "1000000000000000000000000"},
		{input: "1.5", expected: "1500000000000000000000000"},
		{input: " 0.000000000000000000000001 ", expected: "1"},
		{input: ".25", expected: "250000000000000000000000"},
		{input: "2.", expected: "2000000000000000000000000"},
		{input: "", expectedErr: ErrInvalidAmount},
		{input: ".", expectedErr: ErrInvalidAmount},
		{input: "1.0000000000000000000000001", expectedErr: ErrInvalidAmount},
		{input: "-1", expectedErr: ErrInvalidAmount},
		{input: "abc", expectedErr: ErrInvalidAmount},
		{input: "1000000000000000", expectedErr: ErrInvalidAmount},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require := require.New(t)

			v, err := ParseNear(tt.input)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr == nil {
				require.Equal(tt.expected, v.String())
			}
		})
	}
}

func TestNearRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{"0", "1", "12.345", "0.000001"} {
		v, err := ParseNear(s)
		require.NoError(err)
		require.Equal(s, FormatNear(v))
	}
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, Map(strconv.Itoa, []int{1, 2}))
}
