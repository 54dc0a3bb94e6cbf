// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/math"
)

func TestPackerIntegers(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0, consts.NetworkSizeLimit)
	p.PackByte(0xab)
	p.PackUint16(0x0102)
	p.PackUint32(0x01020304)
	p.PackUint64(0x0102030405060708)
	p.PackUint128(math.Uint128{Hi: 0x1112131415161718, Lo: 0x0102030405060708})
	require.NoError(p.Err())
	require.Equal([]byte{
		0xab,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x18, 0x17, 0x16, 0x15, 0x14, 0x13, 0x12, 0x11,
	}, p.Bytes())

	r := NewReader(p.Bytes(), consts.NetworkSizeLimit)
	require.Equal(byte(0xab), r.UnpackByte())
	require.Equal(uint16(0x0102), r.UnpackUint16())
	require.Equal(uint32(0x01020304), r.UnpackUint32())
	require.Equal(uint64(0x0102030405060708), r.UnpackUint64())
	require.Equal(math.Uint128{Hi: 0x1112131415161718, Lo: 0x0102030405060708}, r.UnpackUint128())
	require.NoError(r.Finish())
}

func TestPackerVariableLength(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0, consts.NetworkSizeLimit)
	p.PackBytes([]byte{1, 2, 3})
	p.PackString("zzz")
	PackStrings(p, []string{"a", "bc"})
	require.NoError(p.Err())
	require.Equal([]byte{
		3, 0, 0, 0, 1, 2, 3,
		3, 0, 0, 0, 'z', 'z', 'z',
		2, 0, 0, 0, 1, 0, 0, 0, 'a', 2, 0, 0, 0, 'b', 'c',
	}, p.Bytes())

	r := NewReader(p.Bytes(), consts.NetworkSizeLimit)
	require.Equal([]byte{1, 2, 3}, r.UnpackBytes())
	require.Equal("zzz", r.UnpackString())
	require.Equal([]string{"a", "bc"}, UnpackStrings(r))
	require.NoError(r.Finish())
}

func TestPackerOption(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0, consts.NetworkSizeLimit)
	p.PackOption(false)
	p.PackOption(true)
	p.PackUint32(7)
	require.Equal([]byte{0, 1, 7, 0, 0, 0}, p.Bytes())

	r := NewReader(p.Bytes(), consts.NetworkSizeLimit)
	require.False(r.UnpackOption())
	require.True(r.UnpackOption())
	require.Equal(uint32(7), r.UnpackUint32())
	require.NoError(r.Finish())

	r = NewReader([]byte{2}, consts.NetworkSizeLimit)
	r.UnpackOption()
	require.ErrorIs(r.Err(), ErrInvalidOption)
	require.ErrorIs(r.Err(), ErrDecode)
}

func TestPackerBool(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{1, 0, 3}, consts.NetworkSizeLimit)
	require.True(r.UnpackBool())
	require.False(r.UnpackBool())
	require.False(r.UnpackBool())
	require.ErrorIs(r.Err(), ErrInvalidBool)
}

func TestPackerInsufficientLength(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		unpack func(*Packer)
	}{
		{
			name:   "uint64",
			input:  []byte{1, 2, 3},
			unpack: func(p *Packer) { p.UnpackUint64() },
		},
		{
			name:   "uint128",
			input:  make([]byte, 15),
			unpack: func(p *Packer) { p.UnpackUint128() },
		},
		{
			name:   "bytes body",
			input:  []byte{4, 0, 0, 0, 1},
			unpack: func(p *Packer) { p.UnpackBytes() },
		},
		{
			name:   "string prefix",
			input:  []byte{4, 0},
			unpack: func(p *Packer) { p.UnpackString() },
		},
		{
			name:   "huge length prefix",
			input:  []byte{0xff, 0xff, 0xff, 0xff, 1, 2},
			unpack: func(p *Packer) { p.UnpackBytes() },
		},
		{
			name:   "huge element count",
			input:  []byte{0xff, 0xff, 0xff, 0x7f},
			unpack: func(p *Packer) { UnpackStrings(p) },
		},
		{
			name:   "fixed",
			input:  make([]byte, 31),
			unpack: func(p *Packer) { p.UnpackFixedBytes(consts.HashLen) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			r := NewReader(tt.input, consts.NetworkSizeLimit)
			tt.unpack(r)
			require.ErrorIs(r.Err(), ErrInsufficientLength)
			require.ErrorIs(r.Err(), ErrDecode)
		})
	}
}

func TestPackerStickyError(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{1}, consts.NetworkSizeLimit)
	require.Zero(r.UnpackUint32())
	require.ErrorIs(r.Err(), ErrInsufficientLength)

	// Reads after an error return zero values and keep the first error.
	require.Zero(r.UnpackByte())
	require.Equal("", r.UnpackString())
	require.ErrorIs(r.Err(), ErrInsufficientLength)
}

func TestPackerInvalidUTF8(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{2, 0, 0, 0, 0xff, 0xfe}, consts.NetworkSizeLimit)
	require.Equal("", r.UnpackString())
	require.ErrorIs(r.Err(), ErrInvalidUTF8)
}

func TestPackerTrailingBytes(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{1, 2}, consts.NetworkSizeLimit)
	r.UnpackByte()
	require.NoError(r.Err())
	require.ErrorIs(r.Finish(), ErrTrailingBytes)
}

func TestPackerLimits(t *testing.T) {
	require := require.New(t)

	w := NewWriter(0, 4)
	w.PackUint32(1)
	require.NoError(w.Err())
	w.PackByte(1)
	require.ErrorIs(w.Err(), ErrLimitExceeded)
	require.Len(w.Bytes(), 4)

	r := NewReader(make([]byte, 5), 4)
	require.ErrorIs(r.Err(), ErrLimitExceeded)
}

func TestPackerUnknownVariant(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{9}, consts.NetworkSizeLimit)
	tag := r.UnpackByte()
	r.UnknownVariant("Thing", tag)
	require.ErrorIs(r.Err(), ErrUnknownVariant)
	require.ErrorIs(r.Err(), ErrDecode)
	require.ErrorContains(r.Err(), "Thing tag 9 at offset 0")
}

// borshSample is encoded by an independent borsh implementation to check
// that Packer produces identical bytes.
type borshSample struct {
	A uint8
	B uint16
	C uint32
	D uint64
	E string
	F []byte
	G []string
	H *uint32
	I *uint32
	J [4]byte
}

func TestPackerMatchesBorsh(t *testing.T) {
	require := require.New(t)

	seven := uint32(7)
	sample := borshSample{
		A: 1,
		B: 513,
		C: 70000,
		D: 1 << 40,
		E: "test.near",
		F: []byte{9, 8, 7},
		G: []string{"www", "zzz"},
		H: nil,
		I: &seven,
		J: [4]byte{1, 2, 3, 4},
	}
	expected, err := borsh.Serialize(sample)
	require.NoError(err)

	p := NewWriter(0, consts.NetworkSizeLimit)
	p.PackByte(sample.A)
	p.PackUint16(sample.B)
	p.PackUint32(sample.C)
	p.PackUint64(sample.D)
	p.PackString(sample.E)
	p.PackBytes(sample.F)
	PackStrings(p, sample.G)
	p.PackOption(sample.H != nil)
	p.PackOption(sample.I != nil)
	p.PackUint32(*sample.I)
	p.PackFixedBytes(sample.J[:])
	require.NoError(p.Err())
	require.Equal(expected, p.Bytes())

	// borsh-go decodes an absent option as a pointer to the zero value, so H
	// is only checked for its value.
	var decoded borshSample
	require.NoError(borsh.Deserialize(&decoded, p.Bytes()))
	require.Equal(sample.A, decoded.A)
	require.Equal(sample.B, decoded.B)
	require.Equal(sample.C, decoded.C)
	require.Equal(sample.D, decoded.D)
	require.Equal(sample.E, decoded.E)
	require.Equal(sample.F, decoded.F)
	require.Equal(sample.G, decoded.G)
	if decoded.H != nil {
		require.Zero(*decoded.H)
	}
	require.Equal(sample.I, decoded.I)
	require.Equal(sample.J, decoded.J)
}

func TestPackerEmptySequences(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0, consts.NetworkSizeLimit)
	p.PackBytes(nil)
	PackStrings(p, nil)
	p.PackBytes([]byte{})
	PackStrings(p, []string{})
	require.NoError(p.Err())
	require.Equal(make([]byte, 16), p.Bytes())

	r := NewReader(p.Bytes(), consts.NetworkSizeLimit)
	require.Nil(r.UnpackBytes())
	require.Nil(UnpackStrings(r))
	require.Nil(r.UnpackBytes())
	require.Nil(UnpackStrings(r))
	require.Nil(r.UnpackFixedBytes(0))
	require.NoError(r.Finish())
}

func TestPackerRejectsInvalidString(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0, consts.NetworkSizeLimit)
	p.PackString("\xff\xfe")
	require.ErrorIs(p.Err(), ErrInvalidString)
	require.NotErrorIs(p.Err(), ErrDecode)
	require.Empty(p.Bytes())

	// Later writes are dropped.
	p.PackString("ok")
	require.Empty(p.Bytes())
	require.ErrorIs(p.Err(), ErrInvalidString)
}

func TestPackerAddErr(t *testing.T) {
	require := require.New(t)

	errFirst := errors.New("first")
	p := NewWriter(0, consts.NetworkSizeLimit)
	p.AddErr(errFirst)
	p.AddErr(ErrTooManyItems)
	p.PackUint32(1)
	require.ErrorIs(p.Err(), errFirst)
	require.NotErrorIs(p.Err(), ErrTooManyItems)
	require.Empty(p.Bytes())
}
