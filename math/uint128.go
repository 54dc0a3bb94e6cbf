// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package math provides overflow-checked 128-bit unsigned arithmetic for
// on-chain token amounts.
package math

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

const (
	Uint128Len = 16

	// maxPow10 is the largest power of 10 that fits in a uint64.
	maxPow10       = uint64(10_000_000_000_000_000_000)
	maxPow10Digits = 19
)

var (
	ErrOverflow       = errors.New("overflow")
	ErrUnderflow      = errors.New("underflow")
	ErrInvalidUint128 = errors.New("invalid uint128")

	Zero    = Uint128{}
	MaxUint = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit halves.
//
// The zero value is 0. Values are immutable: every operation returns a new
// Uint128.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// NewUint128 returns [lo] as a Uint128.
func NewUint128(lo uint64) Uint128 {
	return Uint128{Lo: lo}
}

func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

func (u Uint128) Equals(v Uint128) bool {
	return u == v
}

// Add returns u+v or [ErrOverflow].
func (u Uint128) Add(v Uint128) (Uint128, error) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)
	if carry != 0 {
		return Zero, ErrOverflow
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Sub returns u-v or [ErrUnderflow] if v > u.
func (u Uint128) Sub(v Uint128) (Uint128, error) {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, borrow := bits.Sub64(u.Hi, v.Hi, borrow)
	if borrow != 0 {
		return Zero, ErrUnderflow
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Mul64 returns u*v or [ErrOverflow].
func (u Uint128) Mul64(v uint64) (Uint128, error) {
	carry, lo := bits.Mul64(u.Lo, v)
	overflow, hi := bits.Mul64(u.Hi, v)
	if overflow != 0 {
		return Zero, ErrOverflow
	}
	hi, c := bits.Add64(hi, carry, 0)
	if c != 0 {
		return Zero, ErrOverflow
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// Mul returns u*v or [ErrOverflow].
func (u Uint128) Mul(v Uint128) (Uint128, error) {
	if u.Hi != 0 && v.Hi != 0 {
		return Zero, ErrOverflow
	}
	r, err := u.Mul64(v.Lo)
	if err != nil {
		return Zero, err
	}
	if v.Hi == 0 {
		return r, nil
	}
	overflow, cross := bits.Mul64(u.Lo, v.Hi)
	if overflow != 0 {
		return Zero, ErrOverflow
	}
	hi, c := bits.Add64(r.Hi, cross, 0)
	if c != 0 {
		return Zero, ErrOverflow
	}
	return Uint128{Hi: hi, Lo: r.Lo}, nil
}

// quoRem64 divides u by a non-zero v.
func (u Uint128) quoRem64(v uint64) (Uint128, uint64) {
	hi, r := u.Hi/v, u.Hi%v
	lo, r := bits.Div64(r, u.Lo, v)
	return Uint128{Hi: hi, Lo: lo}, r
}

// Max returns the larger of a and b.
func Max(a, b Uint128) Uint128 {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Uint128) Uint128 {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// String returns the base-10 representation of u with no sign, exponent or
// separators. This is the literal form nodes use for balances.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	var (
		buf [40]byte
		i   = len(buf)
		q   = u
		r   uint64
	)
	for q.Hi != 0 {
		q, r = q.quoRem64(maxPow10)
		for j := 0; j < maxPow10Digits; j++ {
			i--
			buf[i] = byte('0' + r%10)
			r /= 10
		}
	}
	return strconv.FormatUint(q.Lo, 10) + string(buf[i:])
}

// ParseUint128 parses a base-10 string made only of ASCII digits.
func ParseUint128(s string) (Uint128, error) {
	if len(s) == 0 {
		return Zero, fmt.Errorf("%w: empty string", ErrInvalidUint128)
	}
	var (
		u   Uint128
		err error
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Zero, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidUint128, c, s)
		}
		u, err = u.Mul64(10)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", err, s)
		}
		u, err = u.Add(NewUint128(uint64(c - '0')))
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", err, s)
		}
	}
	return u, nil
}

// MustParseUint128 is like [ParseUint128] but panics on error. It is intended
// for constants and tests.
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the little-endian wire encoding of u.
func (u Uint128) Bytes() [Uint128Len]byte {
	var b [Uint128Len]byte
	binary.LittleEndian.PutUint64(b[:8], u.Lo)
	binary.LittleEndian.PutUint64(b[8:], u.Hi)
	return b
}

// FromBytes decodes a little-endian 16-byte value.
func FromBytes(b []byte) (Uint128, error) {
	if len(b) != Uint128Len {
		return Zero, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidUint128, Uint128Len, len(b))
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

// Big returns u as a [big.Int].
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// FromBig converts a non-negative [big.Int] that fits in 128 bits.
func FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 {
		return Zero, ErrUnderflow
	}
	if b.BitLen() > 128 {
		return Zero, ErrOverflow
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// MarshalText encodes u as a decimal string. JSON encoding therefore produces
// a quoted string, matching the node's representation of large amounts.
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint128) UnmarshalText(text []byte) error {
	v, err := ParseUint128(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// UnmarshalJSON accepts both quoted decimal strings and bare JSON integers.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return u.UnmarshalText([]byte(s))
}
