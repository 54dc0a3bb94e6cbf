// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/math"
)

// Option flags. Any other value is rejected when decoding.
const (
	optionNone uint8 = 0
	optionSome uint8 = 1
)

// Packer reads or writes the canonical borsh encoding. All integers are
// little-endian. Variable-length values (bytes, strings, sequences) are
// prefixed with their u32 length.
//
// Packer records the first error it encounters. After an error every Pack
// call is a no-op and every Unpack call returns the zero value, so callers
// can pack or unpack a full structure and check [Packer.Err] once.
type Packer struct {
	bytes  []byte
	offset int
	limit  int
	errs   wrappers.Errs
}

// NewWriter returns a Packer that appends to a buffer with [initial]
// capacity and refuses to grow past [limit] bytes.
func NewWriter(initial, limit int) *Packer {
	if initial > limit {
		initial = limit
	}
	return &Packer{
		bytes: make([]byte, 0, initial),
		limit: limit,
	}
}

// NewReader returns a Packer that decodes [src]. Inputs larger than [limit]
// are rejected up front.
func NewReader(src []byte, limit int) *Packer {
	p := &Packer{
		bytes: src,
		limit: limit,
	}
	if len(src) > limit {
		p.addErr(fmt.Errorf("%w: %d > %d", ErrLimitExceeded, len(src), limit))
	}
	return p
}

// Bytes returns the bytes written so far.
func (p *Packer) Bytes() []byte {
	return p.bytes
}

// Offset returns the number of bytes consumed by a reader.
func (p *Packer) Offset() int {
	return p.offset
}

// Remaining returns the number of unread bytes.
func (p *Packer) Remaining() int {
	return len(p.bytes) - p.offset
}

// Empty returns true if a reader has consumed all of its input.
func (p *Packer) Empty() bool {
	return p.offset == len(p.bytes)
}

func (p *Packer) Err() error {
	return p.errs.Err
}

func (p *Packer) Errored() bool {
	return p.errs.Errored()
}

// AddErr records [err] unless an earlier error is already recorded. Marshal
// implementations use it to reject values that have no valid encoding.
func (p *Packer) AddErr(err error) {
	p.errs.Add(err)
}

func (p *Packer) addErr(err error) {
	p.errs.Add(err)
}

// expand reserves [n] bytes at the end of the buffer and returns them.
func (p *Packer) expand(n int) []byte {
	if p.errs.Errored() {
		return nil
	}
	if n > p.limit-len(p.bytes) {
		p.addErr(fmt.Errorf("%w: writing %d bytes past %d", ErrLimitExceeded, n, p.limit))
		return nil
	}
	start := len(p.bytes)
	p.bytes = append(p.bytes, make([]byte, n)...)
	return p.bytes[start:]
}

// read consumes [n] bytes. The returned slice aliases the input.
func (p *Packer) read(n int) []byte {
	if p.errs.Errored() {
		return nil
	}
	if n < 0 || n > p.Remaining() {
		p.addErr(fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInsufficientLength, n, p.offset, p.Remaining()))
		return nil
	}
	b := p.bytes[p.offset : p.offset+n]
	p.offset += n
	return b
}

func (p *Packer) PackByte(b byte) {
	if dst := p.expand(consts.ByteLen); dst != nil {
		dst[0] = b
	}
}

func (p *Packer) UnpackByte() byte {
	b := p.read(consts.ByteLen)
	if b == nil {
		return 0
	}
	return b[0]
}

func (p *Packer) PackBool(v bool) {
	if v {
		p.PackByte(1)
		return
	}
	p.PackByte(0)
}

func (p *Packer) UnpackBool() bool {
	b := p.read(consts.BoolLen)
	if b == nil {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		p.addErr(fmt.Errorf("%w: %d", ErrInvalidBool, b[0]))
		return false
	}
}

func (p *Packer) PackUint16(v uint16) {
	if dst := p.expand(consts.Uint16Len); dst != nil {
		binary.LittleEndian.PutUint16(dst, v)
	}
}

func (p *Packer) UnpackUint16() uint16 {
	b := p.read(consts.Uint16Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (p *Packer) PackUint32(v uint32) {
	if dst := p.expand(consts.Uint32Len); dst != nil {
		binary.LittleEndian.PutUint32(dst, v)
	}
}

func (p *Packer) UnpackUint32() uint32 {
	b := p.read(consts.Uint32Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (p *Packer) PackUint64(v uint64) {
	if dst := p.expand(consts.Uint64Len); dst != nil {
		binary.LittleEndian.PutUint64(dst, v)
	}
}

func (p *Packer) UnpackUint64() uint64 {
	b := p.read(consts.Uint64Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (p *Packer) PackUint128(v math.Uint128) {
	b := v.Bytes()
	p.PackFixedBytes(b[:])
}

func (p *Packer) UnpackUint128() math.Uint128 {
	b := p.read(consts.Uint128Len)
	if b == nil {
		return math.Zero
	}
	v, err := math.FromBytes(b)
	if err != nil {
		p.addErr(err)
		return math.Zero
	}
	return v
}

// PackLen writes a u32 length or element count.
func (p *Packer) PackLen(n int) {
	if n < 0 || uint64(n) > uint64(consts.MaxUint32) {
		p.addErr(fmt.Errorf("%w: length %d", ErrTooManyItems, n))
		return
	}
	p.PackUint32(uint32(n))
}

// UnpackLen reads a u32 count of elements that each occupy at least
// [minElemSize] bytes. The count is checked against the unread input before
// the caller allocates anything.
func (p *Packer) UnpackLen(minElemSize int) int {
	n := p.UnpackUint32()
	if p.errs.Errored() {
		return 0
	}
	if minElemSize < 1 {
		minElemSize = 1
	}
	if uint64(n)*uint64(minElemSize) > uint64(p.Remaining()) {
		p.addErr(fmt.Errorf("%w: %d items of at least %d bytes, have %d", ErrInsufficientLength, n, minElemSize, p.Remaining()))
		return 0
	}
	return int(n)
}

// PackFixedBytes writes [b] with no length prefix.
func (p *Packer) PackFixedBytes(b []byte) {
	if dst := p.expand(len(b)); dst != nil {
		copy(dst, b)
	}
}

// UnpackFixedBytes reads exactly [size] bytes into a new slice. A zero
// [size] returns nil.
func (p *Packer) UnpackFixedBytes(size int) []byte {
	b := p.read(size)
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, b)
	return out
}

// PackBytes writes a u32 length followed by [b].
func (p *Packer) PackBytes(b []byte) {
	p.PackLen(len(b))
	p.PackFixedBytes(b)
}

func (p *Packer) UnpackBytes() []byte {
	n := p.UnpackLen(1)
	if p.errs.Errored() {
		return nil
	}
	return p.UnpackFixedBytes(n)
}

// PackString writes a u32 byte length followed by the UTF-8 bytes of [s].
// Strings that are not valid UTF-8 are rejected with [ErrInvalidString].
func (p *Packer) PackString(s string) {
	if !utf8.ValidString(s) {
		p.addErr(fmt.Errorf("%w: %q", ErrInvalidString, s))
		return
	}
	p.PackLen(len(s))
	if dst := p.expand(len(s)); dst != nil {
		copy(dst, s)
	}
}

func (p *Packer) UnpackString() string {
	n := p.UnpackLen(1)
	b := p.read(n)
	if p.errs.Errored() {
		return ""
	}
	if !utf8.Valid(b) {
		p.addErr(fmt.Errorf("%w: at offset %d", ErrInvalidUTF8, p.offset-n))
		return ""
	}
	return string(b)
}

// PackOption writes the presence flag of an optional value. The caller packs
// the value itself when [present] is true.
func (p *Packer) PackOption(present bool) {
	if present {
		p.PackByte(optionSome)
		return
	}
	p.PackByte(optionNone)
}

// UnpackOption reads a presence flag.
func (p *Packer) UnpackOption() bool {
	b := p.read(consts.ByteLen)
	if b == nil {
		return false
	}
	switch b[0] {
	case optionNone:
		return false
	case optionSome:
		return true
	default:
		p.addErr(fmt.Errorf("%w: %d", ErrInvalidOption, b[0]))
		return false
	}
}

// UnknownVariant records a discriminant outside the declared cases of
// [name]. Decoders call it from the default branch of their switch.
func (p *Packer) UnknownVariant(name string, tag uint8) {
	p.addErr(fmt.Errorf("%w: %s tag %d at offset %d", ErrUnknownVariant, name, tag, p.offset-consts.ByteLen))
}

// Finish returns the first error or [ErrTrailingBytes] if a reader did not
// consume all of its input.
func (p *Packer) Finish() error {
	if err := p.Err(); err != nil {
		return err
	}
	if !p.Empty() {
		return fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, p.Remaining())
	}
	return nil
}
