// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// PackSlice writes a u32 element count followed by each element.
func PackSlice[T any](p *Packer, items []T, pack func(*Packer, T)) {
	p.PackLen(len(items))
	for _, item := range items {
		if p.Errored() {
			return
		}
		pack(p, item)
	}
}

// UnpackSlice reads a u32 element count followed by that many elements.
// [minElemSize] is the smallest encoding of a single element and bounds the
// count before anything is allocated. An empty sequence is returned as nil.
func UnpackSlice[T any](p *Packer, minElemSize int, unpack func(*Packer) T) []T {
	n := p.UnpackLen(minElemSize)
	if p.Errored() || n == 0 {
		return nil
	}
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		item := unpack(p)
		if p.Errored() {
			return nil
		}
		items = append(items, item)
	}
	return items
}

func PackStrings(p *Packer, s []string) {
	PackSlice(p, s, (*Packer).PackString)
}

func UnpackStrings(p *Packer) []string {
	return UnpackSlice(p, StringLen(""), (*Packer).UnpackString)
}
