// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *Database {
	db, registry, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, registry)
	return db
}

func TestGetPutDelete(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	defer func() { require.NoError(db.Close()) }()

	key := []byte("key")
	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)
	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(db.Put(key, []byte("value")))
	value, err := db.Get(key)
	require.NoError(err)
	require.Equal([]byte("value"), value)
	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	require.NoError(db.Delete(key))
	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestIteratePrefix(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	defer func() { require.NoError(db.Close()) }()

	batch := db.NewBatch()
	require.NoError(batch.Put([]byte{0x00, 'a'}, []byte("default")))
	require.NoError(batch.Put([]byte{0x01, 'b'}, []byte("b")))
	require.NoError(batch.Put([]byte{0x01, 'a'}, []byte("a")))
	require.NoError(batch.Put([]byte{0x01, 0xff}, []byte("ff")))
	require.NoError(batch.Put([]byte{0x02, 'a'}, []byte("network")))
	require.NoError(batch.Write())

	var values []string
	require.NoError(db.Iterate([]byte{0x01}, func(_ []byte, value []byte) error {
		values = append(values, string(value))
		return nil
	}))
	require.Equal([]string{"a", "b", "ff"}, values)

	var all int
	require.NoError(db.Iterate(nil, func([]byte, []byte) error {
		all++
		return nil
	}))
	require.Equal(5, all)

	errStop := errors.New("stop")
	err := db.Iterate([]byte{0x01}, func([]byte, []byte) error {
		return errStop
	})
	require.ErrorIs(err, errStop)
}

func TestPrefixBounds(t *testing.T) {
	tests := []struct {
		prefix []byte
		upper  []byte
	}{
		{prefix: nil, upper: nil},
		{prefix: []byte{0x01}, upper: []byte{0x02}},
		{prefix: []byte{0x01, 0xff}, upper: []byte{0x02}},
		{prefix: []byte{0xff, 0xff}, upper: nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%x", tt.prefix), func(t *testing.T) {
			opts := prefixBounds(tt.prefix)
			require.Equal(t, tt.upper, opts.UpperBound)
		})
	}
}

func TestClosed(t *testing.T) {
	require := require.New(t)

	db, _, err := New(t.TempDir(), NewDefaultConfig())
	require.NoError(err)
	require.NoError(db.Close())

	require.ErrorIs(db.Close(), database.ErrClosed)
	_, err = db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrClosed)
	require.ErrorIs(db.Put([]byte("k"), nil), database.ErrClosed)
}

func BenchmarkBatchInsertion(b *testing.B) {
	const batchSize = 10_000

	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(b.TempDir(), cfg)
			if err != nil {
				b.Fatal(err)
			}
			keys := make([][]byte, batchSize)
			for i := range keys {
				keys[i] = make([]byte, 32)
				if _, err := rand.Read(keys[i]); err != nil {
					b.Fatal(err)
				}
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for _, k := range keys {
					if err := batch.Put(k, k); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
