// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pebble is a small key/value store on top of pebble, used by the
// CLI to keep key material and network settings between runs.
package pebble

import (
	"bytes"
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	CacheSize                   int64 `json:"cacheSize"`
	BytesPerSync                int   `json:"bytesPerSync"`
	WALBytesPerSync             int   `json:"walBytesPerSync"`
	MemTableStopWritesThreshold int   `json:"memTableStopWritesThreshold"`
	MemTableSize                int   `json:"memTableSize"`
	MaxOpenFiles                int   `json:"maxOpenFiles"`
	ConcurrentCompactions       int   `json:"concurrentCompactions"`
	Sync                        bool  `json:"sync"`
}

// NewDefaultConfig is tuned for a handful of small records rather than
// heavy write load.
func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   8 * 1024 * 1024,
		BytesPerSync:                512 * 1024,
		WALBytesPerSync:             0,
		MemTableStopWritesThreshold: 4,
		MemTableSize:                4 * 1024 * 1024,
		MaxOpenFiles:                1_024,
		ConcurrentCompactions:       1,
		Sync:                        true,
	}
}

type Database struct {
	lock    sync.RWMutex
	db      *pebble.DB
	metrics *metrics
	sync    *pebble.WriteOptions

	closing chan struct{}
	closed  bool
	wg      sync.WaitGroup
}

// New opens (or creates) the database at [file]. The returned registry
// holds the database metrics.
func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d := &Database{
		metrics: metrics,
		sync:    pebble.NoSync,
		closing: make(chan struct{}),
	}
	if cfg.Sync {
		d.sync = pebble.Sync
	}
	opts := &pebble.Options{
		Cache:                       pebble.NewCache(cfg.CacheSize),
		BytesPerSync:                cfg.BytesPerSync,
		Comparer:                    pebble.DefaultComparer,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                uint64(cfg.MemTableSize),
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions: func() int {
			return cfg.ConcurrentCompactions
		},
	}
	opts.Experimental.ReadSamplingMultiplier = -1 // explicitly disable seek compaction
	opts.EventListener = &pebble.EventListener{
		CompactionBegin: d.onCompactionBegin,
		CompactionEnd:   d.onCompactionEnd,
		WriteStallBegin: d.onWriteStallBegin,
		WriteStallEnd:   d.onWriteStallEnd,
	}
	db, err := pebble.Open(file, opts)
	opts.Cache.Unref()
	if err != nil {
		return nil, nil, err
	}
	d.db = db

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.collectMetrics()
	}()
	return d, registry, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return false, database.ErrClosed
	}
	_, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

// Get returns a copy of the value stored at [key] or [database.ErrNotFound].
func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	defer db.metrics.observeGet()()

	data, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	value := bytes.Clone(data)
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Set(key, value, db.sync)
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Delete(key, db.sync)
}

// Iterate calls [f] with every key/value pair whose key starts with
// [prefix], in key order. [f] receives copies it may retain. Iteration
// stops at the first error [f] returns.
func (db *Database) Iterate(prefix []byte, f func(key []byte, value []byte) error) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	it, err := db.db.NewIter(prefixBounds(prefix))
	if err != nil {
		return err
	}
	for valid := it.First(); valid; valid = it.Next() {
		if err := f(bytes.Clone(it.Key()), bytes.Clone(it.Value())); err != nil {
			_ = it.Close()
			return err
		}
	}
	if err := it.Error(); err != nil {
		_ = it.Close()
		return err
	}
	return it.Close()
}

func (db *Database) NewBatch() *Batch {
	return &Batch{db: db, batch: db.db.NewBatch()}
}

func (db *Database) Close() error {
	db.lock.Lock()
	if db.closed {
		db.lock.Unlock()
		return database.ErrClosed
	}
	db.closed = true
	close(db.closing)
	db.lock.Unlock()

	db.wg.Wait()
	return db.db.Close()
}

// Batch collects writes that are applied atomically by [Batch.Write].
type Batch struct {
	db    *Database
	batch *pebble.Batch
}

func (b *Batch) Put(key []byte, value []byte) error {
	return b.batch.Set(key, value, nil)
}

func (b *Batch) Delete(key []byte) error {
	return b.batch.Delete(key, nil)
}

func (b *Batch) Write() error {
	b.db.lock.RLock()
	defer b.db.lock.RUnlock()

	if b.db.closed {
		return database.ErrClosed
	}
	return b.batch.Commit(b.db.sync)
}

// prefixBounds returns the key range covering every key that starts with
// [prefix].
func prefixBounds(prefix []byte) *pebble.IterOptions {
	opts := &pebble.IterOptions{}
	if len(prefix) == 0 {
		return opts
	}
	opts.LowerBound = prefix
	upper := bytes.Clone(prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			opts.UpperBound = upper[:i+1]
			return opts
		}
	}
	// [prefix] is all 0xff bytes, so there is no upper bound.
	return opts
}
