// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.


// Package sortmap implements a sorted multimap over serialized records.
// Records are buffered in memory and written to a pebble store once the
// buffer outgrows its memory budget, so that inputs larger than memory can
// be sorted and grouped.
package sortmap

import (
	"context"
	"time"

	"github.com/cockroachdb/dagserde/pkg/keycmp"
	"github.com/cockroachdb/dagserde/pkg/util/encoding"
	"github.com/cockroachdb/dagserde/pkg/util/humanizeutil"
	"github.com/cockroachdb/dagserde/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/google/btree"
)

// DefaultMemoryBudget is the buffer size used when Options.MemoryBudget is
// zero.
const DefaultMemoryBudget = 64 << 20

// Options configures a Map.
type Options struct {
	// Ordering of the records used as keys.
	Ordering keycmp.Ordering
	// MemoryBudget is the number of key and value bytes buffered in memory
	// before they are written to the store.
	MemoryBudget int64
	// FS and Dir locate the store. A nil FS with an empty Dir keeps the
	// store in memory; a nil FS with a Dir uses the local disk.
	FS  vfs.FS
	Dir string
	// Metrics, if set, is updated by the map.
	Metrics *Metrics
}

// Map is a sorted multimap keyed by serialized records. Entries with equal
// keys are kept in insertion order. A Map is not safe for concurrent use.
type Map struct {
	ord     keycmp.Ordering
	db      *pebble.DB
	budget  int64
	metrics *Metrics

	// buf holds the entries not yet written to db.
	buf      *btree.BTree
	bufBytes int64
	seq      uint64

	spillLog *log.EveryN
}

// entry is a buffered key and value. The key carries its sequence suffix.
type entry struct {
	key, value []byte
	ord        keycmp.Ordering
}

// Less implements btree.Item.
func (e *entry) Less(than btree.Item) bool {
	return compareKeys(e.ord, e.key, than.(*entry).key) < 0
}

// Open creates an empty map.
func Open(ctx context.Context, opts Options) (*Map, error) {
	if len(opts.Ordering) == 0 {
		return nil, errors.New("sorted map requires an ordering")
	}
	if opts.MemoryBudget < 0 {
		return nil, errors.Newf("negative memory budget %d", opts.MemoryBudget)
	}
	budget := opts.MemoryBudget
	if budget == 0 {
		budget = DefaultMemoryBudget
	}
	fs, dir := opts.FS, opts.Dir
	if fs == nil {
		if dir == "" {
			fs, dir = vfs.NewMem(), "sortmap"
		} else {
			fs = vfs.Default
		}
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = MakeMetrics()
	}
	ctx = logtags.AddTag(ctx, "sortmap", opts.Ordering.String())
	db, err := pebble.Open(dir, &pebble.Options{
		Comparer:   Comparer(opts.Ordering),
		FS:         fs,
		DisableWAL: true,
		Logger:     pebbleLogger{ctx: ctx, depth: 1},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening store in %q", dir)
	}
	log.VEventf(ctx, 1, "opened sorted map with a %s budget", humanizeutil.IBytes(budget))
	return &Map{
		ord:     opts.Ordering,
		db:      db,
		budget:  budget,
		metrics: metrics,
		buf:     btree.New(32),

		spillLog: log.Every(10 * time.Second),
	}, nil
}

// Ordering returns the ordering of the map's keys.
func (m *Map) Ordering() keycmp.Ordering {
	return m.ord
}

// checkKey returns an error unless key holds exactly one record.
func (m *Map) checkKey(key []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("malformed key %x for ordering %s", key, m.ord)
		}
	}()
	if n := m.ord.KeyLen(key); n != len(key) {
		return errors.Newf("key %x has %d bytes after the record", key, len(key)-n)
	}
	return nil
}

// Put adds an entry. The key must hold exactly one record of the map's
// ordering. Both slices are copied.
func (m *Map) Put(ctx context.Context, key, value []byte) error {
	if err := m.checkKey(key); err != nil {
		return err
	}
	k := make([]byte, 0, len(key)+seqSuffixLen)
	k = encoding.EncodeUint64Ascending(append(k, key...), m.seq)
	m.seq++
	e := &entry{key: k, value: append([]byte(nil), value...), ord: m.ord}
	m.buf.ReplaceOrInsert(e)
	size := int64(len(e.key) + len(e.value))
	m.bufBytes += size
	m.metrics.Puts.Inc(1)
	m.metrics.BufferedBytes.Inc(size)
	if m.bufBytes > m.budget {
		return m.flush(ctx)
	}
	return nil
}

// flush writes the buffered entries to the store as one batch.
func (m *Map) flush(ctx context.Context) error {
	if m.buf.Len() == 0 {
		return nil
	}
	batch := m.db.NewBatch()
	var err error
	m.buf.Ascend(func(i btree.Item) bool {
		e := i.(*entry)
		err = batch.Set(e.key, e.value, nil)
		return err == nil
	})
	if err == nil {
		err = batch.Commit(pebble.NoSync)
	}
	if closeErr := batch.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "writing buffered entries")
	}
	if m.spillLog.ShouldLog() {
		log.Infof(ctx, "spilled %d entries (%s); %d spills so far",
			m.buf.Len(), humanizeutil.IBytes(m.bufBytes), m.metrics.Spills.Count()+1)
	} else {
		log.VEventf(ctx, 1, "spilled %d entries (%s)", m.buf.Len(), humanizeutil.IBytes(m.bufBytes))
	}
	m.metrics.Spills.Inc(1)
	m.metrics.SpilledBytes.Inc(m.bufBytes)
	m.metrics.BufferedBytes.Dec(m.bufBytes)
	m.buf.Clear(false /* addNodesToFreelist */)
	m.bufBytes = 0
	return nil
}

// Close releases the store.
func (m *Map) Close(ctx context.Context) error {
	m.metrics.BufferedBytes.Dec(m.bufBytes)
	m.buf.Clear(false /* addNodesToFreelist */)
	m.bufBytes = 0
	if err := m.db.Close(); err != nil {
		log.Warningf(ctx, "closing sorted map: %v", err)
		return err
	}
	return nil
}

// Iterator walks the entries of a Map in key order.
type Iterator struct {
	iter  *pebble.Iterator
	valid bool
}

// NewIterator writes any buffered entries to the store and returns an
// iterator over all entries. The iterator is positioned before the first
// entry; call First to start.
func (m *Map) NewIterator(ctx context.Context) (*Iterator, error) {
	if err := m.flush(ctx); err != nil {
		return nil, err
	}
	iter, err := m.db.NewIter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating iterator")
	}
	return &Iterator{iter: iter}, nil
}

// First positions the iterator on the first entry.
func (it *Iterator) First() bool {
	it.valid = it.iter.First()
	return it.valid
}

// Next advances the iterator.
func (it *Iterator) Next() bool {
	it.valid = it.iter.Next()
	return it.valid
}

// Valid reports whether the iterator is positioned on an entry.
func (it *Iterator) Valid() bool {
	return it.valid
}

// Key returns the record of the current entry. It is only valid until the
// iterator moves.
func (it *Iterator) Key() []byte {
	k := it.iter.Key()
	return k[:len(k)-seqSuffixLen]
}

// Value returns the value of the current entry. It is only valid until the
// iterator moves.
func (it *Iterator) Value() []byte {
	return it.iter.Value()
}

// Close releases the iterator. Closing an iterator twice is a no-op.
func (it *Iterator) Close() error {
	if it.iter == nil {
		return nil
	}
	err := it.iter.Close()
	it.iter, it.valid = nil, false
	return err
}

// Groups calls fn once per distinct key, in key order, with the values of
// all entries whose records compare equal, NaN matching NaN. The key passed to fn is the
// first one inserted among them. Iteration stops at the first error.
func (m *Map) Groups(ctx context.Context, fn func(key []byte, values [][]byte) error) error {
	it, err := m.NewIterator(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = it.Close() }()

	var key []byte
	var values [][]byte
	groups := 0
	for ok := it.First(); ok; ok = it.Next() {
		if key != nil && m.ord.CompareTotal(key, it.Key()) != 0 {
			if err := fn(key, values); err != nil {
				return err
			}
			groups++
			key, values = nil, nil
		}
		if key == nil {
			key = append([]byte(nil), it.Key()...)
		}
		values = append(values, append([]byte(nil), it.Value()...))
	}
	if key != nil {
		if err := fn(key, values); err != nil {
			return err
		}
		groups++
	}
	log.VEventf(ctx, 1, "produced %d groups", groups)
	return it.Close()
}
