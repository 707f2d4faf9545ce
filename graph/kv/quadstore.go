// Copyright 2017 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kv implements a persistent triple graph on top of hidalgo key-value stores.
//
// Values are stored once, keyed by their hash. Each triple is written to three
// index buckets (spo, pos, osp), so any pattern with bound values is a prefix scan.
package kv

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/pquads"
	"github.com/hidal-go/hidalgo/kv"
	boom "github.com/tylertreat/BoomFilters"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/lru"
)

const latestDataVersion = 1

var (
	ErrNotInitialized = errors.New("kv: database is not initialized")
	ErrVersion        = errors.New("kv: unsupported data version")
)

var (
	metaBucket  = kv.Key{[]byte("meta")}
	valueBucket = kv.Key{[]byte("value")}

	keyVersion = metaBucket.AppendBytes([]byte("version"))
	keySize    = metaBucket.AppendBytes([]byte("size"))
)

// index lists the order of triple directions (0=s, 1=p, 2=o) in the bucket key.
type index struct {
	bucket kv.Key
	dirs   [3]int
}

var (
	indexSPO = index{bucket: kv.Key{[]byte("spo")}, dirs: [3]int{0, 1, 2}}
	indexPOS = index{bucket: kv.Key{[]byte("pos")}, dirs: [3]int{1, 2, 0}}
	indexOSP = index{bucket: kv.Key{[]byte("osp")}, dirs: [3]int{2, 0, 1}}

	indexes = []index{indexSPO, indexPOS, indexOSP}
)

func (ind index) key(h [3][]byte, n int) kv.Key {
	k := ind.bucket
	for _, d := range ind.dirs[:n] {
		k = k.AppendBytes(h[d])
	}
	return k
}

var _ graph.Graph = (*Store)(nil)

type Store struct {
	db   kv.KV
	vals *lru.Cache[string, quad.Value]

	mu   sync.Mutex
	size int64

	exists *boom.DeletableBloomFilter
}

// Init prepares an empty database. It fails with graph.ErrDatabaseExists if it was already initialized.
func Init(db kv.KV, _ graph.Options) error {
	ctx := context.TODO()
	qs := &Store{db: db}
	if _, err := qs.version(ctx); err == nil {
		return graph.ErrDatabaseExists
	} else if err != ErrNotInitialized {
		return err
	}
	return qs.update(ctx, func(tx kv.Tx) error {
		return putInt(tx, keyVersion, latestDataVersion)
	})
}

// New opens a triple graph in the database.
//
// Options:
//   - "auto_init" (bool, default true) initializes an empty database.
//   - "cache_size" (int, default 10000) limits the number of cached values.
func New(db kv.KV, opts graph.Options) (*Store, error) {
	ctx := context.TODO()
	autoInit, err := opts.BoolKey("auto_init", true)
	if err != nil {
		return nil, err
	}
	cacheSize, err := opts.IntKey("cache_size", 10000)
	if err != nil {
		return nil, err
	}
	qs := &Store{db: db, vals: lru.New[string, quad.Value](cacheSize)}
	vers, err := qs.version(ctx)
	if err == ErrNotInitialized && autoInit {
		if err = Init(db, opts); err != nil {
			return nil, err
		}
		vers = latestDataVersion
	} else if err != nil {
		return nil, err
	}
	if vers != latestDataVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, vers)
	}
	if err := qs.view(ctx, func(tx kv.Tx) error {
		qs.size, err = getInt(ctx, tx, keySize)
		return err
	}); err != nil {
		return nil, err
	}
	if err := qs.initBloomFilter(ctx); err != nil {
		return nil, err
	}
	return qs, nil
}

func (qs *Store) update(ctx context.Context, fn func(tx kv.Tx) error) error {
	tx, err := qs.db.Tx(true)
	if err != nil {
		return err
	}
	tx = wrapTx(tx)
	defer tx.Close()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (qs *Store) view(ctx context.Context, fn func(tx kv.Tx) error) error {
	tx, err := qs.db.Tx(false)
	if err != nil {
		return err
	}
	tx = wrapTx(tx)
	defer tx.Close()
	return fn(tx)
}

func (qs *Store) version(ctx context.Context) (int64, error) {
	var vers int64
	err := qs.view(ctx, func(tx kv.Tx) error {
		_, err := tx.Get(ctx, keyVersion)
		if err == kv.ErrNotFound {
			return ErrNotInitialized
		} else if err != nil {
			return err
		}
		vers, err = getInt(ctx, tx, keyVersion)
		return err
	})
	return vers, err
}

func getInt(ctx context.Context, tx kv.Tx, key kv.Key) (int64, error) {
	val, err := tx.Get(ctx, key)
	if err == kv.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	} else if len(val) != 8 {
		return 0, fmt.Errorf("kv: unexpected int size: %d", len(val))
	}
	return int64(binary.LittleEndian.Uint64(val)), nil
}

func putInt(tx kv.Tx, key kv.Key, v int64) error {
	buf := make([]byte, 8) // bolt needs all slices available on Commit
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return tx.Put(key, buf)
}

func (qs *Store) initBloomFilter(ctx context.Context) error {
	qs.exists = boom.NewDeletableBloomFilter(100*1000, 120, 0.05)
	return qs.view(ctx, func(tx kv.Tx) error {
		it := tx.Scan(indexSPO.bucket)
		defer it.Close()
		for it.Next(ctx) {
			qs.exists.Add(it.Val())
		}
		return it.Err()
	})
}

func hashes(q quad.Quad) [3][]byte {
	return [3][]byte{
		quad.HashOf(q.Subject),
		quad.HashOf(q.Predicate),
		quad.HashOf(q.Object),
	}
}

// entry is the value of every index record: the concatenated s, p and o hashes.
func entry(h [3][]byte) []byte {
	return bytes.Join(h[:], nil)
}

func splitEntry(b []byte) ([3][]byte, error) {
	var h [3][]byte
	if len(b) == 0 || len(b)%3 != 0 {
		return h, fmt.Errorf("kv: corrupted index entry of size %d", len(b))
	}
	n := len(b) / 3
	for i := range h {
		h[i] = b[i*n : (i+1)*n]
	}
	return h, nil
}

func (qs *Store) testBloom(e []byte) bool {
	if qs.exists.Test(e) {
		mQuadsBloomMiss.Inc()
		return true
	}
	mQuadsBloomHit.Inc()
	return false
}

func (qs *Store) hasEntry(ctx context.Context, tx kv.Tx, h [3][]byte) (bool, error) {
	if !qs.testBloom(entry(h)) {
		return false, nil
	}
	_, err := tx.Get(ctx, indexSPO.key(h, 3))
	if err == kv.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (qs *Store) AddQuads(quads ...quad.Quad) error {
	if len(quads) == 0 {
		return nil
	}
	ctx := context.TODO()
	start := time.Now()
	defer func() { mApplySeconds.Observe(time.Since(start).Seconds()) }()

	qs.mu.Lock()
	defer qs.mu.Unlock()
	var added [][]byte
	err := qs.update(ctx, func(tx kv.Tx) error {
		batch := make(map[string]struct{})
		for _, q := range quads {
			if !q.IsValid() {
				return fmt.Errorf("kv: invalid triple: %v", q)
			}
			h := hashes(q)
			e := entry(h)
			if _, ok := batch[string(e)]; ok {
				continue
			}
			ok, err := qs.hasEntry(ctx, tx, h)
			if err != nil {
				return err
			} else if ok {
				continue
			}
			batch[string(e)] = struct{}{}
			for i, v := range [3]quad.Value{q.Subject, q.Predicate, q.Object} {
				if err := qs.putValue(tx, h[i], v); err != nil {
					return err
				}
			}
			for _, ind := range indexes {
				if err := tx.Put(ind.key(h, 3), e); err != nil {
					return err
				}
			}
			added = append(added, e)
		}
		return putInt(tx, keySize, qs.size+int64(len(added)))
	})
	if err != nil {
		return err
	}
	for _, e := range added {
		qs.exists.Add(e)
	}
	qs.size += int64(len(added))
	if clog.V(2) {
		clog.Infof("kv: added %d of %d triples", len(added), len(quads))
	}
	return nil
}

func (qs *Store) putValue(tx kv.Tx, h []byte, v quad.Value) error {
	if _, ok := qs.vals.Get(string(h)); ok {
		return nil
	}
	b, err := pquads.MarshalValue(v)
	if err != nil {
		return err
	}
	if err := tx.Put(valueBucket.AppendBytes(h), b); err != nil {
		return err
	}
	qs.vals.Put(string(h), v)
	return nil
}

func (qs *Store) RemoveQuads(quads ...quad.Quad) error {
	if len(quads) == 0 {
		return nil
	}
	ctx := context.TODO()
	start := time.Now()
	defer func() { mApplySeconds.Observe(time.Since(start).Seconds()) }()

	qs.mu.Lock()
	defer qs.mu.Unlock()
	var removed [][]byte
	err := qs.update(ctx, func(tx kv.Tx) error {
		batch := make(map[string]struct{})
		for _, q := range quads {
			if !q.IsValid() {
				continue
			}
			h := hashes(q)
			e := entry(h)
			if _, ok := batch[string(e)]; ok {
				continue
			}
			ok, err := qs.hasEntry(ctx, tx, h)
			if err != nil {
				return err
			} else if !ok {
				continue
			}
			batch[string(e)] = struct{}{}
			for _, ind := range indexes {
				if err := tx.Del(ind.key(h, 3)); err != nil {
					return err
				}
			}
			removed = append(removed, e)
		}
		return putInt(tx, keySize, qs.size-int64(len(removed)))
	})
	if err != nil {
		return err
	}
	for _, e := range removed {
		qs.exists.TestAndRemove(e)
	}
	qs.size -= int64(len(removed))
	return nil
}

func (qs *Store) Contains(q quad.Quad) bool {
	if !q.IsValid() {
		return false
	}
	ctx := context.TODO()
	var ok bool
	err := qs.view(ctx, func(tx kv.Tx) error {
		var err error
		ok, err = qs.hasEntry(ctx, tx, hashes(q))
		return err
	})
	if err != nil {
		clog.Errorf("kv: cannot check triple %v: %v", q, err)
		return false
	}
	return ok
}

// plan selects the index and the number of bound leading directions for a pattern.
func plan(s, p, o quad.Value) (index, int) {
	switch {
	case s != nil && p != nil && o != nil:
		return indexSPO, 3
	case s != nil && p != nil:
		return indexSPO, 2
	case s != nil && o != nil:
		return indexOSP, 2
	case s != nil:
		return indexSPO, 1
	case p != nil && o != nil:
		return indexPOS, 2
	case p != nil:
		return indexPOS, 1
	case o != nil:
		return indexOSP, 1
	}
	return indexSPO, 0
}

func (qs *Store) Find(s, p, o quad.Value) graph.Iterator {
	ctx := context.TODO()
	start := time.Now()
	defer func() { mFindSeconds.Observe(time.Since(start).Seconds()) }()

	var bound [3][]byte
	for i, v := range [3]quad.Value{s, p, o} {
		if v != nil {
			bound[i] = quad.HashOf(v)
		}
	}
	ind, n := plan(s, p, o)
	var out []quad.Quad
	err := qs.view(ctx, func(tx kv.Tx) error {
		it := tx.Scan(ind.key(bound, n))
		defer it.Close()
		var entries [][3][]byte
		for it.Next(ctx) {
			h, err := splitEntry(it.Val())
			if err != nil {
				return err
			}
			entries = append(entries, [3][]byte{
				append([]byte{}, h[0]...),
				append([]byte{}, h[1]...),
				append([]byte{}, h[2]...),
			})
		}
		if err := it.Err(); err != nil {
			return err
		}
		for _, h := range entries {
			var vals [3]quad.Value
			for i := range h {
				v, err := qs.getValue(ctx, tx, h[i])
				if err != nil {
					return err
				}
				vals[i] = v
			}
			q := graph.Triple(vals[0], vals[1], vals[2])
			if graph.Matches(q, s, p, o) {
				out = append(out, q)
			}
		}
		return nil
	})
	if err != nil {
		return graph.NewErrorIterator(err)
	}
	return graph.NewSliceIterator(out)
}

func (qs *Store) getValue(ctx context.Context, tx kv.Tx, h []byte) (quad.Value, error) {
	if v, ok := qs.vals.Get(string(h)); ok {
		return v, nil
	}
	mValueCacheMiss.Inc()
	b, err := tx.Get(ctx, valueBucket.AppendBytes(h))
	if err == kv.ErrNotFound {
		return nil, fmt.Errorf("kv: missing value for hash %x", h)
	} else if err != nil {
		return nil, err
	}
	v, err := pquads.UnmarshalValue(b)
	if err != nil {
		return nil, err
	}
	qs.vals.Put(string(h), v)
	return v, nil
}

func (qs *Store) Size() int64 {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.size
}

func (qs *Store) Close() error {
	return qs.db.Close()
}
