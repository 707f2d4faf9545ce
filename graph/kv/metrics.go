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

package kv

import (
	"context"

	"github.com/hidal-go/hidalgo/kv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mQuadsBloomHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_quads_bloom_hits",
		Help: "Number of times the quad bloom filter returned a negative result.",
	})
	mQuadsBloomMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_quads_bloom_miss",
		Help: "Number of times the quad bloom filter returned a positive result.",
	})
	mValueCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_value_cache_miss",
		Help: "Number of values that were loaded from KV instead of the cache.",
	})
	mFindSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "owlgraph_kv_find_seconds",
		Help: "Time to resolve a triple pattern.",
	})
	mApplySeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "owlgraph_kv_apply_seconds",
		Help: "Time to write a batch of added or removed triples.",
	})

	mKVGet = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_get_count",
		Help: "Number of get KV calls.",
	})
	mKVGetMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_get_miss",
		Help: "Number of get KV calls that found no value.",
	})
	mKVPut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_put_count",
		Help: "Number of put KV calls.",
	})
	mKVDel = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_del_count",
		Help: "Number of del KV calls.",
	})
	mKVScan = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_scan_count",
		Help: "Number of scan KV calls.",
	})
	mKVCommit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_commit_count",
		Help: "Number of KV commits.",
	})
	mKVCommitErr = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_commit_errors",
		Help: "Number of KV commits that failed.",
	})
	mKVRollback = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_kv_rollback_count",
		Help: "Number of KV transactions that were rolled back.",
	})
)

func wrapTx(tx kv.Tx) kv.Tx {
	return &mTx{tx: tx}
}

// mTx counts KV operations.
type mTx struct {
	tx   kv.Tx
	done bool
}

func (tx *mTx) Commit(ctx context.Context) error {
	if !tx.done {
		tx.done = true
		mKVCommit.Inc()
	}
	err := tx.tx.Commit(ctx)
	if err != nil {
		mKVCommitErr.Inc()
	}
	return err
}

func (tx *mTx) Close() error {
	if !tx.done {
		tx.done = true
		mKVRollback.Inc()
	}
	return tx.tx.Close()
}

func (tx *mTx) Get(ctx context.Context, key kv.Key) (kv.Value, error) {
	mKVGet.Inc()
	val, err := tx.tx.Get(ctx, key)
	if err == kv.ErrNotFound {
		mKVGetMiss.Inc()
	}
	return val, err
}

func (tx *mTx) GetBatch(ctx context.Context, keys []kv.Key) ([]kv.Value, error) {
	mKVGet.Add(float64(len(keys)))
	vals, err := tx.tx.GetBatch(ctx, keys)
	for _, v := range vals {
		if v == nil {
			mKVGetMiss.Inc()
		}
	}
	return vals, err
}

func (tx *mTx) Put(k kv.Key, v kv.Value) error {
	mKVPut.Inc()
	return tx.tx.Put(k, v)
}

func (tx *mTx) Del(k kv.Key) error {
	mKVDel.Inc()
	return tx.tx.Del(k)
}

func (tx *mTx) Scan(pref kv.Key) kv.Iterator {
	mKVScan.Inc()
	return tx.tx.Scan(pref)
}
