// Copyright 2014 The Cayley Authors. All rights reserved.
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

// Package memstore implements an in-memory, insertion-ordered triple graph.
package memstore

import (
	"sort"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
)

const StoreType = "memory"

func init() {
	graph.RegisterStore(StoreType, graph.Registration{
		NewFunc: func(string, graph.Options) (graph.Graph, error) {
			return New(), nil
		},
		IsPersistent: false,
	})
}

type idSet map[int64]struct{}

// Store keeps triples in a log indexed by subject, predicate and object.
// Find returns triples in insertion order.
type Store struct {
	last  int64
	log   map[int64]quad.Quad
	ids   map[quad.Quad]int64
	index [3]map[quad.Value]idSet
}

var _ graph.Graph = (*Store)(nil)

// New creates a store and adds the given triples to it.
func New(quads ...quad.Quad) *Store {
	qs := &Store{
		log: make(map[int64]quad.Quad),
		ids: make(map[quad.Quad]int64),
	}
	for i := range qs.index {
		qs.index[i] = make(map[quad.Value]idSet)
	}
	_ = qs.AddQuads(quads...)
	return qs
}

func dirs(q quad.Quad) [3]quad.Value {
	return [3]quad.Value{q.Subject, q.Predicate, q.Object}
}

func (qs *Store) AddQuads(quads ...quad.Quad) error {
	for _, q := range quads {
		q.Label = nil
		if _, ok := qs.ids[q]; ok {
			continue
		}
		qs.last++
		id := qs.last
		qs.log[id] = q
		qs.ids[q] = id
		for d, v := range dirs(q) {
			set := qs.index[d][v]
			if set == nil {
				set = make(idSet)
				qs.index[d][v] = set
			}
			set[id] = struct{}{}
		}
	}
	return nil
}

func (qs *Store) RemoveQuads(quads ...quad.Quad) error {
	for _, q := range quads {
		q.Label = nil
		id, ok := qs.ids[q]
		if !ok {
			continue
		}
		delete(qs.ids, q)
		delete(qs.log, id)
		for d, v := range dirs(q) {
			set := qs.index[d][v]
			delete(set, id)
			if len(set) == 0 {
				delete(qs.index[d], v)
			}
		}
	}
	return nil
}

func (qs *Store) Contains(q quad.Quad) bool {
	q.Label = nil
	_, ok := qs.ids[q]
	return ok
}

// candidates returns the smallest index set for the bound directions.
func (qs *Store) candidates(s, p, o quad.Value) (idSet, bool) {
	var (
		best  idSet
		found bool
	)
	for d, v := range [3]quad.Value{s, p, o} {
		if v == nil {
			continue
		}
		set := qs.index[d][v]
		if !found || len(set) < len(best) {
			best, found = set, true
		}
	}
	return best, found
}

func (qs *Store) Find(s, p, o quad.Value) graph.Iterator {
	var ids []int64
	if set, ok := qs.candidates(s, p, o); ok {
		ids = make([]int64, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
	} else {
		ids = make([]int64, 0, len(qs.log))
		for id := range qs.log {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]quad.Quad, 0, len(ids))
	for _, id := range ids {
		q := qs.log[id]
		if graph.Matches(q, s, p, o) {
			out = append(out, q)
		}
	}
	return graph.NewSliceIterator(out)
}

func (qs *Store) Size() int64 { return int64(len(qs.log)) }

func (qs *Store) Close() error { return nil }
