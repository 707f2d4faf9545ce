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
	"strings"

	"github.com/hidal-go/hidalgo/kv"
	"github.com/hidal-go/hidalgo/kv/flat"
	"github.com/hidal-go/hidalgo/kv/flat/btree"

	"github.com/cayleygraph/owlgraph/graph"
)

// BTreeType is the in-memory hidalgo store, always registered.
const BTreeType = "btree"

func init() {
	graph.RegisterStore(BTreeType, graph.Registration{
		NewFunc: func(_ string, opts graph.Options) (graph.Graph, error) {
			return NewBTree(opts)
		},
		IsPersistent: false,
	})
}

// NewBTree creates a triple graph in a volatile hidalgo B-tree.
func NewBTree(opts graph.Options) (*Store, error) {
	return New(flat.Upgrade(btree.New()), opts)
}

// RegisterBackends registers every hidalgo backend linked into the binary as a graph store.
// Names are registered without the "flat." prefix when possible.
func RegisterBackends() {
	for _, r := range kv.List() {
		r := r
		if r.OpenPath == nil {
			continue
		}
		name := r.Name
		if strings.HasPrefix(name, "flat.") && !graph.IsRegistered(name[5:]) {
			name = name[5:]
		}
		if graph.IsRegistered(name) {
			continue
		}
		graph.RegisterStore(name, graph.Registration{
			NewFunc: func(path string, opts graph.Options) (graph.Graph, error) {
				db, err := r.OpenPath(path)
				if err != nil {
					return nil, err
				}
				qs, err := New(db, opts)
				if err != nil {
					db.Close()
					return nil, err
				}
				return qs, nil
			},
			InitFunc: func(path string, opts graph.Options) error {
				db, err := r.OpenPath(path)
				if err != nil {
					return err
				}
				defer db.Close()
				return Init(db, opts)
			},
			IsPersistent: !r.Volatile,
		})
	}
}
