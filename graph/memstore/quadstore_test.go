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

package memstore

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/graph/graphtest"
)

func makeStore(t testing.TB) (graph.Graph, func()) {
	return New(), func() {}
}

func TestMemstoreAll(t *testing.T) {
	graphtest.TestAll(t, makeStore)
}

func TestInsertionOrder(t *testing.T) {
	data := graphtest.MakeQuadSet()
	qs := New(data...)

	got, err := graph.Collect(qs.Find(nil, quad.IRI("follows"), nil))
	require.NoError(t, err)
	require.Equal(t, data[:8], got)

	require.NoError(t, qs.RemoveQuads(data[1]))
	require.NoError(t, qs.AddQuads(data[1]))
	got, err = graph.Collect(qs.Find(quad.IRI("C"), nil, nil))
	require.NoError(t, err)
	require.Equal(t, []quad.Quad{data[2], data[1]}, got)
}

func TestFindSnapshot(t *testing.T) {
	data := graphtest.MakeQuadSet()
	qs := New(data...)

	it := qs.Find(nil, nil, quad.IRI("B"))
	defer it.Close()
	n := 0
	for it.Next() {
		require.NoError(t, qs.RemoveQuads(it.Quad()))
		n++
	}
	require.Equal(t, 3, n)
	require.Equal(t, int64(len(data)-3), qs.Size())
}

func TestRegistered(t *testing.T) {
	require.True(t, graph.IsRegistered(StoreType))
	require.False(t, graph.IsPersistent(StoreType))
	g, err := graph.NewStore(StoreType, "", nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), g.Size())
}
