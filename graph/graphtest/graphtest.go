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

// Package graphtest contains conformance tests for graph.Graph implementations.
package graphtest

import (
	"sort"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/graph"
)

type DatabaseFunc func(t testing.TB) (graph.Graph, func())

func TestAll(t *testing.T, gen DatabaseFunc) {
	t.Run("load one", func(t *testing.T) { TestLoadOneQuad(t, gen) })
	t.Run("patterns", func(t *testing.T) { TestPatterns(t, gen) })
	t.Run("duplicates", func(t *testing.T) { TestDuplicates(t, gen) })
	t.Run("remove", func(t *testing.T) { TestRemove(t, gen) })
	t.Run("typed", func(t *testing.T) { TestLoadTypedQuads(t, gen) })
	t.Run("lists", func(t *testing.T) { TestLists(t, gen) })
}

func MakeQuadSet() []quad.Quad {
	return []quad.Quad{
		iriTriple("A", "follows", "B"),
		iriTriple("C", "follows", "B"),
		iriTriple("C", "follows", "D"),
		iriTriple("D", "follows", "B"),
		iriTriple("B", "follows", "F"),
		iriTriple("F", "follows", "G"),
		iriTriple("D", "follows", "G"),
		iriTriple("E", "follows", "F"),
		iriTriple("B", "status", "cool"),
		iriTriple("D", "status", "cool"),
		iriTriple("G", "status", "cool"),
	}
}

func iriTriple(s, p, o string) quad.Quad {
	return graph.Triple(quad.IRI(s), quad.IRI(p), quad.IRI(o))
}

func load(t testing.TB, g graph.Graph, data ...quad.Quad) {
	require.NoError(t, g.AddQuads(data...))
}

// Find returns the triples matching the pattern, sorted by their string form.
func Find(t testing.TB, g graph.Graph, s, p, o quad.Value) []quad.Quad {
	res, err := graph.Collect(g.Find(s, p, o))
	require.NoError(t, err)
	sort.Sort(quad.ByQuadString(res))
	return res
}

func expect(t testing.TB, exp []quad.Quad, got []quad.Quad) {
	exp = append([]quad.Quad{}, exp...)
	sort.Sort(quad.ByQuadString(exp))
	if len(exp) == 0 {
		require.Empty(t, got)
		return
	}
	require.Equal(t, exp, got)
}

func TestLoadOneQuad(t testing.TB, gen DatabaseFunc) {
	g, closer := gen(t)
	defer closer()

	q := iriTriple("Something", "points_to", "Something Else")
	load(t, g, q)
	require.Equal(t, int64(1), g.Size())
	require.True(t, g.Contains(q))
	expect(t, []quad.Quad{q}, Find(t, g, nil, nil, nil))
}

func TestPatterns(t testing.TB, gen DatabaseFunc) {
	g, closer := gen(t)
	defer closer()

	data := MakeQuadSet()
	load(t, g, data...)
	require.Equal(t, int64(len(data)), g.Size())

	var (
		b       = quad.IRI("B")
		c       = quad.IRI("C")
		d       = quad.IRI("D")
		follows = quad.IRI("follows")
		status  = quad.IRI("status")
	)
	cases := []struct {
		s, p, o quad.Value
		exp     []quad.Quad
	}{
		{s: c, exp: []quad.Quad{data[1], data[2]}},
		{p: status, exp: []quad.Quad{data[8], data[9], data[10]}},
		{o: b, exp: []quad.Quad{data[0], data[1], data[3]}},
		{s: d, p: follows, exp: []quad.Quad{data[3], data[6]}},
		{p: follows, o: b, exp: []quad.Quad{data[0], data[1], data[3]}},
		{s: d, o: b, exp: []quad.Quad{data[3]}},
		{s: d, p: status, o: quad.IRI("cool"), exp: []quad.Quad{data[9]}},
		{s: quad.IRI("missing")},
		{s: b, p: b},
		{exp: data},
	}
	for _, c := range cases {
		expect(t, c.exp, Find(t, g, c.s, c.p, c.o))
	}
}

func TestDuplicates(t testing.TB, gen DatabaseFunc) {
	g, closer := gen(t)
	defer closer()

	data := MakeQuadSet()
	load(t, g, data...)
	load(t, g, data[:3]...)
	withLabel := data[0]
	withLabel.Label = quad.IRI("graph")
	load(t, g, withLabel)
	require.Equal(t, int64(len(data)), g.Size())
}

func TestRemove(t testing.TB, gen DatabaseFunc) {
	g, closer := gen(t)
	defer closer()

	data := MakeQuadSet()
	load(t, g, data...)
	require.NoError(t, g.RemoveQuads(data[0], data[8]))
	require.NoError(t, g.RemoveQuads(data[0]))
	require.False(t, g.Contains(data[0]))
	require.True(t, g.Contains(data[1]))
	require.Equal(t, int64(len(data)-2), g.Size())
	expect(t, []quad.Quad{data[1], data[3]}, Find(t, g, nil, nil, quad.IRI("B")))

	load(t, g, data[0])
	require.True(t, g.Contains(data[0]))
	require.Equal(t, int64(len(data)-1), g.Size())
}

func TestLoadTypedQuads(t testing.TB, gen DatabaseFunc) {
	g, closer := gen(t)
	defer closer()

	s := quad.BNode("n1")
	vals := []quad.Value{
		quad.String("plain"),
		quad.LangString{Value: "chat", Lang: "fr"},
		quad.TypedString{Value: "2", Type: "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"},
		quad.Int(42),
		quad.Bool(true),
		quad.IRI("http://example.com/o"),
		quad.BNode("n2"),
	}
	for i, v := range vals {
		load(t, g, graph.Triple(s, quad.IRI("p"+string(rune('a'+i))), v))
	}
	for i, v := range vals {
		got := Find(t, g, s, quad.IRI("p"+string(rune('a'+i))), nil)
		require.Len(t, got, 1)
		require.Equal(t, v, got[0].Object)
		require.True(t, g.Contains(got[0]))
	}
}

func TestLists(t testing.TB, gen DatabaseFunc) {
	g, closer := gen(t)
	defer closer()

	items := []quad.Value{quad.IRI("a"), quad.IRI("b"), quad.IRI("c")}
	head, quads := graph.NewList(items, func(i int) quad.Value {
		return quad.BNode("l" + string(rune('0'+i)))
	})
	load(t, g, quads...)
	got, err := graph.ListValues(g, head)
	require.NoError(t, err)
	require.Equal(t, items, got)

	got, err = graph.ListValues(g, graph.Nil())
	require.NoError(t, err)
	require.Empty(t, got)

	// l2 -> l0 closes a cycle
	rest := quad.IRI(rdf.Rest).Full()
	require.NoError(t, g.RemoveQuads(graph.Triple(quad.BNode("l2"), rest, graph.Nil())))
	load(t, g, graph.Triple(quad.BNode("l2"), rest, quad.BNode("l0")))
	_, err = graph.ListValues(g, head)
	require.ErrorIs(t, err, graph.ErrListCycle)

	load(t, g, graph.Triple(quad.BNode("l1"), rest, graph.Nil()))
	_, err = graph.ListValues(g, head)
	require.ErrorIs(t, err, graph.ErrMalformedList)
}
