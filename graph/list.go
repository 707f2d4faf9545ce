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

package graph

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
)

var (
	ErrListCycle     = errors.New("graph: rdf list contains a cycle")
	ErrMalformedList = errors.New("graph: malformed rdf list")
)

var (
	rdfFirst = quad.IRI(rdf.First).Full()
	rdfRest  = quad.IRI(rdf.Rest).Full()
	rdfNil   = quad.IRI(rdf.Nil).Full()
)

// Nil is the empty RDF list.
func Nil() quad.Value { return rdfNil }

// IsNil checks if the value is the rdf:nil list terminator.
func IsNil(v quad.Value) bool {
	if iri, ok := v.(quad.IRI); ok {
		return iri.Full() == rdfNil
	}
	return false
}

// Objects returns all objects of triples with the given subject and predicate.
func Objects(g Graph, s, p quad.Value) ([]quad.Value, error) {
	quads, err := Collect(g.Find(s, p, nil))
	if err != nil {
		return nil, err
	}
	out := make([]quad.Value, 0, len(quads))
	for _, q := range quads {
		out = append(out, q.Object)
	}
	return out, nil
}

// single returns the only object of (s, p, ?).
func single(g Graph, s, p quad.Value) (quad.Value, error) {
	vals, err := Objects(g, s, p)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, fmt.Errorf("%w: %v has %d values for %v", ErrMalformedList, s, len(vals), p)
	}
	return vals[0], nil
}

// ListCells returns the cell nodes of the RDF list starting at head, in order.
// Each cell must have exactly one rdf:first and one rdf:rest. A cell visited twice is a cycle.
func ListCells(g Graph, head quad.Value) ([]quad.Value, error) {
	var (
		cells []quad.Value
		seen  = make(map[quad.Value]struct{})
	)
	for cur := head; !IsNil(cur); {
		if cur == nil || IsLiteral(cur) {
			return nil, fmt.Errorf("%w: unexpected cell %v", ErrMalformedList, cur)
		}
		if _, ok := seen[cur]; ok {
			return nil, fmt.Errorf("%w: at %v", ErrListCycle, cur)
		}
		seen[cur] = struct{}{}
		cells = append(cells, cur)
		next, err := single(g, cur, rdfRest)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cells, nil
}

// ListValues materializes the RDF list starting at head.
func ListValues(g Graph, head quad.Value) ([]quad.Value, error) {
	cells, err := ListCells(g, head)
	if err != nil {
		return nil, err
	}
	out := make([]quad.Value, 0, len(cells))
	for _, c := range cells {
		v, err := single(g, c, rdfFirst)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ListQuads returns all triples forming the RDF list starting at head.
func ListQuads(g Graph, head quad.Value) ([]quad.Quad, error) {
	cells, err := ListCells(g, head)
	if err != nil {
		return nil, err
	}
	var out []quad.Quad
	for _, c := range cells {
		for _, p := range []quad.Value{rdfFirst, rdfRest} {
			quads, err := Collect(g.Find(c, p, nil))
			if err != nil {
				return nil, err
			}
			out = append(out, quads...)
		}
	}
	return out, nil
}

// NewList builds the triples of an RDF list. The cell function names the i-th cell.
// An empty list is rdf:nil and produces no triples.
func NewList(items []quad.Value, cell func(i int) quad.Value) (quad.Value, []quad.Quad) {
	if len(items) == 0 {
		return rdfNil, nil
	}
	quads := make([]quad.Quad, 0, 2*len(items))
	head := cell(0)
	cur := head
	for i, v := range items {
		var next quad.Value = rdfNil
		if i+1 < len(items) {
			next = cell(i + 1)
		}
		quads = append(quads,
			Triple(cur, rdfFirst, v),
			Triple(cur, rdfRest, next),
		)
		cur = next
	}
	return head, quads
}
