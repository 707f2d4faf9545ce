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

// Package model provides an OWL-aware view over a triple graph:
// typed views of nodes, statements and the annotation engine.
//
// A Model is not safe for concurrent use. Objects derived from it must not be
// retained across graph mutations made by other writers.
package model

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
)

// Model wraps a graph with OWL views.
type Model struct {
	g   graph.Graph
	err error
}

// New creates a model over the graph.
func New(g graph.Graph) *Model {
	return &Model{g: g}
}

// Graph returns the underlying graph.
func (m *Model) Graph() graph.Graph { return m.g }

// Err returns the first error encountered while iterating the graph.
func (m *Model) Err() error { return m.err }

func (m *Model) setErr(err error) {
	if err == nil {
		return
	}
	clog.Errorf("model: graph iteration failed: %v", err)
	if m.err == nil {
		m.err = err
	}
}

// each calls fn for every triple matching the pattern until fn returns false.
func (m *Model) each(s, p, o quad.Value, fn func(q quad.Quad) bool) {
	it := m.g.Find(s, p, o)
	defer it.Close()
	for it.Next() {
		if !fn(it.Quad()) {
			return
		}
	}
	m.setErr(it.Err())
}

// Find returns all triples matching the pattern. A nil value matches anything.
func (m *Model) Find(s, p, o quad.Value) []quad.Quad {
	var out []quad.Quad
	m.each(s, p, o, func(q quad.Quad) bool {
		out = append(out, q)
		return true
	})
	return out
}

// Has reports whether at least one triple matches the pattern.
func (m *Model) Has(s, p, o quad.Value) bool {
	if s != nil && p != nil && o != nil {
		return m.g.Contains(graph.Triple(s, p, o))
	}
	found := false
	m.each(s, p, o, func(quad.Quad) bool {
		found = true
		return false
	})
	return found
}

// Objects returns the objects of all (s, p, ?) triples.
func (m *Model) Objects(s, p quad.Value) []quad.Value {
	var out []quad.Value
	m.each(s, p, nil, func(q quad.Quad) bool {
		out = append(out, q.Object)
		return true
	})
	return out
}

// Object returns the first object of (s, p, ?).
func (m *Model) Object(s, p quad.Value) (quad.Value, bool) {
	var out quad.Value
	m.each(s, p, nil, func(q quad.Quad) bool {
		out = q.Object
		return false
	})
	return out, out != nil
}

// Subjects returns the subjects of all (?, p, o) triples.
func (m *Model) Subjects(p, o quad.Value) []quad.Value {
	var out []quad.Value
	m.each(nil, p, o, func(q quad.Quad) bool {
		out = append(out, q.Subject)
		return true
	})
	return out
}

// Add inserts triples into the graph.
func (m *Model) Add(quads ...quad.Quad) error {
	return m.g.AddQuads(quads...)
}

// Remove deletes triples from the graph.
func (m *Model) Remove(quads ...quad.Quad) error {
	return m.g.RemoveQuads(quads...)
}

// List materializes the RDF list starting at head.
func (m *Model) List(head quad.Value) ([]quad.Value, error) {
	return graph.ListValues(m.g, head)
}

// AddList writes an RDF list and returns its head. The cell function names the i-th cell.
func (m *Model) AddList(items []quad.Value, cell func(i int) quad.Value) (quad.Value, error) {
	head, quads := graph.NewList(items, cell)
	if err := m.Add(quads...); err != nil {
		return nil, err
	}
	return head, nil
}

// Statement wraps a triple. The triple does not need to be in the graph.
func (m *Model) Statement(s, p, o quad.Value) *Statement {
	return &Statement{m: m, q: graph.Triple(s, p, o)}
}

// Statements returns all local statements matching the pattern.
func (m *Model) Statements(s, p, o quad.Value) []*Statement {
	var out []*Statement
	m.each(s, p, o, func(q quad.Quad) bool {
		out = append(out, &Statement{m: m, q: q})
		return true
	})
	return out
}

// ID returns the ontology node, if the graph has an ontology header.
func (m *Model) ID() (quad.Value, bool) {
	var id quad.Value
	m.each(nil, terms.RDFType, terms.OWLOntology, func(q quad.Quad) bool {
		id = q.Subject
		return false
	})
	return id, id != nil
}

// Header returns the ontology header statement.
func (m *Model) Header() (*Statement, bool) {
	id, ok := m.ID()
	if !ok {
		return nil, false
	}
	return m.Statement(id, terms.RDFType, terms.OWLOntology), true
}

// SetID sets the ontology IRI, or makes the ontology anonymous if id is a blank node.
// Triples of the previous header node are moved to the new one.
func (m *Model) SetID(id quad.Value) error {
	if !graph.IsResource(id) {
		return ErrIllegalArgument
	}
	old, ok := m.ID()
	if !ok {
		return m.Add(graph.Triple(id, terms.RDFType, terms.OWLOntology))
	} else if old == id {
		return nil
	}
	var add, del []quad.Quad
	m.each(old, nil, nil, func(q quad.Quad) bool {
		del = append(del, q)
		add = append(add, graph.Triple(id, q.Predicate, q.Object))
		return true
	})
	m.each(nil, nil, old, func(q quad.Quad) bool {
		del = append(del, q)
		add = append(add, graph.Triple(q.Subject, q.Predicate, id))
		return true
	})
	if err := m.Remove(del...); err != nil {
		return err
	}
	return m.Add(add...)
}
