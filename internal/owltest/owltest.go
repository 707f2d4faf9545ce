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

// Package owltest builds triple fixtures for tests.
package owltest

import (
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/graph/memstore"
	"github.com/cayleygraph/owlgraph/internal/terms"
)

const NS = "http://example.com/onto#"

// IRI returns a term in the test namespace.
func IRI(name string) quad.IRI { return quad.IRI(NS + name) }

// Int returns a non-negative integer literal as written by OWL tools.
func Int(n int) quad.Value {
	return quad.TypedString{Value: quad.String(strconv.Itoa(n)), Type: terms.XSDNonNegativeInteger}
}

// Builder accumulates triples with generated blank nodes.
type Builder struct {
	quads []quad.Quad
	n     int
}

func New() *Builder { return &Builder{} }

func (b *Builder) Add(s, p, o quad.Value) *Builder {
	b.quads = append(b.quads, graph.Triple(s, p, o))
	return b
}

// Type adds an rdf:type triple.
func (b *Builder) Type(s, t quad.Value) *Builder {
	return b.Add(s, terms.RDFType, t)
}

// Declare adds declarations for the named entities.
func (b *Builder) Declare(t quad.IRI, names ...string) *Builder {
	for _, n := range names {
		b.Type(IRI(n), t)
	}
	return b
}

// BNode returns a fresh blank node.
func (b *Builder) BNode() quad.BNode {
	b.n++
	return quad.BNode("t" + strconv.Itoa(b.n))
}

// List writes an RDF list and returns its head.
func (b *Builder) List(items ...quad.Value) quad.Value {
	head, quads := graph.NewList(items, func(int) quad.Value { return b.BNode() })
	b.quads = append(b.quads, quads...)
	return head
}

// Restriction starts an owl:Restriction on the property and returns its node.
func (b *Builder) Restriction(prop quad.Value) quad.BNode {
	r := b.BNode()
	b.Type(r, terms.OWLRestriction)
	b.Add(r, terms.OWLOnProperty, prop)
	return r
}

func (b *Builder) Quads() []quad.Quad { return b.quads }

// Graph returns an in-memory graph with all triples.
func (b *Builder) Graph() *memstore.Store {
	return memstore.New(b.quads...)
}
