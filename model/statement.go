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

package model

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
)

// Statement is a triple bound to a model.
type Statement struct {
	m *Model
	q quad.Quad
}

// Model returns the model the statement belongs to.
func (s *Statement) Model() *Model { return s.m }

// Quad returns the statement triple.
func (s *Statement) Quad() quad.Quad { return s.q }

func (s *Statement) Subject() quad.Value   { return s.q.Subject }
func (s *Statement) Predicate() quad.Value { return s.q.Predicate }
func (s *Statement) Object() quad.Value    { return s.q.Object }

func (s *Statement) String() string {
	return s.q.Subject.String() + " " + s.q.Predicate.String() + " " + s.q.Object.String() + " ."
}

// IsLocal reports whether the triple is present in the graph.
func (s *Statement) IsLocal() bool {
	return s.m.g.Contains(s.q)
}

// IsDeclaration reports whether the statement is an rdf:type triple.
func (s *Statement) IsDeclaration() bool {
	return s.q.Predicate == terms.RDFType
}

// IsAnnotationAssertion reports whether the predicate is an annotation property.
func (s *Statement) IsAnnotationAssertion() bool {
	return s.m.IsAnnotationProperty(s.q.Predicate)
}

// BelongsToAnnotation reports whether the statement is an assertion made on a bulk annotation node.
func (s *Statement) BelongsToAnnotation() bool {
	return s.m.IsBulkAnnotation(s.q.Subject)
}

// rdf:type objects of blank-node axiom roots.
var mainTypes = newSet(
	terms.OWLAllDisjointClasses, terms.OWLAllDifferent, terms.OWLAllDisjointProperties,
	terms.OWLNegativePropertyAssertion, terms.SWRLImp,
)

// IsMain reports whether the statement is the root of an axiom or header that
// is annotated with plain triples on its subject rather than with a bulk node.
func (s *Statement) IsMain() bool {
	if s.q.Predicate != terms.RDFType {
		return false
	}
	if s.q.Object == terms.OWLOntology {
		return graph.IsResource(s.q.Subject)
	}
	return graph.IsBNode(s.q.Subject) && mainTypes.has(s.q.Object)
}

// Equal reports whether both statements wrap the same triple.
func (s *Statement) Equal(o *Statement) bool {
	return s.q.Subject == o.q.Subject && s.q.Predicate == o.q.Predicate && s.q.Object == o.q.Object
}

// CompareStatements orders statements by subject, predicate and object string forms.
func CompareStatements(a, b *Statement) int {
	return compareQuads(a.q, b.q)
}

func compareQuads(a, b quad.Quad) int {
	if c := compareValues(a.Subject, b.Subject); c != 0 {
		return c
	}
	if c := compareValues(a.Predicate, b.Predicate); c != 0 {
		return c
	}
	return compareValues(a.Object, b.Object)
}

func compareValues(a, b quad.Value) int {
	return strings.Compare(quad.StringOf(a), quad.StringOf(b))
}
