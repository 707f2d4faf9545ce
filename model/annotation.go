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
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
)

// predicates of a bulk annotation node that are not annotation assertions
var reservedAnnotationPredicates = newSet(
	terms.RDFType, terms.OWLAnnotatedSource, terms.OWLAnnotatedProperty, terms.OWLAnnotatedTarget,
)

// Annotation is a bulk annotation node that reifies a statement.
type Annotation struct {
	m      *Model
	node   quad.Value
	source quad.Quad
}

// Node returns the blank node of the annotation object.
func (a *Annotation) Node() quad.Value { return a.node }

// IsAxiom reports whether the node is typed owl:Axiom rather than owl:Annotation.
func (a *Annotation) IsAxiom() bool { return a.m.HasType(a.node, terms.OWLAxiom) }

// Source returns the annotated statement.
func (a *Annotation) Source() *Statement { return &Statement{m: a.m, q: a.source} }

// Assertions returns the annotation assertions carried by the node.
func (a *Annotation) Assertions() []*Statement {
	var out []*Statement
	a.m.each(a.node, nil, nil, func(q quad.Quad) bool {
		if !reservedAnnotationPredicates.has(q.Predicate) {
			out = append(out, &Statement{m: a.m, q: q})
		}
		return true
	})
	return out
}

// HasAssertions reports whether the node carries at least one annotation assertion.
func (a *Annotation) HasAssertions() bool {
	found := false
	a.m.each(a.node, nil, nil, func(q quad.Quad) bool {
		found = !reservedAnnotationPredicates.has(q.Predicate)
		return !found
	})
	return found
}

// delete removes every triple of the node.
func (a *Annotation) delete() error {
	return a.m.Remove(a.m.Find(a.node, nil, nil)...)
}

// AnnotationResources returns the bulk annotation objects that reify the statement.
func (s *Statement) AnnotationResources() []*Annotation {
	var out []*Annotation
	s.eachAnnotationResource(func(a *Annotation) bool {
		out = append(out, a)
		return true
	})
	return out
}

// eachAnnotationResource calls fn for every bulk annotation object of the
// statement until fn returns false.
func (s *Statement) eachAnnotationResource(fn func(a *Annotation) bool) {
	s.m.each(nil, terms.OWLAnnotatedSource, s.q.Subject, func(q quad.Quad) bool {
		n := q.Subject
		if !graph.IsBNode(n) {
			return true
		}
		if !s.m.Has(n, terms.OWLAnnotatedProperty, s.q.Predicate) || !s.m.Has(n, terms.OWLAnnotatedTarget, s.q.Object) {
			return true
		}
		if !s.m.HasType(n, terms.OWLAxiom) && !s.m.HasType(n, terms.OWLAnnotation) {
			return true
		}
		return fn(&Annotation{m: s.m, node: n, source: s.q})
	})
}

// AnnotationResourceList returns the bulk annotation objects sorted by node.
func (s *Statement) AnnotationResourceList() []*Annotation {
	out := s.AnnotationResources()
	sort.Slice(out, func(i, j int) bool {
		return compareValues(out[i].node, out[j].node) < 0
	})
	return out
}

// AsAnnotationResource returns the first bulk annotation object of the statement.
func (s *Statement) AsAnnotationResource() (*Annotation, bool) {
	list := s.AnnotationResourceList()
	if len(list) == 0 {
		return nil, false
	}
	return list[0], true
}

// annotationNode derives a blank node name from the annotated triple.
func (s *Statement) annotationNode() quad.BNode {
	h := sha1.Sum([]byte(s.q.Subject.String() + " " + s.q.Predicate.String() + " " + s.q.Object.String()))
	base := "ax" + hex.EncodeToString(h[:])[:16]
	node := quad.BNode(base)
	for i := 1; s.m.Has(node, nil, nil) || s.m.Has(nil, nil, node); i++ {
		node = quad.BNode(base + "_" + strconv.Itoa(i))
	}
	return node
}

// CreateAnnotationResource adds a new bulk annotation object for the statement.
func (s *Statement) CreateAnnotationResource() (*Annotation, error) {
	t := terms.OWLAxiom
	if s.BelongsToAnnotation() {
		t = terms.OWLAnnotation
	}
	node := s.annotationNode()
	err := s.m.Add(
		graph.Triple(node, terms.RDFType, t),
		graph.Triple(node, terms.OWLAnnotatedSource, s.q.Subject),
		graph.Triple(node, terms.OWLAnnotatedProperty, s.q.Predicate),
		graph.Triple(node, terms.OWLAnnotatedTarget, s.q.Object),
	)
	if err != nil {
		return nil, err
	}
	return &Annotation{m: s.m, node: node, source: s.q}, nil
}

func validAnnotationValue(v quad.Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case quad.IRI:
		return v != ""
	case quad.BNode:
		return v != ""
	default:
		return graph.IsLiteral(v)
	}
}

// AddAnnotation annotates the statement and returns the annotation assertion.
// Main statements get a plain assertion on their subject, others are annotated
// through a bulk annotation object.
func (s *Statement) AddAnnotation(p quad.IRI, v quad.Value) (*Statement, error) {
	if p == "" {
		return nil, illegalArgument("empty annotation property")
	} else if !validAnnotationValue(v) {
		return nil, illegalArgument("invalid annotation value %v", v)
	} else if !s.m.IsAnnotationProperty(p) {
		return nil, illegalArgument("%v is not an annotation property", p)
	}
	if !s.IsLocal() {
		return nil, ErrIllegalState
	}
	subj := s.q.Subject
	if !s.IsMain() {
		res, ok := s.AsAnnotationResource()
		if !ok {
			var err error
			if res, err = s.CreateAnnotationResource(); err != nil {
				return nil, err
			}
		}
		subj = res.node
	}
	a := s.m.Statement(subj, p, v)
	if err := s.m.Add(a.q); err != nil {
		return nil, err
	}
	return a, nil
}

// plainAnnotations returns the annotation assertions on the subject of a main statement.
func (s *Statement) plainAnnotations() []*Statement {
	if !s.IsMain() {
		return nil
	}
	var out []*Statement
	s.m.each(s.q.Subject, nil, nil, func(q quad.Quad) bool {
		if s.m.IsAnnotationProperty(q.Predicate) {
			out = append(out, &Statement{m: s.m, q: q})
		}
		return true
	})
	return out
}

// Annotations returns all annotation assertions of the statement in no particular order.
func (s *Statement) Annotations() []*Statement {
	out := s.plainAnnotations()
	for _, a := range s.AnnotationResources() {
		out = append(out, a.Assertions()...)
	}
	return out
}

// AnnotationList returns all annotation assertions sorted by subject, predicate and object.
func (s *Statement) AnnotationList() []*Statement {
	out := s.Annotations()
	sort.Slice(out, func(i, j int) bool {
		return compareQuads(out[i].q, out[j].q) < 0
	})
	return out
}

// HasAnnotations reports whether the statement has at least one annotation assertion.
func (s *Statement) HasAnnotations() bool {
	found := false
	if s.IsMain() {
		s.m.each(s.q.Subject, nil, nil, func(q quad.Quad) bool {
			found = s.m.IsAnnotationProperty(q.Predicate)
			return !found
		})
		if found {
			return true
		}
	}
	s.eachAnnotationResource(func(a *Annotation) bool {
		found = a.HasAssertions()
		return !found
	})
	return found
}

// DeleteAnnotation removes the annotation assertion with the given property and value.
// Bulk annotation objects left empty are removed as well. Deleting an
// assertion that is annotated itself fails with a CascadeError.
func (s *Statement) DeleteAnnotation(p quad.IRI, v quad.Value) error {
	if p == "" || v == nil || reservedAnnotationPredicates.has(p) {
		return ErrIllegalArgument
	}
	if s.IsMain() && s.m.IsAnnotationProperty(p) {
		if a := s.m.Statement(s.q.Subject, p, v); a.IsLocal() {
			return s.deleteAssertion(a, nil)
		}
	}
	for _, res := range s.AnnotationResourceList() {
		if a := s.m.Statement(res.node, p, v); a.IsLocal() {
			return s.deleteAssertion(a, res)
		}
	}
	return nil
}

func (s *Statement) deleteAssertion(a *Statement, res *Annotation) error {
	if a.HasAnnotations() {
		return &CascadeError{Annotation: a.q}
	}
	// empty bulk objects of the assertion itself
	for _, sub := range a.AnnotationResources() {
		if err := sub.delete(); err != nil {
			return err
		}
	}
	if err := s.m.Remove(a.q); err != nil {
		return err
	}
	if res != nil && !res.HasAssertions() {
		return res.delete()
	}
	return nil
}

// DeleteAnnotations removes every annotation assertion with the given property.
func (s *Statement) DeleteAnnotations(p quad.IRI) error {
	for _, a := range s.Annotations() {
		if a.q.Predicate != p {
			continue
		}
		if err := s.DeleteAnnotation(p, a.q.Object); err != nil {
			return err
		}
	}
	return nil
}

// ClearAnnotations removes all annotations of the statement recursively.
func (s *Statement) ClearAnnotations() error {
	return s.clearAnnotations(make(map[quad.Quad]struct{}))
}

func (s *Statement) clearAnnotations(visited map[quad.Quad]struct{}) error {
	if _, ok := visited[s.q]; ok {
		return nil
	}
	visited[s.q] = struct{}{}
	anns := s.Annotations()
	for _, a := range anns {
		if err := a.clearAnnotations(visited); err != nil {
			return err
		}
		p, _ := a.q.Predicate.(quad.IRI)
		if err := s.DeleteAnnotation(p, a.q.Object); err != nil {
			return err
		}
	}
	// bulk objects without assertions
	for _, res := range s.AnnotationResources() {
		if err := res.delete(); err != nil {
			return err
		}
	}
	return nil
}
