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

package axioms

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

func init() {
	register(
		annotationAssertion,
		subAnnotationPropertyOf,
		annotationPropertyRange,
		annotationPropertyDomain,
	)
}

// annotationSubject reports whether v can carry annotation assertions.
// Ontology headers, structural nodes and axiom roots are excluded.
func annotationSubject(m *model.Model, v quad.Value) bool {
	switch {
	case graph.IsIRI(v):
		return !m.IsOntology(v)
	case graph.IsBNode(v):
		return !m.IsStructural(v)
	}
	return false
}

var annotationAssertion = &translator{
	typ:             owl.AnnotationAssertion,
	predicates:      (*model.Model).AnnotationProperties,
	annotationAxiom: true,
	test: func(m *model.Model, q quad.Quad) bool {
		return m.IsAnnotationProperty(q.Predicate) && annotationSubject(m, q.Subject)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		p, err := f.AnnotationProperty(s.Predicate())
		if err != nil {
			return nil, err
		}
		args, err := readPair(s, f.AnnotationSubject, f.AnnotationValue)
		if err != nil {
			return nil, err
		}
		return append([]owl.Object{p}, args...), nil
	},
	arity: exactly(3),
	write: writeAssertion,
}

var subAnnotationPropertyOf = func() *translator {
	t := pairTranslator(owl.SubAnnotationPropertyOf,
		terms.RDFSSubPropertyOf, (*model.Model).IsAnnotationProperty, readAP,
		exactly(2), writeTriple(terms.RDFSSubPropertyOf))
	t.annotationAxiom = true
	return t
}()

var annotationPropertyDomain = rangeTranslator{
	p:          terms.RDFSDomain,
	isProperty: (*model.Model).IsAnnotationProperty,
	property:   readAP,
	isValue:    isIRI,
	value:      readIRI,
	annotation: true,
}.translator(owl.AnnotationPropertyDomain)

var annotationPropertyRange = rangeTranslator{
	p:          terms.RDFSRange,
	isProperty: (*model.Model).IsAnnotationProperty,
	property:   readAP,
	isValue:    isIRI,
	value:      readIRI,
	annotation: true,
}.translator(owl.AnnotationPropertyRange)
