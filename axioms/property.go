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
		equivalentObjectProperties,
		subObjectPropertyOf,
		inverseObjectProperties,
		objectCharacteristic(owl.FunctionalObjectProperty, terms.OWLFunctionalProperty),
		objectCharacteristic(owl.InverseFunctionalObjectProperty, terms.OWLInverseFunctionalProperty),
		objectCharacteristic(owl.SymmetricObjectProperty, terms.OWLSymmetricProperty),
		objectCharacteristic(owl.AsymmetricObjectProperty, terms.OWLAsymmetricProperty),
		objectCharacteristic(owl.TransitiveObjectProperty, terms.OWLTransitiveProperty),
		objectCharacteristic(owl.ReflexiveObjectProperty, terms.OWLReflexiveProperty),
		objectCharacteristic(owl.IrreflexiveObjectProperty, terms.OWLIrreflexiveProperty),
		objectPropertyDomain,
		objectPropertyRange,
		disjointObjectProperties,
		subPropertyChainOf,
		equivalentDataProperties,
		subDataPropertyOf,
		functionalDataProperty,
		dataPropertyDomain,
		dataPropertyRange,
		disjointDataProperties,
	)
}

var (
	readOPE = func(f *owl.Factory) readFunc { return f.ObjectPropertyExpression }
	readDP  = func(f *owl.Factory) readFunc { return asObject(f.DataProperty) }
)

// pairTranslator reads a triple whose ends pass the same view.
func pairTranslator(t owl.AxiomType, p quad.IRI, view func(m *model.Model, v quad.Value) bool,
	reader func(f *owl.Factory) readFunc, arity func(int) bool,
	write func(e *emitter, ax *owl.Axiom) []*model.Statement) *translator {
	return &translator{
		typ:      t,
		patterns: []pattern{{p: p}},
		test: func(m *model.Model, q quad.Quad) bool {
			return view(m, q.Subject) && view(m, q.Object)
		},
		read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
			return readPair(s, reader(f), reader(f))
		},
		arity: arity,
		write: write,
	}
}

var equivalentObjectProperties = pairTranslator(owl.EquivalentObjectProperties,
	terms.OWLEquivalentProperty, (*model.Model).IsObjectPropertyExpression, readOPE,
	exactly(2), writePair(terms.OWLEquivalentProperty))

var subObjectPropertyOf = pairTranslator(owl.SubObjectPropertyOf,
	terms.RDFSSubPropertyOf, (*model.Model).IsObjectPropertyExpression, readOPE,
	exactly(2), writeTriple(terms.RDFSSubPropertyOf))

var equivalentDataProperties = pairTranslator(owl.EquivalentDataProperties,
	terms.OWLEquivalentProperty, (*model.Model).IsDataProperty, readDP,
	exactly(2), writePair(terms.OWLEquivalentProperty))

var subDataPropertyOf = pairTranslator(owl.SubDataPropertyOf,
	terms.RDFSSubPropertyOf, (*model.Model).IsDataProperty, readDP,
	exactly(2), writeTriple(terms.RDFSSubPropertyOf))

// Only named properties are inverse axioms; a blank subject is an inverse expression.
var inverseObjectProperties = pairTranslator(owl.InverseObjectProperties,
	terms.OWLInverseOf, (*model.Model).IsObjectProperty, readOPE,
	exactly(2), func(e *emitter, ax *owl.Axiom) []*model.Statement {
		a := e.node(ax.Args[0])
		b := e.node(ax.Args[1])
		return []*model.Statement{e.symmetric(a, terms.OWLInverseOf, b)}
	})

// characteristic is a property axiom written as an rdf:type triple on the property.
func characteristic(t owl.AxiomType, typ quad.IRI, view func(m *model.Model, v quad.Value) bool,
	reader func(f *owl.Factory) readFunc) *translator {
	return &translator{
		typ:      t,
		patterns: typePatterns(typ),
		test: func(m *model.Model, q quad.Quad) bool {
			return view(m, q.Subject)
		},
		read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
			p, err := reader(f)(s.Subject())
			if err != nil {
				return nil, err
			}
			return []owl.Object{p}, nil
		},
		arity: exactly(1),
		write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
			p := e.node(ax.Args[0])
			return []*model.Statement{e.add(p, terms.RDFType, typ)}
		},
	}
}

func objectCharacteristic(t owl.AxiomType, typ quad.IRI) *translator {
	return characteristic(t, typ, (*model.Model).IsObjectPropertyExpression, readOPE)
}

var functionalDataProperty = characteristic(owl.FunctionalDataProperty,
	terms.OWLFunctionalProperty, (*model.Model).IsDataProperty, readDP)

// rangeTranslator reads rdfs:domain and rdfs:range triples. The subject view
// decides which property kind the triple belongs to.
type rangeTranslator struct {
	p          quad.IRI
	isProperty func(m *model.Model, v quad.Value) bool
	property   func(f *owl.Factory) readFunc
	isValue    func(m *model.Model, v quad.Value) bool
	value      func(f *owl.Factory) readFunc
	annotation bool
}

func (r rangeTranslator) translator(t owl.AxiomType) *translator {
	return &translator{
		typ:             t,
		patterns:        []pattern{{p: r.p}},
		annotationAxiom: r.annotation,
		test: func(m *model.Model, q quad.Quad) bool {
			return r.isProperty(m, q.Subject) && r.isValue(m, q.Object)
		},
		read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
			return readPair(s, r.property(f), r.value(f))
		},
		arity: exactly(2),
		write: writeTriple(r.p),
	}
}

var (
	readCE = func(f *owl.Factory) readFunc { return f.ClassExpression }
	readDR = func(f *owl.Factory) readFunc { return f.DataRange }
	readAP = func(f *owl.Factory) readFunc { return asObject(f.AnnotationProperty) }
	// annotation property domains and ranges are plain IRIs
	readIRI = func(f *owl.Factory) readFunc {
		return func(v quad.Value) (owl.Object, error) {
			iri, ok := v.(quad.IRI)
			if !ok {
				return nil, &owl.StructureError{Node: v, Reason: "not an IRI"}
			}
			return owl.IRI(iri.Full()), nil
		}
	}
	isIRI = func(_ *model.Model, v quad.Value) bool { return graph.IsIRI(v) }
)

var objectPropertyDomain = rangeTranslator{
	p:          terms.RDFSDomain,
	isProperty: (*model.Model).IsObjectPropertyExpression,
	property:   readOPE,
	isValue:    (*model.Model).IsClassExpression,
	value:      readCE,
}.translator(owl.ObjectPropertyDomain)

var objectPropertyRange = rangeTranslator{
	p:          terms.RDFSRange,
	isProperty: (*model.Model).IsObjectPropertyExpression,
	property:   readOPE,
	isValue:    (*model.Model).IsClassExpression,
	value:      readCE,
}.translator(owl.ObjectPropertyRange)

var dataPropertyDomain = rangeTranslator{
	p:          terms.RDFSDomain,
	isProperty: (*model.Model).IsDataProperty,
	property:   readDP,
	isValue:    (*model.Model).IsClassExpression,
	value:      readCE,
}.translator(owl.DataPropertyDomain)

var dataPropertyRange = rangeTranslator{
	p:          terms.RDFSRange,
	isProperty: (*model.Model).IsDataProperty,
	property:   readDP,
	isValue:    (*model.Model).IsDataRange,
	value:      readDR,
}.translator(owl.DataPropertyRange)

var disjointObjectProperties = disjoint{
	pairwise: terms.OWLPropertyDisjointWith,
	rootType: terms.OWLAllDisjointProperties,
	view:     func(m *model.Model) func(quad.Value) bool { return m.IsObjectPropertyExpression },
	reader:   readOPE,
}.translator(owl.DisjointObjectProperties)

var disjointDataProperties = disjoint{
	pairwise: terms.OWLPropertyDisjointWith,
	rootType: terms.OWLAllDisjointProperties,
	view:     func(m *model.Model) func(quad.Value) bool { return m.IsDataProperty },
	reader:   readDP,
}.translator(owl.DisjointDataProperties)

var subPropertyChainOf = &translator{
	typ:      owl.SubPropertyChainOf,
	patterns: []pattern{{p: terms.OWLPropertyChainAxiom}},
	test: func(m *model.Model, q quad.Quad) bool {
		if !m.IsObjectPropertyExpression(q.Subject) {
			return false
		}
		_, ok := listAt(m, q.Object, 2, m.IsObjectPropertyExpression)
		return ok
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		sup, err := f.ObjectPropertyExpression(s.Subject())
		if err != nil {
			return nil, err
		}
		chain, err := readList(f, s.Object(), f.ObjectPropertyExpression)
		if err != nil {
			return nil, err
		}
		return append([]owl.Object{sup}, chain...), nil
	},
	arity: atLeast(3),
	write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
		sup := e.node(ax.Args[0])
		return []*model.Statement{e.list(sup, terms.OWLPropertyChainAxiom, ax.Args[1:])}
	},
}
