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
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/voc/owl"
	"github.com/cayleygraph/owlgraph/voc/swrl"
	"github.com/cayleygraph/owlgraph/voc/xsd"
)

type iriSet map[quad.Value]struct{}

func newSet(vals ...quad.IRI) iriSet {
	s := make(iriSet, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s iriSet) has(v quad.Value) bool {
	_, ok := s[v]
	return ok
}

var (
	builtinClasses          = newSet(terms.OWLThing, terms.OWLNothing)
	builtinDatatypes        = newSet(terms.Datatypes...)
	builtinObjectProperties = newSet(terms.OWLTopObjectProperty, terms.OWLBottomObjectProperty)
	builtinDataProperties   = newSet(terms.OWLTopDataProperty, terms.OWLBottomDataProperty)
	builtinAnnotationProps  = newSet(terms.AnnotationProperties...)

	// rdf:type objects that imply an object property
	objectPropertyTypes = []quad.IRI{
		terms.OWLObjectProperty,
		terms.OWLInverseFunctionalProperty,
		terms.OWLTransitiveProperty,
		terms.OWLSymmetricProperty,
		terms.OWLAsymmetricProperty,
		terms.OWLReflexiveProperty,
		terms.OWLIrreflexiveProperty,
	}

	// rdf:type objects of blank nodes that are part of the OWL structure
	structuralTypes = newSet(
		terms.OWLClass, terms.OWLRestriction, terms.RDFSDatatype, terms.OWLDataRange,
		terms.OWLAxiom, terms.OWLAnnotation, terms.OWLOntology,
		terms.OWLAllDisjointClasses, terms.OWLAllDisjointProperties, terms.OWLAllDifferent,
		terms.OWLNegativePropertyAssertion, terms.RDFList,
		terms.SWRLImp, terms.SWRLVariable, terms.SWRLAtomList,
		terms.SWRLClassAtom, terms.SWRLDataRangeAtom, terms.SWRLIndividualPropertyAtom,
		terms.SWRLDatavaluedPropertyAtom, terms.SWRLSameIndividualAtom,
		terms.SWRLDifferentIndividualsAtom, terms.SWRLBuiltinAtom,
	)
	// predicates of blank nodes that are part of the OWL structure
	structuralPredicates = newSet(
		terms.RDFFirst, terms.RDFRest, terms.OWLInverseOf,
		terms.OWLUnionOf, terms.OWLIntersectionOf, terms.OWLComplementOf, terms.OWLOneOf,
		terms.OWLOnProperty, terms.OWLOnProperties, terms.OWLOnDatatype, terms.OWLWithRestrictions,
		terms.OWLDatatypeComplementOf, terms.OWLMembers, terms.OWLDistinctMembers,
		terms.OWLAnnotatedSource, terms.OWLAnnotatedProperty, terms.OWLAnnotatedTarget,
		terms.OWLSourceIndividual, terms.OWLAssertionProperty,
		terms.SWRLHead, terms.SWRLBody,
	)

	// namespaces that never denote individuals
	reservedNamespaces = []string{rdf.NS, rdfs.NS, owl.NS, xsd.NS, swrl.NS}
)

// IsBuiltin reports whether the IRI is a term of a reserved vocabulary.
func IsBuiltin(v quad.Value) bool {
	iri, ok := v.(quad.IRI)
	if !ok {
		return false
	}
	s := string(iri.Full())
	for _, ns := range reservedNamespaces {
		if strings.HasPrefix(s, ns) {
			return true
		}
	}
	return false
}

// HasType reports whether v has the rdf:type t.
func (m *Model) HasType(v quad.Value, t quad.IRI) bool {
	return m.Has(v, terms.RDFType, t)
}

func (m *Model) hasAnyType(v quad.Value, types []quad.IRI) bool {
	for _, t := range types {
		if m.HasType(v, t) {
			return true
		}
	}
	return false
}

// IsClass reports whether v is a named class.
func (m *Model) IsClass(v quad.Value) bool {
	if !graph.IsIRI(v) {
		return false
	}
	return builtinClasses.has(v) || m.HasType(v, terms.OWLClass)
}

// IsDatatype reports whether v is a named datatype.
func (m *Model) IsDatatype(v quad.Value) bool {
	if !graph.IsIRI(v) {
		return false
	}
	return builtinDatatypes.has(v) || m.HasType(v, terms.RDFSDatatype)
}

// IsObjectProperty reports whether v is a named object property.
func (m *Model) IsObjectProperty(v quad.Value) bool {
	if !graph.IsIRI(v) {
		return false
	}
	return builtinObjectProperties.has(v) || m.hasAnyType(v, objectPropertyTypes)
}

// InverseOf returns the named property of an inverse object property expression.
func (m *Model) InverseOf(v quad.Value) (quad.Value, bool) {
	if !graph.IsBNode(v) {
		return nil, false
	}
	objs := m.Objects(v, terms.OWLInverseOf)
	if len(objs) != 1 || !m.IsObjectProperty(objs[0]) {
		return nil, false
	}
	return objs[0], true
}

// IsObjectPropertyExpression reports whether v is a named object property or an inverse of one.
func (m *Model) IsObjectPropertyExpression(v quad.Value) bool {
	if m.IsObjectProperty(v) {
		return true
	}
	_, ok := m.InverseOf(v)
	return ok
}

// IsDataProperty reports whether v is a named data property.
func (m *Model) IsDataProperty(v quad.Value) bool {
	if !graph.IsIRI(v) {
		return false
	}
	return builtinDataProperties.has(v) || m.HasType(v, terms.OWLDatatypeProperty)
}

// IsAnnotationProperty reports whether v is a named annotation property.
func (m *Model) IsAnnotationProperty(v quad.Value) bool {
	if !graph.IsIRI(v) {
		return false
	}
	return builtinAnnotationProps.has(v) || m.HasType(v, terms.OWLAnnotationProperty)
}

// IsNamedIndividual reports whether v can be used as a named individual.
// Any IRI outside of the reserved vocabularies qualifies, which allows punning.
func (m *Model) IsNamedIndividual(v quad.Value) bool {
	return graph.IsIRI(v) && !IsBuiltin(v)
}

// IsStructural reports whether the blank node is a part of the OWL structure:
// an expression, a list cell, a bulk annotation or an anonymous axiom root.
func (m *Model) IsStructural(v quad.Value) bool {
	if !graph.IsBNode(v) {
		return false
	}
	found := false
	m.each(v, nil, nil, func(q quad.Quad) bool {
		if structuralPredicates.has(q.Predicate) ||
			(q.Predicate == terms.RDFType && structuralTypes.has(q.Object)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsAnonymousIndividual reports whether v is a blank node that denotes an individual.
func (m *Model) IsAnonymousIndividual(v quad.Value) bool {
	return graph.IsBNode(v) && !m.IsStructural(v)
}

// IsIndividual reports whether v is a named or anonymous individual.
func (m *Model) IsIndividual(v quad.Value) bool {
	return m.IsNamedIndividual(v) || m.IsAnonymousIndividual(v)
}

// IsEntity reports whether v is declared or built-in as any kind of entity.
func (m *Model) IsEntity(v quad.Value) bool {
	return m.IsClass(v) || m.IsDatatype(v) || m.IsObjectProperty(v) ||
		m.IsDataProperty(v) || m.IsAnnotationProperty(v) ||
		(graph.IsIRI(v) && m.HasType(v, terms.OWLNamedIndividual))
}

// IsClassExpression reports whether v is a named class or an anonymous class expression.
// Anonymous expressions are recognized by their rdf:type only.
func (m *Model) IsClassExpression(v quad.Value) bool {
	if graph.IsIRI(v) {
		return m.IsClass(v)
	}
	return graph.IsBNode(v) && (m.HasType(v, terms.OWLClass) || m.HasType(v, terms.OWLRestriction))
}

// IsDataRange reports whether v is a named datatype or an anonymous data range.
func (m *Model) IsDataRange(v quad.Value) bool {
	if graph.IsIRI(v) {
		return m.IsDatatype(v)
	}
	return graph.IsBNode(v) && (m.HasType(v, terms.RDFSDatatype) || m.HasType(v, terms.OWLDataRange))
}

// IsOntology reports whether v is an ontology header node.
func (m *Model) IsOntology(v quad.Value) bool {
	return graph.IsResource(v) && m.HasType(v, terms.OWLOntology)
}

// IsBulkAnnotation reports whether v is a bulk annotation object.
func (m *Model) IsBulkAnnotation(v quad.Value) bool {
	if !graph.IsBNode(v) {
		return false
	}
	return (m.HasType(v, terms.OWLAxiom) || m.HasType(v, terms.OWLAnnotation)) &&
		m.Has(v, terms.OWLAnnotatedSource, nil)
}

// subjectsOfTypes returns the IRIs having any of the types plus the built-ins, without duplicates.
func (m *Model) subjectsOfTypes(builtins iriSet, types ...quad.IRI) []quad.Value {
	seen := make(map[quad.Value]struct{})
	var out []quad.Value
	add := func(v quad.Value) {
		if _, ok := seen[v]; ok || !graph.IsIRI(v) {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, t := range types {
		for _, s := range m.Subjects(terms.RDFType, t) {
			add(s)
		}
	}
	for v := range builtins {
		add(v)
	}
	return out
}

// ObjectProperties returns all named object properties, including the built-in ones.
func (m *Model) ObjectProperties() []quad.Value {
	return m.subjectsOfTypes(builtinObjectProperties, objectPropertyTypes...)
}

// DataProperties returns all named data properties, including the built-in ones.
func (m *Model) DataProperties() []quad.Value {
	return m.subjectsOfTypes(builtinDataProperties, terms.OWLDatatypeProperty)
}

// AnnotationProperties returns all named annotation properties, including the built-in ones.
func (m *Model) AnnotationProperties() []quad.Value {
	return m.subjectsOfTypes(builtinAnnotationProps, terms.OWLAnnotationProperty)
}
