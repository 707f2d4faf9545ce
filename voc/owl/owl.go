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

// Package owl contains constants of the Web Ontology Language (OWL 2).
package owl

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2002/07/owl#`
	Prefix = `owl:`
)

// Classes
const (
	Ontology                  = NS + `Ontology`
	Class                     = NS + `Class`
	Thing                     = NS + `Thing`
	Nothing                   = NS + `Nothing`
	NamedIndividual           = NS + `NamedIndividual`
	Restriction               = NS + `Restriction`
	ObjectProperty            = NS + `ObjectProperty`
	DatatypeProperty          = NS + `DatatypeProperty`
	AnnotationProperty        = NS + `AnnotationProperty`
	OntologyProperty          = NS + `OntologyProperty`
	FunctionalProperty        = NS + `FunctionalProperty`
	InverseFunctionalProperty = NS + `InverseFunctionalProperty`
	SymmetricProperty         = NS + `SymmetricProperty`
	AsymmetricProperty        = NS + `AsymmetricProperty`
	TransitiveProperty        = NS + `TransitiveProperty`
	ReflexiveProperty         = NS + `ReflexiveProperty`
	IrreflexiveProperty       = NS + `IrreflexiveProperty`
	AllDisjointClasses        = NS + `AllDisjointClasses`
	AllDisjointProperties     = NS + `AllDisjointProperties`
	AllDifferent              = NS + `AllDifferent`
	NegativePropertyAssertion = NS + `NegativePropertyAssertion`
	Axiom                     = NS + `Axiom`
	Annotation                = NS + `Annotation`
	DeprecatedClass           = NS + `DeprecatedClass`
	DeprecatedProperty        = NS + `DeprecatedProperty`
	DataRange                 = NS + `DataRange`
)

// Built-in properties and datatypes
const (
	TopObjectProperty    = NS + `topObjectProperty`
	BottomObjectProperty = NS + `bottomObjectProperty`
	TopDataProperty      = NS + `topDataProperty`
	BottomDataProperty   = NS + `bottomDataProperty`
	Real                 = NS + `real`
	Rational             = NS + `rational`
)

// Annotation and ontology properties
const (
	VersionInfo            = NS + `versionInfo`
	VersionIRI             = NS + `versionIRI`
	Imports                = NS + `imports`
	Deprecated             = NS + `deprecated`
	PriorVersion           = NS + `priorVersion`
	BackwardCompatibleWith = NS + `backwardCompatibleWith`
	IncompatibleWith       = NS + `incompatibleWith`
)

// Axiom properties
const (
	EquivalentClass      = NS + `equivalentClass`
	DisjointWith         = NS + `disjointWith`
	DisjointUnionOf      = NS + `disjointUnionOf`
	SameAs               = NS + `sameAs`
	DifferentFrom        = NS + `differentFrom`
	EquivalentProperty   = NS + `equivalentProperty`
	PropertyDisjointWith = NS + `propertyDisjointWith`
	InverseOf            = NS + `inverseOf`
	PropertyChainAxiom   = NS + `propertyChainAxiom`
	HasKey               = NS + `hasKey`
	Members              = NS + `members`
	DistinctMembers      = NS + `distinctMembers`
	SourceIndividual     = NS + `sourceIndividual`
	AssertionProperty    = NS + `assertionProperty`
	TargetIndividual     = NS + `targetIndividual`
	TargetValue          = NS + `targetValue`
	AnnotatedSource      = NS + `annotatedSource`
	AnnotatedProperty    = NS + `annotatedProperty`
	AnnotatedTarget      = NS + `annotatedTarget`
)

// Class expression and data range properties
const (
	UnionOf                 = NS + `unionOf`
	IntersectionOf          = NS + `intersectionOf`
	ComplementOf            = NS + `complementOf`
	OneOf                   = NS + `oneOf`
	OnProperty              = NS + `onProperty`
	OnProperties            = NS + `onProperties`
	OnClass                 = NS + `onClass`
	OnDataRange             = NS + `onDataRange`
	OnDatatype              = NS + `onDatatype`
	WithRestrictions        = NS + `withRestrictions`
	DatatypeComplementOf    = NS + `datatypeComplementOf`
	SomeValuesFrom          = NS + `someValuesFrom`
	AllValuesFrom           = NS + `allValuesFrom`
	HasValue                = NS + `hasValue`
	HasSelf                 = NS + `hasSelf`
	Cardinality             = NS + `cardinality`
	MinCardinality          = NS + `minCardinality`
	MaxCardinality          = NS + `maxCardinality`
	QualifiedCardinality    = NS + `qualifiedCardinality`
	MinQualifiedCardinality = NS + `minQualifiedCardinality`
	MaxQualifiedCardinality = NS + `maxQualifiedCardinality`
)
