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

// Package terms holds the vocabulary terms used by the OWL mapping as quad IRIs.
package terms

import (
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"

	"github.com/cayleygraph/owlgraph/voc/owl"
	"github.com/cayleygraph/owlgraph/voc/swrl"
	"github.com/cayleygraph/owlgraph/voc/xsd"
)

func full(s string) quad.IRI { return quad.IRI(s).Full() }

// RDF and RDFS
var (
	RDFType         = full(rdf.Type)
	RDFFirst        = full(rdf.First)
	RDFRest         = full(rdf.Rest)
	RDFNil          = full(rdf.Nil)
	RDFList         = full(rdf.List)
	RDFPlainLiteral = full(rdf.PlainLiteral)
	RDFLangString   = full(rdf.LangString)
	RDFXMLLiteral   = full(rdf.XMLLiteral)
	RDFProperty     = full(rdf.Property)

	RDFSClass         = full(rdfs.Class)
	RDFSDatatype      = full(rdfs.Datatype)
	RDFSLiteral       = full(rdfs.Literal)
	RDFSResource      = full(rdfs.Resource)
	RDFSSubClassOf    = full(rdfs.SubClassOf)
	RDFSSubPropertyOf = full(rdfs.SubPropertyOf)
	RDFSDomain        = full(rdfs.Domain)
	RDFSRange         = full(rdfs.Range)
	RDFSLabel         = full(rdfs.Label)
	RDFSComment       = full(rdfs.Comment)
	RDFSSeeAlso       = full(rdfs.SeeAlso)
	RDFSIsDefinedBy   = full(rdfs.IsDefinedBy)
)

// OWL classes
const (
	OWLOntology                  = quad.IRI(owl.Ontology)
	OWLClass                     = quad.IRI(owl.Class)
	OWLThing                     = quad.IRI(owl.Thing)
	OWLNothing                   = quad.IRI(owl.Nothing)
	OWLNamedIndividual           = quad.IRI(owl.NamedIndividual)
	OWLRestriction               = quad.IRI(owl.Restriction)
	OWLObjectProperty            = quad.IRI(owl.ObjectProperty)
	OWLDatatypeProperty          = quad.IRI(owl.DatatypeProperty)
	OWLAnnotationProperty        = quad.IRI(owl.AnnotationProperty)
	OWLOntologyProperty          = quad.IRI(owl.OntologyProperty)
	OWLFunctionalProperty        = quad.IRI(owl.FunctionalProperty)
	OWLInverseFunctionalProperty = quad.IRI(owl.InverseFunctionalProperty)
	OWLSymmetricProperty         = quad.IRI(owl.SymmetricProperty)
	OWLAsymmetricProperty        = quad.IRI(owl.AsymmetricProperty)
	OWLTransitiveProperty        = quad.IRI(owl.TransitiveProperty)
	OWLReflexiveProperty         = quad.IRI(owl.ReflexiveProperty)
	OWLIrreflexiveProperty       = quad.IRI(owl.IrreflexiveProperty)
	OWLAllDisjointClasses        = quad.IRI(owl.AllDisjointClasses)
	OWLAllDisjointProperties     = quad.IRI(owl.AllDisjointProperties)
	OWLAllDifferent              = quad.IRI(owl.AllDifferent)
	OWLNegativePropertyAssertion = quad.IRI(owl.NegativePropertyAssertion)
	OWLAxiom                     = quad.IRI(owl.Axiom)
	OWLAnnotation                = quad.IRI(owl.Annotation)
	OWLDataRange                 = quad.IRI(owl.DataRange)
)

// OWL built-in entities
const (
	OWLTopObjectProperty    = quad.IRI(owl.TopObjectProperty)
	OWLBottomObjectProperty = quad.IRI(owl.BottomObjectProperty)
	OWLTopDataProperty      = quad.IRI(owl.TopDataProperty)
	OWLBottomDataProperty   = quad.IRI(owl.BottomDataProperty)
	OWLReal                 = quad.IRI(owl.Real)
	OWLRational             = quad.IRI(owl.Rational)

	OWLVersionInfo            = quad.IRI(owl.VersionInfo)
	OWLVersionIRI             = quad.IRI(owl.VersionIRI)
	OWLImports                = quad.IRI(owl.Imports)
	OWLDeprecated             = quad.IRI(owl.Deprecated)
	OWLPriorVersion           = quad.IRI(owl.PriorVersion)
	OWLBackwardCompatibleWith = quad.IRI(owl.BackwardCompatibleWith)
	OWLIncompatibleWith       = quad.IRI(owl.IncompatibleWith)
)

// OWL properties
const (
	OWLEquivalentClass         = quad.IRI(owl.EquivalentClass)
	OWLDisjointWith            = quad.IRI(owl.DisjointWith)
	OWLDisjointUnionOf         = quad.IRI(owl.DisjointUnionOf)
	OWLSameAs                  = quad.IRI(owl.SameAs)
	OWLDifferentFrom           = quad.IRI(owl.DifferentFrom)
	OWLEquivalentProperty      = quad.IRI(owl.EquivalentProperty)
	OWLPropertyDisjointWith    = quad.IRI(owl.PropertyDisjointWith)
	OWLInverseOf               = quad.IRI(owl.InverseOf)
	OWLPropertyChainAxiom      = quad.IRI(owl.PropertyChainAxiom)
	OWLHasKey                  = quad.IRI(owl.HasKey)
	OWLMembers                 = quad.IRI(owl.Members)
	OWLDistinctMembers         = quad.IRI(owl.DistinctMembers)
	OWLSourceIndividual        = quad.IRI(owl.SourceIndividual)
	OWLAssertionProperty       = quad.IRI(owl.AssertionProperty)
	OWLTargetIndividual        = quad.IRI(owl.TargetIndividual)
	OWLTargetValue             = quad.IRI(owl.TargetValue)
	OWLAnnotatedSource         = quad.IRI(owl.AnnotatedSource)
	OWLAnnotatedProperty       = quad.IRI(owl.AnnotatedProperty)
	OWLAnnotatedTarget         = quad.IRI(owl.AnnotatedTarget)
	OWLUnionOf                 = quad.IRI(owl.UnionOf)
	OWLIntersectionOf          = quad.IRI(owl.IntersectionOf)
	OWLComplementOf            = quad.IRI(owl.ComplementOf)
	OWLOneOf                   = quad.IRI(owl.OneOf)
	OWLOnProperty              = quad.IRI(owl.OnProperty)
	OWLOnProperties            = quad.IRI(owl.OnProperties)
	OWLOnClass                 = quad.IRI(owl.OnClass)
	OWLOnDataRange             = quad.IRI(owl.OnDataRange)
	OWLOnDatatype              = quad.IRI(owl.OnDatatype)
	OWLWithRestrictions        = quad.IRI(owl.WithRestrictions)
	OWLDatatypeComplementOf    = quad.IRI(owl.DatatypeComplementOf)
	OWLSomeValuesFrom          = quad.IRI(owl.SomeValuesFrom)
	OWLAllValuesFrom           = quad.IRI(owl.AllValuesFrom)
	OWLHasValue                = quad.IRI(owl.HasValue)
	OWLHasSelf                 = quad.IRI(owl.HasSelf)
	OWLCardinality             = quad.IRI(owl.Cardinality)
	OWLMinCardinality          = quad.IRI(owl.MinCardinality)
	OWLMaxCardinality          = quad.IRI(owl.MaxCardinality)
	OWLQualifiedCardinality    = quad.IRI(owl.QualifiedCardinality)
	OWLMinQualifiedCardinality = quad.IRI(owl.MinQualifiedCardinality)
	OWLMaxQualifiedCardinality = quad.IRI(owl.MaxQualifiedCardinality)
)

// XSD
const (
	XSDString             = quad.IRI(xsd.String)
	XSDBoolean            = quad.IRI(xsd.Boolean)
	XSDInteger            = quad.IRI(xsd.Integer)
	XSDNonNegativeInteger = quad.IRI(xsd.NonNegativeInteger)
	XSDDouble             = quad.IRI(xsd.Double)
	XSDDateTime           = quad.IRI(xsd.DateTime)
)

// SWRL
const (
	SWRLImp                      = quad.IRI(swrl.Imp)
	SWRLVariable                 = quad.IRI(swrl.Variable)
	SWRLAtomList                 = quad.IRI(swrl.AtomList)
	SWRLClassAtom                = quad.IRI(swrl.ClassAtom)
	SWRLDataRangeAtom            = quad.IRI(swrl.DataRangeAtom)
	SWRLIndividualPropertyAtom   = quad.IRI(swrl.IndividualPropertyAtom)
	SWRLDatavaluedPropertyAtom   = quad.IRI(swrl.DatavaluedPropertyAtom)
	SWRLSameIndividualAtom       = quad.IRI(swrl.SameIndividualAtom)
	SWRLDifferentIndividualsAtom = quad.IRI(swrl.DifferentIndividualsAtom)
	SWRLBuiltinAtom              = quad.IRI(swrl.BuiltinAtom)
	SWRLHead                     = quad.IRI(swrl.Head)
	SWRLBody                     = quad.IRI(swrl.Body)
	SWRLClassPredicate           = quad.IRI(swrl.ClassPredicate)
	SWRLDataRange                = quad.IRI(swrl.DataRange)
	SWRLPropertyPredicate        = quad.IRI(swrl.PropertyPredicate)
	SWRLBuiltin                  = quad.IRI(swrl.BuiltinProperty)
	SWRLArguments                = quad.IRI(swrl.Arguments)
	SWRLArgument1                = quad.IRI(swrl.Argument1)
	SWRLArgument2                = quad.IRI(swrl.Argument2)
)

// Datatypes lists the built-in datatypes of the OWL 2 datatype map.
var Datatypes = func() []quad.IRI {
	out := []quad.IRI{RDFSLiteral, RDFPlainLiteral, RDFLangString, RDFXMLLiteral, OWLReal, OWLRational}
	for _, s := range xsd.Datatypes {
		out = append(out, quad.IRI(s))
	}
	return out
}()

// AnnotationProperties lists the built-in annotation properties.
var AnnotationProperties = []quad.IRI{
	RDFSLabel, RDFSComment, RDFSSeeAlso, RDFSIsDefinedBy,
	OWLDeprecated, OWLVersionInfo, OWLPriorVersion,
	OWLBackwardCompatibleWith, OWLIncompatibleWith,
}
