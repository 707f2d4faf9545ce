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

package owl

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
)

// ClassExpressionKind classifies the node as a class expression by its own triples only.
// Operands are not checked.
func ClassExpressionKind(m *model.Model, v quad.Value) (Kind, bool) {
	if graph.IsIRI(v) {
		if m.IsClass(v) {
			return KindClass, true
		}
		return KindUnknown, false
	} else if !graph.IsBNode(v) {
		return KindUnknown, false
	}
	if m.HasType(v, terms.OWLRestriction) {
		return restrictionKind(m, v)
	}
	if !m.HasType(v, terms.OWLClass) {
		return KindUnknown, false
	}
	switch {
	case m.Has(v, terms.OWLUnionOf, nil):
		return KindObjectUnionOf, true
	case m.Has(v, terms.OWLIntersectionOf, nil):
		return KindObjectIntersectionOf, true
	case m.Has(v, terms.OWLOneOf, nil):
		return KindObjectOneOf, true
	case m.Has(v, terms.OWLComplementOf, nil):
		return KindObjectComplementOf, true
	}
	return KindUnknown, false
}

func restrictionKind(m *model.Model, v quad.Value) (Kind, bool) {
	if m.Has(v, terms.OWLOnProperties, nil) {
		switch {
		case m.Has(v, terms.OWLSomeValuesFrom, nil):
			return KindNaryDataSomeValuesFrom, true
		case m.Has(v, terms.OWLAllValuesFrom, nil):
			return KindNaryDataAllValuesFrom, true
		}
		return KindUnknown, false
	}
	p, ok := m.Object(v, terms.OWLOnProperty)
	if !ok {
		return KindUnknown, false
	}
	data := m.IsDataProperty(p)
	if !data && !m.IsObjectPropertyExpression(p) {
		return KindUnknown, false
	}
	pick := func(object, datak Kind) (Kind, bool) {
		if data {
			return datak, true
		}
		return object, true
	}
	switch {
	case m.Has(v, terms.OWLSomeValuesFrom, nil):
		return pick(KindObjectSomeValuesFrom, KindDataSomeValuesFrom)
	case m.Has(v, terms.OWLAllValuesFrom, nil):
		return pick(KindObjectAllValuesFrom, KindDataAllValuesFrom)
	case m.Has(v, terms.OWLHasValue, nil):
		return pick(KindObjectHasValue, KindDataHasValue)
	case m.Has(v, terms.OWLHasSelf, nil) && !data:
		return KindObjectHasSelf, true
	case m.Has(v, terms.OWLCardinality, nil) || m.Has(v, terms.OWLQualifiedCardinality, nil):
		return pick(KindObjectExactCardinality, KindDataExactCardinality)
	case m.Has(v, terms.OWLMinCardinality, nil) || m.Has(v, terms.OWLMinQualifiedCardinality, nil):
		return pick(KindObjectMinCardinality, KindDataMinCardinality)
	case m.Has(v, terms.OWLMaxCardinality, nil) || m.Has(v, terms.OWLMaxQualifiedCardinality, nil):
		return pick(KindObjectMaxCardinality, KindDataMaxCardinality)
	}
	return KindUnknown, false
}

// DataRangeKind classifies the node as a data range by its own triples only.
func DataRangeKind(m *model.Model, v quad.Value) (Kind, bool) {
	if graph.IsIRI(v) {
		if m.IsDatatype(v) {
			return KindDatatype, true
		}
		return KindUnknown, false
	} else if !graph.IsBNode(v) {
		return KindUnknown, false
	}
	if !m.HasType(v, terms.RDFSDatatype) && !m.HasType(v, terms.OWLDataRange) {
		return KindUnknown, false
	}
	switch {
	case m.Has(v, terms.OWLOneOf, nil):
		return KindDataOneOf, true
	case m.Has(v, terms.OWLOnDatatype, nil) && m.Has(v, terms.OWLWithRestrictions, nil):
		return KindDatatypeRestriction, true
	case m.Has(v, terms.OWLDatatypeComplementOf, nil):
		return KindDataComplementOf, true
	case m.Has(v, terms.OWLUnionOf, nil):
		return KindDataUnionOf, true
	case m.Has(v, terms.OWLIntersectionOf, nil):
		return KindDataIntersectionOf, true
	}
	return KindUnknown, false
}

// cardinality restriction predicates by kind, unqualified then qualified
var cardinalityPredicates = map[Kind][2]quad.IRI{
	KindObjectExactCardinality: {terms.OWLCardinality, terms.OWLQualifiedCardinality},
	KindObjectMinCardinality:   {terms.OWLMinCardinality, terms.OWLMinQualifiedCardinality},
	KindObjectMaxCardinality:   {terms.OWLMaxCardinality, terms.OWLMaxQualifiedCardinality},
	KindDataExactCardinality:   {terms.OWLCardinality, terms.OWLQualifiedCardinality},
	KindDataMinCardinality:     {terms.OWLMinCardinality, terms.OWLMinQualifiedCardinality},
	KindDataMaxCardinality:     {terms.OWLMaxCardinality, terms.OWLMaxQualifiedCardinality},
}

// restriction filler predicates by kind
var fillerPredicates = map[Kind]quad.IRI{
	KindObjectSomeValuesFrom:   terms.OWLSomeValuesFrom,
	KindDataSomeValuesFrom:     terms.OWLSomeValuesFrom,
	KindNaryDataSomeValuesFrom: terms.OWLSomeValuesFrom,
	KindObjectAllValuesFrom:    terms.OWLAllValuesFrom,
	KindDataAllValuesFrom:      terms.OWLAllValuesFrom,
	KindNaryDataAllValuesFrom:  terms.OWLAllValuesFrom,
	KindObjectHasValue:         terms.OWLHasValue,
	KindDataHasValue:           terms.OWLHasValue,
}

// list predicates of boolean and enumeration expressions by kind
var listPredicates = map[Kind]quad.IRI{
	KindObjectUnionOf:        terms.OWLUnionOf,
	KindObjectIntersectionOf: terms.OWLIntersectionOf,
	KindObjectOneOf:          terms.OWLOneOf,
	KindDataUnionOf:          terms.OWLUnionOf,
	KindDataIntersectionOf:   terms.OWLIntersectionOf,
	KindDataOneOf:            terms.OWLOneOf,
}
