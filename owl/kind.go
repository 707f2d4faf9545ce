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

// Package owl implements OWL 2 component objects, axiom values and the
// meta-information registry of axiom kinds.
package owl

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/model"
)

// Kind is the kind of an OWL object.
type Kind int

const (
	KindUnknown Kind = iota

	// entities
	KindClass
	KindDatatype
	KindObjectProperty
	KindDataProperty
	KindAnnotationProperty
	KindNamedIndividual

	KindAnonymousIndividual
	KindLiteral
	KindIRI
	KindInverseObjectProperty

	// anonymous class expressions
	KindObjectSomeValuesFrom
	KindObjectAllValuesFrom
	KindObjectHasValue
	KindObjectHasSelf
	KindObjectMinCardinality
	KindObjectMaxCardinality
	KindObjectExactCardinality
	KindDataSomeValuesFrom
	KindDataAllValuesFrom
	KindDataHasValue
	KindDataMinCardinality
	KindDataMaxCardinality
	KindDataExactCardinality
	KindNaryDataSomeValuesFrom
	KindNaryDataAllValuesFrom
	KindObjectUnionOf
	KindObjectIntersectionOf
	KindObjectOneOf
	KindObjectComplementOf

	// anonymous data ranges
	KindDataOneOf
	KindDatatypeRestriction
	KindDataComplementOf
	KindDataUnionOf
	KindDataIntersectionOf
	KindFacetRestriction

	// SWRL
	KindRule
	KindVariable
	KindClassAtom
	KindDataRangeAtom
	KindIndividualPropertyAtom
	KindDatavaluedPropertyAtom
	KindSameIndividualAtom
	KindDifferentIndividualsAtom
	KindBuiltinAtom
)

var kindNames = map[Kind]string{
	KindUnknown:                  "Unknown",
	KindClass:                    "Class",
	KindDatatype:                 "Datatype",
	KindObjectProperty:           "ObjectProperty",
	KindDataProperty:             "DataProperty",
	KindAnnotationProperty:       "AnnotationProperty",
	KindNamedIndividual:          "NamedIndividual",
	KindAnonymousIndividual:      "AnonymousIndividual",
	KindLiteral:                  "Literal",
	KindIRI:                      "IRI",
	KindInverseObjectProperty:    "ObjectInverseOf",
	KindObjectSomeValuesFrom:     "ObjectSomeValuesFrom",
	KindObjectAllValuesFrom:      "ObjectAllValuesFrom",
	KindObjectHasValue:           "ObjectHasValue",
	KindObjectHasSelf:            "ObjectHasSelf",
	KindObjectMinCardinality:     "ObjectMinCardinality",
	KindObjectMaxCardinality:     "ObjectMaxCardinality",
	KindObjectExactCardinality:   "ObjectExactCardinality",
	KindDataSomeValuesFrom:       "DataSomeValuesFrom",
	KindDataAllValuesFrom:        "DataAllValuesFrom",
	KindDataHasValue:             "DataHasValue",
	KindDataMinCardinality:       "DataMinCardinality",
	KindDataMaxCardinality:       "DataMaxCardinality",
	KindDataExactCardinality:     "DataExactCardinality",
	KindNaryDataSomeValuesFrom:   "NaryDataSomeValuesFrom",
	KindNaryDataAllValuesFrom:    "NaryDataAllValuesFrom",
	KindObjectUnionOf:            "ObjectUnionOf",
	KindObjectIntersectionOf:     "ObjectIntersectionOf",
	KindObjectOneOf:              "ObjectOneOf",
	KindObjectComplementOf:       "ObjectComplementOf",
	KindDataOneOf:                "DataOneOf",
	KindDatatypeRestriction:      "DatatypeRestriction",
	KindDataComplementOf:         "DataComplementOf",
	KindDataUnionOf:              "DataUnionOf",
	KindDataIntersectionOf:       "DataIntersectionOf",
	KindFacetRestriction:         "FacetRestriction",
	KindRule:                     "DLSafeRule",
	KindVariable:                 "Variable",
	KindClassAtom:                "ClassAtom",
	KindDataRangeAtom:            "DataRangeAtom",
	KindIndividualPropertyAtom:   "ObjectPropertyAtom",
	KindDatavaluedPropertyAtom:   "DataPropertyAtom",
	KindSameIndividualAtom:       "SameIndividualAtom",
	KindDifferentIndividualsAtom: "DifferentIndividualsAtom",
	KindBuiltinAtom:              "BuiltInAtom",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsEntity reports whether the kind is one of the named entity kinds.
func (k Kind) IsEntity() bool {
	return k >= KindClass && k <= KindNamedIndividual
}

// IsClassExpression reports whether the kind is a named class or an anonymous class expression.
func (k Kind) IsClassExpression() bool {
	return k == KindClass || (k >= KindObjectSomeValuesFrom && k <= KindObjectComplementOf)
}

// IsDataRange reports whether the kind is a named datatype or an anonymous data range.
func (k Kind) IsDataRange() bool {
	return k == KindDatatype || (k >= KindDataOneOf && k <= KindDataIntersectionOf)
}

// IsCardinality reports whether the kind is a cardinality restriction.
func (k Kind) IsCardinality() bool {
	switch k {
	case KindObjectMinCardinality, KindObjectMaxCardinality, KindObjectExactCardinality,
		KindDataMinCardinality, KindDataMaxCardinality, KindDataExactCardinality:
		return true
	}
	return false
}

// IsData reports whether the kind is a restriction on data properties.
func (k Kind) IsData() bool {
	return k >= KindDataSomeValuesFrom && k <= KindNaryDataAllValuesFrom
}

// IsAtom reports whether the kind is a SWRL atom.
func (k Kind) IsAtom() bool {
	return k >= KindClassAtom && k <= KindBuiltinAtom
}

// ErrStructure is the sentinel wrapped by StructureError.
var ErrStructure = errors.New("malformed owl structure")

// StructureError is returned when the graph shape around a node does not match
// any OWL construct it is expected to be.
type StructureError struct {
	Node   quad.Value
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%v: %v: %s", ErrStructure, e.Node, e.Reason)
}

// Is makes a StructureError match both ErrStructure and model.ErrIllegalState.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure || target == model.ErrIllegalState
}

func structureErr(node quad.Value, format string, args ...interface{}) error {
	return &StructureError{Node: node, Reason: fmt.Sprintf(format, args...)}
}
