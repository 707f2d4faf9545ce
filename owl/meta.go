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

import "fmt"

// AxiomType is a kind of OWL axiom. The order is the registry order.
type AxiomType int

const (
	Declaration AxiomType = iota
	EquivalentClasses
	SubClassOf
	DisjointClasses
	DisjointUnion
	ClassAssertion
	SameIndividual
	DifferentIndividuals
	ObjectPropertyAssertion
	NegativeObjectPropertyAssertion
	DataPropertyAssertion
	NegativeDataPropertyAssertion
	EquivalentObjectProperties
	SubObjectPropertyOf
	InverseObjectProperties
	FunctionalObjectProperty
	InverseFunctionalObjectProperty
	SymmetricObjectProperty
	AsymmetricObjectProperty
	TransitiveObjectProperty
	ReflexiveObjectProperty
	IrreflexiveObjectProperty
	ObjectPropertyDomain
	ObjectPropertyRange
	DisjointObjectProperties
	SubPropertyChainOf
	EquivalentDataProperties
	SubDataPropertyOf
	FunctionalDataProperty
	DataPropertyDomain
	DataPropertyRange
	DisjointDataProperties
	HasKey
	SWRLRule
	AnnotationAssertion
	SubAnnotationPropertyOf
	AnnotationPropertyRange
	AnnotationPropertyDomain
	DatatypeDefinition

	numAxiomTypes int = iota
)

// NumAxiomTypes is the number of axiom kinds.
const NumAxiomTypes = numAxiomTypes

// AxiomTypes returns all axiom types in registry order.
func AxiomTypes() []AxiomType {
	out := make([]AxiomType, NumAxiomTypes)
	for i := range out {
		out[i] = AxiomType(i)
	}
	return out
}

func (t AxiomType) String() string {
	if m := MetaOf(t); m != nil {
		return m.name
	}
	return fmt.Sprintf("AxiomType(%d)", int(t))
}

// IsLogical reports whether the axiom kind carries logical meaning.
// Declarations and annotation axioms do not.
func (t AxiomType) IsLogical() bool {
	switch t {
	case Declaration, AnnotationAssertion, SubAnnotationPropertyOf,
		AnnotationPropertyDomain, AnnotationPropertyRange:
		return false
	}
	return true
}

// ComponentType is a kind of component an axiom can contain.
type ComponentType int

const (
	ComponentIRI ComponentType = iota
	ComponentLiteral
	ComponentAnonymousIndividual
	ComponentNamedIndividual
	ComponentIndividual
	ComponentEntity
	ComponentClass
	ComponentClassExpression
	ComponentDatatype
	ComponentDataRange
	ComponentNamedObjectProperty
	ComponentObjectPropertyExpression
	ComponentDataProperty
	ComponentAnnotationProperty
)

var componentNames = [...]string{
	"IRI", "Literal", "AnonymousIndividual", "NamedIndividual", "Individual", "Entity",
	"Class", "ClassExpression", "Datatype", "DataRange", "NamedObjectProperty",
	"ObjectPropertyExpression", "DataProperty", "AnnotationProperty",
}

func (c ComponentType) String() string {
	if c >= 0 && int(c) < len(componentNames) {
		return componentNames[c]
	}
	return fmt.Sprintf("ComponentType(%d)", int(c))
}

// ComponentTypes returns all component types.
func ComponentTypes() []ComponentType {
	out := make([]ComponentType, len(componentNames))
	for i := range out {
		out[i] = ComponentType(i)
	}
	return out
}

// ParseComponentType returns the component type with the given name.
func ParseComponentType(name string) (ComponentType, bool) {
	for i, n := range componentNames {
		if n == name {
			return ComponentType(i), true
		}
	}
	return 0, false
}

// leaf component bits
const (
	bitIRI ComponentSet = 1 << iota
	bitLiteral
	bitAnonymousIndividual
	bitNamedIndividual
	bitClass
	bitAnonymousClass
	bitDatatype
	bitAnonymousRange
	bitObjectProperty
	bitInverseProperty
	bitDataProperty
	bitAnnotationProperty
)

// ComponentSet is a set of leaf component kinds.
type ComponentSet uint32

var componentMasks = [...]ComponentSet{
	ComponentIRI:                      bitIRI,
	ComponentLiteral:                  bitLiteral,
	ComponentAnonymousIndividual:      bitAnonymousIndividual,
	ComponentNamedIndividual:          bitNamedIndividual,
	ComponentIndividual:               bitAnonymousIndividual | bitNamedIndividual,
	ComponentEntity:                   bitClass | bitDatatype | bitObjectProperty | bitDataProperty | bitAnnotationProperty | bitNamedIndividual,
	ComponentClass:                    bitClass,
	ComponentClassExpression:          bitClass | bitAnonymousClass,
	ComponentDatatype:                 bitDatatype,
	ComponentDataRange:                bitDatatype | bitAnonymousRange,
	ComponentNamedObjectProperty:      bitObjectProperty,
	ComponentObjectPropertyExpression: bitObjectProperty | bitInverseProperty,
	ComponentDataProperty:             bitDataProperty,
	ComponentAnnotationProperty:       bitAnnotationProperty,
}

// Set returns the leaf kinds covered by the component type, including the types it includes.
func (c ComponentType) Set() ComponentSet {
	if c < 0 || int(c) >= len(componentMasks) {
		return 0
	}
	return componentMasks[c]
}

// Components builds a set from component types.
func Components(types ...ComponentType) ComponentSet {
	var s ComponentSet
	for _, t := range types {
		s |= t.Set()
	}
	return s
}

// Has reports whether a component of the given type may be in the set.
func (s ComponentSet) Has(c ComponentType) bool {
	return s&c.Set() != 0
}

// ComponentSetOf returns the leaf kind of a single object, without its sub-components.
func ComponentSetOf(o Object) ComponentSet {
	switch k := o.Kind(); {
	case k == KindIRI:
		return bitIRI
	case k == KindLiteral:
		return bitLiteral
	case k == KindAnonymousIndividual:
		return bitAnonymousIndividual
	case k == KindNamedIndividual:
		return bitNamedIndividual
	case k == KindClass:
		return bitClass
	case k == KindDatatype:
		return bitDatatype
	case k == KindObjectProperty:
		return bitObjectProperty
	case k == KindInverseObjectProperty:
		return bitInverseProperty
	case k == KindDataProperty:
		return bitDataProperty
	case k == KindAnnotationProperty:
		return bitAnnotationProperty
	case k.IsClassExpression():
		return bitAnonymousClass
	case k.IsDataRange():
		return bitAnonymousRange
	}
	return 0
}

// MetaInfo describes an axiom kind, or the ontology header.
type MetaInfo struct {
	name       string
	typ        AxiomType
	axiom      bool
	distinct   bool
	components ComponentSet
}

// Name returns the functional-syntax name.
func (m *MetaInfo) Name() string { return m.name }

// IsAxiom reports whether the entry is an axiom kind rather than the header.
func (m *MetaInfo) IsAxiom() bool { return m.axiom }

// Type returns the axiom type. It is only meaningful when IsAxiom is true.
func (m *MetaInfo) Type() AxiomType { return m.typ }

// IsDistinct reports whether every axiom of the kind is backed by its own main triple,
// so that reading never yields duplicates needing a merge.
func (m *MetaInfo) IsDistinct() bool { return m.distinct }

// Components returns the component kinds the axiom may contain.
func (m *MetaInfo) Components() ComponentSet { return m.components }

// HasComponent reports whether an axiom of the kind may contain a component of the given type.
func (m *MetaInfo) HasComponent(c ComponentType) bool { return m.components.Has(c) }

func (m *MetaInfo) String() string { return m.name }

func meta(name string, t AxiomType, distinct bool, cs ...ComponentType) MetaInfo {
	return MetaInfo{name: name, typ: t, axiom: true, distinct: distinct, components: Components(cs...)}
}

const (
	cIRI  = ComponentIRI
	cLit  = ComponentLiteral
	cAnon = ComponentAnonymousIndividual
	cInd  = ComponentIndividual
	cEnt  = ComponentEntity
	cCls  = ComponentClass
	cCE   = ComponentClassExpression
	cDT   = ComponentDatatype
	cDR   = ComponentDataRange
	cNOP  = ComponentNamedObjectProperty
	cOPE  = ComponentObjectPropertyExpression
	cDP   = ComponentDataProperty
	cAP   = ComponentAnnotationProperty
)

// metas is the registry arena: the header followed by every axiom kind in AxiomType order.
var metas = [...]MetaInfo{
	{name: "Annotation", typ: -1, components: Components(cAP, cLit, cAnon, cIRI)},

	meta("Declaration", Declaration, true, cEnt),
	meta("EquivalentClasses", EquivalentClasses, true, cCE),
	meta("SubClassOf", SubClassOf, true, cCE),
	meta("DisjointClasses", DisjointClasses, false, cCE),
	meta("DisjointUnion", DisjointUnion, false, cCls, cCE),
	meta("ClassAssertion", ClassAssertion, true, cInd, cCE),
	meta("SameIndividual", SameIndividual, false, cInd),
	meta("DifferentIndividuals", DifferentIndividuals, false, cInd),
	meta("ObjectPropertyAssertion", ObjectPropertyAssertion, true, cNOP, cInd),
	meta("NegativeObjectPropertyAssertion", NegativeObjectPropertyAssertion, false, cOPE, cInd),
	meta("DataPropertyAssertion", DataPropertyAssertion, true, cDP, cLit, cInd),
	meta("NegativeDataPropertyAssertion", NegativeDataPropertyAssertion, false, cDP, cInd, cLit),
	meta("EquivalentObjectProperties", EquivalentObjectProperties, false, cOPE),
	meta("SubObjectPropertyOf", SubObjectPropertyOf, true, cOPE),
	meta("InverseObjectProperties", InverseObjectProperties, false, cOPE),
	meta("FunctionalObjectProperty", FunctionalObjectProperty, true, cOPE),
	meta("InverseFunctionalObjectProperty", InverseFunctionalObjectProperty, true, cOPE),
	meta("SymmetricObjectProperty", SymmetricObjectProperty, true, cOPE),
	meta("AsymmetricObjectProperty", AsymmetricObjectProperty, true, cOPE),
	meta("TransitiveObjectProperty", TransitiveObjectProperty, true, cOPE),
	meta("ReflexiveObjectProperty", ReflexiveObjectProperty, true, cOPE),
	meta("IrreflexiveObjectProperty", IrreflexiveObjectProperty, true, cOPE),
	meta("ObjectPropertyDomain", ObjectPropertyDomain, true, cOPE, cCE),
	meta("ObjectPropertyRange", ObjectPropertyRange, true, cOPE, cCE),
	meta("DisjointObjectProperties", DisjointObjectProperties, false, cOPE),
	meta("SubPropertyChainOf", SubPropertyChainOf, false, cOPE),
	meta("EquivalentDataProperties", EquivalentDataProperties, false, cDP),
	meta("SubDataPropertyOf", SubDataPropertyOf, true, cDP),
	meta("FunctionalDataProperty", FunctionalDataProperty, true, cDP),
	meta("DataPropertyDomain", DataPropertyDomain, true, cDP, cCE),
	meta("DataPropertyRange", DataPropertyRange, true, cDP, cDR),
	meta("DisjointDataProperties", DisjointDataProperties, false, cDP),
	meta("HasKey", HasKey, false, cCE, cDP, cOPE),
	meta("SWRLRule", SWRLRule, false, cInd, cLit, cCE, cDR, cDP, cOPE),
	meta("AnnotationAssertion", AnnotationAssertion, true, cAP, cLit, cAnon, cIRI),
	meta("SubAnnotationPropertyOf", SubAnnotationPropertyOf, true, cAP),
	meta("AnnotationPropertyRange", AnnotationPropertyRange, true, cAP, cIRI),
	meta("AnnotationPropertyDomain", AnnotationPropertyDomain, true, cAP, cIRI),
	meta("DatatypeDefinition", DatatypeDefinition, true, cDT, cDR),
}

// Header returns the meta information of the ontology header.
func Header() *MetaInfo { return &metas[0] }

// MetaOf returns the meta information of the axiom type, or nil.
func MetaOf(t AxiomType) *MetaInfo {
	i := int(t) + 1
	if t < 0 || i >= len(metas) {
		return nil
	}
	return &metas[i]
}

// LookupMeta finds the meta information by functional-syntax name.
// Both the header and the axiom kinds are searched.
func LookupMeta(name string) (*MetaInfo, bool) {
	for i := range metas {
		if metas[i].name == name {
			return &metas[i], true
		}
	}
	return nil, false
}

// ParseAxiomType returns the axiom type with the given name.
func ParseAxiomType(name string) (AxiomType, bool) {
	m, ok := LookupMeta(name)
	if !ok || !m.axiom {
		return 0, false
	}
	return m.typ, true
}

// Metas returns the header followed by all axiom kinds.
func Metas() []*MetaInfo {
	out := make([]*MetaInfo, len(metas))
	for i := range metas {
		out[i] = &metas[i]
	}
	return out
}

// AxiomMetas returns the meta information of all axiom kinds in registry order.
func AxiomMetas() []*MetaInfo {
	return Metas()[1:]
}

// LogicalMetas returns the meta information of the logical axiom kinds.
func LogicalMetas() []*MetaInfo {
	var out []*MetaInfo
	for _, m := range AxiomMetas() {
		if m.typ.IsLogical() {
			out = append(out, m)
		}
	}
	return out
}
