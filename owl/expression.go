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
	"math/big"
	"sort"

	"github.com/cayleygraph/quad"
)

// ClassExpression is an anonymous class expression. The fields in use depend on the kind:
//
//	Object/DataSomeValuesFrom, Object/DataAllValuesFrom: property, filler
//	Object/DataHasValue: property, filler (the individual or literal)
//	ObjectHasSelf: property
//	Object/Data Exact/Min/MaxCardinality: property, cardinality, filler
//	NaryDataSome/AllValuesFrom: operands (the data properties), filler
//	ObjectUnionOf, ObjectIntersectionOf, ObjectOneOf: operands, sorted and distinct
//	ObjectComplementOf: filler
type ClassExpression struct {
	kind        Kind
	node        quad.Value
	property    Object
	filler      Object
	cardinality *big.Int
	operands    []Object
}

func (c *ClassExpression) Kind() Kind       { return c.kind }
func (c *ClassExpression) Node() quad.Value { return c.node }

// Property returns the restricted property, or nil.
func (c *ClassExpression) Property() Object { return c.property }

// Filler returns the filler, value or complemented operand, or nil.
func (c *ClassExpression) Filler() Object { return c.filler }

// Cardinality returns the cardinality of a cardinality restriction, or nil.
func (c *ClassExpression) Cardinality() *big.Int {
	if c.cardinality == nil {
		return nil
	}
	return new(big.Int).Set(c.cardinality)
}

// Operands returns the members of a boolean or enumeration expression,
// or the properties of an n-ary data restriction.
func (c *ClassExpression) Operands() []Object {
	return append([]Object(nil), c.operands...)
}

// IsQualified reports whether a cardinality restriction has an explicit filler.
func (c *ClassExpression) IsQualified() bool {
	if !c.kind.IsCardinality() || c.filler == nil {
		return false
	}
	if c.kind.IsData() {
		return c.filler.Key() != RDFSLiteral.Key()
	}
	return c.filler.Key() != Thing.Key()
}

// Components returns the content objects in declaration order.
func (c *ClassExpression) Components() []Object {
	var out []Object
	if c.property != nil {
		out = append(out, c.property)
	}
	out = append(out, c.operands...)
	if c.filler != nil {
		out = append(out, c.filler)
	}
	return out
}

func (c *ClassExpression) Key() string    { return render(c, false) }
func (c *ClassExpression) String() string { return render(c, true) }

func (c *ClassExpression) render(w *renderer) {
	if !w.enter(c) {
		return
	}
	defer w.leave()
	w.b.WriteString(c.kind.String())
	w.b.WriteByte('(')
	if c.cardinality != nil {
		w.b.WriteString(c.cardinality.String())
		w.b.WriteByte(' ')
	}
	for i, o := range c.Components() {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		w.object(o)
	}
	w.b.WriteByte(')')
}

// DataRange is an anonymous data range. The fields in use depend on the kind:
//
//	DataOneOf: operands (literals), sorted and distinct
//	DatatypeRestriction: datatype, operands (facet restrictions)
//	DataComplementOf: datatype (the complemented range)
//	DataUnionOf, DataIntersectionOf: operands, sorted and distinct
type DataRange struct {
	kind     Kind
	node     quad.Value
	datatype Object
	operands []Object
}

func (d *DataRange) Kind() Kind       { return d.kind }
func (d *DataRange) Node() quad.Value { return d.node }

// Datatype returns the restricted datatype or the complemented range.
func (d *DataRange) Datatype() Object { return d.datatype }

func (d *DataRange) Operands() []Object { return append([]Object(nil), d.operands...) }

func (d *DataRange) Components() []Object {
	var out []Object
	if d.datatype != nil {
		out = append(out, d.datatype)
	}
	return append(out, d.operands...)
}

func (d *DataRange) Key() string    { return render(d, false) }
func (d *DataRange) String() string { return render(d, true) }

func (d *DataRange) render(w *renderer) {
	w.call(d, d.kind.String(), d.Components()...)
}

// FacetRestriction constrains a datatype facet, as in xsd:minInclusive 5.
type FacetRestriction struct {
	node  quad.Value
	facet quad.IRI
	value *Literal
}

// NewFacetRestriction creates a facet restriction.
func NewFacetRestriction(facet quad.IRI, value *Literal) *FacetRestriction {
	return &FacetRestriction{facet: facet.Full(), value: value}
}

func (f *FacetRestriction) Kind() Kind           { return KindFacetRestriction }
func (f *FacetRestriction) Node() quad.Value     { return f.node }
func (f *FacetRestriction) Facet() quad.IRI      { return f.facet }
func (f *FacetRestriction) Value() *Literal      { return f.value }
func (f *FacetRestriction) Components() []Object { return []Object{f.value} }
func (f *FacetRestriction) Key() string          { return render(f, false) }
func (f *FacetRestriction) String() string       { return render(f, true) }

func (f *FacetRestriction) render(w *renderer) {
	w.b.WriteString("FacetRestriction(")
	w.iri(f.facet)
	w.b.WriteByte(' ')
	w.object(f.value)
	w.b.WriteByte(')')
}

// SortObjects sorts objects by key and removes duplicates.
func SortObjects(objs []Object) []Object {
	if len(objs) == 0 {
		return objs
	}
	keys := make(map[Object]string, len(objs))
	for _, o := range objs {
		keys[o] = o.Key()
	}
	out := append([]Object(nil), objs...)
	sort.SliceStable(out, func(i, j int) bool {
		return keys[out[i]] < keys[out[j]]
	})
	n := 1
	for i := 1; i < len(out); i++ {
		if keys[out[i]] != keys[out[n-1]] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

// NewClassExpression creates a detached class expression. The blank node is
// assigned when the expression is written.
func NewClassExpression(kind Kind, property Object, filler Object, operands ...Object) *ClassExpression {
	c := &ClassExpression{kind: kind, property: property, filler: filler}
	switch kind {
	case KindObjectUnionOf, KindObjectIntersectionOf, KindObjectOneOf:
		c.operands = SortObjects(operands)
	default:
		c.operands = operands
	}
	return c
}

// NewCardinality creates a detached cardinality restriction. A nil filler means unqualified.
func NewCardinality(kind Kind, property Object, n *big.Int, filler Object) *ClassExpression {
	if filler == nil {
		if kind.IsData() {
			filler = RDFSLiteral
		} else {
			filler = Thing
		}
	}
	return &ClassExpression{kind: kind, property: property, filler: filler, cardinality: new(big.Int).Set(n)}
}

// NewDataRange creates a detached data range.
func NewDataRange(kind Kind, datatype Object, operands ...Object) *DataRange {
	d := &DataRange{kind: kind, datatype: datatype}
	switch kind {
	case KindDataOneOf, KindDataUnionOf, KindDataIntersectionOf:
		d.operands = SortObjects(operands)
	default:
		d.operands = operands
	}
	return d
}
