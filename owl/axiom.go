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
	"sort"
	"strings"

	"github.com/cayleygraph/owlgraph/model"
)

// Annotation is an annotation property with its value, possibly annotated itself.
type Annotation struct {
	Property    *Entity
	Value       Object
	Annotations []*Annotation
}

// NewAnnotation creates an annotation. Nested annotations are sorted.
func NewAnnotation(p *Entity, v Object, anns ...*Annotation) *Annotation {
	return &Annotation{Property: p, Value: v, Annotations: SortAnnotations(anns)}
}

func (a *Annotation) Key() string    { return a.render(false) }
func (a *Annotation) String() string { return a.render(true) }

func (a *Annotation) render(short bool) string {
	var b strings.Builder
	b.WriteString("Annotation(")
	for _, sub := range a.Annotations {
		b.WriteString(sub.render(short))
		b.WriteByte(' ')
	}
	b.WriteString(render(a.Property, short))
	b.WriteByte(' ')
	b.WriteString(render(a.Value, short))
	b.WriteByte(')')
	return b.String()
}

// SortAnnotations sorts annotations by key and drops duplicates.
func SortAnnotations(anns []*Annotation) []*Annotation {
	if len(anns) == 0 {
		return nil
	}
	out := append([]*Annotation(nil), anns...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i].Key() != out[n-1].Key() {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

// Axiom is an OWL axiom value. The arguments depend on the type:
//
//	Declaration: entity
//	EquivalentClasses: two class expressions
//	DisjointClasses: class expressions
//	SubClassOf: sub, super
//	DisjointUnion: class, class expressions...
//	ClassAssertion: class expression, individual
//	SameIndividual: two individuals
//	DifferentIndividuals: individuals
//	ObjectPropertyAssertion, NegativeObjectPropertyAssertion: property, source, target
//	DataPropertyAssertion, NegativeDataPropertyAssertion: property, source, literal
//	EquivalentObjectProperties, InverseObjectProperties: two properties
//	DisjointObjectProperties: properties
//	SubObjectPropertyOf, SubDataPropertyOf, SubAnnotationPropertyOf: sub, super
//	object and data property characteristics: property
//	property domains and ranges: property, domain or range
//	SubPropertyChainOf: super property, chain...
//	EquivalentDataProperties: two properties
//	DisjointDataProperties: properties
//	HasKey: class expression, properties...
//	SWRLRule: rule
//	AnnotationAssertion: property, subject, value
//	DatatypeDefinition: datatype, data range
//
// Arguments of set-like kinds are sorted and distinct.
type Axiom struct {
	Type        AxiomType
	Args        []Object
	Annotations []*Annotation

	stmt *model.Statement
}

// NewAxiom creates a detached axiom with normalized arguments.
func NewAxiom(t AxiomType, args []Object, anns ...*Annotation) *Axiom {
	return &Axiom{Type: t, Args: normalizeArgs(t, args), Annotations: SortAnnotations(anns)}
}

// IsSetLike reports whether the argument order of the axiom type is irrelevant.
func IsSetLike(t AxiomType) bool {
	switch t {
	case EquivalentClasses, DisjointClasses, SameIndividual, DifferentIndividuals,
		EquivalentObjectProperties, DisjointObjectProperties, InverseObjectProperties,
		EquivalentDataProperties, DisjointDataProperties:
		return true
	}
	return false
}

func normalizeArgs(t AxiomType, args []Object) []Object {
	switch {
	case IsSetLike(t):
		return SortObjects(args)
	case (t == DisjointUnion || t == HasKey) && len(args) > 0:
		return append([]Object{args[0]}, SortObjects(args[1:])...)
	}
	return append([]Object(nil), args...)
}

// Statement returns the main statement the axiom was read from, or nil for detached axioms.
func (a *Axiom) Statement() *model.Statement { return a.stmt }

// Bind returns a copy of the axiom attached to the statement.
func (a *Axiom) Bind(s *model.Statement) *Axiom {
	c := *a
	c.stmt = s
	return &c
}

// Meta returns the meta information of the axiom type.
func (a *Axiom) Meta() *MetaInfo { return MetaOf(a.Type) }

// Key is a structural identity that includes annotations.
func (a *Axiom) Key() string { return a.render(false, true) }

// LogicalKey is a structural identity that ignores annotations.
func (a *Axiom) LogicalKey() string { return a.render(false, false) }

// String returns the functional-style form with prefixed names.
func (a *Axiom) String() string { return a.render(true, true) }

func (a *Axiom) render(short, anns bool) string {
	var b strings.Builder
	b.WriteString(a.Type.String())
	b.WriteByte('(')
	first := true
	sep := func() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
	}
	if anns {
		for _, an := range a.Annotations {
			sep()
			b.WriteString(an.render(short))
		}
	}
	for _, o := range a.Args {
		sep()
		b.WriteString(render(o, short))
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether both axioms have the same structure and annotations.
func (a *Axiom) Equal(o *Axiom) bool {
	return a.Key() == o.Key()
}

// Erase returns a detached copy of the axiom that holds no reference to the graph.
func (a *Axiom) Erase() *Axiom {
	return &Axiom{
		Type:        a.Type,
		Args:        append([]Object(nil), a.Args...),
		Annotations: append([]*Annotation(nil), a.Annotations...),
	}
}

// WithoutAnnotations returns a copy of the axiom with no annotations.
func (a *Axiom) WithoutAnnotations() *Axiom {
	c := a.Erase()
	c.Annotations = nil
	c.stmt = a.stmt
	return c
}

// Merge returns a copy of the axiom with the annotations of both axioms.
// The axioms must be logically equal.
func (a *Axiom) Merge(o *Axiom) *Axiom {
	c := a.Erase()
	c.stmt = a.stmt
	c.Annotations = SortAnnotations(append(c.Annotations, o.Annotations...))
	return c
}

// Objects returns the arguments followed by the values and properties of all annotations.
func (a *Axiom) Objects() []Object {
	out := append([]Object(nil), a.Args...)
	var walk func(anns []*Annotation)
	walk = func(anns []*Annotation) {
		for _, an := range anns {
			out = append(out, an.Property, an.Value)
			walk(an.Annotations)
		}
	}
	walk(a.Annotations)
	return out
}

// Signature returns the entities used by the axiom, sorted by key.
func (a *Axiom) Signature() []*Entity {
	return Signature(a.Objects()...)
}

// ContainsComponent reports whether the axiom contains a component of the given type.
func (a *Axiom) ContainsComponent(c ComponentType) bool {
	found := false
	Walk(func(o Object) bool {
		found = ComponentSetOf(o).Has(c)
		return !found
	}, a.Objects()...)
	return found
}
