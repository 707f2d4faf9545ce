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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/internal/terms"
)

// Object is an OWL component: an entity, literal, expression, rule or atom.
// Objects are immutable once built.
type Object interface {
	// Kind returns the object kind.
	Kind() Kind
	// Node returns the graph node the object was read from or is written as.
	Node() quad.Value
	// Key returns a structural identity that ignores blank node labels of expressions.
	Key() string
	// Components returns the direct sub-objects.
	Components() []Object
	String() string

	render(w *renderer)
}

// renderer writes the functional-style form of objects.
// Objects already on the stack are written as ^n back-references.
type renderer struct {
	b     strings.Builder
	stack []Object
	short bool
}

func render(o Object, short bool) string {
	w := &renderer{short: short}
	w.object(o)
	return w.b.String()
}

func (w *renderer) object(o Object) {
	if o == nil {
		w.b.WriteString("nil")
		return
	}
	o.render(w)
}

func (w *renderer) enter(o Object) bool {
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i] == o {
			fmt.Fprintf(&w.b, "^%d", len(w.stack)-i)
			return false
		}
	}
	w.stack = append(w.stack, o)
	return true
}

func (w *renderer) leave() { w.stack = w.stack[:len(w.stack)-1] }

func (w *renderer) iri(iri quad.IRI) {
	if w.short {
		if s := iri.Short(); s != iri {
			w.b.WriteString(string(s))
			return
		}
	}
	w.b.WriteString("<" + string(iri.Full()) + ">")
}

// call writes name(args...) guarding against cycles through o.
func (w *renderer) call(o Object, name string, args ...Object) {
	if !w.enter(o) {
		return
	}
	defer w.leave()
	w.b.WriteString(name)
	w.b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		w.object(a)
	}
	w.b.WriteByte(')')
}

// Entity is a named OWL entity.
type Entity struct {
	kind Kind
	iri  quad.IRI
}

// NewEntity creates an entity of one of the entity kinds.
func NewEntity(kind Kind, iri quad.IRI) *Entity {
	if !kind.IsEntity() {
		panic(fmt.Sprintf("owl: %v is not an entity kind", kind))
	}
	return &Entity{kind: kind, iri: iri.Full()}
}

func (e *Entity) Kind() Kind           { return e.kind }
func (e *Entity) IRI() quad.IRI        { return e.iri }
func (e *Entity) Node() quad.Value     { return e.iri }
func (e *Entity) Components() []Object { return nil }
func (e *Entity) Key() string          { return render(e, false) }
func (e *Entity) String() string       { return render(e, true) }

func (e *Entity) render(w *renderer) {
	w.b.WriteString(e.kind.String())
	w.b.WriteByte('(')
	w.iri(e.iri)
	w.b.WriteByte(')')
}

// IsBuiltin reports whether the entity is a term of a reserved vocabulary.
func (e *Entity) IsBuiltin() bool {
	switch e.kind {
	case KindClass:
		return e.iri == terms.OWLThing || e.iri == terms.OWLNothing
	case KindObjectProperty:
		return e.iri == terms.OWLTopObjectProperty || e.iri == terms.OWLBottomObjectProperty
	case KindDataProperty:
		return e.iri == terms.OWLTopDataProperty || e.iri == terms.OWLBottomDataProperty
	case KindDatatype:
		for _, dt := range terms.Datatypes {
			if dt == e.iri {
				return true
			}
		}
	case KindAnnotationProperty:
		for _, ap := range terms.AnnotationProperties {
			if ap == e.iri {
				return true
			}
		}
	}
	return false
}

// DeclarationType returns the rdf:type object that declares the entity.
func (e *Entity) DeclarationType() quad.IRI {
	switch e.kind {
	case KindClass:
		return terms.OWLClass
	case KindDatatype:
		return terms.RDFSDatatype
	case KindObjectProperty:
		return terms.OWLObjectProperty
	case KindDataProperty:
		return terms.OWLDatatypeProperty
	case KindAnnotationProperty:
		return terms.OWLAnnotationProperty
	}
	return terms.OWLNamedIndividual
}

// Well-known entities.
var (
	Thing   = NewEntity(KindClass, terms.OWLThing)
	Nothing = NewEntity(KindClass, terms.OWLNothing)
	// RDFSLiteral is the top datatype, the implicit filler of unqualified data cardinalities.
	RDFSLiteral = NewEntity(KindDatatype, terms.RDFSLiteral)
	XSDBoolean  = NewEntity(KindDatatype, terms.XSDBoolean)
)

// AnonymousIndividual is an individual denoted by a blank node.
type AnonymousIndividual struct {
	node quad.BNode
}

func NewAnonymousIndividual(node quad.BNode) *AnonymousIndividual {
	return &AnonymousIndividual{node: node}
}

func (a *AnonymousIndividual) Kind() Kind           { return KindAnonymousIndividual }
func (a *AnonymousIndividual) Node() quad.Value     { return a.node }
func (a *AnonymousIndividual) Components() []Object { return nil }
func (a *AnonymousIndividual) Key() string          { return render(a, false) }
func (a *AnonymousIndividual) String() string       { return render(a, true) }
func (a *AnonymousIndividual) render(w *renderer)   { w.b.WriteString(a.node.String()) }

// IRI is a bare IRI used as an annotation subject or value.
type IRI quad.IRI

func (i IRI) Kind() Kind           { return KindIRI }
func (i IRI) Node() quad.Value     { return quad.IRI(i).Full() }
func (i IRI) Components() []Object { return nil }
func (i IRI) Key() string          { return render(i, false) }
func (i IRI) String() string       { return render(i, true) }
func (i IRI) render(w *renderer)   { w.iri(quad.IRI(i)) }

// Literal is a normalized RDF literal. Plain strings have the xsd:string datatype
// and language-tagged strings the rdf:langString datatype.
type Literal struct {
	Lexical  string
	Datatype quad.IRI
	Lang     string
}

// NewLiteral normalizes a quad literal value.
func NewLiteral(v quad.Value) (*Literal, error) {
	switch v := v.(type) {
	case quad.String:
		return &Literal{Lexical: string(v), Datatype: terms.XSDString}, nil
	case quad.LangString:
		return &Literal{Lexical: string(v.Value), Datatype: terms.RDFLangString, Lang: v.Lang}, nil
	case quad.TypedString:
		dt := v.Type.Full()
		if dt == "" {
			dt = terms.XSDString
		}
		return &Literal{Lexical: string(v.Value), Datatype: dt}, nil
	case quad.Int:
		return &Literal{Lexical: strconv.FormatInt(int64(v), 10), Datatype: terms.XSDInteger}, nil
	case quad.Float:
		return &Literal{Lexical: strconv.FormatFloat(float64(v), 'g', -1, 64), Datatype: terms.XSDDouble}, nil
	case quad.Bool:
		return &Literal{Lexical: strconv.FormatBool(bool(v)), Datatype: terms.XSDBoolean}, nil
	case quad.Time:
		return &Literal{Lexical: time.Time(v).Format(time.RFC3339Nano), Datatype: terms.XSDDateTime}, nil
	}
	return nil, structureErr(v, "not a literal")
}

// Value returns the quad form of the literal.
func (l *Literal) Value() quad.Value {
	switch {
	case l.Lang != "":
		return quad.LangString{Value: quad.String(l.Lexical), Lang: l.Lang}
	case l.Datatype == terms.XSDString || l.Datatype == "":
		return quad.String(l.Lexical)
	}
	return quad.TypedString{Value: quad.String(l.Lexical), Type: l.Datatype}
}

func (l *Literal) Kind() Kind           { return KindLiteral }
func (l *Literal) Node() quad.Value     { return l.Value() }
func (l *Literal) Components() []Object { return nil }
func (l *Literal) Key() string          { return render(l, false) }
func (l *Literal) String() string       { return render(l, true) }

// DatatypeEntity returns the datatype of the literal as an entity.
func (l *Literal) DatatypeEntity() *Entity {
	return NewEntity(KindDatatype, l.Datatype)
}

func (l *Literal) render(w *renderer) {
	w.b.WriteString(strconv.Quote(l.Lexical))
	if l.Lang != "" {
		w.b.WriteString("@" + l.Lang)
		return
	}
	w.b.WriteString("^^")
	w.iri(l.Datatype)
}

// InverseProperty is the inverse of a named object property.
type InverseProperty struct {
	node     quad.Value
	property *Entity
}

// NewInverseProperty creates an inverse property expression bound to the blank node.
func NewInverseProperty(node quad.Value, p *Entity) *InverseProperty {
	return &InverseProperty{node: node, property: p}
}

func (p *InverseProperty) Kind() Kind           { return KindInverseObjectProperty }
func (p *InverseProperty) Node() quad.Value     { return p.node }
func (p *InverseProperty) Property() *Entity    { return p.property }
func (p *InverseProperty) Components() []Object { return []Object{p.property} }
func (p *InverseProperty) Key() string          { return render(p, false) }
func (p *InverseProperty) String() string       { return render(p, true) }
func (p *InverseProperty) render(w *renderer) {
	w.call(p, "ObjectInverseOf", p.property)
}
