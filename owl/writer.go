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
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
)

// Writer emits objects into a model as triples. Objects read from a graph
// keep their nodes, detached expressions get blank nodes derived from their
// key, so writing the same object twice adds nothing. Non built-in entities
// are declared.
type Writer struct {
	m    *model.Model
	seen map[Object]quad.Value
	buf  []quad.Quad
}

// NewWriter creates a writer for the model.
func NewWriter(m *model.Model) *Writer {
	return &Writer{m: m, seen: make(map[Object]quad.Value)}
}

// Hash returns a short stable hash of the string, used to name blank nodes.
func Hash(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}

// Write writes the object and all its components and returns its node.
func (w *Writer) Write(o Object) (quad.Value, error) {
	w.buf = nil
	v := w.object(o)
	if err := w.m.Add(w.buf...); err != nil {
		return nil, err
	}
	return v, nil
}

// WriteList writes the objects as an RDF list that is the value of (owner, p)
// and returns the list head.
func (w *Writer) WriteList(owner quad.Value, p quad.IRI, objs []Object) (quad.Value, error) {
	w.buf = nil
	head := w.list(owner, p, w.objects(objs))
	if err := w.m.Add(w.buf...); err != nil {
		return nil, err
	}
	return head, nil
}

func (w *Writer) add(s, p, o quad.Value) {
	w.buf = append(w.buf, graph.Triple(s, p, o))
}

// nodeOf returns the node of the object, naming detached objects by key.
func (w *Writer) nodeOf(prefix string, o Object) quad.Value {
	if n := o.Node(); n != nil {
		return n
	}
	return quad.BNode(prefix + Hash(o.Key()))
}

func (w *Writer) object(o Object) quad.Value {
	if n, ok := w.seen[o]; ok {
		return n
	}
	switch o := o.(type) {
	case *Entity:
		if !o.IsBuiltin() {
			w.add(o.iri, terms.RDFType, o.DeclarationType())
		}
		return o.iri
	case IRI:
		return o.Node()
	case *AnonymousIndividual:
		return o.node
	case *Literal:
		return o.Value()
	case *Variable:
		w.add(o.iri, terms.RDFType, terms.SWRLVariable)
		return o.iri
	case *InverseProperty:
		n := w.nodeOf("inv", o)
		w.seen[o] = n
		w.add(n, terms.OWLInverseOf, w.object(o.property))
		return n
	case *ClassExpression:
		return w.classExpression(o)
	case *DataRange:
		return w.dataRange(o)
	case *FacetRestriction:
		n := w.nodeOf("fr", o)
		w.seen[o] = n
		w.add(n, o.facet, o.value.Value())
		return n
	case *Rule:
		n := w.nodeOf("rule", o)
		w.seen[o] = n
		w.add(n, terms.RDFType, terms.SWRLImp)
		w.list(n, terms.SWRLBody, w.atoms(o.body))
		w.list(n, terms.SWRLHead, w.atoms(o.head))
		return n
	case *Atom:
		return w.atom(o)
	}
	return nil
}

func (w *Writer) objects(objs []Object) []quad.Value {
	out := make([]quad.Value, 0, len(objs))
	for _, o := range objs {
		out = append(out, w.object(o))
	}
	return out
}

// list writes an RDF list as a value of (owner, p). A list with the same items
// that is already there is reused. Cell names depend on the items, so several
// lists of one owner never share cells.
func (w *Writer) list(owner quad.Value, p quad.IRI, items []quad.Value) quad.Value {
	for _, cur := range w.m.Objects(owner, p) {
		if vals, err := w.m.List(cur); err == nil && equalValues(vals, items) {
			return cur
		}
	}
	key := make([]string, 0, len(items)+2)
	key = append(key, owner.String(), string(p))
	for _, it := range items {
		key = append(key, it.String())
	}
	base := Hash(strings.Join(key, " "))
	head, quads := graph.NewList(items, func(i int) quad.Value {
		return quad.BNode("l" + base + "_" + strconv.Itoa(i))
	})
	w.buf = append(w.buf, quads...)
	w.add(owner, p, head)
	return head
}

func equalValues(a, b []quad.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var nonNegativeInteger = terms.XSDNonNegativeInteger

func (w *Writer) classExpression(c *ClassExpression) quad.Value {
	n := w.nodeOf("ce", c)
	w.seen[c] = n
	k := c.kind
	if p, ok := listPredicates[k]; ok {
		w.add(n, terms.RDFType, terms.OWLClass)
		w.list(n, p, w.objects(c.operands))
		return n
	} else if k == KindObjectComplementOf {
		w.add(n, terms.RDFType, terms.OWLClass)
		w.add(n, terms.OWLComplementOf, w.object(c.filler))
		return n
	}
	w.add(n, terms.RDFType, terms.OWLRestriction)
	if k == KindNaryDataSomeValuesFrom || k == KindNaryDataAllValuesFrom {
		w.list(n, terms.OWLOnProperties, w.objects(c.operands))
	} else {
		w.add(n, terms.OWLOnProperty, w.object(c.property))
	}
	switch {
	case k == KindObjectHasSelf:
		w.add(n, terms.OWLHasSelf, quad.TypedString{Value: "true", Type: terms.XSDBoolean})
	case k.IsCardinality():
		preds := cardinalityPredicates[k]
		card := quad.TypedString{Value: quad.String(c.cardinality.String()), Type: nonNegativeInteger}
		if !c.IsQualified() {
			w.add(n, preds[0], card)
			break
		}
		w.add(n, preds[1], card)
		if k.IsData() {
			w.add(n, terms.OWLOnDataRange, w.object(c.filler))
		} else {
			w.add(n, terms.OWLOnClass, w.object(c.filler))
		}
	default:
		w.add(n, fillerPredicates[k], w.object(c.filler))
	}
	return n
}

func (w *Writer) dataRange(d *DataRange) quad.Value {
	n := w.nodeOf("dr", d)
	w.seen[d] = n
	w.add(n, terms.RDFType, terms.RDFSDatatype)
	switch d.kind {
	case KindDataComplementOf:
		w.add(n, terms.OWLDatatypeComplementOf, w.object(d.datatype))
	case KindDatatypeRestriction:
		w.add(n, terms.OWLOnDatatype, w.object(d.datatype))
		w.list(n, terms.OWLWithRestrictions, w.objects(d.operands))
	default:
		w.list(n, listPredicates[d.kind], w.objects(d.operands))
	}
	return n
}

var atomTypeIRIs = func() map[Kind]quad.IRI {
	out := make(map[Kind]quad.IRI, len(atomTypes))
	for t, k := range atomTypes {
		out[k] = t.(quad.IRI)
	}
	return out
}()

func (w *Writer) atoms(atoms []*Atom) []quad.Value {
	out := make([]quad.Value, 0, len(atoms))
	for _, a := range atoms {
		out = append(out, w.object(a))
	}
	return out
}

func (w *Writer) atom(a *Atom) quad.Value {
	n := w.nodeOf("atom", a)
	w.seen[a] = n
	w.add(n, terms.RDFType, atomTypeIRIs[a.kind])
	switch a.kind {
	case KindClassAtom:
		w.add(n, terms.SWRLClassPredicate, w.object(a.predicate))
	case KindDataRangeAtom:
		w.add(n, terms.SWRLDataRange, w.object(a.predicate))
	case KindIndividualPropertyAtom, KindDatavaluedPropertyAtom:
		w.add(n, terms.SWRLPropertyPredicate, w.object(a.predicate))
	case KindBuiltinAtom:
		w.add(n, terms.SWRLBuiltin, w.object(a.predicate))
		w.list(n, terms.SWRLArguments, w.objects(a.args))
		return n
	}
	argPreds := []quad.IRI{terms.SWRLArgument1, terms.SWRLArgument2}
	for i, arg := range a.args {
		if i < len(argPreds) {
			w.add(n, argPreds[i], w.object(arg))
		}
	}
	return n
}
