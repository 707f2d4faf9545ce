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

import "github.com/cayleygraph/quad"

// Variable is a SWRL variable.
type Variable struct {
	iri quad.IRI
}

func NewVariable(iri quad.IRI) *Variable { return &Variable{iri: iri.Full()} }

func (v *Variable) Kind() Kind           { return KindVariable }
func (v *Variable) IRI() quad.IRI        { return v.iri }
func (v *Variable) Node() quad.Value     { return v.iri }
func (v *Variable) Components() []Object { return nil }
func (v *Variable) Key() string          { return render(v, false) }
func (v *Variable) String() string       { return render(v, true) }
func (v *Variable) render(w *renderer) {
	w.b.WriteString("Variable(")
	w.iri(v.iri)
	w.b.WriteByte(')')
}

// Atom is a SWRL atom. Predicate is a class expression, data range, property
// or, for built-in atoms, the built-in IRI. Arguments are variables,
// individuals or literals.
type Atom struct {
	kind      Kind
	node      quad.Value
	predicate Object
	args      []Object
}

// NewAtom creates a detached atom.
func NewAtom(kind Kind, predicate Object, args ...Object) *Atom {
	return &Atom{kind: kind, predicate: predicate, args: args}
}

func (a *Atom) Kind() Kind          { return a.kind }
func (a *Atom) Node() quad.Value    { return a.node }
func (a *Atom) Predicate() Object   { return a.predicate }
func (a *Atom) Arguments() []Object { return append([]Object(nil), a.args...) }

func (a *Atom) Components() []Object {
	var out []Object
	if a.predicate != nil {
		out = append(out, a.predicate)
	}
	return append(out, a.args...)
}

func (a *Atom) Key() string    { return render(a, false) }
func (a *Atom) String() string { return render(a, true) }
func (a *Atom) render(w *renderer) {
	w.call(a, a.kind.String(), a.Components()...)
}

// Rule is a SWRL rule: the head holds whenever all body atoms hold.
type Rule struct {
	node quad.Value
	body []*Atom
	head []*Atom
}

// NewRule creates a detached rule.
func NewRule(body, head []*Atom) *Rule {
	return &Rule{body: body, head: head}
}

func (r *Rule) Kind() Kind       { return KindRule }
func (r *Rule) Node() quad.Value { return r.node }
func (r *Rule) Body() []*Atom    { return append([]*Atom(nil), r.body...) }
func (r *Rule) Head() []*Atom    { return append([]*Atom(nil), r.head...) }

func (r *Rule) Components() []Object {
	out := make([]Object, 0, len(r.body)+len(r.head))
	for _, a := range r.body {
		out = append(out, a)
	}
	for _, a := range r.head {
		out = append(out, a)
	}
	return out
}

func (r *Rule) Key() string    { return render(r, false) }
func (r *Rule) String() string { return render(r, true) }

func (r *Rule) render(w *renderer) {
	if !w.enter(r) {
		return
	}
	defer w.leave()
	w.b.WriteString("DLSafeRule(Body(")
	for i, a := range r.body {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		w.object(a)
	}
	w.b.WriteString(") Head(")
	for i, a := range r.head {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		w.object(a)
	}
	w.b.WriteString("))")
}
