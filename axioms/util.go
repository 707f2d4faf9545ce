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

package axioms

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

type readFunc func(v quad.Value) (owl.Object, error)

// asObject adapts factory methods returning concrete objects.
func asObject[T owl.Object](fn func(quad.Value) (T, error)) readFunc {
	return func(v quad.Value) (owl.Object, error) {
		o, err := fn(v)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// readPair reads the subject and object of the statement.
func readPair(s *model.Statement, rs, ro readFunc) ([]owl.Object, error) {
	a, err := rs(s.Subject())
	if err != nil {
		return nil, err
	}
	b, err := ro(s.Object())
	if err != nil {
		return nil, err
	}
	return []owl.Object{a, b}, nil
}

// readList reads every item of the list starting at head.
func readList(f *owl.Factory, head quad.Value, read readFunc) ([]owl.Object, error) {
	items, err := f.Model().List(head)
	if err != nil {
		return nil, &owl.StructureError{Node: head, Reason: err.Error()}
	}
	out := make([]owl.Object, 0, len(items))
	for _, it := range items {
		o, err := read(it)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// listOf returns the items of the single list value of (s, p) when every item passes the test.
func listOf(m *model.Model, s, p quad.Value, min int, test func(quad.Value) bool) ([]quad.Value, bool) {
	heads := m.Objects(s, p)
	if len(heads) != 1 {
		return nil, false
	}
	return listAt(m, heads[0], min, test)
}

// listAt returns the items of the list starting at head when every item passes the test.
func listAt(m *model.Model, head quad.Value, min int, test func(quad.Value) bool) ([]quad.Value, bool) {
	items, err := m.List(head)
	if err != nil || len(items) < min {
		return nil, false
	}
	for _, it := range items {
		if !test(it) {
			return nil, false
		}
	}
	return items, true
}

// property returns the data property or object property expression reader for the node.
func property(f *owl.Factory, v quad.Value) (owl.Object, error) {
	if f.Model().IsDataProperty(v) {
		return f.DataProperty(v)
	}
	return f.ObjectPropertyExpression(v)
}
