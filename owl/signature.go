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

import "sort"

// Walk calls fn for every object and its components depth-first, visiting each object once.
// Walking stops when fn returns false.
func Walk(fn func(o Object) bool, objs ...Object) {
	seen := make(map[Object]struct{})
	var walk func(o Object) bool
	walk = func(o Object) bool {
		if o == nil {
			return true
		}
		if _, ok := seen[o]; ok {
			return true
		}
		seen[o] = struct{}{}
		if !fn(o) {
			return false
		}
		for _, c := range o.Components() {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for _, o := range objs {
		if !walk(o) {
			return
		}
	}
}

// Signature returns the named entities used by the objects, including the
// datatypes of literals, sorted by key.
func Signature(objs ...Object) []*Entity {
	set := make(map[string]*Entity)
	Walk(func(o Object) bool {
		switch o := o.(type) {
		case *Entity:
			set[o.Key()] = o
		case *Literal:
			dt := o.DatatypeEntity()
			set[dt.Key()] = dt
		}
		return true
	}, objs...)
	out := make([]*Entity, 0, len(set))
	for _, e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// HasEntity reports whether the entity is in the signature of the objects.
func HasEntity(e *Entity, objs ...Object) bool {
	key := e.Key()
	found := false
	Walk(func(o Object) bool {
		switch o := o.(type) {
		case *Entity:
			found = o.Key() == key
		case *Literal:
			found = e.kind == KindDatatype && o.Datatype == e.iri
		}
		return !found
	}, objs...)
	return found
}
