// Copyright 2014 The Cayley Authors. All rights reserved.
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

// Package graph defines the triple graph boundary consumed by the OWL model.
package graph

import (
	"fmt"
	"reflect"

	"github.com/cayleygraph/quad"
)

// Graph is a mutable set of RDF triples.
//
// Quad labels are not part of the triple identity; stores drop them on write.
type Graph interface {
	// Find returns all triples matching the pattern. A nil value matches anything.
	Find(s, p, o quad.Value) Iterator
	// Contains reports whether the triple is in the graph.
	Contains(q quad.Quad) bool
	// AddQuads adds triples to the graph. Existing triples are ignored.
	AddQuads(quads ...quad.Quad) error
	// RemoveQuads removes triples from the graph. Missing triples are ignored.
	RemoveQuads(quads ...quad.Quad) error
	// Size returns the number of triples in the graph.
	Size() int64
	Close() error
}

// Iterator iterates over triples returned by Graph.Find.
type Iterator interface {
	Next() bool
	Quad() quad.Quad
	Err() error
	Close() error
}

// Triple builds a label-less quad.
func Triple(s, p, o quad.Value) quad.Quad {
	return quad.Quad{Subject: s, Predicate: p, Object: o}
}

// Matches checks if the triple matches a pattern with nil wildcards.
func Matches(q quad.Quad, s, p, o quad.Value) bool {
	return (s == nil || q.Subject == s) &&
		(p == nil || q.Predicate == p) &&
		(o == nil || q.Object == o)
}

// Collect drains the iterator and closes it.
func Collect(it Iterator) ([]quad.Quad, error) {
	defer it.Close()
	var out []quad.Quad
	for it.Next() {
		out = append(out, it.Quad())
	}
	return out, it.Err()
}

// NewSliceIterator returns an iterator over a fixed set of triples.
func NewSliceIterator(quads []quad.Quad) Iterator {
	return &sliceIterator{quads: quads, i: -1}
}

// NewErrorIterator returns an empty iterator that fails with err.
func NewErrorIterator(err error) Iterator {
	return &sliceIterator{err: err}
}

type sliceIterator struct {
	quads []quad.Quad
	i     int
	err   error
}

func (it *sliceIterator) Next() bool {
	if it.err != nil || it.i+1 >= len(it.quads) {
		return false
	}
	it.i++
	return true
}

func (it *sliceIterator) Quad() quad.Quad {
	if it.i < 0 || it.i >= len(it.quads) {
		return quad.Quad{}
	}
	return it.quads[it.i]
}

func (it *sliceIterator) Err() error { return it.err }

func (it *sliceIterator) Close() error {
	it.i = len(it.quads)
	return nil
}

// Options are store-specific settings from the configuration file.
type Options map[string]interface{}

var (
	typeInt = reflect.TypeOf(int(0))
)

func (d Options) IntKey(key string, def int) (int, error) {
	if val, ok := d[key]; ok {
		if reflect.TypeOf(val).ConvertibleTo(typeInt) {
			i := reflect.ValueOf(val).Convert(typeInt).Int()
			return int(i), nil
		}

		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}
	return def, nil
}

func (d Options) StringKey(key string, def string) (string, error) {
	if val, ok := d[key]; ok {
		if v, ok := val.(string); ok {
			return v, nil
		}

		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}

	return def, nil
}

func (d Options) BoolKey(key string, def bool) (bool, error) {
	if val, ok := d[key]; ok {
		if v, ok := val.(bool); ok {
			return v, nil
		}

		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}

	return def, nil
}
