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

// Package search finds axioms that reference a given entity or component.
package search

import (
	"sort"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

var (
	mStatementsTested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_search_statements_tested",
		Help: "Number of candidate statements tested by searchers.",
	})
	mTranslatorsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_search_translators_skipped",
		Help: "Number of translators excluded by component type.",
	})
	mSearchSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "owlgraph_search_seconds",
		Help: "Duration of searches.",
	}, []string{"by"})
)

// Translators returns the translators of all axiom types that may contain a
// component of the given type, in registry order. Annotation components may
// occur in any axiom; expressions and data ranges may nest any component.
func Translators(ct owl.ComponentType) []axioms.Translator {
	var out []axioms.Translator
	annotated := owl.Header().HasComponent(ct)
	for _, m := range owl.AxiomMetas() {
		if !annotated && !m.HasComponent(ct) &&
			!m.HasComponent(owl.ComponentClassExpression) && !m.HasComponent(owl.ComponentDataRange) {
			continue
		}
		if t := axioms.Get(m.Type()); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Searcher finds axioms in a model.
type Searcher struct {
	m *model.Model
	f *owl.Factory
	c axioms.Config
}

// New creates a searcher. The factory must be bound to the same model.
func New(m *model.Model, f *owl.Factory, c axioms.Config) *Searcher {
	if f == nil {
		f = owl.NewFactory(m, 0)
	}
	return &Searcher{m: m, f: f, c: c}
}

// entity component types by kind
var entityComponents = map[owl.Kind]owl.ComponentType{
	owl.KindClass:              owl.ComponentClass,
	owl.KindDatatype:           owl.ComponentDatatype,
	owl.KindObjectProperty:     owl.ComponentNamedObjectProperty,
	owl.KindDataProperty:       owl.ComponentDataProperty,
	owl.KindAnnotationProperty: owl.ComponentAnnotationProperty,
	owl.KindNamedIndividual:    owl.ComponentNamedIndividual,
}

// kind names accepted by ParseKind
var kindNames = map[string]owl.Kind{
	"class":      owl.KindClass,
	"datatype":   owl.KindDatatype,
	"object":     owl.KindObjectProperty,
	"data":       owl.KindDataProperty,
	"annotation": owl.KindAnnotationProperty,
	"individual": owl.KindNamedIndividual,
}

// ParseKind maps a short entity kind name such as "class" or "object" to its kind.
func ParseKind(name string) (owl.Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// KindNames returns the names accepted by ParseKind.
func KindNames() []string {
	out := make([]string, 0, len(kindNames))
	for n := range kindNames {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ByEntity returns all axioms whose signature contains the entity.
func (s *Searcher) ByEntity(e *owl.Entity) ([]*owl.Axiom, error) {
	defer observe("entity", time.Now())
	return s.search(e.IRI(), Translators(entityComponents[e.Kind()]), func(o owl.Object) bool {
		return owl.HasEntity(e, o)
	})
}

// ByIRI returns the axioms that use the IRI as a plain IRI: annotation
// subjects and values, and annotation property domains and ranges.
func (s *Searcher) ByIRI(iri quad.IRI) ([]*owl.Axiom, error) {
	defer observe("iri", time.Now())
	iri = iri.Full()
	return s.search(iri, Translators(owl.ComponentIRI), func(o owl.Object) bool {
		return contains(o, func(x owl.Object) bool {
			v, ok := x.(owl.IRI)
			return ok && quad.IRI(v) == iri
		})
	})
}

// ByAnonymousIndividual returns the axioms that reference the anonymous individual.
func (s *Searcher) ByAnonymousIndividual(node quad.BNode) ([]*owl.Axiom, error) {
	defer observe("anonymous", time.Now())
	return s.search(node, Translators(owl.ComponentAnonymousIndividual), func(o owl.Object) bool {
		return contains(o, func(x owl.Object) bool {
			a, ok := x.(*owl.AnonymousIndividual)
			return ok && a.Node() == node
		})
	})
}

// ByComponentType returns every axiom that contains a component of the type.
func (s *Searcher) ByComponentType(ct owl.ComponentType) ([]*owl.Axiom, error) {
	defer observe("component", time.Now())
	ts := Translators(ct)
	mTranslatorsSkipped.Add(float64(owl.NumAxiomTypes - len(ts)))
	var out []*owl.Axiom
	for _, t := range ts {
		axs, err := axioms.List(t.Type(), s.m, s.f, s.c)
		if err != nil {
			return out, err
		}
		for _, a := range axs {
			if a.ContainsComponent(ct) {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func observe(by string, start time.Time) {
	mSearchSeconds.WithLabelValues(by).Observe(time.Since(start).Seconds())
}

func contains(o owl.Object, match func(owl.Object) bool) bool {
	found := false
	owl.Walk(func(x owl.Object) bool {
		found = match(x)
		return !found
	}, o)
	return found
}

type readKey struct {
	t owl.AxiomType
	q quad.Quad
}

// search reads the candidate statements of the node with the translators
// and keeps the axioms accepted by the filter.
func (s *Searcher) search(node quad.Value, ts []axioms.Translator, keep func(o owl.Object) bool) ([]*owl.Axiom, error) {
	mTranslatorsSkipped.Add(float64(owl.NumAxiomTypes - len(ts)))
	var (
		out   []*owl.Axiom
		read  = make(map[readKey]struct{})
		byKey = make(map[string]int)
	)
	for _, st := range s.candidates(node) {
		mStatementsTested.Inc()
		for _, t := range ts {
			k := readKey{t: t.Type(), q: st.Quad()}
			if _, ok := read[k]; ok || !t.TestStatement(st, s.c) {
				continue
			}
			read[k] = struct{}{}
			axs, err := axioms.Read(t.Type(), st, s.f, s.c)
			if err != nil {
				if s.c.IgnoreReadErrors {
					clog.Warningf("search: skipping %v: %v", st, err)
					continue
				}
				return nil, err
			}
			for _, a := range axs {
				if !keepAxiom(a, keep) {
					continue
				}
				if a.Meta().IsDistinct() {
					out = append(out, a)
					continue
				}
				key := a.LogicalKey()
				if s.c.SplitAxiomAnnotations {
					key = a.Key()
				}
				if i, ok := byKey[key]; ok {
					out[i] = out[i].Merge(a)
					continue
				}
				byKey[key] = len(out)
				out = append(out, a)
			}
		}
	}
	if clog.V(2) {
		clog.Infof("search %v: %d axioms", node, len(out))
	}
	return out, nil
}

func keepAxiom(a *owl.Axiom, keep func(o owl.Object) bool) bool {
	for _, o := range a.Objects() {
		if keep(o) {
			return true
		}
	}
	return false
}

// candidates returns the local statements with the node as subject and the
// root statements of those that use it as predicate or object.
func (s *Searcher) candidates(node quad.Value) []*model.Statement {
	var (
		out     []*model.Statement
		seen    = make(map[quad.Quad]struct{})
		visited = make(map[quad.Value]struct{})
	)
	add := func(q quad.Quad) {
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		out = append(out, s.m.Statement(q.Subject, q.Predicate, q.Object))
	}
	for _, q := range s.m.Find(node, nil, nil) {
		add(q)
	}
	for _, q := range s.m.Find(nil, node, nil) {
		s.roots(q, visited, add)
	}
	for _, q := range s.m.Find(nil, nil, node) {
		s.roots(q, visited, add)
	}
	return out
}

// roots walks up from the statement through blank nodes until it reaches
// statements with a named subject, or blank nodes nothing refers to. Bulk
// annotation nodes lead to the statement they annotate.
func (s *Searcher) roots(q quad.Quad, visited map[quad.Value]struct{}, add func(quad.Quad)) {
	if !graph.IsBNode(q.Subject) {
		add(q)
		return
	}
	b := q.Subject
	if s.m.IsAnonymousIndividual(b) {
		add(q)
		return
	}
	if _, ok := visited[b]; ok {
		return
	}
	visited[b] = struct{}{}
	if s.m.IsBulkAnnotation(b) {
		src, _ := s.m.Object(b, terms.OWLAnnotatedSource)
		p, _ := s.m.Object(b, terms.OWLAnnotatedProperty)
		o, _ := s.m.Object(b, terms.OWLAnnotatedTarget)
		if src != nil && p != nil && o != nil && s.m.Has(src, p, o) {
			s.roots(quad.Quad{Subject: src, Predicate: p, Object: o}, visited, add)
		}
		return
	}
	parents := s.m.Find(nil, nil, b)
	if len(parents) == 0 {
		for _, c := range s.m.Find(b, nil, nil) {
			add(c)
		}
		return
	}
	for _, pq := range parents {
		s.roots(pq, visited, add)
	}
}
