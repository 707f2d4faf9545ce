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
	"fmt"

	"github.com/cayleygraph/quad"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

var (
	mAxiomsRead = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "owlgraph_axioms_read",
		Help: "Number of axioms read, by type.",
	}, []string{"type"})
	mReadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_axioms_read_errors",
		Help: "Number of malformed axioms skipped.",
	})
)

func lookup(t owl.AxiomType) (*translator, error) {
	if tr := Get(t); tr != nil {
		return tr.(*translator), nil
	}
	return nil, fmt.Errorf("%w: unknown axiom type %d", model.ErrIllegalArgument, int(t))
}

// Read reads the axioms of the given type from its main statement. More than
// one axiom is returned when the config splits annotations.
func Read(t owl.AxiomType, s *model.Statement, f *owl.Factory, c Config) ([]*owl.Axiom, error) {
	tr, err := lookup(t)
	if err != nil {
		return nil, err
	}
	if !tr.TestStatement(s, c) {
		return nil, fmt.Errorf("%w: %v is not a %v statement", model.ErrIllegalArgument, s, t)
	}
	return tr.toAxioms(s, f, c)
}

// List returns all axioms of the type. Axioms of non-distinct types that are
// encoded more than once are merged together with their annotations.
func List(t owl.AxiomType, m *model.Model, f *owl.Factory, c Config) ([]*owl.Axiom, error) {
	tr, err := lookup(t)
	if err != nil {
		return nil, err
	}
	var (
		out     []*owl.Axiom
		byKey   = make(map[string]int)
		merging = !owl.MetaOf(t).IsDistinct()
	)
	for _, s := range tr.ListStatements(m, c) {
		axs, err := tr.toAxioms(s, f, c)
		if err != nil {
			if c.IgnoreReadErrors {
				mReadErrors.Inc()
				clog.Warningf("skipping %v: %v", s, err)
				continue
			}
			return nil, err
		}
		for _, ax := range axs {
			if !merging {
				out = append(out, ax)
				continue
			}
			key := ax.LogicalKey()
			if c.SplitAxiomAnnotations {
				key = ax.Key()
			}
			if i, ok := byKey[key]; ok {
				out[i] = out[i].Merge(ax)
				continue
			}
			byKey[key] = len(out)
			out = append(out, ax)
		}
	}
	mAxiomsRead.WithLabelValues(t.String()).Add(float64(len(out)))
	return out, nil
}

// ReadAll returns the axioms of all types in registry order.
func ReadAll(m *model.Model, f *owl.Factory, c Config) ([]*owl.Axiom, error) {
	var out []*owl.Axiom
	for _, t := range owl.AxiomTypes() {
		axs, err := List(t, m, f, c)
		if err != nil {
			return out, err
		}
		out = append(out, axs...)
	}
	return out, nil
}

// Classify returns the translators that accept the statement as a main statement.
func Classify(s *model.Statement, c Config) []Translator {
	var out []Translator
	for _, t := range translators {
		if t.TestStatement(s, c) {
			out = append(out, t)
		}
	}
	if clog.V(2) {
		clog.Infof("%v classified as %d axiom types", s, len(out))
	}
	return out
}

// WriteAll writes the axioms to the model in order.
func WriteAll(m *model.Model, axs ...*owl.Axiom) error {
	for _, ax := range axs {
		tr, err := lookup(ax.Type)
		if err != nil {
			return err
		}
		if err := tr.Write(ax, m); err != nil {
			return fmt.Errorf("cannot write %v: %w", ax, err)
		}
	}
	return nil
}

// list-valued predicates of main statements and axiom roots
var listPredicates = map[quad.Value]struct{}{
	terms.OWLMembers:            {},
	terms.OWLDistinctMembers:    {},
	terms.OWLDisjointUnionOf:    {},
	terms.OWLHasKey:             {},
	terms.OWLPropertyChainAxiom: {},
	terms.SWRLBody:              {},
	terms.SWRLHead:              {},
}

// Remove deletes the main triples of the axiom with its annotations. An axiom
// not read from the model is looked up by its logical key. Expression nodes
// that may be shared with other axioms are kept.
func Remove(m *model.Model, ax *owl.Axiom) error {
	if s := ax.Statement(); s != nil && s.Model() == m {
		return removeStatement(m, s)
	}
	f := owl.NewFactory(m, 0)
	axs, err := List(ax.Type, m, f, DefaultConfig())
	if err != nil {
		return err
	}
	key := ax.LogicalKey()
	for _, a := range axs {
		if a.LogicalKey() != key {
			continue
		}
		if err := removeStatement(m, a.Statement()); err != nil {
			return err
		}
	}
	return nil
}

func removeStatement(m *model.Model, s *model.Statement) error {
	if !s.IsLocal() {
		return nil
	}
	if err := s.ClearAnnotations(); err != nil {
		return err
	}
	var del []quad.Quad
	withLists := func(q quad.Quad) error {
		del = append(del, q)
		if _, ok := listPredicates[q.Predicate]; !ok {
			return nil
		}
		quads, err := graph.ListQuads(m.Graph(), q.Object)
		if err != nil {
			return err
		}
		del = append(del, quads...)
		return nil
	}
	if s.IsMain() {
		for _, q := range m.Find(s.Subject(), nil, nil) {
			if err := withLists(q); err != nil {
				return err
			}
		}
	} else if err := withLists(s.Quad()); err != nil {
		return err
	}
	return m.Remove(del...)
}

// HeaderAnnotations returns the annotations of the ontology header.
func HeaderAnnotations(m *model.Model, f *owl.Factory) ([]*owl.Annotation, error) {
	h, ok := m.Header()
	if !ok {
		return nil, nil
	}
	return f.Annotations(h)
}
