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

// Package axioms translates OWL axioms to and from graph triples, one
// translator per axiom type.
package axioms

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

// Config controls how axioms are read.
type Config struct {
	// LoadAnnotationAxioms enables annotation assertions and annotation property axioms.
	LoadAnnotationAxioms bool `json:"load_annotation_axioms"`
	// SplitAxiomAnnotations reads one axiom per bulk annotation object.
	SplitAxiomAnnotations bool `json:"split_axiom_annotations"`
	// IgnoreReadErrors logs and skips malformed axioms instead of failing.
	IgnoreReadErrors bool `json:"ignore_read_errors"`
	// AllowBulkDeclarations reads annotations of declarations.
	AllowBulkDeclarations bool `json:"allow_bulk_declarations"`
}

// DefaultConfig returns the default read configuration.
func DefaultConfig() Config {
	return Config{
		LoadAnnotationAxioms:  true,
		AllowBulkDeclarations: true,
	}
}

// Lister finds the main statements of an axiom type.
type Lister interface {
	ListStatements(m *model.Model, c Config) []*model.Statement
}

// Reader tests and reads main statements.
type Reader interface {
	TestStatement(s *model.Statement, c Config) bool
	ToAxiom(s *model.Statement, f *owl.Factory, c Config) (*owl.Axiom, error)
}

// Writer writes axioms as triples.
type Writer interface {
	Write(ax *owl.Axiom, m *model.Model) error
}

// Translator reads and writes axioms of one type.
type Translator interface {
	Type() owl.AxiomType
	Lister
	Reader
	Writer
}

// pattern is a triple pattern of main statements. Nil values match anything.
type pattern struct {
	p, o quad.Value
}

// translator is the common Translator implementation driven by per-type functions.
type translator struct {
	typ owl.AxiomType
	// patterns of candidate main triples
	patterns []pattern
	// predicates lists candidate predicates when they are not fixed
	predicates func(m *model.Model) []quad.Value
	// annotation axioms are gated by Config.LoadAnnotationAxioms
	annotationAxiom bool

	test  func(m *model.Model, q quad.Quad) bool
	read  func(f *owl.Factory, s *model.Statement) ([]owl.Object, error)
	write func(e *emitter, ax *owl.Axiom) []*model.Statement
	arity func(n int) bool
}

func (t *translator) Type() owl.AxiomType { return t.typ }

func (t *translator) String() string { return t.typ.String() + "Translator" }

func (t *translator) enabled(c Config) bool {
	return !t.annotationAxiom || c.LoadAnnotationAxioms
}

// ListStatements returns the main statements of all axioms of the type.
func (t *translator) ListStatements(m *model.Model, c Config) []*model.Statement {
	if !t.enabled(c) {
		return nil
	}
	var (
		out  []*model.Statement
		seen = make(map[quad.Quad]struct{})
	)
	collect := func(p, o quad.Value) {
		for _, s := range m.Statements(nil, p, o) {
			q := s.Quad()
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			if t.test(m, q) {
				out = append(out, s)
			}
		}
	}
	if t.predicates != nil {
		for _, p := range t.predicates(m) {
			collect(p, nil)
		}
	}
	for _, pt := range t.patterns {
		collect(pt.p, pt.o)
	}
	return out
}

func (t *translator) matches(q quad.Quad) bool {
	if t.predicates != nil {
		return true
	}
	for _, pt := range t.patterns {
		if (pt.p == nil || pt.p == q.Predicate) && (pt.o == nil || pt.o == q.Object) {
			return true
		}
	}
	return false
}

// TestStatement reports whether the statement is the main statement of an axiom of the type.
func (t *translator) TestStatement(s *model.Statement, c Config) bool {
	if !t.enabled(c) {
		return false
	}
	q := s.Quad()
	return t.matches(q) && t.test(s.Model(), q)
}

// ToAxiom reads the axiom with all annotations of the statement.
func (t *translator) ToAxiom(s *model.Statement, f *owl.Factory, c Config) (*owl.Axiom, error) {
	args, err := t.read(f, s)
	if err != nil {
		return nil, fmt.Errorf("cannot read %v from %v: %w", t.typ, s, err)
	}
	var anns []*owl.Annotation
	if t.typ != owl.Declaration || c.AllowBulkDeclarations {
		if anns, err = f.Annotations(s); err != nil {
			return nil, fmt.Errorf("cannot read annotations of %v: %w", s, err)
		}
	}
	if clog.V(3) {
		clog.Infof("read %v from %v", t.typ, s)
	}
	return owl.NewAxiom(t.typ, args, anns...).Bind(s), nil
}

// toAxioms reads one axiom per bulk annotation object of the statement.
func (t *translator) toAxioms(s *model.Statement, f *owl.Factory, c Config) ([]*owl.Axiom, error) {
	res := s.AnnotationResourceList()
	if !c.SplitAxiomAnnotations || len(res) < 2 || s.IsMain() {
		ax, err := t.ToAxiom(s, f, c)
		if err != nil {
			return nil, err
		}
		return []*owl.Axiom{ax}, nil
	}
	args, err := t.read(f, s)
	if err != nil {
		return nil, fmt.Errorf("cannot read %v from %v: %w", t.typ, s, err)
	}
	out := make([]*owl.Axiom, 0, len(res))
	for _, r := range res {
		anns, err := f.ResourceAnnotations(r)
		if err != nil {
			return nil, err
		}
		out = append(out, owl.NewAxiom(t.typ, args, anns...).Bind(s))
	}
	return out, nil
}

// Write writes the axiom and its annotations. Writing an axiom that is already
// in the graph adds nothing.
func (t *translator) Write(ax *owl.Axiom, m *model.Model) error {
	if ax.Type != t.typ {
		return fmt.Errorf("%w: %v translator cannot write %v", model.ErrIllegalArgument, t.typ, ax.Type)
	} else if t.arity != nil && !t.arity(len(ax.Args)) {
		return fmt.Errorf("%w: %v with %d arguments", model.ErrIllegalArgument, t.typ, len(ax.Args))
	}
	for _, a := range ax.Args {
		if a == nil {
			return fmt.Errorf("%w: nil argument of %v", model.ErrIllegalArgument, t.typ)
		}
	}
	e := &emitter{m: m, w: owl.NewWriter(m), ax: ax}
	mains := t.write(e, ax)
	if e.err != nil {
		return e.err
	}
	for _, s := range mains {
		if err := addAnnotations(s, ax.Annotations); err != nil {
			return err
		}
	}
	return nil
}

func addAnnotations(s *model.Statement, anns []*owl.Annotation) error {
	for _, a := range anns {
		v := a.Value.Node()
		as, err := s.AddAnnotation(a.Property.IRI(), v)
		if err != nil {
			return fmt.Errorf("cannot annotate %v: %w", s, err)
		}
		if err := addAnnotations(as, a.Annotations); err != nil {
			return err
		}
	}
	return nil
}

// emitter writes the triples of one axiom and keeps the first error.
type emitter struct {
	m   *model.Model
	w   *owl.Writer
	ax  *owl.Axiom
	err error
}

func (e *emitter) node(o owl.Object) quad.Value {
	if e.err != nil {
		return nil
	}
	v, err := e.w.Write(o)
	e.err = err
	return v
}

func (e *emitter) add(s, p, o quad.Value) *model.Statement {
	if e.err == nil {
		e.err = e.m.Add(graph.Triple(s, p, o))
	}
	return e.m.Statement(s, p, o)
}

// symmetric adds (s, p, o) unless (o, p, s) is already there.
func (e *emitter) symmetric(s, p, o quad.Value) *model.Statement {
	if !e.m.Has(s, p, o) && e.m.Has(o, p, s) {
		return e.m.Statement(o, p, s)
	}
	return e.add(s, p, o)
}

// list writes the objects as the list value of (owner, p) and returns the main statement.
func (e *emitter) list(owner quad.Value, p quad.IRI, objs []owl.Object) *model.Statement {
	if e.err != nil {
		return e.m.Statement(owner, p, graph.Nil())
	}
	head, err := e.w.WriteList(owner, p, objs)
	if err != nil {
		e.err = err
		return e.m.Statement(owner, p, graph.Nil())
	}
	return e.m.Statement(owner, p, head)
}

// bound reports whether the axiom was read from the model it is written to.
func (e *emitter) bound() bool {
	s := e.ax.Statement()
	return s != nil && s.Model() == e.m
}

// root returns the blank node of an axiom written as a typed root node.
func (e *emitter) root() quad.Value {
	if e.bound() && e.ax.Statement().IsMain() {
		return e.ax.Statement().Subject()
	}
	return quad.BNode("ax" + owl.Hash(e.ax.LogicalKey()))
}

// registry in axiom type order
var translators [owl.NumAxiomTypes]*translator

func register(ts ...*translator) {
	for _, t := range ts {
		if translators[t.typ] != nil {
			panic(fmt.Sprintf("axioms: translator for %v registered twice", t.typ))
		}
		translators[t.typ] = t
	}
}

// Get returns the translator of the axiom type.
func Get(t owl.AxiomType) Translator {
	if t < 0 || int(t) >= len(translators) || translators[t] == nil {
		return nil
	}
	return translators[t]
}

// All returns the translators of all axiom types in registry order.
func All() []Translator {
	out := make([]Translator, 0, len(translators))
	for _, t := range translators {
		out = append(out, t)
	}
	return out
}

func exactly(n int) func(int) bool { return func(k int) bool { return k == n } }
func atLeast(n int) func(int) bool { return func(k int) bool { return k >= n } }
