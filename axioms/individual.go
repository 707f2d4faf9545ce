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

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

func init() {
	register(
		classAssertion,
		sameIndividual,
		differentIndividuals,
		objectPropertyAssertion,
		negativeObjectPropertyAssertion,
		dataPropertyAssertion,
		negativeDataPropertyAssertion,
	)
}

var classAssertion = &translator{
	typ:      owl.ClassAssertion,
	patterns: []pattern{{p: terms.RDFType}},
	test: func(m *model.Model, q quad.Quad) bool {
		return m.IsClassExpression(q.Object) && m.IsIndividual(q.Subject)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		args, err := readPair(s, f.Individual, f.ClassExpression)
		if err != nil {
			return nil, err
		}
		return []owl.Object{args[1], args[0]}, nil
	},
	arity: exactly(2),
	write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
		c := e.node(ax.Args[0])
		i := e.node(ax.Args[1])
		return []*model.Statement{e.add(i, terms.RDFType, c)}
	},
}

var sameIndividual = &translator{
	typ:      owl.SameIndividual,
	patterns: []pattern{{p: terms.OWLSameAs}},
	test: func(m *model.Model, q quad.Quad) bool {
		return m.IsIndividual(q.Subject) && m.IsIndividual(q.Object)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		return readPair(s, f.Individual, f.Individual)
	},
	arity: exactly(2),
	write: writePair(terms.OWLSameAs),
}

var differentIndividuals = func() *translator {
	t := disjoint{
		pairwise: terms.OWLDifferentFrom,
		rootType: terms.OWLAllDifferent,
		view:     func(m *model.Model) func(quad.Value) bool { return m.IsIndividual },
		reader:   func(f *owl.Factory) readFunc { return f.Individual },
	}.translator(owl.DifferentIndividuals)
	t.test = func(m *model.Model, q quad.Quad) bool {
		if q.Predicate == terms.OWLDifferentFrom {
			return m.IsIndividual(q.Subject) && m.IsIndividual(q.Object)
		}
		if !graph.IsBNode(q.Subject) {
			return false
		}
		_, members := listOf(m, q.Subject, terms.OWLMembers, 2, m.IsIndividual)
		_, distinct := listOf(m, q.Subject, terms.OWLDistinctMembers, 2, m.IsIndividual)
		return members || distinct
	}
	t.read = func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		if s.Predicate() == terms.OWLDifferentFrom {
			return readPair(s, f.Individual, f.Individual)
		}
		head, err := differentMembers(f.Model(), s.Subject())
		if err != nil {
			return nil, err
		}
		return readList(f, head, f.Individual)
	}
	return t
}()

// differentMembers picks the members list of an owl:AllDifferent node among
// the owl:members and owl:distinctMembers lists whose items are individuals.
// If both are valid the longer list wins, and owl:members wins a tie.
func differentMembers(m *model.Model, root quad.Value) (quad.Value, error) {
	var (
		best  quad.Value
		size  = -1
		found int
	)
	for _, p := range []quad.IRI{terms.OWLMembers, terms.OWLDistinctMembers} {
		items, ok := listOf(m, root, p, 2, m.IsIndividual)
		if !ok {
			continue
		}
		found++
		if len(items) > size {
			best, _ = m.Object(root, p)
			size = len(items)
		}
	}
	if found > 1 {
		clog.Warningf("%v has both owl:members and owl:distinctMembers", root)
	}
	if best == nil {
		return nil, &owl.StructureError{Node: root, Reason: "owl:AllDifferent without a members list of individuals"}
	}
	return best, nil
}

var objectPropertyAssertion = &translator{
	typ:        owl.ObjectPropertyAssertion,
	predicates: (*model.Model).ObjectProperties,
	test: func(m *model.Model, q quad.Quad) bool {
		return m.IsObjectProperty(q.Predicate) && m.IsIndividual(q.Subject) && m.IsIndividual(q.Object)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		p, err := f.ObjectProperty(s.Predicate())
		if err != nil {
			return nil, err
		}
		args, err := readPair(s, f.Individual, f.Individual)
		if err != nil {
			return nil, err
		}
		return append([]owl.Object{p}, args...), nil
	},
	arity: exactly(3),
	write: writeAssertion,
}

var dataPropertyAssertion = &translator{
	typ:        owl.DataPropertyAssertion,
	predicates: (*model.Model).DataProperties,
	test: func(m *model.Model, q quad.Quad) bool {
		return m.IsDataProperty(q.Predicate) && m.IsIndividual(q.Subject) && graph.IsLiteral(q.Object)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		p, err := f.DataProperty(s.Predicate())
		if err != nil {
			return nil, err
		}
		args, err := readPair(s, f.Individual, asObject(f.Literal))
		if err != nil {
			return nil, err
		}
		return append([]owl.Object{p}, args...), nil
	},
	arity: exactly(3),
	write: writeAssertion,
}

// writeAssertion writes (source, property, target) where the property is named.
func writeAssertion(e *emitter, ax *owl.Axiom) []*model.Statement {
	p := e.node(ax.Args[0])
	s := e.node(ax.Args[1])
	o := e.node(ax.Args[2])
	return []*model.Statement{e.add(s, p, o)}
}

// negative describes a negative property assertion variant.
type negative struct {
	target     quad.IRI
	isProperty func(m *model.Model, v quad.Value) bool
	readProp   func(f *owl.Factory, v quad.Value) (owl.Object, error)
	isTarget   func(m *model.Model, v quad.Value) bool
	readTarget func(f *owl.Factory, v quad.Value) (owl.Object, error)
}

func (n negative) translator(t owl.AxiomType) *translator {
	return &translator{
		typ:      t,
		patterns: typePatterns(terms.OWLNegativePropertyAssertion),
		test: func(m *model.Model, q quad.Quad) bool {
			if !graph.IsBNode(q.Subject) {
				return false
			}
			one := func(p quad.IRI, ok func(quad.Value) bool) bool {
				vals := m.Objects(q.Subject, p)
				return len(vals) == 1 && ok(vals[0])
			}
			return one(terms.OWLSourceIndividual, m.IsIndividual) &&
				one(terms.OWLAssertionProperty, func(v quad.Value) bool { return n.isProperty(m, v) }) &&
				one(n.target, func(v quad.Value) bool { return n.isTarget(m, v) })
		},
		read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
			m := f.Model()
			root := s.Subject()
			src, _ := m.Object(root, terms.OWLSourceIndividual)
			prop, _ := m.Object(root, terms.OWLAssertionProperty)
			target, _ := m.Object(root, n.target)
			p, err := n.readProp(f, prop)
			if err != nil {
				return nil, err
			}
			i, err := f.Individual(src)
			if err != nil {
				return nil, err
			}
			o, err := n.readTarget(f, target)
			if err != nil {
				return nil, err
			}
			return []owl.Object{p, i, o}, nil
		},
		arity: exactly(3),
		write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
			root := e.root()
			main := e.add(root, terms.RDFType, terms.OWLNegativePropertyAssertion)
			e.add(root, terms.OWLAssertionProperty, e.node(ax.Args[0]))
			e.add(root, terms.OWLSourceIndividual, e.node(ax.Args[1]))
			e.add(root, n.target, e.node(ax.Args[2]))
			return []*model.Statement{main}
		},
	}
}

var negativeObjectPropertyAssertion = negative{
	target:     terms.OWLTargetIndividual,
	isProperty: (*model.Model).IsObjectPropertyExpression,
	readProp: func(f *owl.Factory, v quad.Value) (owl.Object, error) {
		return f.ObjectPropertyExpression(v)
	},
	isTarget: (*model.Model).IsIndividual,
	readTarget: func(f *owl.Factory, v quad.Value) (owl.Object, error) {
		return f.Individual(v)
	},
}.translator(owl.NegativeObjectPropertyAssertion)

var negativeDataPropertyAssertion = negative{
	target:     terms.OWLTargetValue,
	isProperty: (*model.Model).IsDataProperty,
	readProp: func(f *owl.Factory, v quad.Value) (owl.Object, error) {
		return f.DataProperty(v)
	},
	isTarget: func(_ *model.Model, v quad.Value) bool { return graph.IsLiteral(v) },
	readTarget: func(f *owl.Factory, v quad.Value) (owl.Object, error) {
		return f.Literal(v)
	},
}.translator(owl.NegativeDataPropertyAssertion)
