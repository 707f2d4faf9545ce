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

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

func init() {
	register(
		declaration,
		equivalentClasses,
		subClassOf,
		disjointClasses,
		disjointUnion,
		hasKey,
		datatypeDefinition,
	)
}

// declared entity kinds by rdf:type
var declarationKinds = map[quad.Value]owl.Kind{
	terms.OWLClass:              owl.KindClass,
	terms.RDFSDatatype:          owl.KindDatatype,
	terms.OWLObjectProperty:     owl.KindObjectProperty,
	terms.OWLDatatypeProperty:   owl.KindDataProperty,
	terms.OWLAnnotationProperty: owl.KindAnnotationProperty,
	terms.OWLNamedIndividual:    owl.KindNamedIndividual,
}

func typePatterns(types ...quad.IRI) []pattern {
	out := make([]pattern, 0, len(types))
	for _, t := range types {
		out = append(out, pattern{p: terms.RDFType, o: t})
	}
	return out
}

var declaration = &translator{
	typ: owl.Declaration,
	patterns: typePatterns(
		terms.OWLClass, terms.RDFSDatatype, terms.OWLObjectProperty,
		terms.OWLDatatypeProperty, terms.OWLAnnotationProperty, terms.OWLNamedIndividual,
	),
	test: func(m *model.Model, q quad.Quad) bool {
		_, ok := declarationKinds[q.Object]
		return ok && graph.IsIRI(q.Subject)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		e, err := f.Entity(declarationKinds[s.Object()], s.Subject())
		if err != nil {
			return nil, err
		}
		return []owl.Object{e}, nil
	},
	arity: exactly(1),
	write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
		ent, ok := ax.Args[0].(*owl.Entity)
		if !ok {
			e.err = &owl.StructureError{Node: ax.Args[0].Node(), Reason: "declaration of a non-entity"}
			return nil
		}
		return []*model.Statement{e.add(ent.IRI(), terms.RDFType, ent.DeclarationType())}
	},
}

func classExpressions(m *model.Model, q quad.Quad) bool {
	return m.IsClassExpression(q.Subject) && m.IsClassExpression(q.Object)
}

func readClassPair(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
	return readPair(s, f.ClassExpression, f.ClassExpression)
}

// writePair writes a symmetric binary axiom as one triple, reusing the reverse triple if present.
func writePair(p quad.IRI) func(e *emitter, ax *owl.Axiom) []*model.Statement {
	return func(e *emitter, ax *owl.Axiom) []*model.Statement {
		s := e.node(ax.Args[0])
		o := e.node(ax.Args[1])
		return []*model.Statement{e.symmetric(s, p, o)}
	}
}

func writeTriple(p quad.IRI) func(e *emitter, ax *owl.Axiom) []*model.Statement {
	return func(e *emitter, ax *owl.Axiom) []*model.Statement {
		s := e.node(ax.Args[0])
		o := e.node(ax.Args[1])
		return []*model.Statement{e.add(s, p, o)}
	}
}

var equivalentClasses = &translator{
	typ:      owl.EquivalentClasses,
	patterns: []pattern{{p: terms.OWLEquivalentClass}},
	test:     classExpressions,
	read:     readClassPair,
	arity:    exactly(2),
	write:    writePair(terms.OWLEquivalentClass),
}

var subClassOf = &translator{
	typ:      owl.SubClassOf,
	patterns: []pattern{{p: terms.RDFSSubClassOf}},
	test:     classExpressions,
	read:     readClassPair,
	arity:    exactly(2),
	write:    writeTriple(terms.RDFSSubClassOf),
}

// disjoint describes an n-ary axiom encoded either pairwise or with a typed root and a members list.
type disjoint struct {
	pairwise quad.IRI
	rootType quad.IRI
	view     func(m *model.Model) func(quad.Value) bool
	reader   func(f *owl.Factory) readFunc
}

func (d disjoint) translator(t owl.AxiomType) *translator {
	return &translator{
		typ:      t,
		patterns: []pattern{{p: d.pairwise}, {p: terms.RDFType, o: d.rootType}},
		test: func(m *model.Model, q quad.Quad) bool {
			ok := d.view(m)
			if q.Predicate == d.pairwise {
				return ok(q.Subject) && ok(q.Object)
			}
			if !graph.IsBNode(q.Subject) {
				return false
			}
			_, isList := listOf(m, q.Subject, terms.OWLMembers, 2, ok)
			return isList
		},
		read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
			if s.Predicate() == d.pairwise {
				return readPair(s, d.reader(f), d.reader(f))
			}
			head, ok := f.Model().Object(s.Subject(), terms.OWLMembers)
			if !ok {
				return nil, &owl.StructureError{Node: s.Subject(), Reason: "no members"}
			}
			return readList(f, head, d.reader(f))
		},
		arity: atLeast(2),
		write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
			if len(ax.Args) == 2 && !(e.bound() && e.ax.Statement().IsMain()) {
				return writePair(d.pairwise)(e, ax)
			}
			root := e.root()
			main := e.add(root, terms.RDFType, d.rootType)
			e.list(root, terms.OWLMembers, ax.Args)
			return []*model.Statement{main}
		},
	}
}

var disjointClasses = disjoint{
	pairwise: terms.OWLDisjointWith,
	rootType: terms.OWLAllDisjointClasses,
	view:     func(m *model.Model) func(quad.Value) bool { return m.IsClassExpression },
	reader:   func(f *owl.Factory) readFunc { return f.ClassExpression },
}.translator(owl.DisjointClasses)

var disjointUnion = &translator{
	typ:      owl.DisjointUnion,
	patterns: []pattern{{p: terms.OWLDisjointUnionOf}},
	test: func(m *model.Model, q quad.Quad) bool {
		if !m.IsClass(q.Subject) {
			return false
		}
		_, ok := listAt(m, q.Object, 2, m.IsClassExpression)
		return ok
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		c, err := f.Class(s.Subject())
		if err != nil {
			return nil, err
		}
		ops, err := readList(f, s.Object(), f.ClassExpression)
		if err != nil {
			return nil, err
		}
		return append([]owl.Object{c}, ops...), nil
	},
	arity: atLeast(3),
	write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
		c := e.node(ax.Args[0])
		return []*model.Statement{e.list(c, terms.OWLDisjointUnionOf, ax.Args[1:])}
	},
}

var hasKey = &translator{
	typ:      owl.HasKey,
	patterns: []pattern{{p: terms.OWLHasKey}},
	test: func(m *model.Model, q quad.Quad) bool {
		if !m.IsClassExpression(q.Subject) {
			return false
		}
		_, ok := listAt(m, q.Object, 1, func(v quad.Value) bool {
			return m.IsObjectPropertyExpression(v) || m.IsDataProperty(v)
		})
		return ok
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		c, err := f.ClassExpression(s.Subject())
		if err != nil {
			return nil, err
		}
		props, err := readList(f, s.Object(), func(v quad.Value) (owl.Object, error) {
			return property(f, v)
		})
		if err != nil {
			return nil, err
		}
		return append([]owl.Object{c}, props...), nil
	},
	arity: atLeast(2),
	write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
		c := e.node(ax.Args[0])
		return []*model.Statement{e.list(c, terms.OWLHasKey, ax.Args[1:])}
	},
}

var datatypeDefinition = &translator{
	typ:      owl.DatatypeDefinition,
	patterns: []pattern{{p: terms.OWLEquivalentClass}},
	test: func(m *model.Model, q quad.Quad) bool {
		return graph.IsIRI(q.Subject) && m.IsDatatype(q.Subject) && m.IsDataRange(q.Object)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		return readPair(s, asObject(f.Datatype), f.DataRange)
	},
	arity: exactly(2),
	write: writeTriple(terms.OWLEquivalentClass),
}
