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

package model_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/owltest"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
)

var (
	iA = owltest.IRI("A")
	iB = owltest.IRI("B")
)

func allQuads(t testing.TB, g graph.Graph) []quad.Quad {
	quads, err := graph.Collect(g.Find(nil, nil, nil))
	require.NoError(t, err)
	sort.Sort(quad.ByQuadString(quads))
	return quads
}

func subClassModel() (*model.Model, *model.Statement) {
	b := owltest.New().Declare(terms.OWLClass, "A", "B")
	b.Add(iA, terms.RDFSSubClassOf, iB)
	m := model.New(b.Graph())
	return m, m.Statement(iA, terms.RDFSSubClassOf, iB)
}

func TestViews(t *testing.T) {
	b := owltest.New().
		Declare(terms.OWLClass, "C").
		Declare(terms.OWLObjectProperty, "op").
		Declare(terms.OWLTransitiveProperty, "tp").
		Declare(terms.OWLDatatypeProperty, "dp").
		Declare(terms.OWLAnnotationProperty, "ap").
		Declare(terms.RDFSDatatype, "dt")
	inv := b.BNode()
	b.Add(inv, terms.OWLInverseOf, owltest.IRI("op"))
	r := b.Restriction(owltest.IRI("op"))
	b.Add(r, terms.OWLSomeValuesFrom, owltest.IRI("C"))
	anon := b.BNode()
	b.Type(anon, owltest.IRI("C"))
	m := model.New(b.Graph())

	var cases = []struct {
		name string
		view func(quad.Value) bool
		v    quad.Value
		want bool
	}{
		{"class", m.IsClass, owltest.IRI("C"), true},
		{"thing", m.IsClass, terms.OWLThing, true},
		{"not class", m.IsClass, owltest.IRI("op"), false},
		{"datatype", m.IsDatatype, owltest.IRI("dt"), true},
		{"builtin datatype", m.IsDatatype, terms.XSDString, true},
		{"object property", m.IsObjectProperty, owltest.IRI("op"), true},
		{"transitive property", m.IsObjectProperty, owltest.IRI("tp"), true},
		{"inverse", m.IsObjectPropertyExpression, inv, true},
		{"inverse is not named", m.IsObjectProperty, inv, false},
		{"data property", m.IsDataProperty, owltest.IRI("dp"), true},
		{"annotation property", m.IsAnnotationProperty, owltest.IRI("ap"), true},
		{"label", m.IsAnnotationProperty, terms.RDFSLabel, true},
		{"named individual", m.IsNamedIndividual, owltest.IRI("x"), true},
		{"reserved iri", m.IsNamedIndividual, terms.OWLThing, false},
		{"anonymous individual", m.IsAnonymousIndividual, anon, true},
		{"restriction is not individual", m.IsAnonymousIndividual, r, false},
		{"restriction", m.IsClassExpression, r, true},
		{"literal is not individual", m.IsIndividual, quad.String("x"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.view(c.v))
		})
	}
}

func TestLabelAndCommentShareBulkNode(t *testing.T) {
	m, st := subClassModel()
	_, err := st.AddAnnotation(terms.RDFSLabel, quad.String("x"))
	require.NoError(t, err)
	_, err = st.AddAnnotation(terms.RDFSComment, quad.String("y"))
	require.NoError(t, err)

	res := st.AnnotationResourceList()
	require.Len(t, res, 1)
	require.True(t, res[0].IsAxiom())
	require.Len(t, m.Subjects(terms.RDFType, terms.OWLAxiom), 1)

	anns := st.AnnotationList()
	require.Len(t, anns, 2)
	require.Equal(t, terms.RDFSComment, anns[0].Predicate())
	require.Equal(t, terms.RDFSLabel, anns[1].Predicate())
	require.True(t, st.HasAnnotations())
}

func TestDeleteAndReAdd(t *testing.T) {
	m, st := subClassModel()
	before := allQuads(t, m.Graph())

	_, err := st.AddAnnotation(terms.RDFSLabel, quad.String("x"))
	require.NoError(t, err)
	annotated := allQuads(t, m.Graph())

	require.NoError(t, st.DeleteAnnotation(terms.RDFSLabel, quad.String("x")))
	require.Equal(t, before, allQuads(t, m.Graph()))
	require.False(t, st.HasAnnotations())

	_, err = st.AddAnnotation(terms.RDFSLabel, quad.String("x"))
	require.NoError(t, err)
	require.Equal(t, annotated, allQuads(t, m.Graph()))

	// absent annotation
	require.NoError(t, st.DeleteAnnotation(terms.RDFSLabel, quad.String("none")))
	require.Equal(t, annotated, allQuads(t, m.Graph()))
}

func TestCascadeDelete(t *testing.T) {
	_, st := subClassModel()
	a, err := st.AddAnnotation(terms.RDFSLabel, quad.String("x"))
	require.NoError(t, err)
	require.False(t, a.IsMain())
	require.True(t, a.BelongsToAnnotation())
	_, err = a.AddAnnotation(terms.RDFSComment, quad.String("nested"))
	require.NoError(t, err)

	sub, ok := a.AsAnnotationResource()
	require.True(t, ok)
	require.False(t, sub.IsAxiom())

	err = st.DeleteAnnotation(terms.RDFSLabel, quad.String("x"))
	var cerr *model.CascadeError
	require.True(t, errors.As(err, &cerr))
	require.True(t, errors.Is(err, model.ErrIllegalState))
	require.Equal(t, a.Quad(), cerr.Annotation)
}

func TestClearAnnotations(t *testing.T) {
	m, st := subClassModel()
	before := allQuads(t, m.Graph())

	a, err := st.AddAnnotation(terms.RDFSLabel, quad.String("x"))
	require.NoError(t, err)
	_, err = a.AddAnnotation(terms.RDFSComment, quad.String("nested"))
	require.NoError(t, err)
	_, err = st.AddAnnotation(terms.RDFSComment, quad.String("y"))
	require.NoError(t, err)

	require.NoError(t, st.ClearAnnotations())
	require.Equal(t, before, allQuads(t, m.Graph()))
	require.NoError(t, st.ClearAnnotations())
	require.Equal(t, before, allQuads(t, m.Graph()))
}

func TestDeleteAnnotations(t *testing.T) {
	_, st := subClassModel()
	for _, v := range []string{"a", "b"} {
		_, err := st.AddAnnotation(terms.RDFSLabel, quad.String(v))
		require.NoError(t, err)
	}
	_, err := st.AddAnnotation(terms.RDFSComment, quad.String("c"))
	require.NoError(t, err)

	require.NoError(t, st.DeleteAnnotations(terms.RDFSLabel))
	anns := st.Annotations()
	require.Len(t, anns, 1)
	require.Equal(t, terms.RDFSComment, anns[0].Predicate())
}

func TestMainStatementAnnotations(t *testing.T) {
	ont := owltest.IRI("")
	b := owltest.New().Type(ont, terms.OWLOntology)
	m := model.New(b.Graph())

	h, ok := m.Header()
	require.True(t, ok)
	require.True(t, h.IsMain())

	_, err := h.AddAnnotation(terms.RDFSLabel, quad.String("onto"))
	require.NoError(t, err)
	require.True(t, m.Has(ont, terms.RDFSLabel, quad.String("onto")))
	require.Empty(t, m.Subjects(terms.RDFType, terms.OWLAxiom))
	require.Len(t, h.Annotations(), 1)

	require.NoError(t, h.DeleteAnnotation(terms.RDFSLabel, quad.String("onto")))
	require.False(t, h.HasAnnotations())
	require.True(t, h.IsLocal())
}

func TestAddAnnotationErrors(t *testing.T) {
	m, st := subClassModel()

	_, err := st.AddAnnotation("", quad.String("x"))
	require.True(t, errors.Is(err, model.ErrIllegalArgument))
	_, err = st.AddAnnotation(terms.RDFSLabel, nil)
	require.True(t, errors.Is(err, model.ErrIllegalArgument))
	_, err = st.AddAnnotation(owltest.IRI("notDeclared"), quad.String("x"))
	require.True(t, errors.Is(err, model.ErrIllegalArgument))

	missing := m.Statement(iB, terms.RDFSSubClassOf, iA)
	_, err = missing.AddAnnotation(terms.RDFSLabel, quad.String("x"))
	require.True(t, errors.Is(err, model.ErrIllegalState))
}

func TestSetID(t *testing.T) {
	old := owltest.IRI("")
	b := owltest.New().Type(old, terms.OWLOntology)
	b.Add(old, terms.RDFSLabel, quad.String("onto"))
	m := model.New(b.Graph())

	id := quad.IRI("http://example.com/other")
	require.NoError(t, m.SetID(id))
	got, ok := m.ID()
	require.True(t, ok)
	require.Equal(t, quad.Value(id), got)
	require.True(t, m.Has(id, terms.RDFSLabel, quad.String("onto")))
	require.False(t, m.Has(old, nil, nil))

	require.True(t, errors.Is(m.SetID(quad.String("x")), model.ErrIllegalArgument))
}

// findCounter counts full scans of blank nodes.
type findCounter struct {
	graph.Graph
	scans int
}

func (g *findCounter) Find(s, p, o quad.Value) graph.Iterator {
	if graph.IsBNode(s) && p == nil && o == nil {
		g.scans++
	}
	return g.Graph.Find(s, p, o)
}

func TestHasAnnotationsStopsAtFirstMatch(t *testing.T) {
	b := owltest.New().Declare(terms.OWLClass, "A", "B")
	b.Add(iA, terms.RDFSSubClassOf, iB)
	for i := 0; i < 3; i++ {
		n := b.BNode()
		b.Type(n, terms.OWLAxiom)
		b.Add(n, terms.OWLAnnotatedSource, iA)
		b.Add(n, terms.OWLAnnotatedProperty, terms.RDFSSubClassOf)
		b.Add(n, terms.OWLAnnotatedTarget, iB)
		b.Add(n, terms.RDFSLabel, quad.String("x"))
	}
	g := &findCounter{Graph: b.Graph()}
	m := model.New(g)
	st := m.Statement(iA, terms.RDFSSubClassOf, iB)

	require.True(t, st.HasAnnotations())
	require.Equal(t, 1, g.scans)

	g.scans = 0
	require.Len(t, st.AnnotationResources(), 3)
	require.Equal(t, 0, g.scans)
}
