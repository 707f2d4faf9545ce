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

package search_test

import (
	"sort"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/graph/memstore"
	"github.com/cayleygraph/owlgraph/internal/owltest"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
	"github.com/cayleygraph/owlgraph/search"
)

var (
	clsA    = owl.NewEntity(owl.KindClass, owltest.IRI("A"))
	clsB    = owl.NewEntity(owl.KindClass, owltest.IRI("B"))
	clsC    = owl.NewEntity(owl.KindClass, owltest.IRI("C"))
	propP   = owl.NewEntity(owl.KindObjectProperty, owltest.IRI("p"))
	propD   = owl.NewEntity(owl.KindDataProperty, owltest.IRI("d"))
	indI    = owl.NewEntity(owl.KindNamedIndividual, owltest.IRI("i"))
	indJ    = owl.NewEntity(owl.KindNamedIndividual, owltest.IRI("j"))
	label   = owl.NewEntity(owl.KindAnnotationProperty, terms.RDFSLabel)
	comment = owl.NewEntity(owl.KindAnnotationProperty, terms.RDFSComment)
	seeAlso = owl.NewEntity(owl.KindAnnotationProperty, terms.RDFSSeeAlso)

	iriX = owltest.IRI("X")
	anon = quad.BNode("anon")
)

func lit(t testing.TB, v quad.Value) *owl.Literal {
	l, err := owl.NewLiteral(v)
	require.NoError(t, err)
	return l
}

func note(t testing.TB, p *owl.Entity, text string) *owl.Annotation {
	return owl.NewAnnotation(p, lit(t, quad.String(text)))
}

func fixture(t testing.TB) *model.Model {
	some := owl.NewClassExpression(owl.KindObjectSomeValuesFrom, propP, clsB)
	anonI := owl.NewAnonymousIndividual(anon)
	m := model.New(memstore.New())
	err := axioms.WriteAll(m,
		owl.NewAxiom(owl.SubClassOf, []owl.Object{clsA, some}, note(t, comment, "why")),
		owl.NewAxiom(owl.SubClassOf, []owl.Object{clsC, clsA}, note(t, label, "c-a")),
		owl.NewAxiom(owl.DisjointClasses, []owl.Object{clsA, clsB, clsC}, note(t, label, "all")),
		owl.NewAxiom(owl.ClassAssertion, []owl.Object{clsA, indI}),
		owl.NewAxiom(owl.ObjectPropertyAssertion, []owl.Object{propP, indI, indJ}),
		owl.NewAxiom(owl.DataPropertyAssertion, []owl.Object{propD, indI, lit(t, quad.Int(5))}),
		owl.NewAxiom(owl.AnnotationAssertion, []owl.Object{label, owl.IRI(clsA.IRI()), lit(t, quad.String("a"))}),
		owl.NewAxiom(owl.AnnotationAssertion, []owl.Object{seeAlso, owl.IRI(clsB.IRI()), owl.IRI(iriX)}),
		owl.NewAxiom(owl.ClassAssertion, []owl.Object{clsB, anonI}),
		owl.NewAxiom(owl.ObjectPropertyAssertion, []owl.Object{propP, indI, anonI}),
	)
	require.NoError(t, err)
	return m
}

func keys(axs []*owl.Axiom) []string {
	out := make([]string, 0, len(axs))
	for _, a := range axs {
		out = append(out, a.Key())
	}
	sort.Strings(out)
	return out
}

func filter(t testing.TB, m *model.Model, keep func(a *owl.Axiom) bool) []string {
	all, err := axioms.ReadAll(m, owl.NewFactory(m, 0), axioms.DefaultConfig())
	require.NoError(t, err)
	var out []*owl.Axiom
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return keys(out)
}

func TestByEntity(t *testing.T) {
	m := fixture(t)
	s := search.New(m, owl.NewFactory(m, 0), axioms.DefaultConfig())
	for _, e := range []*owl.Entity{clsA, clsB, clsC, propP, propD, indI, indJ, label, comment, seeAlso} {
		t.Run(e.String(), func(t *testing.T) {
			expect := filter(t, m, func(a *owl.Axiom) bool {
				return owl.HasEntity(e, a.Objects()...)
			})
			require.NotEmpty(t, expect)
			got, err := s.ByEntity(e)
			require.NoError(t, err)
			require.Equal(t, expect, keys(got))
		})
	}
}

func TestByEntityCounts(t *testing.T) {
	m := fixture(t)
	s := search.New(m, nil, axioms.DefaultConfig())
	var cases = []struct {
		entity *owl.Entity
		expect int
	}{
		// declaration, two subclass axioms, disjointness and a class assertion
		{clsA, 5},
		{clsC, 3},
		{propP, 4},
		{comment, 1},
	}
	for _, c := range cases {
		got, err := s.ByEntity(c.entity)
		require.NoError(t, err)
		require.Len(t, got, c.expect, "%v", c.entity)
	}
}

func TestByIRI(t *testing.T) {
	m := fixture(t)
	s := search.New(m, nil, axioms.DefaultConfig())
	got, err := s.ByIRI(iriX)
	require.NoError(t, err)
	require.Equal(t, []string{
		owl.NewAxiom(owl.AnnotationAssertion, []owl.Object{seeAlso, owl.IRI(clsB.IRI()), owl.IRI(iriX)}).Key(),
	}, keys(got))

	got, err = s.ByIRI(owltest.IRI("missing"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestByAnonymousIndividual(t *testing.T) {
	m := fixture(t)
	s := search.New(m, nil, axioms.DefaultConfig())
	got, err := s.ByAnonymousIndividual(anon)
	require.NoError(t, err)
	require.Len(t, got, 2)
	types := []owl.AxiomType{got[0].Type, got[1].Type}
	require.ElementsMatch(t, []owl.AxiomType{owl.ClassAssertion, owl.ObjectPropertyAssertion}, types)
}

func TestByComponentType(t *testing.T) {
	m := fixture(t)
	s := search.New(m, nil, axioms.DefaultConfig())
	for _, ct := range owl.ComponentTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			expect := filter(t, m, func(a *owl.Axiom) bool { return a.ContainsComponent(ct) })
			got, err := s.ByComponentType(ct)
			require.NoError(t, err)
			require.Equal(t, expect, keys(got))
		})
	}
}

func TestTranslators(t *testing.T) {
	// annotation components may be anywhere
	require.Len(t, search.Translators(owl.ComponentAnnotationProperty), owl.NumAxiomTypes)
	require.Len(t, search.Translators(owl.ComponentLiteral), owl.NumAxiomTypes)

	types := func(ct owl.ComponentType) map[owl.AxiomType]bool {
		out := make(map[owl.AxiomType]bool)
		for _, tr := range search.Translators(ct) {
			out[tr.Type()] = true
		}
		return out
	}
	dp := types(owl.ComponentDataProperty)
	require.True(t, dp[owl.DataPropertyAssertion])
	require.True(t, dp[owl.SubClassOf])
	require.False(t, dp[owl.SubObjectPropertyOf])
	require.False(t, dp[owl.SameIndividual])

	ind := types(owl.ComponentNamedIndividual)
	require.True(t, ind[owl.SameIndividual])
	require.False(t, ind[owl.FunctionalDataProperty])
}

func TestParseKind(t *testing.T) {
	for _, name := range search.KindNames() {
		k, ok := search.ParseKind(name)
		require.True(t, ok, name)
		require.True(t, k.IsEntity(), name)
	}
	k, ok := search.ParseKind("object")
	require.True(t, ok)
	require.Equal(t, owl.KindObjectProperty, k)
	_, ok = search.ParseKind("restriction")
	require.False(t, ok)
	require.Len(t, search.KindNames(), 6)
}
