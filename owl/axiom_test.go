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

package owl_test

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/owl"
)

func label(s string) *owl.Annotation {
	l, _ := owl.NewLiteral(quad.String(s))
	return owl.NewAnnotation(owl.NewEntity(owl.KindAnnotationProperty, terms.RDFSLabel), l)
}

func TestAxiomNormalization(t *testing.T) {
	a := owl.NewEntity(owl.KindClass, iA)
	b := owl.NewEntity(owl.KindClass, iB)

	ax1 := owl.NewAxiom(owl.EquivalentClasses, []owl.Object{b, a, a})
	ax2 := owl.NewAxiom(owl.EquivalentClasses, []owl.Object{a, b})
	require.Len(t, ax1.Args, 2)
	require.True(t, ax1.Equal(ax2))

	sub1 := owl.NewAxiom(owl.SubClassOf, []owl.Object{b, a})
	sub2 := owl.NewAxiom(owl.SubClassOf, []owl.Object{a, b})
	require.False(t, sub1.Equal(sub2))

	du := owl.NewAxiom(owl.DisjointUnion, []owl.Object{b, b, a})
	require.Equal(t, b.Key(), du.Args[0].Key())
	require.Len(t, du.Args, 3)
}

func TestAxiomAnnotations(t *testing.T) {
	a := owl.NewEntity(owl.KindClass, iA)
	b := owl.NewEntity(owl.KindClass, iB)

	plain := owl.NewAxiom(owl.SubClassOf, []owl.Object{a, b})
	x := owl.NewAxiom(owl.SubClassOf, []owl.Object{a, b}, label("x"))
	y := owl.NewAxiom(owl.SubClassOf, []owl.Object{a, b}, label("y"), label("y"))
	require.Len(t, y.Annotations, 1)
	require.False(t, x.Equal(plain))
	require.Equal(t, x.LogicalKey(), plain.LogicalKey())
	require.True(t, x.WithoutAnnotations().Equal(plain))

	merged := x.Merge(y)
	require.Len(t, merged.Annotations, 2)
	require.Len(t, x.Annotations, 1)

	erased := merged.Erase()
	require.Nil(t, erased.Statement())
	require.True(t, erased.Equal(merged))

	sig := x.Signature()
	require.Len(t, sig, 4) // A, B, rdfs:label, xsd:string
	require.True(t, x.ContainsComponent(owl.ComponentAnnotationProperty))
	require.True(t, x.ContainsComponent(owl.ComponentLiteral))
	require.False(t, plain.ContainsComponent(owl.ComponentLiteral))
	require.False(t, plain.ContainsComponent(owl.ComponentIndividual))
}

func TestAxiomString(t *testing.T) {
	a := owl.NewEntity(owl.KindClass, terms.OWLThing)
	ax := owl.NewAxiom(owl.Declaration, []owl.Object{a})
	require.Equal(t, "Declaration(Class(owl:Thing))", ax.String())
	require.Equal(t, "Declaration(Class(<http://www.w3.org/2002/07/owl#Thing>))", ax.Key())
}
