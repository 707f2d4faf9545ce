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
	"errors"
	"math/big"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/internal/owltest"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

var (
	iA = owltest.IRI("A")
	iB = owltest.IRI("B")
	iP = owltest.IRI("p")
	iD = owltest.IRI("d")
)

func baseBuilder() *owltest.Builder {
	return owltest.New().
		Declare(terms.OWLClass, "A", "B").
		Declare(terms.OWLObjectProperty, "p").
		Declare(terms.OWLDatatypeProperty, "d")
}

func factoryOf(b *owltest.Builder) *owl.Factory {
	return owl.NewFactory(model.New(b.Graph()), 0)
}

func TestClassExpressionShapes(t *testing.T) {
	b := baseBuilder()
	some := b.Restriction(iP)
	b.Add(some, terms.OWLSomeValuesFrom, iA)
	all := b.Restriction(iP)
	b.Add(all, terms.OWLAllValuesFrom, iB)
	hv := b.Restriction(iP)
	b.Add(hv, terms.OWLHasValue, owltest.IRI("i"))
	self := b.Restriction(iP)
	b.Add(self, terms.OWLHasSelf, quad.TypedString{Value: "true", Type: terms.XSDBoolean})
	exact := b.Restriction(iP)
	b.Add(exact, terms.OWLCardinality, owltest.Int(2))
	minq := b.Restriction(iP)
	b.Add(minq, terms.OWLMinQualifiedCardinality, owltest.Int(1))
	b.Add(minq, terms.OWLOnClass, iA)
	dsome := b.Restriction(iD)
	b.Add(dsome, terms.OWLSomeValuesFrom, terms.XSDString)
	dhv := b.Restriction(iD)
	b.Add(dhv, terms.OWLHasValue, quad.String("x"))
	dmax := b.Restriction(iD)
	b.Add(dmax, terms.OWLMaxCardinality, owltest.Int(3))
	nary := b.BNode()
	b.Type(nary, terms.OWLRestriction)
	b.Add(nary, terms.OWLOnProperties, b.List(iD))
	b.Add(nary, terms.OWLAllValuesFrom, terms.XSDInteger)
	union := b.BNode()
	b.Type(union, terms.OWLClass)
	b.Add(union, terms.OWLUnionOf, b.List(iB, iA, iB))
	oneOf := b.BNode()
	b.Type(oneOf, terms.OWLClass)
	b.Add(oneOf, terms.OWLOneOf, b.List(owltest.IRI("i"), owltest.IRI("j")))
	compl := b.BNode()
	b.Type(compl, terms.OWLClass)
	b.Add(compl, terms.OWLComplementOf, iA)
	f := factoryOf(b)

	var cases = []struct {
		name       string
		node       quad.Value
		kind       owl.Kind
		components int
	}{
		{"some", some, owl.KindObjectSomeValuesFrom, 2},
		{"all", all, owl.KindObjectAllValuesFrom, 2},
		{"has value", hv, owl.KindObjectHasValue, 2},
		{"has self", self, owl.KindObjectHasSelf, 1},
		{"exact", exact, owl.KindObjectExactCardinality, 2},
		{"min qualified", minq, owl.KindObjectMinCardinality, 2},
		{"data some", dsome, owl.KindDataSomeValuesFrom, 2},
		{"data has value", dhv, owl.KindDataHasValue, 2},
		{"data max", dmax, owl.KindDataMaxCardinality, 2},
		{"nary", nary, owl.KindNaryDataAllValuesFrom, 2},
		{"union", union, owl.KindObjectUnionOf, 2},
		{"one of", oneOf, owl.KindObjectOneOf, 2},
		{"complement", compl, owl.KindObjectComplementOf, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k, ok := owl.ClassExpressionKind(f.Model(), c.node)
			require.True(t, ok)
			require.Equal(t, c.kind, k)

			o, err := f.ClassExpression(c.node)
			require.NoError(t, err)
			require.Equal(t, c.kind, o.Kind())
			require.Equal(t, c.node, o.Node())
			require.Len(t, o.Components(), c.components)
		})
	}

	o, err := f.ClassExpression(exact)
	require.NoError(t, err)
	ce := o.(*owl.ClassExpression)
	require.False(t, ce.IsQualified())
	require.Equal(t, owl.Thing.Key(), ce.Filler().Key())

	o, err = f.ClassExpression(minq)
	require.NoError(t, err)
	require.True(t, o.(*owl.ClassExpression).IsQualified())

	o, err = f.ClassExpression(dmax)
	require.NoError(t, err)
	require.Equal(t, owl.RDFSLiteral.Key(), o.(*owl.ClassExpression).Filler().Key())

	o, err = f.ClassExpression(union)
	require.NoError(t, err)
	ops := o.(*owl.ClassExpression).Operands()
	require.Equal(t, []quad.Value{iA, iB}, []quad.Value{ops[0].Node(), ops[1].Node()})
}

func TestCardinalityStoredAsRead(t *testing.T) {
	const huge = "123456789012345678901234567890"
	b := baseBuilder()
	plain := b.Restriction(iP)
	b.Add(plain, terms.OWLMaxCardinality, quad.Int(1))
	big1 := b.Restriction(iP)
	b.Add(big1, terms.OWLCardinality, quad.TypedString{Value: huge, Type: terms.XSDNonNegativeInteger})
	neg := b.Restriction(iP)
	b.Add(neg, terms.OWLMinCardinality, quad.TypedString{Value: "-1", Type: terms.XSDInteger})
	bad := b.Restriction(iP)
	b.Add(bad, terms.OWLMinCardinality, quad.String("many"))
	f := factoryOf(b)

	o, err := f.ClassExpression(plain)
	require.NoError(t, err)
	require.Equal(t, int64(1), o.(*owl.ClassExpression).Cardinality().Int64())

	o, err = f.ClassExpression(big1)
	require.NoError(t, err)
	want, _ := new(big.Int).SetString(huge, 10)
	require.Equal(t, 0, want.Cmp(o.(*owl.ClassExpression).Cardinality()))

	for _, n := range []quad.Value{neg, bad} {
		_, err = f.ClassExpression(n)
		var serr *owl.StructureError
		require.True(t, errors.As(err, &serr), "%v", err)
		require.True(t, errors.Is(err, owl.ErrStructure))
		require.True(t, errors.Is(err, model.ErrIllegalState))
	}
}

func TestCyclicExpression(t *testing.T) {
	b := baseBuilder()
	c := b.BNode()
	b.Type(c, terms.OWLClass)
	b.Add(c, terms.OWLComplementOf, c)
	u := b.BNode()
	b.Type(u, terms.OWLClass)
	b.Add(u, terms.OWLUnionOf, b.List(iA, u))
	f := factoryOf(b)

	o, err := f.ClassExpression(c)
	require.NoError(t, err)
	require.Equal(t, "ObjectComplementOf(^1)", o.Key())
	require.Same(t, o, o.(*owl.ClassExpression).Filler())

	o, err = f.ClassExpression(u)
	require.NoError(t, err)
	require.Contains(t, o.Key(), "^1")
	require.Len(t, owl.Signature(o), 1)
}

func TestKeyIgnoresBlankNodes(t *testing.T) {
	b := baseBuilder()
	r1 := b.Restriction(iP)
	b.Add(r1, terms.OWLSomeValuesFrom, iA)
	r2 := b.Restriction(iP)
	b.Add(r2, terms.OWLSomeValuesFrom, iA)
	f := factoryOf(b)

	o1, err := f.ClassExpression(r1)
	require.NoError(t, err)
	o2, err := f.ClassExpression(r2)
	require.NoError(t, err)
	require.NotEqual(t, o1.Node(), o2.Node())
	require.Equal(t, o1.Key(), o2.Key())

	detached := owl.NewClassExpression(owl.KindObjectSomeValuesFrom,
		owl.NewEntity(owl.KindObjectProperty, iP), owl.NewEntity(owl.KindClass, iA))
	require.Equal(t, o1.Key(), detached.Key())
}

func TestSignature(t *testing.T) {
	b := baseBuilder()
	self := b.Restriction(iP)
	b.Add(self, terms.OWLHasSelf, quad.TypedString{Value: "true", Type: terms.XSDBoolean})
	dhv := b.Restriction(iD)
	b.Add(dhv, terms.OWLHasValue, quad.Int(5))
	f := factoryOf(b)

	o, err := f.ClassExpression(self)
	require.NoError(t, err)
	sig := owl.Signature(o)
	require.Len(t, sig, 1)
	require.Equal(t, iP, sig[0].IRI())
	require.False(t, owl.HasEntity(owl.XSDBoolean, o))

	o, err = f.ClassExpression(dhv)
	require.NoError(t, err)
	require.True(t, owl.HasEntity(owl.NewEntity(owl.KindDatatype, terms.XSDInteger), o))
	require.True(t, owl.HasEntity(owl.NewEntity(owl.KindDataProperty, iD), o))
}

func TestLiteralNormalization(t *testing.T) {
	var cases = []struct {
		in   quad.Value
		lex  string
		dt   quad.IRI
		lang string
		out  quad.Value
	}{
		{quad.String("x"), "x", terms.XSDString, "", quad.String("x")},
		{quad.TypedString{Value: "x", Type: terms.XSDString}, "x", terms.XSDString, "", quad.String("x")},
		{quad.LangString{Value: "x", Lang: "en"}, "x", terms.RDFLangString, "en", quad.LangString{Value: "x", Lang: "en"}},
		{quad.Int(5), "5", terms.XSDInteger, "", quad.TypedString{Value: "5", Type: terms.XSDInteger}},
		{quad.Bool(true), "true", terms.XSDBoolean, "", quad.TypedString{Value: "true", Type: terms.XSDBoolean}},
	}
	for _, c := range cases {
		l, err := owl.NewLiteral(c.in)
		require.NoError(t, err)
		require.Equal(t, c.lex, l.Lexical)
		require.Equal(t, c.dt, l.Datatype)
		require.Equal(t, c.lang, l.Lang)
		require.Equal(t, c.out, l.Value())
	}
	_, err := owl.NewLiteral(iA)
	require.Error(t, err)
}

func TestInverseProperty(t *testing.T) {
	b := baseBuilder()
	inv := b.BNode()
	b.Add(inv, terms.OWLInverseOf, iP)
	f := factoryOf(b)

	o, err := f.ObjectPropertyExpression(inv)
	require.NoError(t, err)
	require.Equal(t, owl.KindInverseObjectProperty, o.Kind())
	require.Equal(t, iP, o.(*owl.InverseProperty).Property().IRI())

	_, err = f.ObjectPropertyExpression(iA)
	require.True(t, errors.Is(err, owl.ErrStructure))
}
