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

package axioms_test

import (
	"math/big"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/graph/memstore"
	"github.com/cayleygraph/owlgraph/internal/owltest"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
)

var (
	clsA  = owl.NewEntity(owl.KindClass, owltest.IRI("A"))
	clsB  = owl.NewEntity(owl.KindClass, owltest.IRI("B"))
	clsC  = owl.NewEntity(owl.KindClass, owltest.IRI("C"))
	propP = owl.NewEntity(owl.KindObjectProperty, owltest.IRI("p"))
	propQ = owl.NewEntity(owl.KindObjectProperty, owltest.IRI("q"))
	propR = owl.NewEntity(owl.KindObjectProperty, owltest.IRI("r"))
	propD = owl.NewEntity(owl.KindDataProperty, owltest.IRI("d"))
	propE = owl.NewEntity(owl.KindDataProperty, owltest.IRI("e"))
	apX   = owl.NewEntity(owl.KindAnnotationProperty, owltest.IRI("x"))
	apY   = owl.NewEntity(owl.KindAnnotationProperty, owltest.IRI("y"))
	indI  = owl.NewEntity(owl.KindNamedIndividual, owltest.IRI("i"))
	indJ  = owl.NewEntity(owl.KindNamedIndividual, owltest.IRI("j"))
	indK  = owl.NewEntity(owl.KindNamedIndividual, owltest.IRI("k"))
	dtT   = owl.NewEntity(owl.KindDatatype, owltest.IRI("T"))

	label   = owl.NewEntity(owl.KindAnnotationProperty, terms.RDFSLabel)
	comment = owl.NewEntity(owl.KindAnnotationProperty, terms.RDFSComment)
	integer = owl.NewEntity(owl.KindDatatype, terms.XSDInteger)
)

func literal(t testing.TB, v quad.Value) *owl.Literal {
	l, err := owl.NewLiteral(v)
	require.NoError(t, err)
	return l
}

func ax(typ owl.AxiomType, args ...owl.Object) *owl.Axiom {
	return owl.NewAxiom(typ, args)
}

// sampleAxioms returns one axiom of every type.
func sampleAxioms(t testing.TB) []*owl.Axiom {
	x := owl.NewVariable(owltest.IRI("vx"))
	rule := owl.NewRule(
		[]*owl.Atom{owl.NewAtom(owl.KindClassAtom, clsA, x)},
		[]*owl.Atom{owl.NewAtom(owl.KindClassAtom, clsB, x)},
	)
	some := owl.NewClassExpression(owl.KindObjectSomeValuesFrom, propP, clsB)
	return []*owl.Axiom{
		ax(owl.Declaration, clsA),
		ax(owl.EquivalentClasses, clsA, clsB),
		ax(owl.SubClassOf, clsA, some),
		ax(owl.DisjointClasses, clsA, clsB, clsC),
		ax(owl.DisjointUnion, clsA, clsB, clsC),
		ax(owl.ClassAssertion, clsA, indI),
		ax(owl.SameIndividual, indI, indJ),
		ax(owl.DifferentIndividuals, indI, indJ, indK),
		ax(owl.ObjectPropertyAssertion, propP, indI, indJ),
		ax(owl.NegativeObjectPropertyAssertion, propP, indI, indK),
		ax(owl.DataPropertyAssertion, propD, indI, literal(t, quad.Int(5))),
		ax(owl.NegativeDataPropertyAssertion, propD, indJ, literal(t, quad.String("no"))),
		ax(owl.EquivalentObjectProperties, propP, propQ),
		ax(owl.SubObjectPropertyOf, propP, propQ),
		ax(owl.InverseObjectProperties, propP, propR),
		ax(owl.FunctionalObjectProperty, propP),
		ax(owl.InverseFunctionalObjectProperty, propQ),
		ax(owl.SymmetricObjectProperty, propQ),
		ax(owl.AsymmetricObjectProperty, propR),
		ax(owl.TransitiveObjectProperty, owl.NewInverseProperty(nil, propP)),
		ax(owl.ReflexiveObjectProperty, propQ),
		ax(owl.IrreflexiveObjectProperty, propR),
		ax(owl.ObjectPropertyDomain, propP, clsA),
		ax(owl.ObjectPropertyRange, propP, some),
		ax(owl.DisjointObjectProperties, propQ, propR),
		ax(owl.SubPropertyChainOf, propR, propP, propQ),
		ax(owl.EquivalentDataProperties, propD, propE),
		ax(owl.SubDataPropertyOf, propD, propE),
		ax(owl.FunctionalDataProperty, propD),
		ax(owl.DataPropertyDomain, propD, clsA),
		ax(owl.DataPropertyRange, propD, integer),
		ax(owl.DisjointDataProperties, propD, propE),
		ax(owl.HasKey, clsA, propP, propD),
		ax(owl.SWRLRule, rule),
		ax(owl.AnnotationAssertion, label, owl.IRI(owltest.IRI("A")), literal(t, quad.String("A class"))),
		ax(owl.SubAnnotationPropertyOf, apX, apY),
		ax(owl.AnnotationPropertyRange, apX, owl.IRI(owltest.IRI("B"))),
		ax(owl.AnnotationPropertyDomain, apX, owl.IRI(owltest.IRI("A"))),
		ax(owl.DatatypeDefinition, dtT, owl.NewDataRange(owl.KindDataComplementOf, integer)),
	}
}

func TestRegistry(t *testing.T) {
	all := axioms.All()
	require.Len(t, all, owl.NumAxiomTypes)
	for i, tr := range all {
		require.NotNil(t, tr, "%v", owl.AxiomType(i))
		require.Equal(t, owl.AxiomType(i), tr.Type())
		require.Equal(t, tr, axioms.Get(owl.AxiomType(i)))
	}
	require.Nil(t, axioms.Get(-1))
	require.Nil(t, axioms.Get(owl.AxiomType(owl.NumAxiomTypes)))
	require.Len(t, sampleAxioms(t), owl.NumAxiomTypes)
}

func TestRoundTrip(t *testing.T) {
	note := owl.NewAnnotation(comment, literal(t, quad.String("note")))
	for _, a := range sampleAxioms(t) {
		a := owl.NewAxiom(a.Type, a.Args, note)
		t.Run(a.Type.String(), func(t *testing.T) {
			m := model.New(memstore.New())
			require.NoError(t, axioms.WriteAll(m, a))
			size := m.Graph().Size()
			require.NoError(t, axioms.WriteAll(m, a))
			require.Equal(t, size, m.Graph().Size(), "write is not idempotent")

			got, err := axioms.List(a.Type, m, owl.NewFactory(m, 0), axioms.DefaultConfig())
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, a.Key(), got[0].Key())
			require.NotNil(t, got[0].Statement())
		})
	}
}

func TestBinaryAxiomsRejectMoreOperands(t *testing.T) {
	for _, a := range []*owl.Axiom{
		ax(owl.EquivalentClasses, clsA, clsB, clsC),
		ax(owl.SameIndividual, indI, indJ, indK),
		ax(owl.EquivalentObjectProperties, propP, propQ, propR),
		ax(owl.InverseObjectProperties, propP, propQ, propR),
		ax(owl.EquivalentDataProperties, propD, propE, owl.NewEntity(owl.KindDataProperty, owltest.IRI("f"))),
	} {
		t.Run(a.Type.String(), func(t *testing.T) {
			m := model.New(memstore.New())
			require.ErrorIs(t, axioms.WriteAll(m, a), model.ErrIllegalArgument)
			require.Zero(t, m.Graph().Size())
		})
	}
}

func TestListsShareOwner(t *testing.T) {
	some := owl.NewClassExpression(owl.KindObjectSomeValuesFrom, propP, clsB)
	var cases = []struct {
		name string
		axs  []*owl.Axiom
	}{
		{"property chains", []*owl.Axiom{
			ax(owl.SubPropertyChainOf, propR, propP, propQ),
			ax(owl.SubPropertyChainOf, propR, propQ, propP),
		}},
		{"keys", []*owl.Axiom{
			ax(owl.HasKey, clsA, propP),
			ax(owl.HasKey, clsA, propD),
		}},
		{"disjoint unions", []*owl.Axiom{
			ax(owl.DisjointUnion, clsA, clsB, clsC),
			ax(owl.DisjointUnion, clsA, clsB, some),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := model.New(memstore.New())
			require.NoError(t, axioms.WriteAll(m, c.axs...))
			typ := c.axs[0].Type
			got, err := axioms.List(typ, m, owl.NewFactory(m, 0), axioms.DefaultConfig())
			require.NoError(t, err)
			require.Len(t, got, len(c.axs))
			var exp, keys []string
			for i := range c.axs {
				exp = append(exp, c.axs[i].Key())
				keys = append(keys, got[i].Key())
			}
			require.ElementsMatch(t, exp, keys)
		})
	}
}

func TestListTestAgreement(t *testing.T) {
	b := owltest.New()
	b.Declare(terms.OWLNamedIndividual, "i", "j", "k")
	diff := b.BNode()
	b.Type(diff, terms.OWLAllDifferent).
		Add(diff, terms.OWLDistinctMembers, b.List(owltest.IRI("i"), owltest.IRI("k")))
	b.Declare(terms.OWLClass, "A", "B").
		Add(owltest.IRI("A"), terms.OWLDisjointWith, owltest.IRI("B"))
	m := model.New(b.Graph())
	require.NoError(t, axioms.WriteAll(m, sampleAxioms(t)...))

	all := m.Statements(nil, nil, nil)
	c := axioms.DefaultConfig()
	for _, tr := range axioms.All() {
		t.Run(tr.Type().String(), func(t *testing.T) {
			listed := tr.ListStatements(m, c)
			require.NotEmpty(t, listed)
			in := make(map[quad.Quad]bool)
			for _, s := range listed {
				require.True(t, tr.TestStatement(s, c), "%v", s)
				in[s.Quad()] = true
			}
			for _, s := range all {
				if tr.TestStatement(s, c) {
					require.True(t, in[s.Quad()], "%v passes the test but is not listed", s)
				}
			}
		})
	}
}

func TestNonDistinctEncodings(t *testing.T) {
	a, b := owltest.IRI("A"), owltest.IRI("B")
	g := owltest.New()
	g.Declare(terms.OWLClass, "A", "B").
		Add(a, terms.OWLDisjointWith, b).
		Add(b, terms.OWLDisjointWith, a)
	root := g.BNode()
	g.Type(root, terms.OWLAllDisjointClasses).
		Add(root, terms.OWLMembers, g.List(b, a)).
		Add(root, terms.RDFSComment, quad.String("root"))
	m := model.New(g.Graph())
	_, err := m.Statement(a, terms.OWLDisjointWith, b).AddAnnotation(terms.RDFSLabel, quad.String("pair"))
	require.NoError(t, err)

	got, err := axioms.List(owl.DisjointClasses, m, owl.NewFactory(m, 0), axioms.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, ax(owl.DisjointClasses, clsA, clsB).Key(), got[0].WithoutAnnotations().Key())
	require.Len(t, got[0].Annotations, 2)

	// distinct kinds are never merged
	g = owltest.New()
	g.Declare(terms.OWLClass, "A", "B").Add(a, terms.RDFSSubClassOf, b)
	m = model.New(g.Graph())
	require.NoError(t, axioms.WriteAll(m, ax(owl.SubClassOf, clsA, clsB)))
	got, err = axioms.List(owl.SubClassOf, m, owl.NewFactory(m, 0), axioms.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDifferentIndividualsMembers(t *testing.T) {
	i, j, k, l := owltest.IRI("i"), owltest.IRI("j"), owltest.IRI("k"), owltest.IRI("l")
	var cases = []struct {
		name     string
		members  []quad.Value
		distinct []quad.Value
		expect   []owl.Object
	}{
		{"members", []quad.Value{i, j}, nil, []owl.Object{indI, indJ}},
		{"distinct members", nil, []quad.Value{j, k}, []owl.Object{indJ, indK}},
		{"longer wins", []quad.Value{i, j}, []quad.Value{i, j, k}, []owl.Object{indI, indJ, indK}},
		{"tie goes to members", []quad.Value{i, j}, []quad.Value{k, l}, []owl.Object{indI, indJ}},
		{"longer list of non-individuals", []quad.Value{i, quad.String("x"), k}, []quad.Value{j, k}, []owl.Object{indJ, indK}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := owltest.New()
			root := b.BNode()
			b.Type(root, terms.OWLAllDifferent)
			if c.members != nil {
				b.Add(root, terms.OWLMembers, b.List(c.members...))
			}
			if c.distinct != nil {
				b.Add(root, terms.OWLDistinctMembers, b.List(c.distinct...))
			}
			m := model.New(b.Graph())
			got, err := axioms.List(owl.DifferentIndividuals, m, owl.NewFactory(m, 0), axioms.DefaultConfig())
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, ax(owl.DifferentIndividuals, c.expect...).Key(), got[0].Key())
		})
	}

	b := owltest.New()
	root := b.BNode()
	b.Type(root, terms.OWLAllDifferent)
	m := model.New(b.Graph())
	tr := axioms.Get(owl.DifferentIndividuals)
	s := m.Statement(root, terms.RDFType, terms.OWLAllDifferent)
	require.False(t, tr.TestStatement(s, axioms.DefaultConfig()))
	_, err := tr.ToAxiom(s, owl.NewFactory(m, 0), axioms.DefaultConfig())
	require.ErrorIs(t, err, owl.ErrStructure)
}

func TestPropertyViews(t *testing.T) {
	b := owltest.New()
	b.Declare(terms.OWLObjectProperty, "p").
		Declare(terms.OWLDatatypeProperty, "d").
		Declare(terms.OWLAnnotationProperty, "x").
		Declare(terms.OWLClass, "A").
		Add(owltest.IRI("p"), terms.RDFSRange, owltest.IRI("A")).
		Add(owltest.IRI("d"), terms.RDFSRange, terms.XSDInteger).
		Add(owltest.IRI("x"), terms.RDFSRange, owltest.IRI("A")).
		Type(owltest.IRI("p"), terms.OWLFunctionalProperty).
		Type(owltest.IRI("d"), terms.OWLFunctionalProperty)
	m := model.New(b.Graph())
	f := owl.NewFactory(m, 0)

	var cases = []struct {
		expect *owl.Axiom
	}{
		{ax(owl.ObjectPropertyRange, propP, clsA)},
		{ax(owl.DataPropertyRange, propD, integer)},
		{ax(owl.AnnotationPropertyRange, apX, owl.IRI(owltest.IRI("A")))},
		{ax(owl.FunctionalObjectProperty, propP)},
		{ax(owl.FunctionalDataProperty, propD)},
	}
	for _, c := range cases {
		t.Run(c.expect.Type.String(), func(t *testing.T) {
			got, err := axioms.List(c.expect.Type, m, f, axioms.DefaultConfig())
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.Equal(t, c.expect.Key(), got[0].Key())
		})
	}
}

func splitFixture() *model.Model {
	a, b := owltest.IRI("A"), owltest.IRI("B")
	g := owltest.New()
	g.Declare(terms.OWLClass, "A", "B").Add(a, terms.RDFSSubClassOf, b)
	for _, text := range []string{"one", "two"} {
		n := g.BNode()
		g.Type(n, terms.OWLAxiom).
			Add(n, terms.OWLAnnotatedSource, a).
			Add(n, terms.OWLAnnotatedProperty, terms.RDFSSubClassOf).
			Add(n, terms.OWLAnnotatedTarget, b).
			Add(n, terms.RDFSLabel, quad.String(text))
	}
	return model.New(g.Graph())
}

func TestSplitAxiomAnnotations(t *testing.T) {
	m := splitFixture()
	f := owl.NewFactory(m, 0)
	c := axioms.DefaultConfig()
	got, err := axioms.List(owl.SubClassOf, m, f, c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Annotations, 2)

	c.SplitAxiomAnnotations = true
	got, err = axioms.List(owl.SubClassOf, m, f, c)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		require.Len(t, a.Annotations, 1)
		require.Equal(t, ax(owl.SubClassOf, clsA, clsB).Key(), a.WithoutAnnotations().Key())
	}
}

func TestIgnoreReadErrors(t *testing.T) {
	a := owltest.IRI("A")
	b := owltest.New()
	b.Declare(terms.OWLClass, "A", "B").
		Declare(terms.OWLObjectProperty, "p").
		Add(a, terms.RDFSSubClassOf, owltest.IRI("B"))
	r := b.Restriction(owltest.IRI("p"))
	b.Add(r, terms.OWLCardinality, quad.TypedString{Value: "-1", Type: terms.XSDNonNegativeInteger}).
		Add(a, terms.RDFSSubClassOf, r)
	m := model.New(b.Graph())
	f := owl.NewFactory(m, 0)

	c := axioms.DefaultConfig()
	_, err := axioms.List(owl.SubClassOf, m, f, c)
	require.ErrorIs(t, err, owl.ErrStructure)

	c.IgnoreReadErrors = true
	got, err := axioms.List(owl.SubClassOf, m, f, c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, ax(owl.SubClassOf, clsA, clsB).Key(), got[0].Key())
}

func TestLoadAnnotationAxioms(t *testing.T) {
	b := owltest.New()
	b.Declare(terms.OWLClass, "A", "B").
		Add(owltest.IRI("A"), terms.RDFSSubClassOf, owltest.IRI("B")).
		Add(owltest.IRI("A"), terms.RDFSLabel, quad.String("a"))
	m := model.New(b.Graph())
	f := owl.NewFactory(m, 0)
	count := func(c axioms.Config) map[owl.AxiomType]int {
		all, err := axioms.ReadAll(m, f, c)
		require.NoError(t, err)
		out := make(map[owl.AxiomType]int)
		for _, a := range all {
			out[a.Type]++
		}
		return out
	}

	c := axioms.DefaultConfig()
	require.Equal(t, map[owl.AxiomType]int{
		owl.Declaration:         2,
		owl.SubClassOf:          1,
		owl.AnnotationAssertion: 1,
	}, count(c))

	c.LoadAnnotationAxioms = false
	require.Equal(t, map[owl.AxiomType]int{
		owl.Declaration: 2,
		owl.SubClassOf:  1,
	}, count(c))
}

func TestBulkDeclarations(t *testing.T) {
	m := model.New(memstore.New())
	d := owl.NewAxiom(owl.Declaration, []owl.Object{clsA},
		owl.NewAnnotation(label, literal(t, quad.String("A"))))
	require.NoError(t, axioms.WriteAll(m, d))

	c := axioms.DefaultConfig()
	got, err := axioms.List(owl.Declaration, m, owl.NewFactory(m, 0), c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Annotations, 1)

	c.AllowBulkDeclarations = false
	got, err = axioms.List(owl.Declaration, m, owl.NewFactory(m, 0), c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Empty(t, got[0].Annotations)
}

func TestRemove(t *testing.T) {
	note := owl.NewAnnotation(label, literal(t, quad.String("note")))
	var cases = []*owl.Axiom{
		owl.NewAxiom(owl.SubClassOf, []owl.Object{clsA, clsB}, note),
		owl.NewAxiom(owl.DisjointClasses, []owl.Object{clsA, clsB, clsC}, note),
		owl.NewAxiom(owl.HasKey, []owl.Object{clsA, propP, propD}, note),
	}
	for _, a := range cases {
		t.Run(a.Type.String(), func(t *testing.T) {
			m := model.New(memstore.New())
			require.NoError(t, axioms.WriteAll(m, a))
			f := owl.NewFactory(m, 0)
			got, err := axioms.List(a.Type, m, f, axioms.DefaultConfig())
			require.NoError(t, err)
			require.Len(t, got, 1)

			require.NoError(t, axioms.Remove(m, got[0]))
			got, err = axioms.List(a.Type, m, owl.NewFactory(m, 0), axioms.DefaultConfig())
			require.NoError(t, err)
			require.Empty(t, got)
			require.False(t, m.Has(nil, terms.RDFFirst, nil))
			require.False(t, m.Has(nil, terms.OWLAnnotatedSource, nil))
			require.False(t, m.Has(nil, terms.RDFSLabel, nil))
			require.True(t, m.IsClass(clsA.IRI()))
		})
	}

	m := model.New(memstore.New())
	a := ax(owl.SubClassOf, clsA, clsB)
	require.NoError(t, axioms.WriteAll(m, a))
	require.NoError(t, axioms.Remove(m, a))
	require.False(t, m.Has(clsA.IRI(), terms.RDFSSubClassOf, clsB.IRI()))
}

func TestClassify(t *testing.T) {
	b := owltest.New()
	b.Declare(terms.OWLClass, "A", "B").
		Declare(terms.RDFSDatatype, "T").
		Add(owltest.IRI("A"), terms.OWLEquivalentClass, owltest.IRI("B"))
	dr := b.BNode()
	b.Type(dr, terms.RDFSDatatype).
		Add(dr, terms.OWLDatatypeComplementOf, terms.XSDInteger).
		Add(owltest.IRI("T"), terms.OWLEquivalentClass, dr)
	m := model.New(b.Graph())
	c := axioms.DefaultConfig()

	types := func(s *model.Statement) []owl.AxiomType {
		var out []owl.AxiomType
		for _, tr := range axioms.Classify(s, c) {
			out = append(out, tr.Type())
		}
		return out
	}
	require.Equal(t, []owl.AxiomType{owl.EquivalentClasses},
		types(m.Statement(owltest.IRI("A"), terms.OWLEquivalentClass, owltest.IRI("B"))))
	require.Equal(t, []owl.AxiomType{owl.DatatypeDefinition},
		types(m.Statement(owltest.IRI("T"), terms.OWLEquivalentClass, dr)))
	require.Equal(t, []owl.AxiomType{owl.Declaration},
		types(m.Statement(owltest.IRI("A"), terms.RDFType, terms.OWLClass)))

	_, err := axioms.Read(owl.SubClassOf,
		m.Statement(owltest.IRI("A"), terms.OWLEquivalentClass, owltest.IRI("B")), owl.NewFactory(m, 0), c)
	require.ErrorIs(t, err, model.ErrIllegalArgument)
}

func TestWriteErrors(t *testing.T) {
	m := model.New(memstore.New())
	tr := axioms.Get(owl.SubClassOf)
	require.ErrorIs(t, tr.Write(ax(owl.EquivalentClasses, clsA, clsB), m), model.ErrIllegalArgument)
	require.ErrorIs(t, tr.Write(ax(owl.SubClassOf, clsA), m), model.ErrIllegalArgument)
	require.ErrorIs(t, axioms.Get(owl.Declaration).Write(
		ax(owl.Declaration, owl.NewCardinality(owl.KindObjectMinCardinality, propP, big.NewInt(1), nil)), m),
		owl.ErrStructure)
	require.Zero(t, m.Graph().Size())
}

func TestHeaderAnnotations(t *testing.T) {
	onto := quad.IRI("http://example.com/onto")
	b := owltest.New()
	b.Type(onto, terms.OWLOntology).
		Add(onto, terms.RDFSLabel, quad.String("ontology")).
		Add(onto, terms.OWLVersionInfo, quad.String("1.0"))
	m := model.New(b.Graph())
	f := owl.NewFactory(m, 0)

	anns, err := axioms.HeaderAnnotations(m, f)
	require.NoError(t, err)
	require.Len(t, anns, 2)

	got, err := axioms.List(owl.AnnotationAssertion, m, f, axioms.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, got)
}
