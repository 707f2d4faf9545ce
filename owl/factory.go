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

package owl

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/lru"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
)

var (
	mCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_factory_cache_hits",
		Help: "Number of objects served from the factory cache.",
	})
	mCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "owlgraph_factory_cache_miss",
		Help: "Number of objects built from the graph.",
	})
)

// DefaultCacheSize is the number of objects a factory caches when no size is given.
const DefaultCacheSize = 4096

// Factory reads OWL objects from a model. Built objects are cached by node,
// and nodes that are reached again while being built resolve to the partially
// built object, so cyclic definitions terminate.
//
// A Factory is not safe for concurrent use. Call Reset after the graph changes.
type Factory struct {
	m        *model.Model
	cache    *lru.Cache[string, Object]
	building map[string]Object
}

// NewFactory creates a factory over the model.
func NewFactory(m *model.Model, cacheSize int) *Factory {
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	return &Factory{
		m:        m,
		cache:    lru.New[string, Object](cacheSize),
		building: make(map[string]Object),
	}
}

// Model returns the underlying model.
func (f *Factory) Model() *model.Model { return f.m }

// Reset drops all cached objects.
func (f *Factory) Reset() { f.cache.Purge() }

func cacheKey(group string, v quad.Value) string {
	return group + "|" + v.String()
}

// lookup returns a cached or in-progress object.
func (f *Factory) lookup(key string) (Object, bool) {
	if o, ok := f.cache.Get(key); ok {
		mCacheHit.Inc()
		return o, true
	}
	if o, ok := f.building[key]; ok {
		return o, true
	}
	mCacheMiss.Inc()
	return nil, false
}

// one returns the only object of (v, p, ?).
func (f *Factory) one(v quad.Value, p quad.IRI) (quad.Value, error) {
	objs := f.m.Objects(v, p)
	if len(objs) != 1 {
		return nil, structureErr(v, "expected one value of %v, got %d", p, len(objs))
	}
	return objs[0], nil
}

func (f *Factory) list(head quad.Value) ([]quad.Value, error) {
	items, err := f.m.List(head)
	if err != nil {
		return nil, structureErr(head, "%v", err)
	}
	return items, nil
}

// Entity returns the entity of the given kind, checking the node is viewable as that kind.
func (f *Factory) Entity(kind Kind, v quad.Value) (*Entity, error) {
	var ok bool
	switch kind {
	case KindClass:
		ok = f.m.IsClass(v)
	case KindDatatype:
		ok = f.m.IsDatatype(v)
	case KindObjectProperty:
		ok = f.m.IsObjectProperty(v)
	case KindDataProperty:
		ok = f.m.IsDataProperty(v)
	case KindAnnotationProperty:
		ok = f.m.IsAnnotationProperty(v)
	case KindNamedIndividual:
		ok = f.m.IsNamedIndividual(v)
	default:
		return nil, structureErr(v, "%v is not an entity kind", kind)
	}
	if !ok {
		return nil, structureErr(v, "not a %v", kind)
	}
	return NewEntity(kind, v.(quad.IRI)), nil
}

func (f *Factory) Class(v quad.Value) (*Entity, error)    { return f.Entity(KindClass, v) }
func (f *Factory) Datatype(v quad.Value) (*Entity, error) { return f.Entity(KindDatatype, v) }
func (f *Factory) ObjectProperty(v quad.Value) (*Entity, error) {
	return f.Entity(KindObjectProperty, v)
}
func (f *Factory) DataProperty(v quad.Value) (*Entity, error) {
	return f.Entity(KindDataProperty, v)
}
func (f *Factory) AnnotationProperty(v quad.Value) (*Entity, error) {
	return f.Entity(KindAnnotationProperty, v)
}
func (f *Factory) NamedIndividual(v quad.Value) (*Entity, error) {
	return f.Entity(KindNamedIndividual, v)
}

// ObjectPropertyExpression returns a named object property or an inverse property expression.
func (f *Factory) ObjectPropertyExpression(v quad.Value) (Object, error) {
	if graph.IsIRI(v) {
		return f.ObjectProperty(v)
	}
	key := cacheKey("ope", v)
	if o, ok := f.lookup(key); ok {
		return o, nil
	}
	p, ok := f.m.InverseOf(v)
	if !ok {
		return nil, structureErr(v, "not an object property expression")
	}
	e, err := f.ObjectProperty(p)
	if err != nil {
		return nil, err
	}
	inv := NewInverseProperty(v, e)
	f.cache.Put(key, inv)
	return inv, nil
}

// Individual returns a named or anonymous individual.
func (f *Factory) Individual(v quad.Value) (Object, error) {
	if graph.IsIRI(v) {
		return f.NamedIndividual(v)
	}
	if b, ok := v.(quad.BNode); ok && f.m.IsAnonymousIndividual(v) {
		return NewAnonymousIndividual(b), nil
	}
	return nil, structureErr(v, "not an individual")
}

// Literal returns the normalized literal.
func (f *Factory) Literal(v quad.Value) (*Literal, error) {
	return NewLiteral(v)
}

// AnnotationValue returns an IRI, anonymous individual or literal.
func (f *Factory) AnnotationValue(v quad.Value) (Object, error) {
	switch v := v.(type) {
	case quad.IRI:
		return IRI(v.Full()), nil
	case quad.BNode:
		return NewAnonymousIndividual(v), nil
	}
	return NewLiteral(v)
}

// AnnotationSubject returns an IRI or anonymous individual.
func (f *Factory) AnnotationSubject(v quad.Value) (Object, error) {
	if graph.IsLiteral(v) || v == nil {
		return nil, structureErr(v, "not an annotation subject")
	}
	return f.AnnotationValue(v)
}

// Annotations reads the annotations of the statement with their nested annotations.
func (f *Factory) Annotations(s *model.Statement) ([]*Annotation, error) {
	return f.annotations(s.AnnotationList(), make(map[quad.Quad]struct{}))
}

// ResourceAnnotations reads the annotations held by one bulk annotation object.
func (f *Factory) ResourceAnnotations(res *model.Annotation) ([]*Annotation, error) {
	return f.annotations(res.Assertions(), make(map[quad.Quad]struct{}))
}

func (f *Factory) annotations(stmts []*model.Statement, seen map[quad.Quad]struct{}) ([]*Annotation, error) {
	var out []*Annotation
	for _, s := range stmts {
		if _, ok := seen[s.Quad()]; ok {
			continue
		}
		seen[s.Quad()] = struct{}{}
		p, err := f.AnnotationProperty(s.Predicate())
		if err != nil {
			if clog.V(2) {
				clog.Infof("skipping non-annotation triple %v: %v", s, err)
			}
			continue
		}
		v, err := f.AnnotationValue(s.Object())
		if err != nil {
			return nil, err
		}
		nested, err := f.annotations(s.AnnotationList(), seen)
		if err != nil {
			return nil, err
		}
		out = append(out, NewAnnotation(p, v, nested...))
	}
	return SortAnnotations(out), nil
}

// ClassExpression returns a named class or an anonymous class expression.
func (f *Factory) ClassExpression(v quad.Value) (Object, error) {
	if graph.IsIRI(v) {
		return f.Class(v)
	}
	key := cacheKey("ce", v)
	if o, ok := f.lookup(key); ok {
		return o, nil
	}
	kind, ok := ClassExpressionKind(f.m, v)
	if !ok {
		return nil, structureErr(v, "not a class expression")
	}
	c := &ClassExpression{kind: kind, node: v}
	f.building[key] = c
	defer delete(f.building, key)
	if err := f.fillClassExpression(c); err != nil {
		return nil, err
	}
	f.cache.Put(key, c)
	return c, nil
}

func (f *Factory) fillClassExpression(c *ClassExpression) error {
	v := c.node
	switch k := c.kind; {
	case k == KindObjectUnionOf || k == KindObjectIntersectionOf || k == KindObjectOneOf:
		head, err := f.one(v, listPredicates[k])
		if err != nil {
			return err
		}
		items, err := f.list(head)
		if err != nil {
			return err
		}
		ops := make([]Object, 0, len(items))
		for _, it := range items {
			var o Object
			if k == KindObjectOneOf {
				o, err = f.Individual(it)
			} else {
				o, err = f.ClassExpression(it)
			}
			if err != nil {
				return err
			}
			ops = append(ops, o)
		}
		c.operands = SortObjects(ops)
		return nil
	case k == KindObjectComplementOf:
		x, err := f.one(v, terms.OWLComplementOf)
		if err != nil {
			return err
		}
		c.filler, err = f.ClassExpression(x)
		return err
	case k == KindNaryDataSomeValuesFrom || k == KindNaryDataAllValuesFrom:
		head, err := f.one(v, terms.OWLOnProperties)
		if err != nil {
			return err
		}
		items, err := f.list(head)
		if err != nil {
			return err
		}
		for _, it := range items {
			p, err := f.DataProperty(it)
			if err != nil {
				return err
			}
			c.operands = append(c.operands, p)
		}
		x, err := f.one(v, fillerPredicates[k])
		if err != nil {
			return err
		}
		c.filler, err = f.DataRange(x)
		return err
	}

	p, err := f.one(v, terms.OWLOnProperty)
	if err != nil {
		return err
	}
	if c.kind.IsData() {
		c.property, err = f.DataProperty(p)
	} else {
		c.property, err = f.ObjectPropertyExpression(p)
	}
	if err != nil {
		return err
	}
	switch k := c.kind; {
	case k == KindObjectHasSelf:
		return nil
	case k == KindObjectHasValue:
		x, err := f.one(v, terms.OWLHasValue)
		if err != nil {
			return err
		}
		c.filler, err = f.Individual(x)
		return err
	case k == KindDataHasValue:
		x, err := f.one(v, terms.OWLHasValue)
		if err != nil {
			return err
		}
		c.filler, err = f.Literal(x)
		return err
	case k.IsCardinality():
		return f.fillCardinality(c)
	}
	x, err := f.one(v, fillerPredicates[c.kind])
	if err != nil {
		return err
	}
	if c.kind.IsData() {
		c.filler, err = f.DataRange(x)
	} else {
		c.filler, err = f.ClassExpression(x)
	}
	return err
}

func (f *Factory) fillCardinality(c *ClassExpression) error {
	preds := cardinalityPredicates[c.kind]
	qualified := f.m.Has(c.node, preds[1], nil)
	pred := preds[0]
	if qualified {
		pred = preds[1]
	}
	x, err := f.one(c.node, pred)
	if err != nil {
		return err
	}
	if c.cardinality, err = parseCardinality(c.node, x); err != nil {
		return err
	}
	switch {
	case !qualified && c.kind.IsData():
		c.filler = RDFSLiteral
	case !qualified:
		c.filler = Thing
	case c.kind.IsData():
		x, err := f.one(c.node, terms.OWLOnDataRange)
		if err != nil {
			return err
		}
		c.filler, err = f.DataRange(x)
		return err
	default:
		x, err := f.one(c.node, terms.OWLOnClass)
		if err != nil {
			return err
		}
		c.filler, err = f.ClassExpression(x)
		return err
	}
	return nil
}

// parseCardinality reads a non-negative integer of any size.
func parseCardinality(node, v quad.Value) (*big.Int, error) {
	var s string
	switch v := v.(type) {
	case quad.Int:
		s = strconv.FormatInt(int64(v), 10)
	case quad.String:
		s = string(v)
	case quad.TypedString:
		s = string(v.Value)
	default:
		return nil, structureErr(node, "cardinality %v is not an integer literal", v)
	}
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || n.Sign() < 0 {
		return nil, structureErr(node, "cardinality %q is not a non-negative integer", s)
	}
	return n, nil
}

// DataRange returns a named datatype or an anonymous data range.
func (f *Factory) DataRange(v quad.Value) (Object, error) {
	if graph.IsIRI(v) {
		return f.Datatype(v)
	}
	key := cacheKey("dr", v)
	if o, ok := f.lookup(key); ok {
		return o, nil
	}
	kind, ok := DataRangeKind(f.m, v)
	if !ok {
		return nil, structureErr(v, "not a data range")
	}
	d := &DataRange{kind: kind, node: v}
	f.building[key] = d
	defer delete(f.building, key)
	if err := f.fillDataRange(d); err != nil {
		return nil, err
	}
	f.cache.Put(key, d)
	return d, nil
}

func (f *Factory) fillDataRange(d *DataRange) error {
	v := d.node
	switch d.kind {
	case KindDataComplementOf:
		x, err := f.one(v, terms.OWLDatatypeComplementOf)
		if err != nil {
			return err
		}
		d.datatype, err = f.DataRange(x)
		return err
	case KindDatatypeRestriction:
		x, err := f.one(v, terms.OWLOnDatatype)
		if err != nil {
			return err
		}
		if d.datatype, err = f.Datatype(x); err != nil {
			return err
		}
		head, err := f.one(v, terms.OWLWithRestrictions)
		if err != nil {
			return err
		}
		items, err := f.list(head)
		if err != nil {
			return err
		}
		for _, it := range items {
			fr, err := f.facetRestriction(it)
			if err != nil {
				return err
			}
			d.operands = append(d.operands, fr)
		}
		return nil
	}
	head, err := f.one(v, listPredicates[d.kind])
	if err != nil {
		return err
	}
	items, err := f.list(head)
	if err != nil {
		return err
	}
	ops := make([]Object, 0, len(items))
	for _, it := range items {
		var o Object
		if d.kind == KindDataOneOf {
			o, err = f.Literal(it)
		} else {
			o, err = f.DataRange(it)
		}
		if err != nil {
			return err
		}
		ops = append(ops, o)
	}
	d.operands = SortObjects(ops)
	return nil
}

func (f *Factory) facetRestriction(v quad.Value) (*FacetRestriction, error) {
	var out *FacetRestriction
	for _, q := range f.m.Find(v, nil, nil) {
		if q.Predicate == terms.RDFType {
			continue
		}
		facet, ok := q.Predicate.(quad.IRI)
		if !ok || out != nil {
			return nil, structureErr(v, "facet restriction must have exactly one facet")
		}
		lit, err := NewLiteral(q.Object)
		if err != nil {
			return nil, err
		}
		out = &FacetRestriction{node: v, facet: facet.Full(), value: lit}
	}
	if out == nil {
		return nil, structureErr(v, "empty facet restriction")
	}
	return out, nil
}

// atom kinds by rdf:type
var atomTypes = map[quad.Value]Kind{
	terms.SWRLClassAtom:                KindClassAtom,
	terms.SWRLDataRangeAtom:            KindDataRangeAtom,
	terms.SWRLIndividualPropertyAtom:   KindIndividualPropertyAtom,
	terms.SWRLDatavaluedPropertyAtom:   KindDatavaluedPropertyAtom,
	terms.SWRLSameIndividualAtom:       KindSameIndividualAtom,
	terms.SWRLDifferentIndividualsAtom: KindDifferentIndividualsAtom,
	terms.SWRLBuiltinAtom:              KindBuiltinAtom,
}

// Rule reads a SWRL rule rooted at a swrl:Imp node.
func (f *Factory) Rule(v quad.Value) (*Rule, error) {
	key := cacheKey("rule", v)
	if o, ok := f.lookup(key); ok {
		if r, ok := o.(*Rule); ok {
			return r, nil
		}
	}
	if !f.m.HasType(v, terms.SWRLImp) {
		return nil, structureErr(v, "not a swrl rule")
	}
	r := &Rule{node: v}
	var err error
	if r.body, err = f.atoms(v, terms.SWRLBody); err != nil {
		return nil, err
	}
	if r.head, err = f.atoms(v, terms.SWRLHead); err != nil {
		return nil, err
	}
	f.cache.Put(key, r)
	return r, nil
}

func (f *Factory) atoms(v quad.Value, p quad.IRI) ([]*Atom, error) {
	head, ok := f.m.Object(v, p)
	if !ok {
		return nil, nil
	}
	items, err := f.list(head)
	if err != nil {
		return nil, err
	}
	out := make([]*Atom, 0, len(items))
	for _, it := range items {
		a, err := f.Atom(it)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Atom reads a SWRL atom.
func (f *Factory) Atom(v quad.Value) (*Atom, error) {
	kind := KindUnknown
	for _, t := range f.m.Objects(v, terms.RDFType) {
		if k, ok := atomTypes[t]; ok {
			kind = k
			break
		}
	}
	if kind == KindUnknown {
		return nil, structureErr(v, "not a swrl atom")
	}
	a := &Atom{kind: kind, node: v}
	var err error
	arg := func(p quad.IRI, data bool) error {
		x, err := f.one(v, p)
		if err != nil {
			return err
		}
		var o Object
		if data {
			o, err = f.dArg(x)
		} else {
			o, err = f.iArg(x)
		}
		if err != nil {
			return err
		}
		a.args = append(a.args, o)
		return nil
	}
	switch kind {
	case KindClassAtom:
		if a.predicate, err = f.predicate(v, terms.SWRLClassPredicate, f.ClassExpression); err == nil {
			err = arg(terms.SWRLArgument1, false)
		}
	case KindDataRangeAtom:
		if a.predicate, err = f.predicate(v, terms.SWRLDataRange, f.DataRange); err == nil {
			err = arg(terms.SWRLArgument1, true)
		}
	case KindIndividualPropertyAtom:
		if a.predicate, err = f.predicate(v, terms.SWRLPropertyPredicate, f.ObjectPropertyExpression); err == nil {
			if err = arg(terms.SWRLArgument1, false); err == nil {
				err = arg(terms.SWRLArgument2, false)
			}
		}
	case KindDatavaluedPropertyAtom:
		a.predicate, err = f.predicate(v, terms.SWRLPropertyPredicate, func(x quad.Value) (Object, error) {
			return f.DataProperty(x)
		})
		if err == nil {
			if err = arg(terms.SWRLArgument1, false); err == nil {
				err = arg(terms.SWRLArgument2, true)
			}
		}
	case KindSameIndividualAtom, KindDifferentIndividualsAtom:
		if err = arg(terms.SWRLArgument1, false); err == nil {
			err = arg(terms.SWRLArgument2, false)
		}
	case KindBuiltinAtom:
		var x quad.Value
		if x, err = f.one(v, terms.SWRLBuiltin); err != nil {
			return nil, err
		}
		iri, ok := x.(quad.IRI)
		if !ok {
			return nil, structureErr(v, "builtin %v is not an IRI", x)
		}
		a.predicate = IRI(iri.Full())
		head, err := f.one(v, terms.SWRLArguments)
		if err != nil {
			return nil, err
		}
		items, err := f.list(head)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			o, err := f.dArg(it)
			if err != nil {
				return nil, err
			}
			a.args = append(a.args, o)
		}
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (f *Factory) predicate(v quad.Value, p quad.IRI, read func(quad.Value) (Object, error)) (Object, error) {
	x, err := f.one(v, p)
	if err != nil {
		return nil, err
	}
	return read(x)
}

// iArg reads a variable or an individual.
func (f *Factory) iArg(v quad.Value) (Object, error) {
	if iri, ok := v.(quad.IRI); ok && f.m.HasType(v, terms.SWRLVariable) {
		return NewVariable(iri), nil
	}
	return f.Individual(v)
}

// dArg reads a variable or a literal.
func (f *Factory) dArg(v quad.Value) (Object, error) {
	if iri, ok := v.(quad.IRI); ok {
		if f.m.HasType(v, terms.SWRLVariable) {
			return NewVariable(iri), nil
		}
		return nil, structureErr(v, "not a swrl variable")
	}
	return f.Literal(v)
}
