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
	register(swrlRule)
}

var swrlRule = &translator{
	typ:      owl.SWRLRule,
	patterns: typePatterns(terms.SWRLImp),
	test: func(m *model.Model, q quad.Quad) bool {
		return graph.IsResource(q.Subject) &&
			m.Has(q.Subject, terms.SWRLBody, nil) && m.Has(q.Subject, terms.SWRLHead, nil)
	},
	read: func(f *owl.Factory, s *model.Statement) ([]owl.Object, error) {
		r, err := f.Rule(s.Subject())
		if err != nil {
			return nil, err
		}
		return []owl.Object{r}, nil
	},
	arity: exactly(1),
	write: func(e *emitter, ax *owl.Axiom) []*model.Statement {
		if _, ok := ax.Args[0].(*owl.Rule); !ok {
			e.err = &owl.StructureError{Node: ax.Args[0].Node(), Reason: "not a rule"}
			return nil
		}
		r := e.node(ax.Args[0])
		return []*model.Statement{e.m.Statement(r, terms.RDFType, terms.SWRLImp)}
	},
}
