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

package core

import (
	"testing"

	"github.com/cayleygraph/quad/voc"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/voc/owl"
	"github.com/cayleygraph/owlgraph/voc/swrl"
	"github.com/cayleygraph/owlgraph/voc/xsd"
)

var casesShortIRI = []struct {
	full  string
	short string
}{
	{full: owl.Class, short: "owl:Class"},
	{full: owl.AnnotatedSource, short: "owl:annotatedSource"},
	{full: xsd.NonNegativeInteger, short: "xsd:nonNegativeInteger"},
	{full: swrl.Imp, short: "swrl:Imp"},
	{full: "http://www.w3.org/2000/01/rdf-schema#subClassOf", short: "rdfs:subClassOf"},
}

func TestShortIRI(t *testing.T) {
	for _, c := range casesShortIRI {
		require.Equal(t, c.short, voc.ShortIRI(c.full))
		require.Equal(t, c.full, voc.FullIRI(c.short))
	}
}
