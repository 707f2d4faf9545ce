// Copyright 2014 The Cayley Authors. All rights reserved.
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

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/owltest"
	"github.com/cayleygraph/owlgraph/internal/terms"
	"github.com/cayleygraph/owlgraph/model"
)

var parseTests = []struct {
	message string
	input   string
	expect  []quad.Quad
	err     error
}{
	{
		message: "parse correct JSON",
		input: `[
			{"subject": "<foo>", "predicate": "<bar>", "object": "baz"},
			{"subject": "_:b", "predicate": "<bar>", "object": "<baz>"}
		]`,
		expect: []quad.Quad{
			graph.Triple(quad.IRI("foo"), quad.IRI("bar"), quad.String("baz")),
			graph.Triple(quad.BNode("b"), quad.IRI("bar"), quad.IRI("baz")),
		},
	},
	{
		message: "parse correct JSON with extra field",
		input: `[
			{"subject": "<foo>", "predicate": "<bar>", "object": "<foo>", "something_else": "extra data"}
		]`,
		expect: []quad.Quad{
			graph.Triple(quad.IRI("foo"), quad.IRI("bar"), quad.IRI("foo")),
		},
	},
	{
		message: "reject incorrect JSON",
		input: `[
			{"subject": "<foo>", "predicate": "<bar>"}
		]`,
		err: fmt.Errorf("invalid triple at index %d. %s", 0, graph.Triple(quad.IRI("foo"), quad.IRI("bar"), nil)),
	},
}

func TestParseJSON(t *testing.T) {
	for _, c := range parseTests {
		t.Run(c.message, func(t *testing.T) {
			got, err := ParseJSONToQuadList([]byte(c.input))
			if c.err != nil {
				require.EqualError(t, err, c.err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.expect, got)
		})
	}
}

func fixture() *owltest.Builder {
	b := owltest.New()
	onto := owltest.IRI("onto")
	b.Type(onto, terms.OWLOntology)
	b.Add(onto, terms.RDFSComment, quad.String("test ontology"))
	b.Declare(terms.OWLClass, "A", "B", "C")
	b.Declare(terms.OWLObjectProperty, "p")
	b.Declare(terms.OWLNamedIndividual, "i")
	b.Add(owltest.IRI("A"), terms.RDFSSubClassOf, owltest.IRI("B"))
	r := b.Restriction(owltest.IRI("p"))
	b.Add(r, terms.OWLSomeValuesFrom, owltest.IRI("C"))
	b.Add(owltest.IRI("A"), terms.RDFSSubClassOf, r)
	b.Type(owltest.IRI("i"), owltest.IRI("A"))
	b.Add(owltest.IRI("A"), terms.RDFSLabel, quad.String("A"))
	return b
}

func newHandler(cfg *Config) (http.Handler, *model.Model) {
	m := model.New(fixture().Graph())
	if cfg == nil {
		cfg = &Config{Axioms: axioms.DefaultConfig()}
	}
	return NewHandler(m, cfg), m
}

func do(t testing.TB, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t testing.TB, rec *httptest.ResponseRecorder, v interface{}) {
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var wrap struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wrap))
	require.NoError(t, json.Unmarshal(wrap.Result, v))
}

func types(res []axiomJSON) map[string]int {
	out := make(map[string]int)
	for _, a := range res {
		out[a.Type]++
	}
	return out
}

func TestHealth(t *testing.T) {
	h, _ := newHandler(nil)
	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORS(t *testing.T) {
	h, _ := newHandler(nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/axioms", nil)
	req.Header.Set("Origin", "http://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "http://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAxioms(t *testing.T) {
	h, _ := newHandler(nil)

	var res []axiomJSON
	decode(t, do(t, h, http.MethodGet, "/api/v1/axioms?type=SubClassOf", ""), &res)
	require.Len(t, res, 2)
	require.Equal(t, map[string]int{"SubClassOf": 2}, types(res))

	decode(t, do(t, h, http.MethodGet, "/api/v1/axioms?type=SubClassOf&type=ClassAssertion", ""), &res)
	require.Equal(t, map[string]int{"SubClassOf": 2, "ClassAssertion": 1}, types(res))

	decode(t, do(t, h, http.MethodGet, "/api/v1/axioms?limit=3", ""), &res)
	require.Len(t, res, 3)

	decode(t, do(t, h, http.MethodGet, "/api/v1/axioms?limit=0", ""), &res)
	all := types(res)
	require.Equal(t, 5, all["Declaration"])
	require.Equal(t, 1, all["AnnotationAssertion"])

	rec := do(t, h, http.MethodGet, "/api/v1/axioms?type=Bogus", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/v1/axioms?limit=many", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAxiomAnnotations(t *testing.T) {
	h, m := newHandler(nil)
	s := m.Statement(owltest.IRI("A"), terms.RDFSSubClassOf, owltest.IRI("B"))
	_, err := s.AddAnnotation(terms.RDFSComment, quad.String("why"))
	require.NoError(t, err)

	var res []axiomJSON
	decode(t, do(t, h, http.MethodGet, "/api/v1/axioms?type=SubClassOf", ""), &res)
	n := 0
	for _, a := range res {
		n += len(a.Annotations)
	}
	require.Equal(t, 1, n)
}

func TestSearch(t *testing.T) {
	h, _ := newHandler(nil)
	iri := url.QueryEscape(owltest.NS + "A")

	var res []axiomJSON
	decode(t, do(t, h, http.MethodGet, "/api/v1/search?kind=class&iri="+iri, ""), &res)
	got := types(res)
	require.Equal(t, 2, got["SubClassOf"])
	require.Equal(t, 1, got["ClassAssertion"])
	require.Equal(t, 1, got["Declaration"])

	decode(t, do(t, h, http.MethodGet, "/api/v1/search?iri="+iri, ""), &res)
	got = types(res)
	require.Equal(t, 2, got["SubClassOf"])
	require.Equal(t, 1, got["AnnotationAssertion"])

	decode(t, do(t, h, http.MethodGet, "/api/v1/search?component=NamedIndividual&limit=0", ""), &res)
	got = types(res)
	require.Equal(t, 1, got["ClassAssertion"])

	for _, path := range []string{
		"/api/v1/search",
		"/api/v1/search?iri=" + iri + "&kind=restriction",
		"/api/v1/search?component=Restriction",
		"/api/v1/search?iri=" + iri + "&limit=x",
	} {
		rec := do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestStatsAndHeader(t *testing.T) {
	h, m := newHandler(nil)

	var st statsJSON
	decode(t, do(t, h, http.MethodGet, "/api/v1/stats", ""), &st)
	require.Equal(t, m.Graph().Size(), st.Triples)
	require.Equal(t, 2, st.Axioms["SubClassOf"])
	sum := 0
	for _, n := range st.Axioms {
		sum += n
	}
	require.Equal(t, st.Total, sum)

	var hdr headerJSON
	decode(t, do(t, h, http.MethodGet, "/api/v1/header", ""), &hdr)
	require.Equal(t, owltest.IRI("onto").String(), hdr.ID)
	require.Len(t, hdr.Annotations, 1)
}

const declareD = `[{"subject": "<http://example.com/onto#D>", "predicate": "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>", "object": "<http://www.w3.org/2002/07/owl#Class>"}]`

func TestWriteDelete(t *testing.T) {
	h, m := newHandler(nil)
	size := m.Graph().Size()

	rec := do(t, h, http.MethodPost, "/api/v1/write", declareD)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, size+1, m.Graph().Size())

	var res []axiomJSON
	decode(t, do(t, h, http.MethodGet, "/api/v1/axioms?type=Declaration", ""), &res)
	require.Len(t, res, 6)

	rec = do(t, h, http.MethodPost, "/api/v1/delete", declareD)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, size, m.Graph().Size())

	rec = do(t, h, http.MethodPost, "/api/v1/write", `{"subject": 1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteNQuadFile(t *testing.T) {
	h, m := newHandler(nil)
	size := m.Graph().Size()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("NQuadFile", "onto.nq")
	require.NoError(t, err)
	_, err = fw.Write([]byte("<http://example.com/onto#D> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://example.com/onto#A> .\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/write/file/nquad", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, size+1, m.Graph().Size())
}

func TestReadOnly(t *testing.T) {
	h, m := newHandler(&Config{ReadOnly: true, Axioms: axioms.DefaultConfig()})
	size := m.Graph().Size()
	for _, path := range []string{"/api/v1/write", "/api/v1/delete", "/api/v1/write/file/nquad"} {
		rec := do(t, h, http.MethodPost, path, declareD)
		require.Equal(t, http.StatusForbidden, rec.Code, path)
	}
	require.Equal(t, size, m.Graph().Size())
}

func TestDump(t *testing.T) {
	h, _ := newHandler(nil)
	rec := do(t, h, http.MethodGet, "/api/v1/dump", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<http://example.com/onto#A>")

	rec = do(t, h, http.MethodGet, "/api/v1/dump?format=bogus", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics(t *testing.T) {
	h, _ := newHandler(nil)
	do(t, h, http.MethodGet, "/api/v1/search?kind=class&iri="+url.QueryEscape(owltest.NS+"A"), "")
	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "owlgraph_search_statements_tested")
	require.Contains(t, rec.Body.String(), "owlgraph_axioms_read")
}
