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
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
	"github.com/cayleygraph/owlgraph/search"
	_ "github.com/cayleygraph/owlgraph/voc/core"
)

const defaultLimit = 100

// API serves a single model. Requests are serialized since models are not
// safe for concurrent use.
type API struct {
	config *Config

	mu sync.Mutex
	m  *model.Model
}

func NewAPI(m *model.Model, cfg *Config) *API {
	if cfg == nil {
		cfg = &Config{Axioms: axioms.DefaultConfig()}
	}
	return &API{config: cfg, m: m}
}

func (api *API) RWOnly(handler httprouter.Handle) httprouter.Handle {
	if api.config.ReadOnly {
		return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
			jsonResponse(w, http.StatusForbidden, "Database is read-only.")
		}
	}
	return handler
}

func (api *API) APIv1(r *httprouter.Router) {
	r.GET("/api/v1/axioms", CORS(LogRequest(api.ServeV1Axioms)))
	r.GET("/api/v1/search", CORS(LogRequest(api.ServeV1Search)))
	r.GET("/api/v1/stats", CORS(LogRequest(api.ServeV1Stats)))
	r.GET("/api/v1/header", CORS(LogRequest(api.ServeV1Header)))
	r.GET("/api/v1/dump", CORS(LogRequest(api.ServeV1Dump)))
	r.POST("/api/v1/write", CORS(api.RWOnly(LogRequest(api.ServeV1Write))))
	r.POST("/api/v1/write/file/nquad", CORS(api.RWOnly(LogRequest(api.ServeV1WriteNQuad))))
	r.POST("/api/v1/delete", CORS(api.RWOnly(LogRequest(api.ServeV1Delete))))
}

func (api *API) contextForRequest(r *http.Request) (context.Context, func()) {
	ctx := r.Context()
	cancel := func() {}
	if api.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, api.config.Timeout)
	}
	return ctx, cancel
}

// lock acquires the model and returns a fresh factory over it.
func (api *API) lock() (*owl.Factory, func()) {
	api.mu.Lock()
	return owl.NewFactory(api.m, api.config.CacheSize), api.mu.Unlock
}

type axiomJSON struct {
	Type        string   `json:"type"`
	Axiom       string   `json:"axiom"`
	Annotations []string `json:"annotations,omitempty"`
}

func toJSON(axs []*owl.Axiom, limit int) []axiomJSON {
	out := make([]axiomJSON, 0, len(axs))
	for _, a := range axs {
		if limit > 0 && len(out) >= limit {
			break
		}
		j := axiomJSON{Type: a.Type.String(), Axiom: a.WithoutAnnotations().String()}
		for _, ann := range a.Annotations {
			j.Annotations = append(j.Annotations, ann.String())
		}
		out = append(out, j)
	}
	return out
}

func parseLimit(r *http.Request) (int, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return defaultLimit, nil
	}
	return strconv.Atoi(s)
}

func (api *API) ServeV1Axioms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := api.contextForRequest(r)
	defer cancel()
	limit, err := parseLimit(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	types := owl.AxiomTypes()
	if names := r.URL.Query()["type"]; len(names) != 0 {
		types = types[:0]
		for _, name := range names {
			t, ok := owl.ParseAxiomType(name)
			if !ok {
				jsonResponse(w, http.StatusBadRequest, "Unknown axiom type: "+name)
				return
			}
			types = append(types, t)
		}
	}
	f, unlock := api.lock()
	defer unlock()
	var out []*owl.Axiom
	for _, t := range types {
		if err := ctx.Err(); err != nil {
			jsonResponse(w, http.StatusServiceUnavailable, err)
			return
		}
		axs, err := axioms.List(t, api.m, f, api.config.Axioms)
		if err != nil {
			jsonResponse(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, axs...)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	writeResult(w, toJSON(out, limit))
}

// ServeV1Search finds axioms by IRI, entity, anonymous individual or component type.
// A "_:" prefixed iri is treated as a blank node. Without a kind the IRI is
// searched as every entity kind and as a plain IRI. Known prefixes such as
// "owl:" are expanded.
func (api *API) ServeV1Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	limit, err := parseLimit(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	iri, kind, comp := q.Get("iri"), q.Get("kind"), q.Get("component")
	if iri == "" && comp == "" {
		jsonResponse(w, http.StatusBadRequest, "Either iri or component must be set.")
		return
	}
	if iri != "" && !strings.HasPrefix(iri, "_:") {
		iri = voc.FullIRI(iri)
	}
	var ct owl.ComponentType
	if comp != "" {
		var ok bool
		if ct, ok = owl.ParseComponentType(comp); !ok {
			jsonResponse(w, http.StatusBadRequest, "Unknown component type: "+comp)
			return
		}
	}
	var kinds []owl.Kind
	if kind != "" {
		k, ok := search.ParseKind(kind)
		if !ok {
			jsonResponse(w, http.StatusBadRequest, "Unknown entity kind: "+kind+"; expected one of "+strings.Join(search.KindNames(), ", "))
			return
		}
		kinds = append(kinds, k)
	}

	f, unlock := api.lock()
	defer unlock()
	s := search.New(api.m, f, api.config.Axioms)
	var res []*owl.Axiom
	switch {
	case iri == "":
		res, err = s.ByComponentType(ct)
	case strings.HasPrefix(iri, "_:"):
		res, err = s.ByAnonymousIndividual(quad.BNode(iri[2:]))
	case len(kinds) != 0:
		res, err = s.ByEntity(owl.NewEntity(kinds[0], quad.IRI(iri)))
	default:
		res, err = searchAll(s, quad.IRI(iri))
	}
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeResult(w, toJSON(res, limit))
}

func searchAll(s *search.Searcher, iri quad.IRI) ([]*owl.Axiom, error) {
	seen := make(map[string]struct{})
	var out []*owl.Axiom
	add := func(axs []*owl.Axiom) {
		for _, a := range axs {
			if _, ok := seen[a.Key()]; !ok {
				seen[a.Key()] = struct{}{}
				out = append(out, a)
			}
		}
	}
	for _, name := range search.KindNames() {
		k, _ := search.ParseKind(name)
		axs, err := s.ByEntity(owl.NewEntity(k, iri))
		if err != nil {
			return nil, err
		}
		add(axs)
	}
	axs, err := s.ByIRI(iri)
	if err != nil {
		return nil, err
	}
	add(axs)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

type statsJSON struct {
	Triples int64          `json:"triples"`
	Axioms  map[string]int `json:"axioms"`
	Total   int            `json:"total"`
}

func (api *API) ServeV1Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := api.contextForRequest(r)
	defer cancel()
	f, unlock := api.lock()
	defer unlock()
	st := statsJSON{Triples: api.m.Graph().Size(), Axioms: make(map[string]int)}
	for _, t := range owl.AxiomTypes() {
		if err := ctx.Err(); err != nil {
			jsonResponse(w, http.StatusServiceUnavailable, err)
			return
		}
		axs, err := axioms.List(t, api.m, f, api.config.Axioms)
		if err != nil {
			jsonResponse(w, http.StatusInternalServerError, err)
			return
		}
		if len(axs) != 0 {
			st.Axioms[t.String()] = len(axs)
			st.Total += len(axs)
		}
	}
	writeResult(w, st)
}

type headerJSON struct {
	ID          string   `json:"id,omitempty"`
	Annotations []string `json:"annotations"`
}

func (api *API) ServeV1Header(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f, unlock := api.lock()
	defer unlock()
	var h headerJSON
	if id, ok := api.m.ID(); ok {
		h.ID = id.String()
	}
	anns, err := axioms.HeaderAnnotations(api.m, f)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.Annotations = []string{}
	for _, a := range anns {
		h.Annotations = append(h.Annotations, a.String())
	}
	writeResult(w, h)
}
