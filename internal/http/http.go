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

// Package http serves a model over a read-mostly JSON API.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/model"
)

type Config struct {
	ReadOnly  bool
	Timeout   time.Duration
	Batch     int
	CacheSize int
	Axioms    axioms.Config
}

func jsonResponse(w http.ResponseWriter, code int, err interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error": `))
	data, _ := json.Marshal(fmt.Sprint(err))
	w.Write(data)
	w.Write([]byte(`}`))
}

type successWrapper struct {
	Result interface{} `json:"result"`
}

func writeResult(w http.ResponseWriter, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(successWrapper{result}); err != nil {
		clog.Errorf("cannot encode response: %v", err)
	}
}

// NewHandler returns the router serving the API, health and metrics endpoints.
func NewHandler(m *model.Model, cfg *Config) http.Handler {
	r := httprouter.New()
	r.OPTIONS("/*path", CORSFunc)
	r.GET("/health", HandleHealth)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	api := NewAPI(m, cfg)
	api.APIv1(r)
	return r
}

// SetupRoutes installs the handler on the default mux.
func SetupRoutes(m *model.Model, cfg *Config) {
	http.Handle("/", NewHandler(m, cfg))
}
