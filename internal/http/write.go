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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal"
	"github.com/cayleygraph/owlgraph/internal/decompressor"
)

func ParseJSONToQuadList(jsonBody []byte) (out []quad.Quad, _ error) {
	var quads []struct {
		Subject   string `json:"subject"`
		Predicate string `json:"predicate"`
		Object    string `json:"object"`
	}
	err := json.Unmarshal(jsonBody, &quads)
	if err != nil {
		return nil, err
	}
	out = make([]quad.Quad, 0, len(quads))
	for i, jq := range quads {
		q := graph.Triple(
			quad.StringToValue(jq.Subject),
			quad.StringToValue(jq.Predicate),
			quad.StringToValue(jq.Object),
		)
		if !q.IsValid() {
			return nil, fmt.Errorf("invalid triple at index %d. %s", i, q)
		}
		out = append(out, q)
	}
	return out, nil
}

func (api *API) readQuads(w http.ResponseWriter, r *http.Request) ([]quad.Quad, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return nil, false
	}
	quads, err := ParseJSONToQuadList(bodyBytes)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return nil, false
	}
	return quads, true
}

func (api *API) ServeV1Write(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	quads, ok := api.readQuads(w, r)
	if !ok {
		return
	}
	_, unlock := api.lock()
	defer unlock()
	if err := api.m.Add(quads...); err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	writeResult(w, fmt.Sprintf("Successfully wrote %d triples.", len(quads)))
}

func (api *API) ServeV1WriteNQuad(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	formFile, _, err := r.FormFile("NQuadFile")
	if err != nil {
		clog.Errorf("%v", err)
		jsonResponse(w, http.StatusBadRequest, "Couldn't read file: "+err.Error())
		return
	}
	defer formFile.Close()

	blockSize, err := strconv.Atoi(r.URL.Query().Get("block_size"))
	if err != nil || blockSize <= 0 {
		blockSize = api.config.Batch
	}
	if blockSize <= 0 {
		blockSize = quad.DefaultBatch
	}

	qr, err := decompressor.New(formFile)
	if err == io.EOF {
		writeResult(w, "Successfully wrote 0 triples.")
		return
	} else if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	dec := nquads.NewReader(qr, false)
	defer dec.Close()

	_, unlock := api.lock()
	defer unlock()
	qw := graph.NewWriter(api.m.Graph())
	defer qw.Close()
	n, err := quad.CopyBatch(qw, dec, blockSize)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	writeResult(w, fmt.Sprintf("Successfully wrote %d triples.", n))
}

func (api *API) ServeV1Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	quads, ok := api.readQuads(w, r)
	if !ok {
		return
	}
	_, unlock := api.lock()
	defer unlock()
	if err := api.m.Remove(quads...); err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	writeResult(w, fmt.Sprintf("Successfully deleted %d triples.", len(quads)))
}

const defaultFormat = "nquads"

func (api *API) ServeV1Dump(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = defaultFormat
	}
	format := quad.FormatByName(name)
	if format == nil || format.Writer == nil {
		jsonResponse(w, http.StatusBadRequest, "Unsupported format: "+name)
		return
	}
	if len(format.Mime) != 0 {
		w.Header().Set("Content-Type", format.Mime[0])
	}
	_, unlock := api.lock()
	defer unlock()
	if _, err := internal.DumpTo(api.m.Graph(), w, "", format.Name); err != nil {
		clog.Errorf("dump failed: %v", err)
	}
}
