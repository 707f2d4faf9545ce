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

package graph

import (
	"errors"

	"github.com/cayleygraph/quad"
)

var ErrWriterClosed = errors.New("graph: writer is closed")

var _ quad.WriteCloser = (*Writer)(nil)

// Writer adapts a Graph to quad.Writer, so any quad format can be copied into it.
type Writer struct {
	g      Graph
	n      int
	closed bool
}

// NewWriter returns a quad writer that adds triples to g.
func NewWriter(g Graph) *Writer {
	return &Writer{g: g}
}

func (w *Writer) WriteQuad(q quad.Quad) error {
	_, err := w.WriteQuads([]quad.Quad{q})
	return err
}

func (w *Writer) WriteQuads(buf []quad.Quad) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	valid := make([]quad.Quad, 0, len(buf))
	for _, q := range buf {
		if !q.IsValid() {
			continue
		}
		q.Label = nil
		valid = append(valid, q)
	}
	if err := w.g.AddQuads(valid...); err != nil {
		return 0, err
	}
	w.n += len(buf)
	return len(buf), nil
}

// Written returns the number of quads passed to the writer.
func (w *Writer) Written() int { return w.n }

func (w *Writer) Close() error {
	w.closed = true
	return nil
}
