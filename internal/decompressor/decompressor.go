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

// Package decompressor sniffs compressed ontology files.
package decompressor

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	gzipMagic  = "\x1f\x8b"
	b2zipMagic = "BZh"
	zstdMagic  = "\x28\xb5\x2f\xfd"
)

// New detects the file type of an io.Reader between
// bzip2, gzip, zstd, or raw ontology file.
func New(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	buf, err := br.Peek(len(zstdMagic))
	if len(buf) == 0 {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(buf, []byte(gzipMagic)):
		return gzip.NewReader(br)
	case bytes.HasPrefix(buf, []byte(b2zipMagic)):
		return bzip2.NewReader(br), nil
	case bytes.HasPrefix(buf, []byte(zstdMagic)):
		d, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return br, nil
	}
}

// Writer returns a compressing writer for the file extension, or w itself.
// The returned closer must be called before w is closed.
func Writer(w io.Writer, ext string) (io.Writer, io.Closer, error) {
	switch ext {
	case ".gz":
		zw := gzip.NewWriter(w)
		return zw, zw, nil
	case ".zst":
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw, nil
	}
	return w, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
