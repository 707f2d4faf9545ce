package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/decompressor"
)

// Dump writes every triple of g into a file in the given format.
// The format is guessed from the file name when typ is empty,
// and ".gz" or ".zst" outputs are compressed.
func Dump(g graph.Graph, outFile, typ string) (int, error) {
	var f io.Writer
	if outFile == "-" {
		f = os.Stdout
	} else {
		file, err := os.Create(outFile)
		if err != nil {
			return 0, fmt.Errorf("could not open file %q: %w", outFile, err)
		}
		defer file.Close()
		f = file
		clog.Infof("dumping graph to file %q", outFile)
	}

	w, zc, err := decompressor.Writer(f, filepath.Ext(outFile))
	if err != nil {
		return 0, err
	}
	n, err := DumpTo(g, w, outFile, typ)
	if err != nil {
		zc.Close()
		return n, err
	}
	return n, zc.Close()
}

// DumpTo encodes every triple of g into w.
func DumpTo(g graph.Graph, w io.Writer, name, typ string) (int, error) {
	format, err := FormatFor(name, typ)
	if err != nil {
		return 0, err
	} else if format.Writer == nil {
		return 0, fmt.Errorf("encoding in %s format is not supported", format.Name)
	}
	qw := format.Writer(w)
	n, err := copyQuads(g, qw)
	if err != nil {
		qw.Close()
		return n, err
	}
	if err := qw.Close(); err != nil {
		return n, err
	}
	clog.Infof("%d entries were written", n)
	return n, nil
}

func copyQuads(g graph.Graph, qw quad.BatchWriter) (int, error) {
	it := g.Find(nil, nil, nil)
	defer it.Close()
	buf := make([]quad.Quad, 0, quad.DefaultBatch)
	n := 0
	flush := func() error {
		k, err := qw.WriteQuads(buf)
		n += k
		buf = buf[:0]
		return err
	}
	for it.Next() {
		buf = append(buf, it.Quad())
		if len(buf) == cap(buf) {
			if err := flush(); err != nil {
				return n, err
			}
		}
	}
	if err := it.Err(); err != nil {
		return n, err
	}
	err := flush()
	return n, err
}
