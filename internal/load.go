package internal

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
	_ "github.com/cayleygraph/quad/pquads"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/decompressor"
)

// DefaultFormat is used when the format cannot be guessed from the file name.
const DefaultFormat = "nquads"

var compressedExt = map[string]bool{".gz": true, ".bz2": true, ".zst": true}

// FormatFor returns the quad format named typ, or the one matching the
// extension of path when typ is empty.
func FormatFor(path, typ string) (*quad.Format, error) {
	if typ == "" {
		ext := filepath.Ext(path)
		if compressedExt[ext] {
			ext = filepath.Ext(strings.TrimSuffix(path, ext))
		}
		if f := quad.FormatByExt(ext); f != nil {
			return f, nil
		}
		typ = DefaultFormat
	}
	if typ == "quad" || typ == "nquad" {
		typ = "nquads"
	}
	f := quad.FormatByName(typ)
	if f == nil {
		return nil, fmt.Errorf("unknown quad format %q", typ)
	}
	return f, nil
}

// Load loads an ontology from the given path into g and returns the number
// of triples written. See DecompressAndLoad for more information.
func Load(g graph.Graph, batch int, path, typ string) (int, error) {
	w := graph.NewWriter(g)
	defer w.Close()
	err := DecompressAndLoad(w, batch, path, typ)
	return w.Written(), err
}

// DecompressAndLoad will load or fetch an ontology from the given path,
// decompress it and copy its quads into w.
func DecompressAndLoad(w quad.BatchWriter, batch int, path, typ string) error {
	var r io.Reader

	if path == "" {
		return nil
	}
	if path == "-" {
		r = os.Stdin
	} else if u, err := url.Parse(path); err != nil || u.Scheme == "file" || u.Scheme == "" {
		// Don't alter relative URL path or non-URL path parameter.
		if err == nil && u.Scheme != "" {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open file %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		res, err := http.Get(path)
		if err != nil {
			return fmt.Errorf("could not get resource <%s>: %w", u, err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
		}
		r = res.Body
	}

	r, err := decompressor.New(r)
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	var qr quad.Reader
	switch typ {
	case "cquad":
		qr = nquads.NewReader(r, false)
	case "nquad":
		qr = nquads.NewReader(r, true)
	default:
		rf, err := FormatFor(path, typ)
		if err != nil {
			return err
		} else if rf.Reader == nil {
			return fmt.Errorf("decoding of %q is not supported", rf.Name)
		}
		rc := rf.Reader(r)
		defer rc.Close()
		qr = rc
	}

	n, err := quad.CopyBatch(&batchLogger{BatchWriter: w}, qr, batch)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", path, err)
	}
	clog.Infof("read %d triples from %q", n, path)
	return nil
}

type batchLogger struct {
	cnt int
	quad.BatchWriter
}

func (w *batchLogger) WriteQuads(quads []quad.Quad) (int, error) {
	n, err := w.BatchWriter.WriteQuads(quads)
	if clog.V(2) {
		w.cnt += n
		clog.Infof("Wrote %d quads.", w.cnt)
	}
	return n, err
}
