// Package all registers every supported triple store backend.
package all

import (
	// supported backends
	_ "github.com/cayleygraph/owlgraph/graph/kv/all"
	_ "github.com/cayleygraph/owlgraph/graph/memstore"
)
