package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/cayleygraph/owlgraph/clog/glog"
	"github.com/cayleygraph/owlgraph/cmd/owlgraph/command"

	// Load all supported backends.
	_ "github.com/cayleygraph/owlgraph/graph/all"
)

func main() {
	// glog flags are registered on the standard flag set and parsed by cobra.
	flag.CommandLine.Parse([]string{})
	if err := command.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
