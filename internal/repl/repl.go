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

// Package repl implements an interactive shell over a model.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/cayleygraph/quad/voc"
	"github.com/peterh/liner"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/internal"
	"github.com/cayleygraph/owlgraph/model"
	"github.com/cayleygraph/owlgraph/owl"
	"github.com/cayleygraph/owlgraph/search"
	_ "github.com/cayleygraph/owlgraph/voc/core"
)

// ErrExit is returned by Exec for the exit command.
var ErrExit = errors.New("repl: exit")

const (
	ps1 = "owlgraph> "

	history = ".owlgraph_history"
)

const helpText = `Help
	exit // Exit
	help // this help
	:a <triple> // add triple
	:d <triple> // delete triple
	:debug [t|f]
	axioms [type] // list axioms, optionally of one type
	search <iri|_:bnode> [kind] // axioms referencing an entity (` + "kind: class, datatype, object, data, annotation, individual" + `)
	component <type> // axioms containing a component type
	stats // axiom counts per type
	header // ontology id and annotations
	load <file> [format] // load an ontology file
	dump <file> [format] // dump the graph
`

// Session evaluates shell commands against a model.
type Session struct {
	m         *model.Model
	c         axioms.Config
	cacheSize int
	out       io.Writer
}

func NewSession(m *model.Model, c axioms.Config, cacheSize int, out io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	return &Session{m: m, c: c, cacheSize: cacheSize, out: out}
}

func (s *Session) factory() *owl.Factory { return owl.NewFactory(s.m, s.cacheSize) }

func (s *Session) printAxioms(axs []*owl.Axiom, start time.Time) {
	for _, a := range axs {
		fmt.Fprintln(s.out, a.String())
	}
	if len(axs) > 0 {
		results := "Result"
		if len(axs) > 1 {
			results += "s"
		}
		fmt.Fprintf(s.out, "-----------\n%d %s\n", len(axs), results)
		fmt.Fprintf(s.out, "Elapsed time: %g ms\n\n", float64(time.Since(start).Microseconds())/1e3)
	}
}

// parseNode accepts "<iri>", "_:bnode", a prefixed name like "owl:Thing" or a bare IRI.
func parseNode(arg string) quad.Value {
	arg = strings.TrimSpace(arg)
	switch {
	case strings.HasPrefix(arg, "_:"):
		return quad.BNode(arg[2:])
	case strings.HasPrefix(arg, "<") && strings.HasSuffix(arg, ">"):
		return quad.IRI(arg[1 : len(arg)-1])
	}
	return quad.IRI(voc.FullIRI(arg))
}

// Exec runs a single command line.
func (s *Session) Exec(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return nil
	}
	cmd, args := splitLine(line)
	fields := strings.Fields(args)
	start := time.Now()

	switch cmd {
	case ":debug":
		args = strings.TrimSpace(args)
		var debug bool
		switch args {
		case "t":
			debug = true
		case "f":
			// Do nothing.
		default:
			var err error
			debug, err = strconv.ParseBool(args)
			if err != nil {
				return fmt.Errorf("cannot parse %q as a valid boolean - acceptable values: 't'|'true' or 'f'|'false'", args)
			}
		}
		if debug {
			clog.SetV(2)
		} else {
			clog.SetV(0)
		}
		fmt.Fprintf(s.out, "Debug set to %t\n", debug)
		return nil

	case ":a", ":d":
		q, err := nquads.Parse(args)
		if err != nil {
			return fmt.Errorf("not a valid triple: %w", err)
		}
		q.Label = nil
		if cmd == ":a" {
			return s.m.Add(q)
		}
		return s.m.Remove(q)

	case "help":
		fmt.Fprint(s.out, helpText)
		return nil

	case "exit":
		return ErrExit

	case "axioms":
		types := owl.AxiomTypes()
		if len(fields) > 0 {
			t, ok := owl.ParseAxiomType(fields[0])
			if !ok {
				return fmt.Errorf("unknown axiom type: %q", fields[0])
			}
			types = []owl.AxiomType{t}
		}
		f := s.factory()
		var out []*owl.Axiom
		for _, t := range types {
			if err := ctx.Err(); err != nil {
				return err
			}
			axs, err := axioms.List(t, s.m, f, s.c)
			if err != nil {
				return err
			}
			out = append(out, axs...)
		}
		s.printAxioms(out, start)
		return nil

	case "search":
		if len(fields) == 0 {
			return errors.New("usage: search <iri|_:bnode> [kind]")
		}
		sr := search.New(s.m, s.factory(), s.c)
		var (
			axs []*owl.Axiom
			err error
		)
		node := parseNode(fields[0])
		switch node := node.(type) {
		case quad.BNode:
			axs, err = sr.ByAnonymousIndividual(node)
		case quad.IRI:
			if len(fields) < 2 {
				axs, err = sr.ByIRI(node)
				break
			}
			k, ok := search.ParseKind(fields[1])
			if !ok {
				return fmt.Errorf("unknown entity kind %q; expected one of %s", fields[1], strings.Join(search.KindNames(), ", "))
			}
			axs, err = sr.ByEntity(owl.NewEntity(k, node))
		}
		if err != nil {
			return err
		}
		s.printAxioms(axs, start)
		return nil

	case "component":
		if len(fields) == 0 {
			return errors.New("usage: component <type>")
		}
		ct, ok := owl.ParseComponentType(fields[0])
		if !ok {
			return fmt.Errorf("unknown component type: %q", fields[0])
		}
		axs, err := search.New(s.m, s.factory(), s.c).ByComponentType(ct)
		if err != nil {
			return err
		}
		s.printAxioms(axs, start)
		return nil

	case "stats":
		f := s.factory()
		total := 0
		for _, t := range owl.AxiomTypes() {
			axs, err := axioms.List(t, s.m, f, s.c)
			if err != nil {
				return err
			}
			if len(axs) != 0 {
				fmt.Fprintf(s.out, "%s\t%d\n", t, len(axs))
				total += len(axs)
			}
		}
		fmt.Fprintf(s.out, "-----------\n%d axioms, %d triples\n", total, s.m.Graph().Size())
		return nil

	case "header":
		if id, ok := s.m.ID(); ok {
			fmt.Fprintf(s.out, "Ontology(%s)\n", id)
		} else {
			fmt.Fprintln(s.out, "no ontology header")
		}
		anns, err := axioms.HeaderAnnotations(s.m, s.factory())
		if err != nil {
			return err
		}
		for _, a := range anns {
			fmt.Fprintf(s.out, "\t%s\n", a)
		}
		return nil

	case "load", "dump":
		if len(fields) == 0 {
			return fmt.Errorf("usage: %s <file> [format]", cmd)
		}
		var typ string
		if len(fields) > 1 {
			typ = fields[1]
		}
		var (
			n   int
			err error
		)
		if cmd == "load" {
			n, err = internal.Load(s.m.Graph(), quad.DefaultBatch, fields[0], typ)
		} else {
			n, err = internal.Dump(s.m.Graph(), fields[0], typ)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%d triples\n", n)
		return nil
	}
	return fmt.Errorf("unknown command: %q", cmd)
}

// Repl runs an interactive shell on the terminal until exit or EOF.
func Repl(ctx context.Context, s *Session, timeout time.Duration) error {
	term, err := terminal(history)
	if os.IsNotExist(err) {
		fmt.Printf("creating new history file: %q\n", history)
	}
	defer persist(term, history)

	newCtx := func() (context.Context, func()) { return ctx, func() {} }
	if timeout > 0 {
		newCtx = func() (context.Context, func()) { return context.WithTimeout(ctx, timeout) }
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := term.Prompt(ps1)
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return err
		}
		term.AppendHistory(line)

		nctx, cancel := newCtx()
		err = s.Exec(nctx, line)
		cancel()
		if err == ErrExit {
			return nil
		} else if err != nil {
			fmt.Println("Error:", err)
		}
	}
}

// Splits a line into a command and its arguments
// e.g. ":a b c d ." will be split into ":a" and " b c d ."
func splitLine(line string) (string, string) {
	var command, arguments string

	line = strings.TrimSpace(line)

	// An empty line/a line consisting of whitespace contains neither command nor arguments
	if len(line) > 0 {
		command = strings.Fields(line)[0]

		// A line containing only a command has no arguments
		if len(line) > len(command) {
			arguments = line[len(command):]
		}
	}

	return command, arguments
}

func terminal(path string) (*liner.State, error) {
	term := liner.NewLiner()
	term.SetCtrlCAborts(true)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c

		err := persist(term, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to properly clean up terminal: %v\n", err)
			os.Exit(1)
		}

		os.Exit(0)
	}()

	f, err := os.Open(path)
	if err != nil {
		return term, err
	}
	defer f.Close()
	_, err = term.ReadHistory(f)
	return term, err
}

func persist(term *liner.State, path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("could not open %q to append history: %w", path, err)
	}
	defer f.Close()
	_, err = term.WriteHistory(f)
	if err != nil {
		return fmt.Errorf("could not write history to %q: %w", path, err)
	}
	return term.Close()
}
