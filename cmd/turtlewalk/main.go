//  Copyright (c) 2023 Uber Technologies, Inc.
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

// Command turtlewalk lexes, parses, and builds a CFG for a turtle-walk
// program, then either dumps the CFG, prints a named dataflow analysis's
// result annotated onto the source, samples one or more concrete random
// walks, or renders those walks (and, when combined with --analyze, the
// analysis's inferred covered area) as an SVG overlay.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/turtlewalk/turtlewalk/analysis"
	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/config"
	"github.com/turtlewalk/turtlewalk/diagnostic"
	"github.com/turtlewalk/turtlewalk/lexer"
	"github.com/turtlewalk/turtlewalk/parser"
	"github.com/turtlewalk/turtlewalk/render"
	"github.com/turtlewalk/turtlewalk/walk"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	file        string
	cfgDump     bool
	svg         bool
	dotsOnly    bool
	executions  int
	loopiness   int
	analyzeName string
	help        bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, done := parseArgs(args, stderr)
	if done {
		if opts.help {
			printUsage(stdout)
		}
		return code
	}

	return runFile(opts, stdout, stderr)
}

func parseArgs(args []string, stderr io.Writer) (options, int, bool) {
	var opts options

	if len(args) == 0 {
		fmt.Fprintln(stderr, "error: input file not specified.")
		printUsage(stderr)
		return opts, 1, true
	}
	if strings.HasPrefix(args[0], "-") {
		if args[0] == "--help" || args[0] == "-help" {
			opts.help = true
			return opts, 0, true
		}
		fmt.Fprintln(stderr, "error: input file not specified.")
		printUsage(stderr)
		return opts, 1, true
	}
	opts.file = args[0]

	fs := flag.NewFlagSet("turtlewalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.BoolVar(&opts.cfgDump, "cfg-dump", false, "print the control-flow graph as Graphviz dot")
	fs.BoolVar(&opts.svg, "svg", false, "render sampled executions as an SVG overlay")
	fs.BoolVar(&opts.dotsOnly, "dots-only", false, "with --svg, omit the connecting segments between dots")
	fs.IntVar(&opts.executions, "executions", config.DefaultExecutions, "number of random walks to sample")
	fs.IntVar(&opts.loopiness, "loopiness", config.DefaultLoopiness, "relative weight of taking a back edge while sampling")
	fs.StringVar(&opts.analyzeName, "analyze", "", "run a named dataflow analysis and print its result; walks are then sampled only for --svg")
	fs.BoolVar(&opts.help, "help", false, "show usage and the list of available analyses")

	if err := fs.Parse(args[1:]); err != nil {
		return opts, 1, true
	}
	if opts.help {
		return opts, 0, true
	}
	if opts.executions < 1 {
		fmt.Fprintln(stderr, "error: invalid execution count.")
		return opts, 1, true
	}
	if opts.analyzeName != "" {
		known := false
		for _, name := range analysis.List() {
			if name == opts.analyzeName {
				known = true
				break
			}
		}
		if !known {
			fmt.Fprintf(stderr, "error: unknown analysis %q.\n", opts.analyzeName)
			return opts, 1, true
		}
	}
	return opts, 0, false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: turtlewalk script [options]")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --cfg-dump")
	fmt.Fprintln(w, "  --svg")
	fmt.Fprintln(w, "  --dots-only")
	fmt.Fprintln(w, "  --executions NUMBER")
	fmt.Fprintln(w, "  --loopiness NUMBER")
	fmt.Fprintln(w, "  --analyze ANALYSIS_NAME")
	fmt.Fprintln(w, "  --help")
	fmt.Fprintln(w, "Available analyses:")
	for _, name := range analysis.List() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func runFile(opts options, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(opts.file)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to open file '%s'.\n", opts.file)
		return 1
	}

	diag := diagnostic.NewWriter(stdout, stderr)
	tokens := lexer.New(string(source), diag).LexAll()
	if len(tokens) == 0 {
		return 1
	}

	root, ok := parser.New(diag, tokens).Parse()
	if !ok {
		return 1
	}

	g := cfg.Build(root)
	if opts.cfgDump {
		fmt.Fprintln(stdout, cfg.PrintDOT(g))
	}

	var result analysis.Result
	analyzed := false
	if opts.analyzeName != "" {
		var runOK bool
		result, runOK = analysis.Get(opts.analyzeName, g)
		if !runOK {
			fmt.Fprintf(stderr, "error: unknown analysis %q.\n", opts.analyzeName)
			return 1
		}
		analyzed = true
		if !result.Converged {
			warn := color.New(color.FgYellow)
			warn.Fprintln(stderr, "warning: analysis did not converge within its visit budget.")
		}
		fmt.Fprintln(stdout, ast.Print(root, result.Annotations))
	}

	var executions [][]walk.Step
	if !analyzed || opts.svg {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for i := 0; i < opts.executions; i++ {
			if !analyzed && opts.executions > 1 {
				fmt.Fprintf(stdout, "%d. execution:\n", i+1)
			}
			steps, walkOK := walk.Run(g, opts.loopiness, rng)
			if !walkOK {
				fmt.Fprintln(stderr, "error: the program has no executable walk.")
				return 1
			}
			if !analyzed {
				for _, step := range steps {
					fmt.Fprintf(stdout, "{ x: %d, y: %d }\n", step.Pos.X, step.Pos.Y)
				}
			}
			executions = append(executions, steps)
		}
	}

	if opts.svg {
		fmt.Fprintln(stdout, render.SVG(executions, result.Covered, opts.dotsOnly))
	}

	return 0
}
