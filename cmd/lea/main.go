/*
File    : lea/cmd/lea/main.go
*/

// Command lea is the entry point for the lea interpreter: with no
// arguments it starts an interactive REPL, with one file argument it
// runs that file and exits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lea-lang/lea/eval"
	"github.com/lea-lang/lea/objects"
	"github.com/lea-lang/lea/parser"
	"github.com/lea-lang/lea/repl"
)

const version = "0.1.0"

var banner = `
   __
  / /__ ___ _
 / / -_) _ \`|
/_/\__/\_,_/
`

var redColor = color.New(color.FgRed)

func main() {
	maxDepth := flag.Int("max-depth", eval.DefaultMaxDepth, "maximum evaluator recursion depth")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("lea %s\n", version)
		return
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		r := repl.New(banner, version, ">> ")
		if err := r.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "repl error: %s\n", err)
			os.Exit(1)
		}
	case 1:
		runFile(args[0], *maxDepth)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lea [--max-depth N] [file]")
	flag.PrintDefaults()
}

// runFile parses and evaluates a single source file, printing its result
// to stdout. Any read, parse, or evaluation failure is reported to stderr
// and exits with status 1 — unlike the REPL, a file run does not continue
// past an error.
func runFile(path string, maxDepth int) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "cant open file error: message: can't open file: %s\n", path)
		os.Exit(1)
	}

	p := parser.New(string(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "parse error: message: %s\n", e)
		}
		os.Exit(1)
	}

	e := eval.New()
	e.MaxDepth = maxDepth
	e.SetWriter(os.Stdout)

	result := e.Eval(program)
	if result == nil {
		return
	}

	if result.Type() == objects.ErrorObj {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result.Type() != objects.VoidObj {
		fmt.Println(result.Inspect())
	}
}
