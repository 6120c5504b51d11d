/*
File    : lea/repl/repl.go
*/

// Package repl implements lea's interactive Read-Eval-Print Loop: a
// readline-backed prompt that parses and evaluates one line at a time
// against a scope that persists for the life of the session.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/lea-lang/lea/eval"
	"github.com/lea-lang/lea/objects"
	"github.com/lea-lang/lea/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const exitCommand = ".exit"

// Repl is a configured interactive session: its banner/version strings
// are cosmetic, but its Prompt is what readline actually shows the user.
type Repl struct {
	Banner  string
	Version string
	Prompt  string

	sessionID uuid.UUID
}

// New creates a Repl, generating a fresh session id used only to tag the
// banner — it has no bearing on evaluation, which is a single persistent
// scope regardless of how the session is identified.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, sessionID: uuid.New()}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 40)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "lea %s  session %s\n", r.Version, r.sessionID)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type lea expressions and press enter.")
	cyanColor.Fprintf(w, "Type '%s' to quit.\n", exitCommand)
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until the user quits or sends EOF (ctrl-D). The
// evaluator and its scope are created once, before the loop starts, so
// variables and functions defined on one line stay bound on the next.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: w,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "bye")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitCommand {
			fmt.Fprintln(w, "bye")
			return nil
		}

		r.evalLine(w, line, evaluator)
	}
}

// evalLine parses and evaluates a single line, printing the result (or
// parse/runtime errors) in color. Unlike file execution, the REPL never
// stops on an error — it reports it and waits for the next line.
func (r *Repl) evalLine(w io.Writer, line string, evaluator *eval.Evaluator) {
	p := parser.New(line)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(w, "parse error: %s\n", e)
		}
		return
	}

	result := evaluator.Eval(program)
	if result == nil || result.Type() == objects.VoidObj {
		return
	}

	if result.Type() == objects.ErrorObj {
		redColor.Fprintf(w, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(w, "%s\n", result.Inspect())
}
