/*
File    : golox/internal/repl/repl.go
*/

// Package repl implements golox's interactive read-eval-print loop.
// Grounded on the teacher's repl.Repl: a readline-backed loop with
// fatih/color used for a startup banner and error highlighting. Trimmed
// to match the external interface contract exactly — prompt is the
// literal "> ", there is no ".exit" command (Ctrl-D/EOF ends the
// session), and the banner carries no version/author/license fields the
// teacher's Repl struct held, since this language has no such metadata.
package repl

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/golox-lang/golox/interpreter"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/resolver"
)

const prompt = "> "

var (
	bannerColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

// Run starts the loop, writing Print output and the startup banner to out
// and diagnostics to errOut. It returns when the input stream is
// exhausted (EOF) or readline itself fails to start.
func Run(out, errOut io.Writer) error {
	bannerColor.Fprintln(out, "golox")

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	in := interpreter.New(out)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, or readline.ErrInterrupt on Ctrl-C
			return nil
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		evalLine(in, line, errOut)
	}
}

// evalLine parses, resolves, and interprets a single line of input,
// printing any diagnostic to errOut and otherwise leaving in's global
// environment mutated for the next line. Unlike file execution, the REPL
// never exits on error — it reports and keeps looping.
func evalLine(in *interpreter.Interpreter, line string, errOut io.Writer) {
	stmts, perrs := parser.New(line).Parse()
	if len(perrs) > 0 {
		for _, e := range perrs {
			errorColor.Fprintln(errOut, e.Error())
		}
		return
	}

	locals, rerrs := resolver.New().Resolve(stmts)
	if len(rerrs) > 0 {
		for _, e := range rerrs {
			errorColor.Fprintln(errOut, e.Error())
		}
		return
	}
	in.SetLocals(locals)

	if err := in.Interpret(stmts); err != nil {
		if rerr, ok := err.(*interpreter.RuntimeError); ok {
			errorColor.Fprintln(errOut, rerr.Error())
			errorColor.Fprintf(errOut, "[line %d]\n", rerr.Line)
			return
		}
		errorColor.Fprintln(errOut, err.Error())
	}
}
