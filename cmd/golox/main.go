/*
File    : golox/cmd/golox/main.go
*/

// Command golox is the interpreter's entry point. Grounded on the
// teacher's main/main.go dispatch between file and REPL mode, trimmed to
// exactly the external-interface contract: zero or one positional
// argument, no --help/--version/server-mode extensions (those would
// contradict an explicit, exhaustive interface spec rather than merely
// add to it — see DESIGN.md).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/golox-lang/golox/interpreter"
	"github.com/golox-lang/golox/internal/repl"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/resolver"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

var errorColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	switch len(args) {
	case 0:
		if err := repl.Run(stdout, stderr); err != nil {
			fmt.Fprintln(stderr, err)
			return exitRuntime
		}
		return exitOK
	case 1:
		return runFile(args[0], stdout, stderr)
	default:
		fmt.Fprintln(stderr, "Usage: golox [path]")
		return exitUsage
	}
}

func runFile(path string, stdout, stderr *os.File) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	stmts, perrs := parser.New(string(src)).Parse()
	if len(perrs) > 0 {
		for _, e := range perrs {
			errorColor.Fprintln(stderr, e.Error())
		}
		return exitCompile
	}

	locals, rerrs := resolver.New().Resolve(stmts)
	if len(rerrs) > 0 {
		for _, e := range rerrs {
			errorColor.Fprintln(stderr, e.Error())
		}
		return exitCompile
	}

	in := interpreter.New(stdout)
	in.SetLocals(locals)
	if err := in.Interpret(stmts); err != nil {
		rerr, ok := err.(*interpreter.RuntimeError)
		if !ok {
			errorColor.Fprintln(stderr, err)
			return exitRuntime
		}
		errorColor.Fprintln(stderr, rerr.Error())
		errorColor.Fprintf(stderr, "[line %d]\n", rerr.Line)
		return exitRuntime
	}
	return exitOK
}
