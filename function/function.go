/*
File    : golox/function/function.go
*/

// Package function provides the two value.Callable implementations golox
// needs: user-defined closures and native (host-provided) functions.
// Function is grounded on the teacher's function.Function — name,
// parameters, body, and a captured scope — generalized from the teacher's
// single flat parameter-name slice to full ast.Token parameters and from
// its *scope.Scope to *environment.Environment. The captured field is a
// live pointer, never a copy: calling a closure must observe writes made
// through any other path to the same frame, which is exactly the property
// the teacher's Scope.Copy() would break (see DESIGN.md).
package function

import (
	"fmt"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/value"
)

// Evaluator is the slice of *interpreter.Interpreter that a Function needs
// in order to run its body. Declaring it here instead of importing the
// interpreter package avoids an import cycle (interpreter must import
// function to construct Function values when it evaluates a
// FunctionStmt).
type Evaluator interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
}

// ReturnSignal is the internal, non-user-visible control-flow construct
// that unwinds a `return` out of a function body. Interpreter.VisitReturnStmt
// raises it; Function.Call is the only place that catches it. It
// implements error purely so it can travel through the same error-return
// channel as real errors without a second plumbing path.
type ReturnSignal struct {
	Value value.Value
}

func (r *ReturnSignal) Error() string { return "return" }

// Function is a user-defined closure: a name, parameter names, a body,
// and the environment frame active at the point of declaration.
type Function struct {
	Name    string
	Params  []ast.Token
	Body    []ast.Stmt
	Closure *environment.Environment
}

func (f *Function) Type() value.Type { return value.TypeCallable }

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Name) }

func (f *Function) Arity() int { return len(f.Params) }

// Call binds args to Params in a fresh frame enclosed by the captured
// closure (not the caller's environment — that is what makes this
// lexically, not dynamically, scoped), runs the body, and translates a
// caught ReturnSignal into a normal return value. A body that falls off
// the end without hitting `return` evaluates to nil.
func (f *Function) Call(interp any, args []value.Value) (value.Value, error) {
	eval := interp.(Evaluator)

	env := environment.New(f.Closure)
	for i, p := range f.Params {
		env.Define(p.Lexeme, args[i])
	}

	if err := eval.ExecuteBlock(f.Body, env); err != nil {
		if ret, ok := err.(*ReturnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	return value.Nil{}, nil
}
