/*
File    : golox/interpreter/interpreter.go
*/

// Package interpreter is the tree-walking evaluator: it drives the
// environment chain and the value domain by visiting the AST the parser
// produced, depth-annotated by the resolver. Grounded on the teacher's
// eval.Evaluator — an io.Writer-carrying struct with a "current scope"
// pointer swapped and restored around block execution — generalized from
// the teacher's untyped GoMixObject error values to typed Go errors
// (value.OpError from the value package, promoted here to a RuntimeError
// that carries the offending line, mirroring e.createError's
// "[line:col] message" convention but with the exact "[line N]" shape
// spec'd for this language).
package interpreter

import (
	"fmt"
	"io"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/function"
	"github.com/golox-lang/golox/resolver"
	"github.com/golox-lang/golox/value"
)

// RuntimeError is a single runtime failure: a message plus the line of
// the token responsible. The driver prints Msg, then "[line N]", then
// exits 70.
type RuntimeError struct {
	Msg  string
	Line int
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErr(line int, msg string) *RuntimeError {
	return &RuntimeError{Msg: msg, Line: line}
}

// Interpreter executes a resolved statement list. Out receives Print
// statement output; diagnostics are returned as errors, never written
// here, so the driver controls where they go.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	locals  resolver.Locals
	Out     io.Writer
}

// New creates an interpreter writing Print output to out, with the global
// frame pre-populated with the native clock binding.
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", function.Clock())
	return &Interpreter{Globals: globals, env: globals, Out: out, locals: resolver.Locals{}}
}

// SetLocals merges a resolver's site→depth table into the interpreter's.
// Every ast.VariableExpr/ast.AssignExpr ID is unique for the process's
// lifetime (assigned once at parse time and never reused), so merging
// across repeated calls is safe — this is what lets the REPL resolve and
// install each line's table independently while still correctly running a
// function whose body was resolved several lines earlier.
func (in *Interpreter) SetLocals(locals resolver.Locals) {
	for id, depth := range locals {
		in.locals[id] = depth
	}
}

// Interpret runs stmts in order at global scope. It stops at the first
// runtime error (the current top-level statement sequence aborts; there
// is no retry) and returns it; a nil return means every statement ran.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(s ast.Stmt) error {
	return s.Accept(in)
}

func (in *Interpreter) evaluate(e ast.Expr) (value.Value, error) {
	v, err := e.Accept(in)
	if err != nil {
		return nil, err
	}
	return v.(value.Value), nil
}

// ExecuteBlock runs stmts with env as the active frame, restoring the
// previous active frame on every exit path — normal completion, a runtime
// error, or a return signal unwinding through it. This is the only place
// the active frame pointer changes, matching the single-writer discipline
// a single-threaded tree walker needs no locking to uphold.
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) lookUpVariable(name ast.Token, id int) (value.Value, error) {
	if depth, ok := in.locals[id]; ok {
		return in.env.GetAt(depth, name.Lexeme), nil
	}
	v, err := in.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, runtimeErr(name.Line, err.Error())
	}
	return v, nil
}

// --- ast.StmtVisitor ---

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := in.evaluate(s.Expression)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Out, v.String())
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var v value.Value = value.Nil{}
	if s.Initializer != nil {
		var err error
		v, err = in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.ExecuteBlock(s.Statements, environment.New(in.env))
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if value.IsTruthy(cond) {
		return in.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return in.execute(s.ElseBranch)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !value.IsTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := &function.Function{
		Name:    s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: in.env,
	}
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var v value.Value = value.Nil{}
	if s.Value != nil {
		var err error
		v, err = in.evaluate(s.Value)
		if err != nil {
			return err
		}
	}
	return &function.ReturnSignal{Value: v}
}

// --- ast.ExprVisitor ---

func (in *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (any, error) {
	return literalValue(e.Value), nil
}

func literalValue(v any) value.Value {
	switch v := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		panic(fmt.Sprintf("interpreter: unexpected literal payload %T", v))
	}
}

func (in *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (any, error) {
	return in.lookUpVariable(e.Name, e.ID)
}

func (in *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (any, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.locals[e.ID]; ok {
		in.env.AssignAt(depth, e.Name.Lexeme, v)
		return v, nil
	}
	if err := in.Globals.Assign(e.Name.Lexeme, v); err != nil {
		return nil, runtimeErr(e.Name.Line, err.Error())
	}
	return v, nil
}

func (in *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (any, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Lexeme {
	case "-":
		v, err := value.Negate(right)
		if err != nil {
			return nil, runtimeErr(e.Op.Line, err.Error())
		}
		return v, nil
	case "!":
		return value.Not(right), nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected unary operator %q", e.Op.Lexeme))
	}
}

func (in *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	var v value.Value
	switch e.Op.Lexeme {
	case "+":
		v, err = value.Add(left, right)
	case "-":
		v, err = value.Sub(left, right)
	case "*":
		v, err = value.Mul(left, right)
	case "/":
		v, err = value.Div(left, right)
	case "<":
		v, err = value.Less(left, right)
	case "<=":
		v, err = value.LessEqual(left, right)
	case ">":
		v, err = value.Greater(left, right)
	case ">=":
		v, err = value.GreaterEqual(left, right)
	case "==":
		v, err = value.Bool(value.Equal(left, right)), nil
	case "!=":
		v, err = value.Bool(!value.Equal(left, right)), nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected binary operator %q", e.Op.Lexeme))
	}
	if err != nil {
		return nil, runtimeErr(e.Op.Line, err.Error())
	}
	return v, nil
}

func (in *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Lexeme == "or" {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (any, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitCallExpr(e *ast.CallExpr) (any, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErr(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErr(e.Paren.Line, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	v, err := callable.Call(in, args)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return nil, err
		}
		return nil, runtimeErr(e.Paren.Line, err.Error())
	}
	return v, nil
}
