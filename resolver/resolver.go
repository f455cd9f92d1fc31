/*
File    : golox/resolver/resolver.go
*/

// Package resolver performs the static pass between parsing and
// interpretation: for every variable read or write it counts the number of
// enclosing scopes between the occurrence and its declaring scope, so the
// interpreter can jump straight to the right environment frame instead of
// walking the chain and guessing. Grounded on the scope-stack walk in
// original_source/rlox/src/resolver.rs, with one deliberate deviation: that
// draft keys its site→depth table by variable name, which conflates two
// unrelated occurrences of the same name in the same scope. This resolver
// keys by the AST node's own identity (ast.VariableExpr.ID /
// ast.AssignExpr.ID, assigned once at parse time) instead.
package resolver

import (
	"fmt"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/parser"
)

// Locals maps an expression occurrence's ID to the number of enclosing
// scopes to skip before reaching its declaring scope.
type Locals map[int]int

// functionType tracks whether the resolver is currently walking a function
// body, so a `return` statement outside any function can be flagged as a
// compile error instead of letting its ReturnSignal escape to the driver.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

// Resolver walks an already-parsed statement list exactly once, producing
// a Locals table and a list of compile errors (reads of a variable in its
// own initializer, and returns outside any function).
// It carries no reference to an interpreter — that wiring happens when the
// caller installs the resulting Locals table, keeping this package usable
// in isolation (and independently testable).
type Resolver struct {
	scopes          []map[string]bool
	locals          Locals
	errors          []*parser.CompileError
	currentFunction functionType
}

func New() *Resolver {
	return &Resolver{locals: Locals{}}
}

// Resolve walks stmts and returns the accumulated site→depth table plus
// any compile errors encountered. A non-empty error slice means the
// returned Locals table is unreliable for the sites that failed.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Locals, []*parser.CompileError) {
	r.resolveStmts(stmts)
	return r.locals, r.errors
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	// StmtVisitor methods never return a real error; resolver failures are
	// recorded on r.errors directly so resolution can continue past them.
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack top-down for name and, if found at
// depth d (0 = innermost), records (id, d). An unresolved name is left out
// of the table entirely; the interpreter falls back to a global lookup.
func (r *Resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(params []ast.Token, body []ast.Stmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, p := range params {
		r.declare(p.Lexeme)
		r.define(p.Lexeme)
	}
	r.resolveStmts(body)
	r.endScope()
}

func (r *Resolver) error(line int, msg string) {
	r.errors = append(r.errors, &parser.CompileError{Line: line, Text: fmt.Sprintf("Error: %s", msg)})
}

// --- ast.StmtVisitor ---

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	r.declare(s.Name.Lexeme)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	r.declare(s.Name.Lexeme)
	r.define(s.Name.Lexeme)
	r.resolveFunction(s.Params, s.Body, functionFunction)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if r.currentFunction == functionNone {
		r.error(s.Line, "Can't return from top-level code.")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}

// --- ast.ExprVisitor ---

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (any, error) {
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) (any, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.error(e.Name.Line, "Can't read variable in its own initializer.")
			return nil, nil
		}
	}
	r.resolveLocal(e.ID, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) (any, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) (any, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}
