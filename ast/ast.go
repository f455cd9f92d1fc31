/*
File    : golox/ast/ast.go
*/

// Package ast defines the abstract syntax tree produced by the parser:
// two sum types, Expr and Stmt, plus the double-dispatch visitor
// interfaces used to walk them. Each concrete node type is a small struct;
// polymorphism is expressed through the Accept/Visit pattern rather than
// type switches, following the teacher's NodeVisitor convention.
package ast

import "github.com/golox-lang/golox/lexer"

// Expr is implemented by every expression node. Accept dispatches to the
// matching Visit method on v and returns whatever that visitor produces
// (an evaluated Value, a pretty-printed string, or nil during resolution).
type Expr interface {
	Accept(v ExprVisitor) (any, error)
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// ExprVisitor is implemented by anything that walks expressions: the
// interpreter, the resolver, and the ast printer.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (any, error)
	VisitVariableExpr(e *VariableExpr) (any, error)
	VisitAssignExpr(e *AssignExpr) (any, error)
	VisitUnaryExpr(e *UnaryExpr) (any, error)
	VisitBinaryExpr(e *BinaryExpr) (any, error)
	VisitLogicalExpr(e *LogicalExpr) (any, error)
	VisitGroupingExpr(e *GroupingExpr) (any, error)
	VisitCallExpr(e *CallExpr) (any, error)
}

// StmtVisitor is implemented by anything that walks statements: the
// interpreter and the resolver.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// nextExprID hands out identities for reference-producing expression nodes
// (Variable and Assign). The resolver keys its site→depth table by this
// identity rather than by the variable's name, so that two unrelated
// occurrences of the same name in one scope resolve independently — see
// DESIGN.md for why keying by name (as a draft of the reference
// implementation does) is a defect, not a simplification.
var nextExprID int

func newExprID() int {
	nextExprID++
	return nextExprID
}

// LiteralExpr holds a constant value parsed directly from source: a
// bool, nil, float64, or string. No other Go type ever appears here.
type LiteralExpr struct {
	Value any
}

func (e *LiteralExpr) Accept(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// VariableExpr is a read of a binding. ID identifies this occurrence for
// resolver lookups; its source line is Name.Line.
type VariableExpr struct {
	Name Token
	ID   int
}

func (e *VariableExpr) Accept(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }

// AssignExpr is a write to a previously declared binding; it evaluates to
// the assigned value.
type AssignExpr struct {
	Name  Token
	Value Expr
	ID    int
}

func (e *AssignExpr) Accept(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// UnaryExpr applies `-` (negate) or `!` (logical not) to Right.
type UnaryExpr struct {
	Op    Token
	Right Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr applies an arithmetic, comparison, or equality operator.
type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`; Op.Type distinguishes which. Unlike
// BinaryExpr, evaluation short-circuits and returns an operand value, not
// a coerced boolean.
type LogicalExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// GroupingExpr is a parenthesized expression; semantically transparent.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// CallExpr invokes Callee with Args. Paren is the closing-paren token,
// whose line is reported for call-time runtime errors (wrong arity, not
// callable).
type CallExpr struct {
	Callee Expr
	Paren  Token
	Args   []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its display form.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name, binding it to Initializer's value (nil if
// Initializer is absent).
type VarStmt struct {
	Name        Token
	Initializer Expr // nil when no initializer was written
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt; ElseBranch is nil when no else clause was written.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil when absent
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt; also the desugared target of `for`.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function; Params are bare parameter name
// tokens. Line is the line of the function's name.
type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
	Line   int
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt; Value is nil when the bare `return;` form was written (the
// function then returns nil).
type ReturnStmt struct {
	Keyword Token
	Value   Expr // nil when absent
	Line    int
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// Token is a thin alias so the ast package need not import the lexer
// package's Token by name in every field declaration above while still
// sharing its exact representation.
type Token = lexer.Token

// NewVariableExpr and NewAssignExpr assign a fresh resolver identity; every
// other expression constructor is a plain struct literal since only reads
// and writes of a binding need resolving.
func NewVariableExpr(name Token) *VariableExpr {
	return &VariableExpr{Name: name, ID: newExprID()}
}

func NewAssignExpr(name Token, value Expr) *AssignExpr {
	return &AssignExpr{Name: name, Value: value, ID: newExprID()}
}
