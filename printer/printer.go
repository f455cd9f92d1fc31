/*
File    : golox/printer/printer.go
*/

// Package printer renders an expression AST back into golox source text.
// It exists to support the round-trip property in spec.md §8: printing a
// parsed expression and re-parsing the result must yield an AST whose
// evaluation is equivalent to the original. The teacher's PrintingVisitor
// and original_source/rlox/src/printer.rs's AstPrinter both emit a
// Lisp-style "(op operand ...)" prefix form meant only for debug display —
// not valid golox infix syntax, so not re-parseable. This printer keeps
// their fully-parenthesized, no-precedence-ambiguity idea but renders true
// infix golox instead, so the output is always fed straight back into the
// parser successfully.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golox-lang/golox/ast"
)

// AstPrinter implements ast.ExprVisitor, accumulating no state of its own —
// each Visit call returns the rendered string for just that node.
type AstPrinter struct{}

// Print renders e as a single line of golox source.
func (p *AstPrinter) Print(e ast.Expr) string {
	s, _ := e.Accept(p)
	return s.(string)
}

func (p *AstPrinter) VisitLiteralExpr(e *ast.LiteralExpr) (any, error) {
	switch v := e.Value.(type) {
	case nil:
		return "nil", nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		// 'f' never emits exponent notation, which the lexer cannot read.
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		// The lexer has no escape sequences, so a literal's contents never
		// include an embedded '"' — a bare quote-wrap round-trips exactly.
		return fmt.Sprintf("\"%s\"", v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (p *AstPrinter) VisitVariableExpr(e *ast.VariableExpr) (any, error) {
	return e.Name.Lexeme, nil
}

func (p *AstPrinter) VisitAssignExpr(e *ast.AssignExpr) (any, error) {
	return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, p.Print(e.Value)), nil
}

func (p *AstPrinter) VisitUnaryExpr(e *ast.UnaryExpr) (any, error) {
	return fmt.Sprintf("(%s%s)", e.Op.Lexeme, p.Print(e.Right)), nil
}

func (p *AstPrinter) VisitBinaryExpr(e *ast.BinaryExpr) (any, error) {
	return fmt.Sprintf("(%s %s %s)", p.Print(e.Left), e.Op.Lexeme, p.Print(e.Right)), nil
}

func (p *AstPrinter) VisitLogicalExpr(e *ast.LogicalExpr) (any, error) {
	return fmt.Sprintf("(%s %s %s)", p.Print(e.Left), e.Op.Lexeme, p.Print(e.Right)), nil
}

// VisitGroupingExpr renders the inner expression alone: every compound node
// already wraps itself in parentheses, so adding another pair here would
// grow the output by one layer on each print/reparse cycle.
func (p *AstPrinter) VisitGroupingExpr(e *ast.GroupingExpr) (any, error) {
	return p.Print(e.Expression), nil
}

func (p *AstPrinter) VisitCallExpr(e *ast.CallExpr) (any, error) {
	var b strings.Builder
	b.WriteString(p.Print(e.Callee))
	b.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Print(arg))
	}
	b.WriteByte(')')
	return b.String(), nil
}
