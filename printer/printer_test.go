/*
File    : golox/printer/printer_test.go
*/
package printer

import (
	"testing"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	stmts, errs := parser.New(src + ";").Parse()
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	return es.Expression
}

// roundTrip parses src, prints the result, and reparses the printed text,
// returning both printed forms so callers can assert they match.
func roundTrip(t *testing.T, src string) (first, second string) {
	t.Helper()
	p := &AstPrinter{}
	first = p.Print(parseExpr(t, src))
	second = p.Print(parseExpr(t, first))
	return first, second
}

func TestPrinter_RoundTrip_Arithmetic(t *testing.T) {
	first, second := roundTrip(t, "1 + 2 * 3 - 4 / 2")
	assert.Equal(t, first, second)
}

func TestPrinter_RoundTrip_Unary(t *testing.T) {
	first, second := roundTrip(t, "-1 + !true")
	assert.Equal(t, first, second)
}

func TestPrinter_RoundTrip_Grouping(t *testing.T) {
	first, second := roundTrip(t, "(1 + 2) * 3")
	assert.Equal(t, first, second)
}

func TestPrinter_RoundTrip_LogicalAndComparison(t *testing.T) {
	first, second := roundTrip(t, "1 < 2 and 3 >= 4 or nil == nil")
	assert.Equal(t, first, second)
}

func TestPrinter_RoundTrip_StringLiteral(t *testing.T) {
	first, second := roundTrip(t, `"hello world"`)
	assert.Equal(t, `"hello world"`, first)
	assert.Equal(t, first, second)
}

func TestPrinter_RoundTrip_Call(t *testing.T) {
	first, second := roundTrip(t, "clock()")
	assert.Equal(t, first, second)

	first, second = roundTrip(t, "f(1, 2 + 3, g(4))")
	assert.Equal(t, first, second)
}

func TestPrinter_RoundTrip_Assign(t *testing.T) {
	stmts, errs := parser.New("var a = 1; a = 2 + 3;").Parse()
	require.Empty(t, errs)
	require.Len(t, stmts, 2)
	es := stmts[1].(*ast.ExpressionStmt)

	p := &AstPrinter{}
	first := p.Print(es.Expression)
	second := p.Print(parseExpr(t, first))
	assert.Equal(t, first, second)
}

func TestPrinter_NumberFormatting(t *testing.T) {
	p := &AstPrinter{}
	assert.Equal(t, "1", p.Print(parseExpr(t, "1")))
	assert.Equal(t, "1.5", p.Print(parseExpr(t, "1.5")))
}

func TestPrinter_NilAndBooleans(t *testing.T) {
	p := &AstPrinter{}
	assert.Equal(t, "nil", p.Print(parseExpr(t, "nil")))
	assert.Equal(t, "true", p.Print(parseExpr(t, "true")))
	assert.Equal(t, "false", p.Print(parseExpr(t, "false")))
}
