/*
File    : golox/parser/parser.go
*/

// Package parser implements a recursive-descent, Pratt-precedence parser
// over the golox grammar. It pulls tokens lazily from a lexer.Lexer one at
// a time (the lexer never materializes a full token slice), and collects
// every CompileError it encounters rather than stopping at the first —
// after an error it synchronizes to the next statement boundary and keeps
// going, following the teacher's tolerant-parsing convention.
package parser

import (
	"fmt"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/lexer"
)

const maxArgs = 255

// errParseFailure is the panic value used to unwind from deep inside an
// expression/statement rule back to the nearest synchronization point,
// mirroring the reference Lox parser's exception-based recovery without
// threading an error return through every precedence-level function.
var errParseFailure = fmt.Errorf("parse failure")

// Parser turns source text into a list of statements plus any compile
// errors encountered along the way.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	prev lexer.Token

	errors []*CompileError
}

// New creates a Parser over src and primes its one-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.cur = p.nextNonErrorToken()
	return p
}

// Parse parses the entire program, returning the parsed statements (which
// may be a partial list if errors occurred) and every CompileError
// encountered, in source order.
func (p *Parser) Parse() ([]ast.Stmt, []*CompileError) {
	var stmts []ast.Stmt
	for !p.check(lexer.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, p.errors
}

// ---- token stream helpers ----

func (p *Parser) advance() lexer.Token {
	p.prev = p.cur
	if p.cur.Type != lexer.EOF {
		p.cur = p.nextNonErrorToken()
	}
	return p.prev
}

// nextNonErrorToken pulls from the lexer, converting any INVALID token it
// produces into a recorded CompileError and skipping past it, so that
// lexical errors surface at the point a well-formed token was expected
// instead of silently becoming part of the AST.
func (p *Parser) nextNonErrorToken() lexer.Token {
	for {
		tok := p.lex.NextToken()
		if tok.Type != lexer.INVALID {
			return tok
		}
		p.errors = append(p.errors, &CompileError{
			Line: tok.Line,
			Text: fmt.Sprintf("Error: %s", tok.Lexeme),
		})
	}
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.cur.Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has type t; otherwise it
// records a CompileError at the current token and panics to unwind to the
// nearest synchronization point.
func (p *Parser) consume(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAtCurrent(msg))
}

func (p *Parser) errorAtCurrent(msg string) error {
	return p.errorAt(p.cur, msg)
}

// errorAt records a CompileError formatted per spec.md §4.2 and returns
// errParseFailure so callers can `panic(p.errorAt(...))` to unwind.
func (p *Parser) errorAt(tok lexer.Token, msg string) error {
	var where string
	switch tok.Type {
	case lexer.EOF:
		where = " at end"
	default:
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	p.errors = append(p.errors, &CompileError{
		Line: tok.Line,
		Text: fmt.Sprintf("Error%s: %s", where, msg),
	})
	return errParseFailure
}

// synchronize discards tokens until the previous token was a semicolon or
// the next token begins a new declaration, so parsing can resume after an
// error without cascading spurious diagnostics.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.prev.Type == lexer.SEMICOLON {
			return
		}
		switch p.cur.Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

// ---- declarations & statements ----

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errParseFailure {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(lexer.FUN) {
		return p.function("function")
	}
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	line := name.Line
	p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body, Line: line}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	var init ast.Expr
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.check(lexer.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into a block holding
// init followed by a while loop whose body is {body; incr;}, per spec.md
// §4.2 — there is no ForStmt AST node at all.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.prev
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value, Line: keyword.Line}
}

// ---- expressions, one function per precedence level ----

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses a logic_or expression; if the next token is `=`, the
// already-parsed left-hand side must be a VariableExpr — left-hand-side
// rescue per spec.md §4.2, not a separate assignment-target grammar rule.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.prev
		value := p.assignment()

		if v, ok := expr.(*ast.VariableExpr); ok {
			return ast.NewAssignExpr(v.Name, value)
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.prev
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.prev
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.prev
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.prev
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.prev
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.prev
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.prev
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.LiteralExpr{Value: false}
	case p.match(lexer.TRUE):
		return &ast.LiteralExpr{Value: true}
	case p.match(lexer.NIL):
		return &ast.LiteralExpr{Value: nil}
	case p.match(lexer.NUMBER):
		return &ast.LiteralExpr{Value: p.prev.Number}
	case p.match(lexer.STRING):
		return &ast.LiteralExpr{Value: p.prev.Lexeme}
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariableExpr(p.prev)
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Expression: expr}
	}
	panic(p.errorAtCurrent("Expect expression."))
}
