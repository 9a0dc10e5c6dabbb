/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a recursive-descent, one-token-lookahead parser
producing ast.Stmt/ast.Expr over a token-cursor with match/consume helpers
and a HasErrors/Errors accumulator. The grammar covers only this
language's surface: no arrays, maps, sets, structs, enums, switch,
for/foreach/range, or break/continue.

Precedence, lowest to highest: assignment -> logical-or -> logical-and ->
equality -> comparison -> additive -> multiplicative -> unary -> call ->
primary. The parser does not synchronize after an error: the first
ParseError aborts parsing entirely.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// ParseError reports an unexpected token, a missing terminator, or an
// invalid assignment target.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] ParseError: %s", e.Line, e.Message)
}

// Parser walks a fixed token slice with one-token lookahead.
type Parser struct {
	tokens  []token.Token
	cur     int
	nextID  int
	err     error
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses an already-scanned token stream in one call, returning the
// statement list or the first ParseError encountered.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := New(tokens)
	return p.ParseProgram()
}

// HasErrors reports whether parsing aborted with an error. This parser
// never accumulates more than one error since it does not synchronize
// after the first failure.
func (p *Parser) HasErrors() bool { return p.err != nil }

// Errors returns the single accumulated error, or nil.
func (p *Parser) Errors() []error {
	if p.err == nil {
		return nil
	}
	return []error{p.err}
}

// ParseProgram parses statements until Eof or the first error.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.Eof) {
		s, err := p.declaration()
		if err != nil {
			p.err = err
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// --- token cursor helpers ---

func (p *Parser) peek() token.Token { return p.tokens[p.cur] }

func (p *Parser) previous() token.Token { return p.tokens[p.cur-1] }

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.check(token.Eof) {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(k token.Kind, message string) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Token{}, &ParseError{Line: p.peek().Line, Message: message}
}

func (p *Parser) freshID() int {
	id := p.nextID
	p.nextID++
	return id
}

// --- statements ---

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(token.Fun) {
		return p.functionDeclaration()
	}
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) functionDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "expect function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "expect '(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RightParen) {
		for {
			pname, err := p.consume(token.Identifier, "expect parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, pname.Lexeme)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "expect ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "expect '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name.Lexeme, Params: params, Body: &ast.BlockStmt{Stmts: body}}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "expect variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name.Lexeme, Initializer: init}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Stmts: stmts}, nil
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "expect ';' after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: e}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: e}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.check(token.Eof) {
		s, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.consume(token.RightBrace, "expect '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "expect '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "expect ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "expect '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "expect ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

// --- expressions ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{ID: p.freshID(), Name: v.Name, Value: value}, nil
		}
		return nil, &ParseError{Line: equals.Line, Message: "invalid assignment target"}
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Op: ast.Or, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Op: ast.And, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.EqualEqual, token.BangEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.Plus, token.Minus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.Star, token.Slash)
}

// leftAssocBinary builds a left-associative chain of binary operators at
// one precedence level by repeatedly consuming operator + next-precedence
// operand.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		opTok := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		op, _ := ast.TokenBinaryOp(opTok.Kind)
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	// Consume only on an actual match; never advance unconditionally (see
	// spec's open question about the unary step's token consumption).
	if p.match(token.Bang, token.Minus) {
		opTok := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		op := ast.Bang
		if opTok.Kind == token.Minus {
			op = ast.Minus
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if p.match(token.LeftParen) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "expect ')' after arguments"); err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.FalseLit{}, nil
	case p.match(token.True):
		return &ast.TrueLit{}, nil
	case p.match(token.Nil):
		return &ast.NilLit{}, nil
	case p.match(token.Number):
		return &ast.NumberLit{Value: p.previous().Literal.(float64)}, nil
	case p.match(token.String):
		return &ast.StringLit{Value: p.previous().Literal.(string)}, nil
	case p.match(token.Identifier):
		return &ast.Variable{ID: p.freshID(), Name: p.previous().Lexeme}, nil
	case p.match(token.LeftParen):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "expect ')' after expression"); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, &ParseError{Line: p.peek().Line, Message: fmt.Sprintf("unexpected token %s", p.peek().Kind)}
}
