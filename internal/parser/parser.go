package parser

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/token"
)

var (
	nilExpr Expr = nil
	nilStmt Stmt = nil
)

type Parser interface {
	// Parse returns the program statements in source order.
	// On syntax errors it returns the statements that did parse
	// together with every error found; such a program must not be run.
	Parse() ([]Stmt, error)
}

type parser struct {
	tokens   []token.Token
	current  int
	err      error
	reporter ghosterrors.ErrReporter
}

func NewParser(tokens []token.Token, reporter ghosterrors.ErrReporter) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}
	if reporter == nil {
		reporter = ghosterrors.NopReporter
	}

	return &parser{
		tokens:   tokens,
		current:  0,
		reporter: reporter,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	var errs []error

	for !p.isAtEnd() {
		stmt := p.statement()
		if p.err != nil {
			errs = append(errs, p.err)
			p.synchronize()
			p.err = nil
			continue
		}
		statements = append(statements, stmt)
	}

	return statements, errors.Join(errs...)
}

func (p *parser) statement() Stmt {
	if p.match(token.PRINT) {
		return p.printStatement()
	}

	return p.expressionStatement()
}

func (p *parser) printStatement() Stmt {
	expr := p.expression()
	if p.err != nil {
		return nilStmt
	}

	// The terminating ';' is optional.
	p.match(token.SEMICOLON)

	return &StmtPrint{Expression: expr}
}

func (p *parser) expressionStatement() Stmt {
	expr := p.expression()
	if p.err != nil {
		return nilStmt
	}

	p.match(token.SEMICOLON)

	return &StmtExpression{Expression: expr}
}

func (p *parser) expression() Expr {
	return p.equality()
}

func (p *parser) equality() Expr {
	expr := p.comparison()

	for p.anyMatch(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) comparison() Expr {
	expr := p.addition()

	for p.anyMatch(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.addition()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) addition() Expr {
	expr := p.multiplication()

	for p.anyMatch(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.multiplication()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) multiplication() Expr {
	expr := p.unary()

	for p.anyMatch(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ExprUnary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &ExprLiteral{Value: ValueBool(false)}
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Value: ValueBool(true)}
	}
	if p.match(token.NULL) {
		return &ExprLiteral{Value: NilValue}
	}

	if p.match(token.NUMBER) {
		return &ExprLiteral{Value: ValueFloat(p.previous().Literal.(float64))}
	}
	if p.match(token.STRING) {
		return &ExprLiteral{Value: ValueString(p.previous().Literal.(string))}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(ghosterrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Expression: expr}
	}

	return p.reportExprError(ghosterrors.ErrParseUnexpectedToken)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	if !p.isDone() && slices.Contains(types, p.peek().Type) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd does not look at parse errors, use isDone while parsing.
// isAtEnd is used from top level Parse, synchronize and advance only.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(err error) Expr {
	return p.reportTokenExprError(p.peek(), err)
}

func (p *parser) reportTokenExprError(tok *token.Token, err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = ghosterrors.NewParseError(tok, err)
	p.reporter.ReportError(p.err)
	return nilExpr
}

// synchronize discards tokens until the next statement boundary:
// just past a ';' or right before a keyword that starts a statement.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUNCTION,
			token.LET,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
