package token

import (
	"fmt"
)

// Token is one lexeme of Ghost source. Literal carries the decoded payload:
// float64 for NUMBER, the raw string body for STRING, nil for everything else.
// Line is 1-based and counts newlines seen before the token started.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
}

func NewToken(t TokenType, lexeme string, literal any, line int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

// NewTokenHeap is NewToken for AST nodes, which hold operators by pointer.
func NewTokenHeap(t TokenType, lexeme string, literal any, line int) *Token {
	tt := NewToken(t, lexeme, literal, line)
	return &tt
}

// String renders "TYPE lexeme literal".
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString renders every field. The -tokens dump and scanner tests use it.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d}", t.Type, t.Lexeme, t.Literal, t.Line)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
