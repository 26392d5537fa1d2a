package ghosterrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/goghost/internal/token"
)

var (
	ErrParseUnexpectedToken         = errors.New("Expect expression.")
	ErrParseExpectedRightParenToken = errors.New("Expect ')' after expression.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Token is the token the parser was looking at when the error was detected.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

// Error implements error.
func (p *ParserError) Error() string {
	where := " at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf(" at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error%s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
