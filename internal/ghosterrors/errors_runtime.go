package ghosterrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/goghost/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber          = errors.New("Operand must be a number.")
	ErrRuntimeOperandsMustBeNumbers        = errors.New("Operands must be numbers.")
	ErrRuntimeOperandsMustNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
	ErrRuntimeUnknownOperator              = errors.New("Unknown operator.")
)

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Token is the operator token that failed to evaluate.
func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[line %d]", r.cause, r.tok.Line)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
