package ghosterrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

type ScannerError struct {
	line  int
	cause error
	where string
}

// NewScanError builds a lexical error. A non-empty where is the quoted
// offending text and renders as "Error at <where>".
func NewScanError(line int, cause error, where string) *ScannerError {
	return &ScannerError{line, cause, where}
}

// Line is the 1-based source line the error was detected on.
func (s *ScannerError) Line() int {
	return s.line
}

// Error implements error.
func (s *ScannerError) Error() string {
	if s.where == "" {
		return fmt.Sprintf("[line %d] Error: %v", s.line, s.cause)
	}
	return fmt.Sprintf("[line %d] Error at %s: %v", s.line, s.where, s.cause)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
