package ghosterrors

import "errors"

// IsSyntaxError reports whether err (or any error joined into it) came from the scanner or the parser.
func IsSyntaxError(err error) bool {
	var scanErr *ScannerError
	var parseErr *ParserError
	return errors.As(err, &scanErr) || errors.As(err, &parseErr)
}

// IsRuntimeError reports whether err (or any error joined into it) was raised during evaluation.
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return errors.As(err, &runtimeErr)
}
