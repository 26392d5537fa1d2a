package ghosterrors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestErrorFormats(t *testing.T) {
	testcases := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "scan",
			err:  ghosterrors.NewScanError(2, ghosterrors.ErrScanUnterminatedString, ""),
			msg:  "[line 2] Error: Unterminated string.",
		},
		{
			name: "scan details",
			err:  ghosterrors.NewScanError(1, ghosterrors.ErrScanUnexpectedCharacter, "'@'"),
			msg:  "[line 1] Error at '@': Unexpected character.",
		},
		{
			name: "parse at token",
			err:  ghosterrors.NewParseError(token.NewTokenHeap(token.PLUS, "+", nil, 3), ghosterrors.ErrParseUnexpectedToken),
			msg:  "[line 3] Error at '+': Expect expression.",
		},
		{
			name: "parse at end",
			err:  ghosterrors.NewParseError(token.NewTokenHeap(token.EOF, "", nil, 4), ghosterrors.ErrParseExpectedRightParenToken),
			msg:  "[line 4] Error at end: Expect ')' after expression.",
		},
		{
			name: "runtime",
			err:  ghosterrors.NewRuntimeError(token.NewTokenHeap(token.MINUS, "-", nil, 5), ghosterrors.ErrRuntimeOperandMustBeNumber),
			msg:  "Operand must be a number.\n[line 5]",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.msg)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	scanErr := ghosterrors.NewScanError(1, ghosterrors.ErrScanUnterminatedString, "")
	parseErr := ghosterrors.NewParseError(token.NewTokenHeap(token.EOF, "", nil, 1), ghosterrors.ErrParseUnexpectedToken)
	runtimeErr := ghosterrors.NewRuntimeError(token.NewTokenHeap(token.STAR, "*", nil, 1), ghosterrors.ErrRuntimeOperandsMustBeNumbers)

	assert.True(t, ghosterrors.IsSyntaxError(scanErr))
	assert.True(t, ghosterrors.IsSyntaxError(errors.Join(parseErr, scanErr)))
	assert.False(t, ghosterrors.IsSyntaxError(runtimeErr))
	assert.True(t, ghosterrors.IsRuntimeError(runtimeErr))
	assert.False(t, ghosterrors.IsRuntimeError(parseErr))
	assert.False(t, ghosterrors.IsSyntaxError(nil))

	assert.ErrorIs(t, parseErr, ghosterrors.ErrParseUnexpectedToken)
	assert.ErrorIs(t, runtimeErr, ghosterrors.ErrRuntimeOperandsMustBeNumbers)
	assert.ErrorIs(t, errors.Join(parseErr, scanErr), ghosterrors.ErrScanUnterminatedString)
}

func TestErrReporter(t *testing.T) {
	out := new(strings.Builder)
	r := ghosterrors.NewErrReporter(out)

	r.ReportError(ghosterrors.NewScanError(1, ghosterrors.ErrScanUnexpectedCharacter, "'#'"))
	r.ReportPanic(errors.New("boom"))

	assert.Equal(t, "[line 1] Error at '#': Unexpected character.\nFATAL boom\n", out.String())
}
