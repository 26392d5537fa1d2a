package interpreter

import (
	"io"
	"os"

	"github.com/leonardinius/goghost/internal/ghosterrors"
)

type interpreterOpts struct {
	stdout   io.Writer
	stderr   io.Writer
	reporter ghosterrors.ErrReporter
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
	stderr: os.Stderr,
}

type InterpreterOption func(*interpreterOpts)

// WithStdout sets where print statements write.
func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

// WithStderr sets where runtime errors are reported unless a reporter is given.
func WithStderr(stderr io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r ghosterrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = ghosterrors.NewErrReporter(opts.stderr)
	}

	return &opts
}
