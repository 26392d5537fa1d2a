// Package ghost wires the scanner, parser and interpreter into a single pipeline.
package ghost

import (
	"io"
	"os"

	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/interpreter"
	"github.com/leonardinius/goghost/internal/parser"
	"github.com/leonardinius/goghost/internal/scanner"
	"github.com/leonardinius/goghost/internal/token"
)

// Ghost runs Ghost source code.
// A Ghost is not safe for concurrent use; use one instance per goroutine.
type Ghost struct {
	scanner     scanner.Scanner
	interpreter interpreter.Interpreter
	reporter    ghosterrors.ErrReporter
}

type options struct {
	stdout   io.Writer
	stderr   io.Writer
	reporter ghosterrors.ErrReporter
}

type Option func(*options)

// WithStdout sets where print statements write.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStderr sets where diagnostics are written unless a reporter is given.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

func WithErrorReporter(r ghosterrors.ErrReporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

func New(opts ...Option) *Ghost {
	o := options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = ghosterrors.NewErrReporter(o.stderr)
	}

	return &Ghost{
		scanner: scanner.NewScanner("", o.reporter),
		interpreter: interpreter.NewInterpreter(
			interpreter.WithStdout(o.stdout),
			interpreter.WithStderr(o.stderr),
			interpreter.WithErrorReporter(o.reporter),
		),
		reporter: o.reporter,
	}
}

// Scan returns the token stream of source.
func (g *Ghost) Scan(source string) ([]token.Token, error) {
	return g.scanner.SetSource(source).Scan()
}

// Parse scans and parses source. Lexical errors stop the pipeline before parsing.
func (g *Ghost) Parse(source string) ([]parser.Stmt, error) {
	tokens, err := g.Scan(source)
	if err != nil {
		return nil, err
	}

	return parser.NewParser(tokens, g.reporter).Parse()
}

// Execute runs source and returns the value of its trailing expression statement, if any.
// Nothing is executed when the source has syntax errors.
func (g *Ghost) Execute(source string) (string, error) {
	stmts, err := g.Parse(source)
	if err != nil {
		return "", err
	}

	return g.interpreter.Interpret(stmts)
}
