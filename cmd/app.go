package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/goghost/internal/ghost"
	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/parser"
	"github.com/leonardinius/goghost/internal/scanner"
)

// Exit codes, sysexits.h style.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

const prompt = "> "

var errUsage = errors.New("Usage: ghost [-tokens | -ast | -rpn] [script]")

type mode int

const (
	modeRun mode = iota
	modeTokens
	modeAst
	modeRPN
)

// lineReader is the part of *readline.Instance the REPL needs.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

type GhostApp struct {
	stdout        io.Writer
	stderr        io.Writer
	reporter      ghosterrors.ErrReporter
	ghost         *ghost.Ghost
	mode          mode
	newLineReader func(prompt string) (lineReader, error)
}

func NewGhostApp() *GhostApp {
	return newGhostApp(os.Stdout, os.Stderr, func(prompt string) (lineReader, error) {
		return readline.New(prompt)
	})
}

func newGhostApp(stdout, stderr io.Writer, newLineReader func(string) (lineReader, error)) *GhostApp {
	reporter := ghosterrors.NewErrReporter(stderr)
	return &GhostApp{
		stdout:   stdout,
		stderr:   stderr,
		reporter: reporter,
		ghost: ghost.New(
			ghost.WithStdout(stdout),
			ghost.WithStderr(stderr),
			ghost.WithErrorReporter(reporter),
		),
		newLineReader: newLineReader,
	}
}

func (app *GhostApp) Main(args []string) int {
	args, err := app.parseFlags(args)
	if err != nil {
		return app.exitCode(err)
	}

	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = errUsage
	}

	return app.exitCode(err)
}

func (app *GhostApp) parseFlags(args []string) ([]string, error) {
	flags := flag.NewFlagSet("ghost", flag.ContinueOnError)
	flags.SetOutput(app.stderr)
	tokens := flags.Bool("tokens", false, "print the token stream instead of running the script")
	ast := flags.Bool("ast", false, "print the syntax tree instead of running the script")
	rpn := flags.Bool("rpn", false, "print the syntax tree in reverse Polish notation instead of running the script")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errUsage
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	selected := 0
	for m, on := range map[mode]bool{modeTokens: *tokens, modeAst: *ast, modeRPN: *rpn} {
		if on {
			app.mode = m
			selected++
		}
	}
	if selected > 1 {
		return nil, fmt.Errorf("%w: -tokens, -ast and -rpn are exclusive", errUsage)
	}

	return flags.Args(), nil
}

// exitCode maps err to a process exit code. Errors that were not already
// reported by the pipeline are reported here.
func (app *GhostApp) exitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case ghosterrors.IsSyntaxError(err):
		return ExitDataErr
	case ghosterrors.IsRuntimeError(err):
		return ExitSoftware
	case errors.Is(err, errUsage):
		app.reporter.ReportPanic(err)
		return ExitUsage
	case errors.As(err, &pathErr):
		app.reporter.ReportPanic(err)
		return ExitIOErr
	default:
		app.reporter.ReportPanic(err)
		return ExitSoftware
	}
}

func (app *GhostApp) runPrompt() error {
	rl, err := app.newLineReader(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(app.stdout, "Ghost Interpreter (Go) -- Interactive Console")
	fmt.Fprintln(app.stdout, `// Type "help" for more information, "exit" to leave.`)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit":
			return nil
		case "help":
			app.help()
			continue
		}

		// Diagnostics are already reported; the session goes on.
		if value, err := app.run(line); err == nil && value != "" {
			fmt.Fprintln(app.stdout, value)
		}
	}
}

func (app *GhostApp) help() {
	fmt.Fprintln(app.stdout, "Statements: print <expression>; | <expression>;")
	fmt.Fprintln(app.stdout, "Operators:  ! - * / + > >= < <= == != ( )")
	fmt.Fprintf(app.stdout, "Keywords:   %s\n", strings.Join(scanner.Keywords(), " "))
	fmt.Fprintln(app.stdout, "Commands:   help, exit")
}

func (app *GhostApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	_, err = app.run(string(bytes))
	return err
}

func (app *GhostApp) run(input string) (string, error) {
	switch app.mode {
	case modeTokens:
		return "", app.printTokens(input)
	case modeAst:
		return "", app.printProgram(input, parser.NewAstPrinter())
	case modeRPN:
		return "", app.printProgram(input, parser.NewRPNPrinter())
	}

	return app.ghost.Execute(input)
}

func (app *GhostApp) printTokens(input string) error {
	tokens, err := app.ghost.Scan(input)
	for _, tok := range tokens {
		fmt.Fprintf(app.stdout, "%#v\n", tok)
	}
	return err
}

type programPrinter interface {
	PrintProgram(stmts []parser.Stmt) string
}

func (app *GhostApp) printProgram(input string, printer programPrinter) error {
	stmts, err := app.ghost.Parse(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(app.stdout, printer.PrintProgram(stmts))
	return err
}
