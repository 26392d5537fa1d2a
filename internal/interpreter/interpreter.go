package interpreter

import (
	"fmt"

	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/parser"
	"github.com/leonardinius/goghost/internal/token"
)

type Interpreter interface {
	// Interpret executes the statements in order.
	// Returns the stringified value of the last statement when it is an expression statement,
	// otherwise an empty string.
	//
	// The first runtime error stops execution; it is reported and returned.
	// Not thread safe.
	Interpret(stmts []parser.Stmt) (string, error)

	// Evaluate evaluates the given expression.
	// Returns the result of the expression and an error if any.
	//
	// Not thread safe.
	Evaluate(expr parser.Expr) (Value, error)
}

type interpreter struct {
	opts *interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(stmts []parser.Stmt) (string, error) {
	var last Value
	for _, stmt := range stmts {
		value, err := i.execute(stmt)
		if err != nil {
			i.opts.reporter.ReportError(err)
			return "", err
		}
		last = value
	}

	if last == nil {
		return "", nil
	}
	return i.stringify(last), nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (Value, error) {
	return i.evaluate(expr)
}

// execute returns the value of an expression statement and nil for anything else.
func (i *interpreter) execute(stmt parser.Stmt) (Value, error) {
	switch stmt := stmt.(type) {
	case *parser.StmtExpression:
		return i.evaluate(stmt.Expression)
	case *parser.StmtPrint:
		return nil, i.executePrint(stmt)
	}

	return i.unreachable(stmt)
}

func (i *interpreter) executePrint(stmt *parser.StmtPrint) error {
	value, err := i.evaluate(stmt.Expression)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(i.opts.stdout, i.stringify(value)); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	switch expr := expr.(type) {
	case *parser.ExprLiteral:
		return expr.Value, nil
	case *parser.ExprGrouping:
		return i.evaluate(expr.Expression)
	case *parser.ExprUnary:
		return i.evaluateUnary(expr)
	case *parser.ExprBinary:
		return i.evaluateBinary(expr)
	}

	return i.unreachable(expr)
}

func (i *interpreter) evaluateUnary(expr *parser.ExprUnary) (Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		r, err := checkNumberOperand(expr.Operator, right)
		if err != nil {
			return nil, err
		}
		return -r, nil
	case token.BANG:
		return ValueBool(!isTruthy(right)), nil
	}

	return nil, ghosterrors.NewRuntimeError(expr.Operator, ghosterrors.ErrRuntimeUnknownOperator)
}

func (i *interpreter) evaluateBinary(expr *parser.ExprBinary) (Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG_EQUAL:
		return ValueBool(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return ValueBool(isEqual(left, right)), nil
	case token.PLUS:
		return add(expr.Operator, left, right)
	}

	l, r, err := checkNumberOperands(expr.Operator, left, right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.GREATER:
		return ValueBool(l > r), nil
	case token.GREATER_EQUAL:
		return ValueBool(l >= r), nil
	case token.LESS:
		return ValueBool(l < r), nil
	case token.LESS_EQUAL:
		return ValueBool(l <= r), nil
	case token.MINUS:
		return l - r, nil
	case token.SLASH:
		// IEEE-754: x/0 is an infinity and 0/0 is NaN.
		return l / r, nil
	case token.STAR:
		return l * r, nil
	}

	return nil, ghosterrors.NewRuntimeError(expr.Operator, ghosterrors.ErrRuntimeUnknownOperator)
}

func (i *interpreter) stringify(v Value) string {
	return stringify(v)
}

func (i *interpreter) unreachable(node any) (Value, error) {
	panic(fmt.Sprintf("unreachable: unexpected node %T", node))
}

var _ Interpreter = (*interpreter)(nil)
