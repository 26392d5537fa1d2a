package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders expressions in a parenthesized prefix form, e.g. "(* (- 123) (group 45.67))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// Print renders a single expression.
func (p *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *ExprBinary:
		return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *ExprGrouping:
		return p.parenthesize("group", expr.Expression)
	case *ExprLiteral:
		return p.literal(expr.Value)
	case *ExprUnary:
		return p.parenthesize(expr.Operator.Lexeme, expr.Right)
	case nil:
		return "<nil>"
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

// PrintProgram renders every statement on its own line.
func (p *AstPrinter) PrintProgram(stmts []Stmt) string {
	out := new(strings.Builder)
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *StmtPrint:
			_, _ = out.WriteString(p.parenthesize("print", stmt.Expression))
		case *StmtExpression:
			_, _ = out.WriteString(p.parenthesize("expr", stmt.Expression))
		default:
			panic(fmt.Sprintf("unexpected statement %T", stmt))
		}
		_, _ = out.WriteString("\n")
	}
	return out.String()
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.Print(expr))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) literal(v Value) string {
	if s, ok := v.(ValueString); ok {
		return strconv.Quote(string(s))
	}
	return fmt.Sprintf("%v", v)
}
