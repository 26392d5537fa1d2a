package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leonardinius/goghost/internal/token"
)

// RPNPrinter renders expressions in reverse Polish notation.
// Groupings disappear and unary minus is written as "~".
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *ExprBinary:
		return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *ExprGrouping:
		return p.reverse("", expr.Expression)
	case *ExprLiteral:
		if s, ok := expr.Value.(ValueString); ok {
			return strconv.Quote(string(s))
		}
		return fmt.Sprintf("%v", expr.Value)
	case *ExprUnary:
		operator := expr.Operator.Lexeme
		if expr.Operator.Type == token.MINUS {
			operator = "~"
		}
		return p.reverse(operator, expr.Right)
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (p *RPNPrinter) PrintProgram(stmts []Stmt) string {
	out := new(strings.Builder)
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *StmtPrint:
			_, _ = out.WriteString(p.reverse("print", stmt.Expression))
		case *StmtExpression:
			_, _ = out.WriteString(p.Print(stmt.Expression))
		default:
			panic(fmt.Sprintf("unexpected statement %T", stmt))
		}
		_, _ = out.WriteString("\n")
	}
	return out.String()
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(p.Print(expr))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}
