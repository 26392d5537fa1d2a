package parser

import "github.com/leonardinius/goghost/internal/token"

// Expr is one of ExprBinary, ExprGrouping, ExprLiteral or ExprUnary.
// The set is closed: evaluators switch over the concrete types.
type Expr interface {
	isExpr()
}

// Stmt is one of StmtExpression or StmtPrint.
type Stmt interface {
	isStmt()
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type ExprGrouping struct {
	Expression Expr
}

type ExprLiteral struct {
	Value Value
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

func (*ExprBinary) isExpr()   {}
func (*ExprGrouping) isExpr() {}
func (*ExprLiteral) isExpr()  {}
func (*ExprUnary) isExpr()    {}

type StmtExpression struct {
	Expression Expr
}

type StmtPrint struct {
	Expression Expr
}

func (*StmtExpression) isStmt() {}
func (*StmtPrint) isStmt()      {}

var (
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtPrint)(nil)
)
