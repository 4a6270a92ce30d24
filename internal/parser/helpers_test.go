package parser

import "tern/internal/ast"

func prepareParser(source string) *Parser {
	return New(source)
}

func num(v int64) ast.Expr { return ast.Literal(ast.IntLit(v)) }

func name(n string) ast.Expr { return &ast.IdentExpr{Name: n} }

func bin(op ast.BinaryOp, lhs, rhs ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs}
}

func unary(op ast.UnaryOp, e ast.Expr) ast.Expr {
	return &ast.UnaryExpr{Op: op, Expr: e}
}

func call(fun ast.Expr, args ...ast.Expr) ast.Expr {
	return &ast.CallExpr{Fun: fun, Args: args}
}
