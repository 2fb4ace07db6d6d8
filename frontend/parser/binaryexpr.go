package parser

import (
	"github.com/krait-lang/krait/frontend/ast"
)

var binaryOperators = map[string]ast.BinaryOp{
	"or":  ast.BinaryOpLogicalOr,
	"and": ast.BinaryOpLogicalAnd,
	"==":  ast.BinaryOpEqual,
	"!=":  ast.BinaryOpNotEqual,
	"<":   ast.BinaryOpLess,
	">":   ast.BinaryOpGreater,
	"<=":  ast.BinaryOpLessEqual,
	">=":  ast.BinaryOpGreaterEqual,
	"+":   ast.BinaryOpAdd,
	"-":   ast.BinaryOpSub,
	"*":   ast.BinaryOpMul,
	"/":   ast.BinaryOpDiv,
	"%":   ast.BinaryOpMod,
}

// getBinaryOperator maps an operator token to its op. Every level is
// left-associative.
func getBinaryOperator(op string) (ast.BinaryOp, bool) {
	if op == "" {
		return ast.BinaryOpInvalid, false
	}
	binOp, ok := binaryOperators[op]
	return binOp, ok
}

func (p *parser) parseBinaryExpr(minPrec int) ast.Expr {
	left := p.parseUnaryExpr()

	for {
		binOp, ok := getBinaryOperator(p.Token.AsString())
		if !ok || binOp.Precedence() < minPrec {
			break
		}
		p.advance()

		right := p.parseBinaryExpr(binOp.Precedence() + 1)

		span := SpanFrom(left.Span(), right.Span())
		left = ast.NewBinaryExpr(left, binOp, right, span)
	}

	return left
}
