package parser

import "github.com/krait-lang/krait/frontend/ast"

func (p *parser) parseUnaryExpr() ast.Expr {
	spanStart := p.span()
	switch p.Token.AsString() {
	case "-":
		p.advance()
		operand := p.parseUnaryExpr()
		return ast.NewUnaryExpr(ast.UnaryOpNeg, operand, SpanFrom(spanStart, p.prevSpan()))
	case "!", "not":
		p.advance()
		operand := p.parseUnaryExpr()
		return ast.NewUnaryExpr(ast.UnaryOpNot, operand, SpanFrom(spanStart, p.prevSpan()))
	}
	return p.parsePrimaryExpr()
}
