package parser

import (
	"fmt"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
)

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(1)
}

func (p *parser) parsePrimaryExpr() ast.Expr {
	tok := p.Token
	switch t := tok.(type) {
	case lexer.TokNumber:
		p.advance()
		return ast.NewNumberExpr(t.Raw, t.Span())
	case lexer.TokString:
		p.advance()
		return ast.NewStringExpr(t.Raw, t.Span())
	case lexer.TokIdent:
		p.advance()
		if p.Token.Is("(") {
			return p.parseCall(t)
		}
		return ast.NewIdentExpr(t.Raw, t.Span())
	}

	if p.tryConsume("(") {
		expr := p.parseExpr()
		p.expect(")")
		return expr
	}

	common.PanicDiag(fmt.Sprintf("expected expression, got: %s", describe(tok)), tok.Span())
	panic("unreachable")
}

func (p *parser) parseCall(name lexer.TokIdent) ast.Expr {
	p.advance() // skip `(`
	var args []ast.Expr
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		args = append(args, p.parseExpr())
	})
	span := SpanFrom(name.Span(), p.prevSpan())
	return ast.NewCallExpr(name, args, span)
}
