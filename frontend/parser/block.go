package parser

import (
	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/lexer"
)

// parseBlock reads statements up to `end`, which it consumes, or up to end
// of input, which it tolerates. Any keyword in stops also ends the block
// but is left for the caller.
func (p *parser) parseBlock(stops ...string) ast.Block {
	spanStart := p.span()

	var stmts []ast.Stmt
	for !lexer.IsEOF(p.Token) && !p.Token.Is("end") && !p.atAny(stops) {
		stmts = append(stmts, p.parseStmt())
	}
	p.tryConsume("end")

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewBlock(stmts, span)
}

func (p *parser) atAny(keywords []string) bool {
	for _, kw := range keywords {
		if p.Token.Is(kw) {
			return true
		}
	}
	return false
}
