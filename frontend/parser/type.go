package parser

import (
	"fmt"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
)

func isTypeToken(tok lexer.Token) bool {
	kw, ok := tok.(lexer.TokKeyword)
	return ok && kw.Keyword.IsType()
}

func (p *parser) parseType() ast.DataType {
	tok := p.Token
	if isTypeToken(tok) {
		p.advance()
		ty, _ := ast.LookupDataType(tok.String())
		return ty
	}
	if ident, ok := tok.(lexer.TokIdent); ok {
		common.PanicDiag(fmt.Sprintf("unknown type `%s` (expected int, float, double, txt, bool or auto)", ident.Raw), tok.Span())
	}
	common.PanicDiag(fmt.Sprintf("expected data type, got: %s", describe(tok)), tok.Span())
	panic("unreachable")
}
