package parser

import (
	"fmt"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
)

func (p *parser) parseItem() ast.Item {
	switch p.Token.AsString() {
	case "import":
		return p.parseImport()
	case "route":
		return p.parseRoute()
	case "public":
		p.advance()
		return p.parseFunctionOrStmt(true)
	case "private":
		p.advance()
		return p.parseFunctionOrStmt(false)
	case "func":
		return p.parseFunction(false)
	default:
		return ast.NewTopStmt(p.parseStmt())
	}
}

func (p *parser) parseFunctionOrStmt(public bool) ast.Item {
	if p.Token.Is("func") {
		return p.parseFunction(public)
	}
	stmt := p.parseStmt()
	if decl, ok := stmt.(*ast.StmtVarDecl); ok {
		decl.Public = public
	}
	return ast.NewTopStmt(stmt)
}

func (p *parser) parseImport() ast.Item {
	spanStart := p.span()
	p.advance() // skip `import`

	module := p.expectWord("expected module name")
	p.expect("from")
	from := p.expectWord("expected capability name after `from`")

	return ast.NewImport(module, from, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseFunction(public bool) ast.Item {
	spanStart := p.span()
	p.advance() // skip `func`

	name := p.expectIdentMsg("expected function name")
	params := p.parseFunctionParams()

	ret := ast.TypeAuto
	if p.tryConsume("->") {
		ret = p.parseType()
	}

	body := p.parseBlock()
	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewFunction(name, params, ret, body, public, span)
}

func (p *parser) parseFunctionParams() []ast.FunctionParam {
	p.expect("(")
	var params []ast.FunctionParam
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		name := p.expectIdentMsg("expected parameter name")
		p.expect(":")
		params = append(params, ast.FunctionParam{Name: name, Type: p.parseType()})
	})
	return params
}

func (p *parser) parseRoute() ast.Item {
	spanStart := p.span()
	p.advance() // skip `route`

	path := p.expectString("expected route path")
	if path.Raw == "" {
		common.PanicDiag("route path cannot be empty", path.Span())
	}

	method := p.parseMethod()
	body := p.parseBlock()

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewRoute(path.Raw, method, body, span)
}

func (p *parser) parseMethod() ast.HTTPMethod {
	if kw, ok := p.Token.(lexer.TokKeyword); ok && kw.Keyword.IsMethod() {
		p.advance()
		method, _ := ast.LookupMethod(kw.String())
		return method
	}
	common.PanicDiag(fmt.Sprintf("expected HTTP method (get, post, put, delete), got: %s", describe(p.Token)), p.span())
	panic("unreachable")
}
