package parser

import (
	"fmt"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
)

func (p *parser) parseStmt() ast.Stmt {
	switch p.Token.AsString() {
	case "return":
		return p.parseReturn()
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "for":
		return p.parseFor()
	case "try":
		return p.parseTry()
	case "raise":
		return p.parseRaise()
	}

	if p.isVarDecl() {
		return p.parseVarDecl()
	}
	return p.parseAssignmentOrStmtExpr()
}

// isVarDecl decides whether the upcoming tokens start a declaration:
//
//	auto x
//	int x
//	T x     (identifier followed by identifier)
//
// The last form makes two adjacent bare identifiers on separate lines parse
// as a declaration.
func (p *parser) isVarDecl() bool {
	if p.Token.Is("auto") {
		return true
	}
	if isTypeToken(p.Token) {
		return lexer.IsIdent(p.peek())
	}
	return lexer.IsIdent(p.Token) && lexer.IsIdent(p.peek())
}

func (p *parser) parseVarDecl() ast.Stmt {
	spanStart := p.span()

	var ty ast.DataType
	if ident, ok := p.Token.(lexer.TokIdent); ok {
		dt, found := ast.LookupDataType(ident.Raw)
		if !found {
			common.PanicDiag(fmt.Sprintf("unknown type `%s`", ident.Raw), ident.Span())
		}
		ty = dt
		p.advance()
	} else {
		ty = p.parseType()
	}

	name := p.expectIdentMsg("expected variable name")

	var value ast.Expr
	if p.tryConsume("=") {
		value = p.parseExpr()
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewVarDecl(name, ty, value, span)
}

func (p *parser) parseAssignmentOrStmtExpr() ast.Stmt {
	spanStart := p.span()

	if ident, ok := p.Token.(lexer.TokIdent); ok && p.peek().Is("=") {
		p.advance() // name
		p.advance() // `=`
		value := p.parseExpr()
		return ast.NewAssign(ident, value, SpanFrom(spanStart, p.prevSpan()))
	}

	expr := p.parseExpr()
	return ast.NewStmtExpr(expr, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseReturn() ast.Stmt {
	spanStart := p.span()
	p.advance() // skip `return`

	var value ast.Expr
	if !p.atReturnEnd() {
		value = p.parseExpr()
	}

	return ast.NewReturnStmt(value, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) atReturnEnd() bool {
	return lexer.IsEOF(p.Token) || p.Token.Is("end") || p.Token.Is("else") || p.Token.Is("catch")
}

func (p *parser) parseIf() ast.Stmt {
	spanStart := p.span()
	p.advance() // skip `if`

	cond := p.parseExpr()
	then := p.parseBlock("else")

	var els *ast.Block
	if p.tryConsume("else") {
		b := p.parseBlock()
		els = &b
	}

	return ast.NewIfStmt(cond, then, els, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseWhile() ast.Stmt {
	spanStart := p.span()
	p.advance() // skip `while`

	cond := p.parseExpr()
	body := p.parseBlock()

	return ast.NewWhileStmt(cond, body, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseFor() ast.Stmt {
	spanStart := p.span()
	p.advance() // skip `for`

	v := p.expectIdentMsg("expected loop variable")
	p.expect("=")
	start := p.parseExpr()
	p.expect(",")
	end := p.parseExpr()
	body := p.parseBlock()

	return ast.NewForStmt(v, start, end, body, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseTry() ast.Stmt {
	spanStart := p.span()
	p.advance() // skip `try`

	body := p.parseBlock("catch")
	p.expect("catch")
	catch := p.parseBlock()

	return ast.NewTryStmt(body, catch, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseRaise() ast.Stmt {
	spanStart := p.span()
	p.advance() // skip `raise`

	value := p.parseExpr()
	return ast.NewRaiseStmt(value, SpanFrom(spanStart, p.prevSpan()))
}
