package parser

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
)

type diagnostic = protocol.Diagnostic

type Span = common.Span

var SpanFrom = common.SpanFrom

func errorToDiagnostic(err any) *diagnostic {
	switch err := err.(type) {
	case *diagnostic:
		return err
	default:
		panic(fmt.Errorf("unexpected error: %v", err))
	}
}

type parser struct {
	TokenStream []lexer.Token
	Token       lexer.Token
	Pos         uint32
}

// Parse builds the syntax tree for a token stream produced by lexer.Lex.
// It stops at the first structural error and returns it as a diagnostic;
// no partial tree is returned.
func Parse(tkS []lexer.Token) (astRet *ast.Ast, err *diagnostic) {
	if len(tkS) == 0 || !lexer.IsEOF(tkS[len(tkS)-1]) {
		tkS = append(tkS, lexer.Lex("", "")...)
	}
	p := &parser{
		TokenStream: tkS,
		Token:       tkS[0],
		Pos:         0,
	}

	defer func() {
		if r := recover(); r != nil {
			astRet = nil
			err = errorToDiagnostic(r)
		}
	}()

	astRet = &ast.Ast{}
	for !lexer.IsEOF(p.Token) {
		astRet.Items = append(astRet.Items, p.parseItem())
	}
	return
}

// advance moves the parser forward by one token.
func (p *parser) advance() {
	p.Pos = min(p.Pos+1, uint32(len(p.TokenStream)-1))
	p.Token = p.TokenStream[p.Pos]
}

func (p *parser) peek() lexer.Token {
	return p.peekOffset(+1)
}

func (p *parser) tryConsume(s string) bool {
	if p.Token.Is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(s string) {
	if !p.tryConsume(s) {
		common.PanicDiag(fmt.Sprintf("expected `%s`, got: %s", s, describe(p.Token)), p.span())
	}
}

func (p *parser) expectString(msg string) lexer.TokString {
	if s, ok := p.Token.(lexer.TokString); ok {
		p.advance()
		return s
	}
	common.PanicDiag(fmt.Sprintf("%s, got: %s", msg, describe(p.Token)), p.span())
	panic("unreachable")
}

func (p *parser) expectIdentMsg(msg string) lexer.TokIdent {
	tok := p.Token
	if i, ok := tok.(lexer.TokIdent); ok {
		p.advance()
		return i
	}
	common.PanicDiag(fmt.Sprintf("%s, got: %s", msg, describe(tok)), tok.Span())
	panic("unreachable")
}

// expectWord accepts an identifier or a keyword and returns it as an
// identifier, so that `import json from json` works.
func (p *parser) expectWord(msg string) lexer.TokIdent {
	tok := p.Token
	switch t := tok.(type) {
	case lexer.TokIdent:
		p.advance()
		return t
	case lexer.TokKeyword:
		p.advance()
		return lexer.NewTokIdent(t.String(), t.Span())
	}
	common.PanicDiag(fmt.Sprintf("%s, got: %s", msg, describe(tok)), tok.Span())
	panic("unreachable")
}

// peekOffset returns the token at p.Pos + n, clamped to [0, len-1].
// Negative n looks backwards, positive n looks ahead.
func (p *parser) peekOffset(n int) lexer.Token {
	idx := int(p.Pos) + n
	if idx < 0 {
		idx = 0
	} else if idx >= len(p.TokenStream) {
		idx = len(p.TokenStream) - 1
	}
	return p.TokenStream[idx]
}

func (p *parser) spanN(n int) common.Span {
	return p.peekOffset(n).Span()
}

func (p *parser) span() common.Span {
	return p.spanN(0)
}

func (p *parser) prevSpan() common.Span {
	return p.spanN(-1)
}

func (p *parser) parseCommaSeparatedDelimited(
	closing string,
	parse func(*parser),
) {
	for !p.Token.Is(closing) {
		parse(p)
		if !p.tryConsume(",") {
			break
		}
	}
	p.expect(closing)
}

// describe renders a token for error messages.
func describe(tok lexer.Token) string {
	switch t := tok.(type) {
	case lexer.TokEOF:
		return t.String()
	case lexer.TokString:
		return fmt.Sprintf("string %q", t.Raw)
	case lexer.TokNumber:
		return "number " + t.Raw
	case lexer.TokIdent:
		return "identifier `" + t.Raw + "`"
	default:
		return "`" + tok.String() + "`"
	}
}
