package lexer

import (
	"strings"
	"unicode"

	"github.com/krait-lang/krait/frontend/common"
)

type TokIdent struct {
	Raw  string
	span common.Span
}

func (t TokIdent) isToken() {}

func (t TokIdent) Span() common.Span {
	return t.span
}

func (t TokIdent) String() string {
	return t.Raw
}

func (t TokIdent) Is(_ string) bool {
	return false
}

func (t TokIdent) AsString() string {
	return ""
}

func NewTokIdent(s string, span common.Span) TokIdent {
	return TokIdent{Raw: s, span: span}
}

func IsIdentStr(t Token, s string) bool {
	if ident, ok := t.(TokIdent); ok {
		return ident.Raw == s
	}
	return false
}

/* Lexing */

// identifier reads an identifier or keyword. It returns nil when the
// current rune cannot start one.
func (lx *lexer) identifier() Token {
	c := lx.curChr()
	if c == nil || !isIdentStart(*c) {
		return nil
	}

	var sb strings.Builder
	for c := lx.curChr(); c != nil && isIdentContinue(*c); c = lx.curChr() {
		sb.WriteRune(*c)
		lx.advance()
	}

	word := sb.String()
	if kw, ok := lookupKeyword(word); ok {
		return NewTokKeyword(kw, lx.currentSpan())
	}
	return NewTokIdent(word, lx.currentSpan())
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
		} else if !isIdentContinue(r) {
			return false
		}
	}
	return !IsKeyword(s)
}
