package lexer

import (
	"strings"
	"unicode"

	"github.com/krait-lang/krait/frontend/common"
)

// TokNumber keeps the literal exactly as written; "1.2.3" is a single token.
type TokNumber struct {
	Raw  string
	span common.Span
}

func (t TokNumber) isToken() {}

func (t TokNumber) Span() common.Span {
	return t.span
}

func (t TokNumber) String() string {
	return t.Raw
}

func (t TokNumber) Is(_ string) bool {
	return false
}

func (t TokNumber) AsString() string {
	return ""
}

func NewTokNumber(s string, span common.Span) TokNumber {
	return TokNumber{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) number() Token {
	c := lx.curChr()
	if c == nil || !unicode.IsDigit(*c) {
		return nil
	}
	var sb strings.Builder
	for c := lx.curChr(); c != nil && (unicode.IsDigit(*c) || *c == '.'); c = lx.curChr() {
		sb.WriteRune(*c)
		lx.advance()
	}
	return NewTokNumber(sb.String(), lx.currentSpan())
}
