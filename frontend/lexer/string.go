package lexer

import (
	"strings"

	"github.com/krait-lang/krait/frontend/common"
)

// TokString represents a string token. Raw holds the unescaped content
// without the surrounding quotes.
type TokString struct {
	Raw  string
	span common.Span
}

func (t TokString) isToken() {}

func (t TokString) Span() common.Span {
	return t.span
}

func (t TokString) String() string {
	return t.Raw
}

func (t TokString) Is(_ string) bool {
	return false
}

func (t TokString) AsString() string {
	return ""
}

func NewTokString(s string, span common.Span) TokString {
	return TokString{Raw: s, span: span}
}

/* Lexing */

// string reads a '...' or "..." literal. An unterminated literal runs to
// the end of input; the scanner never reports an error.
func (lx *lexer) string() Token {
	c := lx.curChr()
	if c == nil || (*c != '"' && *c != '\'') {
		return nil
	}
	delim := *c
	lx.advance() // opening quote

	var sb strings.Builder
	for {
		c := lx.curChr()
		if c == nil {
			break
		}
		if *c == delim {
			lx.advance() // closing quote
			break
		}
		if *c != '\\' {
			sb.WriteRune(*c)
			lx.advance()
			continue
		}

		lx.advance() // '\'
		esc := lx.curChr()
		if esc == nil {
			break
		}
		switch *esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			// covers \\, \", \' and any unknown escape
			sb.WriteRune(*esc)
		}
		lx.advance()
	}
	return NewTokString(sb.String(), lx.currentSpan())
}
