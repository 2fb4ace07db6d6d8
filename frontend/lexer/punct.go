package lexer

import "github.com/krait-lang/krait/frontend/common"

// Punct represents a punctuation or operator token.
type Punct int

const (
	_ Punct = iota

	// PunctPlus is `+`
	PunctPlus
	// PunctMinus is `-`
	PunctMinus
	// PunctAsterisk is `*`
	PunctAsterisk
	// PunctSlash is `/`
	PunctSlash
	// PunctPercent is `%`
	PunctPercent
	// PunctEqual is `=`
	PunctEqual
	// PunctEqualEqual is `==`
	PunctEqualEqual
	// PunctNotEqual is `!=`
	PunctNotEqual
	// PunctLessThan is `<`
	PunctLessThan
	// PunctLessThanEqual is `<=`
	PunctLessThanEqual
	// PunctGreaterThan is `>`
	PunctGreaterThan
	// PunctGreaterThanEqual is `>=`
	PunctGreaterThanEqual
	// PunctBang is `!`
	PunctBang
	// PunctColon is `:`
	PunctColon
	// PunctComma is `,`
	PunctComma
	// PunctDot is `.`
	PunctDot
	// PunctOpenParen is `(`
	PunctOpenParen
	// PunctCloseParen is `)`
	PunctCloseParen
	// PunctOpenBrace is `{`
	PunctOpenBrace
	// PunctCloseBrace is `}`
	PunctCloseBrace
	// PunctOpenBracket is `[`
	PunctOpenBracket
	// PunctCloseBracket is `]`
	PunctCloseBracket
	// PunctArrow is `->`
	PunctArrow
)

var puncts = map[string]Punct{
	"+":  PunctPlus,
	"-":  PunctMinus,
	"*":  PunctAsterisk,
	"/":  PunctSlash,
	"%":  PunctPercent,
	"=":  PunctEqual,
	"==": PunctEqualEqual,
	"!=": PunctNotEqual,
	"<":  PunctLessThan,
	"<=": PunctLessThanEqual,
	">":  PunctGreaterThan,
	">=": PunctGreaterThanEqual,
	"!":  PunctBang,
	":":  PunctColon,
	",":  PunctComma,
	".":  PunctDot,
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	"[":  PunctOpenBracket,
	"]":  PunctCloseBracket,
	"->": PunctArrow,
}

var punctNames = func() []string {
	var max Punct
	for _, p := range puncts {
		if p > max {
			max = p
		}
	}
	names := make([]string, max+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken() {}

func (t TokPunct) Span() common.Span {
	return t.span
}

func (t TokPunct) String() string {
	return punctNames[t.Punct]
}

func (t TokPunct) Is(other string) bool {
	p, ok := puncts[other]
	return ok && p == t.Punct
}

func (t TokPunct) AsString() string {
	return t.String()
}

func NewTokPunct(p Punct, span common.Span) TokPunct {
	return TokPunct{Punct: p, span: span}
}

/* Lexing */

// punct tries the two-character operators first, then the single ones.
func (lx *lexer) punct() Token {
	c := lx.curChr()
	if c == nil {
		return nil
	}
	if n := lx.peek(); n != nil {
		if p, ok := puncts[string([]rune{*c, *n})]; ok {
			lx.advance()
			lx.advance()
			return NewTokPunct(p, lx.currentSpan())
		}
	}
	if p, ok := puncts[string(*c)]; ok {
		lx.advance()
		return NewTokPunct(p, lx.currentSpan())
	}
	return nil
}
