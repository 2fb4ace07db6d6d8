package lexer

import (
	"unicode"

	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer/peekable"
)

// lexer is a hand-rolled, rune-based scanner.
type lexer struct {
	src                    string // source is the file being scanned
	chars                  *peekable.Chars
	savedLine, savedColumn uint32
}

// Lex turns code into tokens. It never fails: characters no rule accepts
// become single-character identifiers and are rejected later by the parser.
// The result always ends with a TokEOF.
func Lex(src, code string) []Token {
	var tokens []Token
	lx := newLexer(src, code)
	for {
		tok := lx.nextToken()
		tokens = append(tokens, tok)
		if _, ok := tok.(TokEOF); ok {
			break
		}
	}
	return tokens
}

func newLexer(src, code string) *lexer {
	return &lexer{
		src:       src,
		chars:     peekable.NewPeekableChars(code),
		savedLine: 1, savedColumn: 1,
	}
}

func (lx *lexer) curChr() *rune {
	return lx.chars.Current()
}

func (lx *lexer) peek() *rune {
	return lx.chars.Peek()
}

func (lx *lexer) advance() {
	lx.chars.Advance()
}

// currentSpan covers everything consumed since the last mark.
func (lx *lexer) currentSpan() common.Span {
	endLine, endColumn := lx.chars.Line(), lx.chars.Column()
	if endColumn > 1 {
		endColumn--
	}
	span := common.SpanNew(lx.savedLine, endLine, lx.savedColumn, endColumn)
	span.Source = lx.src
	return span
}

func (lx *lexer) mark() {
	lx.savedLine = lx.chars.Line()
	lx.savedColumn = lx.chars.Column()
}

// skipWs skips whitespace and // comments.
func (lx *lexer) skipWs() {
	for {
		c := lx.curChr()
		switch {
		case c == nil:
			return
		case unicode.IsSpace(*c):
			lx.advance()
		case *c == '/' && isChr(lx.peek(), '/'):
			lx.comment()
		default:
			return
		}
	}
}

func (lx *lexer) comment() {
	for c := lx.curChr(); c != nil; c = lx.curChr() {
		lx.advance()
		if *c == '\n' {
			return
		}
	}
}

func (lx *lexer) nextToken() Token {
	lx.skipWs()
	lx.mark()

	if lx.curChr() == nil {
		span := common.SpanNew(lx.savedLine, lx.savedLine, lx.savedColumn, lx.savedColumn)
		span.Source = lx.src
		return TokEOF{span: span}
	}

	if token := lx.string(); token != nil {
		return token
	}
	if token := lx.identifier(); token != nil {
		return token
	}
	if token := lx.number(); token != nil {
		return token
	}
	if token := lx.punct(); token != nil {
		return token
	}

	// unknown character
	c := *lx.curChr()
	lx.advance()
	return NewTokIdent(string(c), lx.currentSpan())
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}
