// Package peekable provides a position-tracking, peekable rune iterator.
package peekable

import (
	"unicode/utf8"
)

// Chars iterates over the runes of a string with one rune of lookahead.
// "\r\n" is reported as a single '\n'.
type Chars struct {
	input string
	pos   int // byte offset of cur
	width int // byte width of cur
	cur   rune
	ok    bool

	line, column uint32
}

func NewPeekableChars(s string) *Chars {
	c := &Chars{input: s, line: 1, column: 1}
	c.decode()
	return c
}

func (c *Chars) decode() {
	if c.pos >= len(c.input) {
		c.ok = false
		c.width = 0
		return
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	if r == '\r' && c.pos+w < len(c.input) && c.input[c.pos+w] == '\n' {
		r = '\n'
		w++
	}
	c.cur, c.width, c.ok = r, w, true
}

// Current returns the rune under the cursor, or nil at end of input.
func (c *Chars) Current() *rune {
	if !c.ok {
		return nil
	}
	r := c.cur
	return &r
}

// Peek returns the rune after the cursor without consuming anything.
func (c *Chars) Peek() *rune {
	if !c.ok {
		return nil
	}
	next := c.pos + c.width
	if next >= len(c.input) {
		return nil
	}
	r, w := utf8.DecodeRuneInString(c.input[next:])
	if r == '\r' && next+w < len(c.input) && c.input[next+w] == '\n' {
		r = '\n'
	}
	return &r
}

// Advance consumes the current rune and updates line/column.
func (c *Chars) Advance() {
	if !c.ok {
		return
	}
	if c.cur == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	c.pos += c.width
	c.decode()
}

// Line and Column are the 1-based position of the current rune.
func (c *Chars) Line() uint32   { return c.line }
func (c *Chars) Column() uint32 { return c.column }
