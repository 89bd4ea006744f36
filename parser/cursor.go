/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package parser implements the recoverable recursive-descent parser for
WHILE: the token cursor, the expression/statement/block/program
parsers, and the Parse entry point.
*/
package parser

import (
	"github.com/krotik/while/perr"
	"github.com/krotik/while/token"
)

/*
Status classifies the outcome of a cursor operation that can fail.
*/
type Status int

/*
Possible outcomes of Expect and the parsers built on it.
*/
const (
	OK Status = iota
	ERROR
	EOI
)

/*
cursor is a FIFO view over the token stream with peek/advance and
position tracking, per §4.1.
*/
type cursor struct {
	tokens []token.Token
	pos    int
	errs   *perr.List

	lastPos token.Position
	lastLen int
}

/*
newCursor wraps a token slice. Diagnostics raised while advancing the
cursor are recorded on errs.
*/
func newCursor(tokens []token.Token, errs *perr.List) *cursor {
	return &cursor{tokens: tokens, errs: errs}
}

/*
peek returns the next token without consuming it. At end of input it
returns a synthetic token.EOI token.
*/
func (c *cursor) peek() token.Token {
	if c.pos >= len(c.tokens) {
		return token.Token{Type: token.EOI, Pos: c.eoiPos()}
	}
	t := c.tokens[c.pos]
	if t.Type == token.EOI {
		return token.Token{Type: token.EOI, Pos: t.Pos}
	}
	return t
}

/*
eoiPos synthesizes a position one column past the last consumed token
so diagnostics raised at end of input point at the gap.
*/
func (c *cursor) eoiPos() token.Position {
	return token.Position{Row: c.lastPos.Row, Col: c.lastPos.Col + c.lastLen}
}

/*
next consumes and returns the next token.
*/
func (c *cursor) next() token.Token {
	t := c.peek()
	if t.Type != token.EOI {
		c.pos++
		c.lastPos = t.Pos
		c.lastLen = len(t.Value)
		if c.lastLen == 0 {
			c.lastLen = 1
		}
	}
	return t
}

/*
expect consumes the next token and validates it against the expected
set of literal values. It returns OK on a match, ERROR on a mismatch
(the offending token is still consumed and a diagnostic recorded), and
EOI if the stream is exhausted (a diagnostic is recorded).
*/
func (c *cursor) expect(values ...string) (token.Token, Status) {
	t := c.peek()

	if t.Type == token.EOI {
		c.errs.Add(c.eoiPos(), perr.UnexpectedEndOfInput(values...))
		return t, EOI
	}

	for _, v := range values {
		if t.Value == v {
			c.next()
			return t, OK
		}
	}

	c.next()
	c.errs.Add(t.Pos, perr.UnexpectedToken(t.Value, values...))
	return t, ERROR
}

/*
consumeUntil drains tokens until peek is one of the given values or end
of input; the terminator is not consumed.
*/
func (c *cursor) consumeUntil(values ...string) {
	for {
		t := c.peek()
		if t.Type == token.EOI {
			return
		}
		for _, v := range values {
			if t.Value == v {
				return
			}
		}
		c.next()
	}
}
