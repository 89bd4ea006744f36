/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"github.com/krotik/while/ast"
	"github.com/krotik/while/token"
)

/*
parseStmtList parses a semicolon-separated statement list terminated by
one of the given token values (not consumed). On a statement failing
with ERROR the cursor is drained up to (not past) the next ';' or a
terminator; the list then consumes a ';' separator, if present, and
continues. An EOI status propagates and terminates the list.
*/
func (p *parser) parseStmtList(terminators ...string) ([]ast.Node, Status) {
	var list []ast.Node

	isTerminator := func(v string) bool {
		for _, t := range terminators {
			if v == t {
				return true
			}
		}
		return false
	}

	for {
		t := p.c.peek()

		if t.Type == token.EOI {
			return list, EOI
		}

		if isTerminator(t.Value) {
			return list, OK
		}

		node, status := p.parseStatement()
		list = append(list, node)

		if status == EOI {
			return list, EOI
		}

		if status == ERROR {
			drain := append(append([]string{}, terminators...), token.SymSemi)
			p.c.consumeUntil(drain...)
		}

		if p.c.peek().Value == token.SymSemi {
			p.c.next()
		}
	}
}

/*
parseBlock expects '{', then either immediately '}' (empty block) or a
statement list, then '}'. Diagnostics are emitted for each missing
brace but the statements parsed so far are still returned, per §4.4.
*/
func (p *parser) parseBlock() ([]ast.Node, Status) {
	_, lstatus := p.c.expect(token.SymLBrace)
	if lstatus == EOI {
		return nil, EOI
	}

	if p.c.peek().Value == token.SymRBrace {
		p.c.next()
		if lstatus != OK {
			return []ast.Node{}, ERROR
		}
		return []ast.Node{}, OK
	}

	list, lsStatus := p.parseStmtList(token.SymRBrace)
	if lsStatus == EOI {
		return list, EOI
	}

	_, rstatus := p.c.expect(token.SymRBrace)
	if rstatus == EOI {
		return list, EOI
	}

	if lstatus != OK || lsStatus != OK || rstatus != OK {
		return list, ERROR
	}
	return list, OK
}
