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
	"strconv"

	"github.com/krotik/while/ast"
	"github.com/krotik/while/token"
)

/*
parseExpr recognizes E ::= ident | '(' E ')' | hd E | tl E | cons E E |
number, per §4.2. It never fails outright: on any unrecognized leading
token it records a diagnostic and returns a nil node.
*/
func (p *parser) parseExpr() ast.Node {
	t := p.c.peek()

	switch {
	case t.Type == token.IDENTIFIER:
		p.c.next()
		return &ast.Identifier{Value: t.Value, Position: t.Pos}

	case t.Value == token.SymLParen:
		p.c.next()
		inner := p.parseExpr()
		p.c.expect(token.SymRParen)
		return inner

	case t.Type == token.OPERATION && (t.Value == ast.Hd || t.Value == ast.Tl):
		p.c.next()
		arg := p.parseExpr()
		return &ast.Operation{
			Op:         t.Value,
			Args:       []ast.Node{arg},
			Position:   t.Pos,
			IsComplete: ast.OperandComplete(arg),
		}

	case t.Type == token.OPERATION && t.Value == ast.Cons:
		p.c.next()
		left := p.parseExpr()
		right := p.parseExpr()
		return &ast.Operation{
			Op:         ast.Cons,
			Args:       []ast.Node{left, right},
			Position:   t.Pos,
			IsComplete: ast.OperandComplete(left) && ast.OperandComplete(right),
		}

	case t.Type == token.NUMBER:
		if p.opts.PureOnly {
			p.c.errs.Add(t.Pos, "Numeric literals are not allowed in pure mode")
			p.c.next()
			return nil
		}
		p.c.next()
		n, _ := strconv.Atoi(t.Value)
		return &ast.TreeLit{Value: ast.Encode(n), Position: t.Pos}
	}

	p.c.errs.Add(t.Pos, "Expected an expression or an identifier")
	return nil
}
