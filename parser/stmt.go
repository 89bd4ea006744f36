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
parseStatement dispatches on the leading token to one of if/while/
assignment/switch, per §4.3. Any other leading token is diagnosed and
yields a nil node with ERROR status, which triggers recovery in the
enclosing statement list.
*/
func (p *parser) parseStatement() (ast.Node, Status) {
	t := p.c.peek()

	switch {
	case t.Type == token.EOI:
		return nil, EOI

	case t.Value == token.KeywordIf:
		return p.parseIf(), OK

	case t.Value == token.KeywordWhile:
		return p.parseWhile(), OK

	case t.Value == token.KeywordSwitch:
		if p.opts.PureOnly {
			p.c.errs.Add(t.Pos, "Switch statements are not allowed in pure mode")
			p.c.next()
			return nil, ERROR
		}
		return p.parseSwitch(), OK

	case t.Type == token.IDENTIFIER:
		return p.parseAssign(), OK
	}

	p.c.errs.Add(t.Pos, "Expected if while or an assignment statement")
	p.c.next()
	return nil, ERROR
}

/*
parseIf reads condition, the mandatory if-block, and an optional else
block. A missing else is equivalent to else {} and does not by itself
mark the node partial.
*/
func (p *parser) parseIf() ast.Node {
	t := p.c.next() // 'if'

	cond := p.parseExpr()
	ifBody, ifStatus := p.parseBlock()

	elseBody := []ast.Node{}
	elseStatus := OK

	if p.c.peek().Value == token.KeywordElse {
		p.c.next()
		elseBody, elseStatus = p.parseBlock()
	}

	complete := cond != nil && cond.Complete() &&
		ifStatus == OK && ast.AllComplete(ifBody) &&
		elseStatus == OK && ast.AllComplete(elseBody)

	return &ast.Cond{
		Condition:  cond,
		If:         ifBody,
		Else:       elseBody,
		Position:   t.Pos,
		IsComplete: complete,
	}
}

/*
parseWhile reads condition, then block.
*/
func (p *parser) parseWhile() ast.Node {
	t := p.c.next() // 'while'

	cond := p.parseExpr()
	body, status := p.parseBlock()

	complete := cond != nil && cond.Complete() && status == OK && ast.AllComplete(body)

	return &ast.Loop{
		Condition:  cond,
		Body:       body,
		Position:   t.Pos,
		IsComplete: complete,
	}
}

/*
parseAssign reads `ident := E`. ':=' is required but its absence is
diagnosed and parsing continues.
*/
func (p *parser) parseAssign() ast.Node {
	ident := p.c.next() // identifier

	_, status := p.c.expect(token.SymAssign)

	var arg ast.Node
	if status != EOI {
		arg = p.parseExpr()
	}

	complete := status == OK && arg != nil && arg.Complete()

	return &ast.Assign{
		Ident:      ident.Value,
		IdentPos:   ident.Pos,
		Arg:        arg,
		Position:   ident.Pos,
		IsComplete: complete,
	}
}

/*
parseSwitch reads `switch E { (case E: stmts)* (default: stmts)? }`,
extended dialect only. A default clause, if present, must be last; any
clause following it is diagnosed but still attached. A missing default
is synthesized as an empty, complete SwitchDefault.
*/
func (p *parser) parseSwitch() ast.Node {
	t := p.c.next() // 'switch'

	cond := p.parseExpr()
	_, lstatus := p.c.expect(token.SymLBrace)

	var cases []*ast.SwitchCase
	var def *ast.SwitchDefault
	status := OK
	recovered := false

loop:
	for {
		tok := p.c.peek()

		switch {
		case tok.Type == token.EOI:
			status = EOI
			break loop

		case tok.Value == token.SymRBrace:
			break loop

		case tok.Value == token.KeywordCase:
			c := p.parseSwitchCase()
			if def != nil {
				p.c.errs.Add(c.Position, "case clause after default clause")
				recovered = true
			}
			cases = append(cases, c)

		case tok.Value == token.KeywordDefault:
			d := p.parseSwitchDefault()
			if def != nil {
				p.c.errs.Add(d.Position, "multiple default clauses")
				recovered = true
			}
			def = d

		default:
			p.c.errs.Add(tok.Pos, "Expected case or default")
			p.c.consumeUntil(token.KeywordCase, token.KeywordDefault, token.SymRBrace)
			recovered = true
		}
	}

	if status != EOI {
		_, rstatus := p.c.expect(token.SymRBrace)
		if rstatus == EOI {
			status = EOI
		} else if rstatus == ERROR || lstatus == ERROR {
			status = ERROR
		}
	}

	if def == nil {
		def = &ast.SwitchDefault{Body: []ast.Node{}, IsComplete: true}
	}

	casesComplete := true
	for _, c := range cases {
		if !c.Complete() {
			casesComplete = false
		}
	}

	complete := cond != nil && cond.Complete() && status == OK && !recovered &&
		casesComplete && def.Complete()

	return &ast.Switch{
		Condition:  cond,
		Cases:      cases,
		Default:    def,
		Position:   t.Pos,
		IsComplete: complete,
	}
}

/*
parseSwitchCase reads `case E : stmts`, the statement list terminated
by the next case/default/}.
*/
func (p *parser) parseSwitchCase() *ast.SwitchCase {
	t := p.c.next() // 'case'

	cond := p.parseExpr()
	_, cstatus := p.c.expect(token.SymColon)
	body, bstatus := p.parseStmtList(token.KeywordCase, token.KeywordDefault, token.SymRBrace)

	complete := cond != nil && cond.Complete() && cstatus == OK && bstatus == OK && ast.AllComplete(body)

	return &ast.SwitchCase{
		Cond:       cond,
		Body:       body,
		Position:   t.Pos,
		IsComplete: complete,
	}
}

/*
parseSwitchDefault reads `default : stmts`.
*/
func (p *parser) parseSwitchDefault() *ast.SwitchDefault {
	t := p.c.next() // 'default'

	_, cstatus := p.c.expect(token.SymColon)
	body, bstatus := p.parseStmtList(token.KeywordCase, token.KeywordDefault, token.SymRBrace)

	complete := cstatus == OK && bstatus == OK && ast.AllComplete(body)

	return &ast.SwitchDefault{
		Body:       body,
		Position:   t.Pos,
		IsComplete: complete,
	}
}
