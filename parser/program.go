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
parseProgram recognizes `name read input { body } write output`, per
§4.5. It handles three degraded openings (missing name, missing read,
opening directly with '{') with targeted diagnostics, and still
captures whatever fields it can.
*/
func (p *parser) parseProgram() *ast.Program {
	t := p.c.peek()

	var name string
	namePos := t.Pos
	nameOK := true
	openedWithBrace := false

	switch {
	case t.Value == token.SymLBrace:
		p.c.errs.Add(t.Pos, "Missing program name")
		nameOK = false
		openedWithBrace = true

	case t.Value == token.KeywordRead:
		p.c.errs.Add(t.Pos, "Missing program name")
		nameOK = false

	case t.Type == token.IDENTIFIER:
		p.c.next()
		name = t.Value

	default:
		p.c.errs.Add(t.Pos, "Missing program name")
		nameOK = false
	}

	var input string
	inputOK := true
	introStatus := OK

	if openedWithBrace {
		p.c.errs.Add(t.Pos, "Missing input variable")
		inputOK = false
		introStatus = ERROR
	} else {
		_, rstatus := p.c.expect(token.KeywordRead)
		introStatus = rstatus

		if rstatus != EOI {
			inTok := p.c.peek()
			if inTok.Type == token.IDENTIFIER {
				p.c.next()
				input = inTok.Value
			} else {
				p.c.errs.Add(inTok.Pos, "Missing input variable")
				inputOK = false
			}
		} else {
			inputOK = false
		}
	}

	body, bodyStatus := p.parseBlock()

	var output string
	outputOK := true
	outroStatus := OK

	wt := p.c.peek()
	switch {
	case wt.Type == token.EOI:
		outroStatus = EOI
		outputOK = false

	case wt.Value == token.KeywordWrite:
		p.c.next()
		outTok := p.c.peek()
		if outTok.Type == token.IDENTIFIER {
			p.c.next()
			output = outTok.Value
		} else {
			p.c.errs.Add(outTok.Pos, "Missing output variable")
			outputOK = false
			outroStatus = ERROR
		}

	case wt.Type == token.IDENTIFIER:
		p.c.errs.Add(wt.Pos, "Missing write keyword")
		p.c.next()
		output = wt.Value
		outroStatus = ERROR

	default:
		p.c.errs.Add(wt.Pos, "Missing write keyword")
		outputOK = false
		outroStatus = ERROR
	}

	if outroStatus != EOI {
		if extra := p.c.peek(); extra.Type != token.EOI {
			p.c.errs.Add(extra.Pos, "Expected end of input")
		}
	}

	complete := nameOK && introStatus == OK && inputOK &&
		bodyStatus == OK && ast.AllComplete(body) &&
		outroStatus == OK && outputOK

	return &ast.Program{
		Name:       name,
		Input:      input,
		Output:     output,
		Body:       body,
		Position:   namePos,
		IsComplete: complete,
	}
}
