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
	"github.com/krotik/while/perr"
	"github.com/krotik/while/token"
)

/*
Options configures the parser. PureOnly, when true, rejects numeric
literals and switch statements, per §6/§9. The extended-dialect gating
is centralized here rather than scattered across the grammar.
*/
type Options struct {
	PureOnly bool
}

/*
parser holds the mutable state of a single parse: the token cursor and
the options that were passed in. It is a pure function of its token
vector and options; all mutation is confined to the cursor and its
error registry.
*/
type parser struct {
	c    *cursor
	opts Options
}

/*
Parse turns a token stream into a program AST plus the complete,
ordered diagnostic list. It never panics on malformed input: on a
syntactic problem it records a diagnostic and returns the best-effort
AST it could build, with Complete()==false somewhere on the path to
the problem. Two problems are diagnosed without marking any node
partial: a missing ')' after a parenthesized expression, and tokens
left over after the output variable.
*/
func Parse(tokens []token.Token, opts Options) (*ast.Program, []perr.Error) {
	errs := &perr.List{}
	p := &parser{c: newCursor(tokens, errs), opts: opts}

	program := p.parseProgram()

	return program, errs.Errors()
}
