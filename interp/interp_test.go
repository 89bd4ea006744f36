/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interp

import (
	"testing"

	"github.com/krotik/while/ast"
	"github.com/krotik/while/lexer"
	"github.com/krotik/while/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	tokens := lexer.LexToList(src)
	program, errs := parser.Parse(tokens, parser.Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return program
}

func TestRunIdentity(t *testing.T) {
	program := mustParse(t, "ident read X { } write X")

	for _, in := range []*ast.Tree{ast.Nil, ast.Cons(ast.Nil, ast.Nil), ast.Encode(7)} {
		out, err := Run(program, in, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ast.Equals(out, in) {
			t.Errorf("identity program changed its input: got %v, want %v", out, in)
		}
	}
}

func TestRunSimpleAssignment(t *testing.T) {
	program := mustParse(t, "prog read X { Y := X } write Y")

	out, err := Run(program, ast.Nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equals(out, ast.Nil) {
		t.Errorf("got %v, want nil", out)
	}

	pair := ast.Cons(ast.Nil, ast.Nil)
	out, err = Run(program, pair, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equals(out, pair) {
		t.Errorf("got %v, want %v", out, pair)
	}
}

func TestRunAddProgram(t *testing.T) {
	src := `add read XY {
		X := hd XY;
		Y := tl XY;
		while X {
			Y := cons nil Y;
			X := tl X
		}
	} write Y`

	program := mustParse(t, src)

	input := ast.Cons(ast.Encode(3), ast.Encode(2))
	out, err := Run(program, input, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, ok := ast.Decode(out)
	if !ok {
		t.Fatalf("expected a numeric-shaped result, got %v", out)
	}
	if n != 5 {
		t.Errorf("3 + 2: got %v, want 5", n)
	}
}

func TestRunHdTlOfNil(t *testing.T) {
	program := mustParse(t, "prog read X { Y := hd nil; Z := tl nil; Y := cons Y Z } write Y")

	out, err := Run(program, ast.Nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equals(out, ast.Cons(ast.Nil, ast.Nil)) {
		t.Errorf("hd(nil) and tl(nil) should both be nil: got %v, want (nil.nil)", out)
	}
}

func TestRunConsSemantics(t *testing.T) {
	program := mustParse(t, "prog read X { Y := hd cons X nil; Z := tl cons nil X } write Y")

	in := ast.Cons(ast.Nil, ast.Nil)
	out, err := Run(program, in, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equals(out, in) {
		t.Errorf("hd(cons a b) should be a: got %v, want %v", out, in)
	}
}

func TestRunIfElse(t *testing.T) {
	program := mustParse(t, "prog read X { if X { Y := hd X } else { Y := X } } write Y")

	out, err := Run(program, ast.Nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.IsNil(out) {
		t.Errorf("else branch should have run: got %v", out)
	}

	pair := ast.Cons(ast.Encode(1), ast.Nil)
	out, err = Run(program, pair, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equals(out, ast.Encode(1)) {
		t.Errorf("if branch should have run: got %v", out)
	}
}

func TestRunUnsetVariableIsNil(t *testing.T) {
	program := mustParse(t, "prog read X { } write Never")

	out, err := Run(program, ast.Encode(3), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.IsNil(out) {
		t.Error("an unset variable should read as nil")
	}
}

func TestRunNilProgram(t *testing.T) {
	if _, err := Run(nil, ast.Nil, Options{}); err == nil {
		t.Error("expected a MalformedAst error for a nil program")
	}
}

func TestRunDeepLoopDoesNotOverflow(t *testing.T) {
	src := `count read X {
		Y := nil;
		while X {
			Y := cons nil Y;
			X := tl X
		}
	} write Y`

	program := mustParse(t, src)

	out, err := Run(program, ast.Encode(20000), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, ok := ast.Decode(out)
	if !ok || n != 20000 {
		t.Errorf("got %v, want a 20000-deep count", out)
	}
}
