/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package pad

import (
	"reflect"
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

func TestToPADSimpleAssignment(t *testing.T) {
	program := mustParse(t, "prog read X { Y := X } write Y")

	got, err := ToPAD(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Value{0, []Value{
		[]Value{":=", 1, []Value{"var", 0}},
	}, 1}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToPAD mismatch:\n got  %#v\n want %#v", got, want)
	}
}

func TestToPADInputAlwaysIndexZero(t *testing.T) {
	program := mustParse(t, "prog read X { } write X")

	got, err := ToPAD(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := got.([]Value)
	if list[0] != 0 || list[2] != 0 {
		t.Errorf("the input variable must always be index 0: got %#v", got)
	}
}

func TestToPADNilQuote(t *testing.T) {
	program := mustParse(t, "prog read X { Y := nil } write Y")

	got, err := ToPAD(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Value{0, []Value{
		[]Value{":=", 1, []Value{"quote", "nil"}},
	}, 1}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToPAD mismatch:\n got  %#v\n want %#v", got, want)
	}
}

func TestToPADHdTlCons(t *testing.T) {
	program := mustParse(t, "prog read X { Y := cons hd X tl X } write Y")

	got, err := ToPAD(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Value{0, []Value{
		[]Value{":=", 1, []Value{"cons", []Value{"hd", []Value{"var", 0}}, []Value{"tl", []Value{"var", 0}}}},
	}, 1}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToPAD mismatch:\n got  %#v\n want %#v", got, want)
	}
}

func TestToPADIfWhile(t *testing.T) {
	program := mustParse(t, "prog read X { if X { Y := X } while X { X := tl X } } write Y")

	got, err := ToPAD(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := got.([]Value)
	body := list[1].([]Value)
	if len(body) != 2 {
		t.Fatalf("expected 2 commands, got %v", len(body))
	}

	ifCmd := body[0].([]Value)
	if ifCmd[0] != "if" {
		t.Errorf("expected an if command, got %#v", ifCmd)
	}

	whileCmd := body[1].([]Value)
	if whileCmd[0] != "while" {
		t.Errorf("expected a while command, got %#v", whileCmd)
	}
}

func TestToPADSwitchUnsupported(t *testing.T) {
	program := mustParse(t, "prog read X { switch X { default: Y := X } } write Y")

	if _, err := ToPAD(program); err == nil {
		t.Error("switch has no PAD representation and should fail to encode")
	}
}

func TestFromPADRoundTrip(t *testing.T) {
	program := mustParse(t, `add read XY {
		X := hd XY;
		Y := tl XY;
		while X {
			Y := cons nil Y;
			X := tl X
		}
	} write Y`)

	encoded, err := ToPAD(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := FromPAD(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reencoded, err := ToPAD(decoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(encoded, reencoded) {
		t.Errorf("round trip did not preserve structure up to renaming:\n got  %#v\n want %#v", reencoded, encoded)
	}
}

func TestFromPADIndexNaming(t *testing.T) {
	program, err := FromPAD([]Value{0, []Value{
		[]Value{":=", 1, []Value{"var", 0}},
	}, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if program.Input != "A" {
		t.Errorf("index 0 should decode to A, got %v", program.Input)
	}
	if program.Output != "B" {
		t.Errorf("index 1 should decode to B, got %v", program.Output)
	}
}

func TestFromPADMalformed(t *testing.T) {
	if _, err := FromPAD("not a program"); err == nil {
		t.Error("expected an error for a non-list PAD value")
	}
	if _, err := FromPAD([]Value{0, []Value{}, 0, "extra"}); err == nil {
		t.Error("expected an error for a program list of the wrong length")
	}
	if _, err := FromPAD([]Value{0, []Value{[]Value{"nonsense"}}, 0}); err == nil {
		t.Error("expected an error for an unknown command tag")
	}
}
