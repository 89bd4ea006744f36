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

import "testing"

func TestDisplayPADHwhileExact(t *testing.T) {
	v := []Value{0, []Value{
		[]Value{":=", 1, []Value{"quote", "nil"}},
	}, 1}

	got := DisplayPAD(v, HWHILE)
	want := "[0, [\n    [@:=, 1, [@quote, nil]]\n], 1]\n"

	if got != want {
		t.Errorf("DisplayPAD mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestDisplayPADPureOmitsPrefix(t *testing.T) {
	v := []Value{0, []Value{
		[]Value{":=", 1, []Value{"quote", "nil"}},
	}, 1}

	got := DisplayPAD(v, PURE)
	want := "[0, [\n    [:=, 1, [quote, nil]]\n], 1]\n"

	if got != want {
		t.Errorf("DisplayPAD mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestDisplayPADNeverPrefixesNumbersOrNil(t *testing.T) {
	got := DisplayPAD([]Value{"cons", []Value{"var", 0}, []Value{"quote", "nil"}}, HWHILE)
	want := "[@cons, [@var, 0], [@quote, nil]]\n"

	if got != want {
		t.Errorf("DisplayPAD mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestDisplayPADExpressionPositionInline(t *testing.T) {
	got := DisplayPAD([]Value{"cons", []Value{"quote", "nil"}, []Value{"var", 0}}, HWHILE)
	want := "[@cons, [@quote, nil], [@var, 0]]\n"

	if got != want {
		t.Errorf("DisplayPAD mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestDisplayPADNestedBlockIndentation(t *testing.T) {
	// if command whose then-branch is itself a block of two statements.
	v := []Value{"if", []Value{"var", 0}, []Value{
		[]Value{":=", 1, []Value{"var", 0}},
		[]Value{":=", 2, []Value{"var", 1}},
	}, []Value{}}

	got := DisplayPAD(v, HWHILE)
	want := "[@if, [@var, 0], [\n    [@:=, 1, [@var, 0]],\n    [@:=, 2, [@var, 1]]\n], []]\n"

	if got != want {
		t.Errorf("DisplayPAD mismatch:\n got:  %q\n want: %q", got, want)
	}
}
