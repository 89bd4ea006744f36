/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{KindIdentifier, "identifier"},
		{KindTree, "tree"},
		{KindOperation, "operation"},
		{KindEqual, "equal"},
		{KindAssign, "assign"},
		{KindCond, "cond"},
		{KindLoop, "loop"},
		{KindSwitch, "switch"},
		{KindSwitchCase, "switch_case"},
		{KindSwitchDefault, "switch_default"},
		{KindProgram, "program"},
		{Kind(999), "unknown"},
	}

	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%v).String() = %q, want %q", int(c.k), got, c.want)
		}
	}
}

func TestOperandComplete(t *testing.T) {
	ident := &Identifier{Value: "X"}
	lit := &TreeLit{Value: Nil}
	completeOp := &Operation{Op: Hd, Args: []Node{ident}, IsComplete: true}
	partialOp := &Operation{Op: Hd, Args: []Node{nil}, IsComplete: false}

	if !OperandComplete(ident) {
		t.Error("an identifier is always a complete operand")
	}
	if !OperandComplete(lit) {
		t.Error("a tree literal is always a complete operand")
	}
	if !OperandComplete(completeOp) {
		t.Error("a complete nested operation is a complete operand")
	}
	if OperandComplete(partialOp) {
		t.Error("a partial nested operation is not a complete operand")
	}
	if OperandComplete(nil) {
		t.Error("a missing slot is never a complete operand")
	}
}

func TestAllComplete(t *testing.T) {
	ok := []Node{
		&Identifier{Value: "X"},
		&Assign{Ident: "Y", Arg: &Identifier{Value: "X"}, IsComplete: true},
	}
	if !AllComplete(ok) {
		t.Error("all nodes complete: expected true")
	}

	withMissing := []Node{
		&Identifier{Value: "X"},
		nil,
	}
	if AllComplete(withMissing) {
		t.Error("a missing node should make the list incomplete")
	}

	withPartial := []Node{
		&Assign{Ident: "Y", IsComplete: false},
	}
	if AllComplete(withPartial) {
		t.Error("a partial node should make the list incomplete")
	}

	if !AllComplete(nil) {
		t.Error("an empty list is vacuously complete")
	}
}
