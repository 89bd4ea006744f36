/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "testing"

func TestTypeString(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{IDENTIFIER, "identifier"},
		{OPERATION, "operation"},
		{SYMBOL, "symbol"},
		{NUMBER, "number"},
		{EXPRESSION, "expression"},
		{EOI, "end of input"},
		{Type(999), "unknown"},
	}

	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("Type(%v).String() = %q, want %q", int(c.typ), got, c.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Row: 2, Col: 5}).String(); got != "2:5" {
		t.Errorf("Position.String() = %q, want %q", got, "2:5")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENTIFIER, Value: "X", Pos: Position{Row: 0, Col: 3}}
	want := `identifier("X")@0:3`

	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
