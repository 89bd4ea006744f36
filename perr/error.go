/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package perr holds the diagnostic record shape surfaced by the parser
and the ordered registry that accumulates it, modelled on the
RuntimeError bookkeeping in the teacher's util package but without the
stack trace, which only matters once a program is running.
*/
package perr

import (
	"fmt"

	"github.com/krotik/while/token"
)

/*
Error is a single diagnostic: a source position and a message.
*/
type Error struct {
	Position token.Position
	Message  string
}

/*
String returns a printable "row:col: message" representation.
*/
func (e Error) String() string {
	return fmt.Sprintf("%v: %v", e.Position, e.Message)
}

/*
List is an ordered, never-deduplicated collection of diagnostics.
*/
type List struct {
	errors []Error
}

/*
Add records a new diagnostic at the end of the list.
*/
func (l *List) Add(pos token.Position, message string) {
	l.errors = append(l.errors, Error{pos, message})
}

/*
Errors returns the accumulated diagnostics in insertion order.
*/
func (l *List) Errors() []Error {
	return l.errors
}

/*
Empty reports whether no diagnostic has been recorded.
*/
func (l *List) Empty() bool {
	return len(l.errors) == 0
}

// Diagnostic message helpers
// ==========================
//
// These build three of the abstract error kinds from §7
// (UnexpectedToken, UnexpectedEndOfInput, UnexpectedValue) into the
// free-form messages the registry stores. Custom diagnostics have no
// helper; their message text is passed to Add directly.

/*
UnexpectedToken reports that a token did not match any of the expected
kinds.
*/
func UnexpectedToken(got string, expected ...string) string {
	return fmt.Sprintf("Unexpected token %q, expected one of %v", got, expected)
}

/*
UnexpectedEndOfInput reports that the stream ended while one of the
expected kinds was required.
*/
func UnexpectedEndOfInput(expected ...string) string {
	return fmt.Sprintf("Unexpected end of input, expected one of %v", expected)
}

/*
UnexpectedValue reports a token of the wrong category.
*/
func UnexpectedValue(got string, wantCategory string) string {
	return fmt.Sprintf("Unexpected value %q, expected %v", got, wantCategory)
}
