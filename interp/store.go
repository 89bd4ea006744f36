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
Package interp implements the tree-walking interpreter: an explicit-
stack evaluator over the AST and the flat variable store it mutates.
*/
package interp

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/sortutil"

	"github.com/krotik/while/ast"
)

/*
Store maps variable names to tree values. It is initialized with the
input binding and mutated only by assignment commands; referencing an
unset variable yields Nil rather than an error, per invariant (c).
*/
type Store struct {
	vars map[string]*ast.Tree
}

/*
NewStore creates a variable store with a single input binding.
*/
func NewStore(inputVar string, input *ast.Tree) *Store {
	s := &Store{vars: make(map[string]*ast.Tree)}
	s.vars[inputVar] = input
	return s
}

/*
Get returns the current value of a variable, or ast.Nil if it was
never assigned.
*/
func (s *Store) Get(name string) *ast.Tree {
	if v, ok := s.vars[name]; ok {
		return v
	}
	return ast.Nil
}

/*
Set assigns a new value to a variable.
*/
func (s *Store) Set(name string, value *ast.Tree) {
	s.vars[name] = value
}

/*
String renders the store's bindings in a deterministic, sorted order -
useful for debugging and tests. Sorting uses the same sortutil helper
the teacher uses for its own deterministic debug dumps (map keys sorted
by string value before printing).
*/
func (s *Store) String() string {
	names := make([]interface{}, 0, len(s.vars))
	for n := range s.vars {
		names = append(names, n)
	}

	sortutil.InterfaceStrings(names)

	var buf bytes.Buffer
	for _, n := range names {
		name := n.(string)
		fmt.Fprintf(&buf, "%v = %v\n", name, s.vars[name])
	}
	return buf.String()
}
