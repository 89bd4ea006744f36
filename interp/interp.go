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
	"github.com/krotik/while/ast"
	"github.com/krotik/while/util"
)

/*
Options configures a run. It is currently empty but reserved for
future extension, per §6.
*/
type Options struct{}

/*
Run executes program against input and returns the binding of the
output variable once execution finishes. A nil program is a malformed
AST; well-formed programs produced by this package's own parser never
trigger the MalformedAst error (they may simply fail to terminate).
*/
func Run(program *ast.Program, input *ast.Tree, _ Options) (*ast.Tree, error) {
	if program == nil {
		return nil, util.NewRuntimeError(util.ErrMalformedAst, "nil program")
	}

	store := NewStore(program.Input, input)

	if err := run(program.Body, store); err != nil {
		return nil, err
	}

	return store.Get(program.Output), nil
}
