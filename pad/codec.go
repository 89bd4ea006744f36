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
Package pad implements the programs-as-data codec: the bidirectional
translation between a program AST and its canonical list-encoded
representation, plus the textual renderer for that representation.
*/
package pad

import (
	"fmt"

	"devt.de/krotik/common/errorutil"

	"github.com/krotik/while/ast"
	"github.com/krotik/while/token"
	"github.com/krotik/while/util"
)

/*
Value is one node of a PAD structure: a string tag, an int (a variable
index), or a nested list of further Values. It is an alias for
interface{} rather than a distinct type so that PAD produced by this
package and PAD decoded from JSON by a host are interchangeable.
*/
type Value = interface{}

// Encoding
// ========

/*
ToPAD encodes a program as [input_index, body, output_index], per
§4.7. Identifier indices are assigned in order of first textual
occurrence, with the input variable fixed at index 0 (invariant (d)).

Switch commands and equality expressions have no PAD representation -
the grammar in §4.7 only defines ':=' / 'if' / 'while' and
hd/tl/cons/var/quote - so encoding a program that still contains them
fails with ErrMalformedPad. A host wanting to encode an extended-
dialect program must desugar switch (and never constructs Equal, since
the parser never emits it) before calling ToPAD.
*/
func ToPAD(program *ast.Program) (Value, error) {
	if program == nil {
		return nil, util.NewRuntimeError(util.ErrMalformedAst, "nil program")
	}

	indices := map[string]int{program.Input: 0}
	order := []string{program.Input}

	register := func(name string) {
		if _, ok := indices[name]; !ok {
			indices[name] = len(order)
			order = append(order, name)
		}
	}

	walkCommands(program.Body, register)
	register(program.Output)

	body, err := encodeCommands(program.Body, indices)
	if err != nil {
		return nil, err
	}

	return []Value{0, body, indices[program.Output]}, nil
}

func walkCommands(nodes []ast.Node, register func(string)) {
	for _, n := range nodes {
		walkCommand(n, register)
	}
}

func walkCommand(n ast.Node, register func(string)) {
	switch c := n.(type) {
	case nil:
		return
	case *ast.Assign:
		register(c.Ident)
		walkExpr(c.Arg, register)
	case *ast.Cond:
		walkExpr(c.Condition, register)
		walkCommands(c.If, register)
		walkCommands(c.Else, register)
	case *ast.Loop:
		walkExpr(c.Condition, register)
		walkCommands(c.Body, register)
	case *ast.Switch:
		walkExpr(c.Condition, register)
		for _, sc := range c.Cases {
			walkExpr(sc.Cond, register)
			walkCommands(sc.Body, register)
		}
		if c.Default != nil {
			walkCommands(c.Default.Body, register)
		}
	}
}

func walkExpr(n ast.Node, register func(string)) {
	switch e := n.(type) {
	case nil:
		return
	case *ast.Identifier:
		if e.Value != token.IdentNil {
			register(e.Value)
		}
	case *ast.Operation:
		for _, a := range e.Args {
			walkExpr(a, register)
		}
	case *ast.Equal:
		walkExpr(e.Left, register)
		walkExpr(e.Right, register)
	}
}

func encodeCommands(nodes []ast.Node, indices map[string]int) ([]Value, error) {
	out := make([]Value, len(nodes))
	for i, n := range nodes {
		v, err := encodeCommand(n, indices)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func encodeCommand(n ast.Node, indices map[string]int) (Value, error) {
	switch c := n.(type) {
	case nil:
		return nil, util.NewRuntimeError(util.ErrMalformedAst, "missing command")

	case *ast.Assign:
		arg, err := encodeExpr(c.Arg, indices)
		if err != nil {
			return nil, err
		}
		return []Value{":=", indices[c.Ident], arg}, nil

	case *ast.Cond:
		cond, err := encodeExpr(c.Condition, indices)
		if err != nil {
			return nil, err
		}
		thenBody, err := encodeCommands(c.If, indices)
		if err != nil {
			return nil, err
		}
		elseBody, err := encodeCommands(c.Else, indices)
		if err != nil {
			return nil, err
		}
		return []Value{"if", cond, thenBody, elseBody}, nil

	case *ast.Loop:
		cond, err := encodeExpr(c.Condition, indices)
		if err != nil {
			return nil, err
		}
		body, err := encodeCommands(c.Body, indices)
		if err != nil {
			return nil, err
		}
		return []Value{"while", cond, body}, nil

	case *ast.Switch:
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "switch has no PAD representation")
	}

	// No command-position node reaches here: Assign/Cond/Loop/Switch
	// above are the only kinds a program's own command list ever
	// holds, so this would mean the AST handed to ToPAD was not built
	// by this package's own node variants.
	errorutil.AssertTrue(false, fmt.Sprintf("unexpected command node %v", n.Kind()))
	return nil, nil
}

func encodeExpr(n ast.Node, indices map[string]int) (Value, error) {
	switch e := n.(type) {
	case nil:
		return nil, util.NewRuntimeError(util.ErrMalformedAst, "missing expression")

	case *ast.Identifier:
		if e.Value == token.IdentNil {
			return []Value{"quote", "nil"}, nil
		}
		return []Value{"var", indices[e.Value]}, nil

	case *ast.TreeLit:
		return encodeTree(e.Value), nil

	case *ast.Operation:
		switch e.Op {
		case ast.Hd, ast.Tl:
			arg, err := encodeExpr(e.Args[0], indices)
			if err != nil {
				return nil, err
			}
			return []Value{e.Op, arg}, nil
		case ast.Cons:
			l, err := encodeExpr(e.Args[0], indices)
			if err != nil {
				return nil, err
			}
			r, err := encodeExpr(e.Args[1], indices)
			if err != nil {
				return nil, err
			}
			return []Value{"cons", l, r}, nil
		}

	case *ast.Equal:
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "equal has no PAD representation")
	}

	// Identifier/TreeLit/Operation/Equal above are the only kinds an
	// expression slot ever holds; an Operation with an Op outside
	// hd/tl/cons also falls through to here, which this package's own
	// parser never constructs.
	errorutil.AssertTrue(false, fmt.Sprintf("unexpected expression node %v", n.Kind()))
	return nil, nil
}

/*
encodeTree encodes a tree value as nested cons/quote forms. A numeric
literal n in an extended-mode AST is a TreeLit whose Value is
Encode(n); encodeTree handles any tree shape, not just Church-encoded
numbers.
*/
func encodeTree(t *ast.Tree) Value {
	if t == nil {
		return []Value{"quote", "nil"}
	}
	return []Value{"cons", encodeTree(t.Left), encodeTree(t.Right)}
}

// Decoding
// ========

/*
FromPAD inverts ToPAD. Identifier indices become synthesized names
following a deterministic scheme (index 0 -> "A", 1 -> "B", ...), per
§4.7, so round-tripping preserves structure up to renaming. The
decoder chooses a stable program name; malformed input fails with
ErrMalformedPad.
*/
func FromPAD(v Value) (*ast.Program, error) {
	list, ok := v.([]Value)
	if !ok || len(list) != 3 {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a 3-element program list")
	}

	inputIdx, ok := toInt(list[0])
	if !ok {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected an input index")
	}

	bodyRaw, ok := list[1].([]Value)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a command list")
	}

	outputIdx, ok := toInt(list[2])
	if !ok {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected an output index")
	}

	names := map[int]string{}
	getName := func(i int) string {
		if n, ok := names[i]; ok {
			return n
		}
		n := indexName(i)
		names[i] = n
		return n
	}

	inputName := getName(inputIdx)

	body, err := decodeCommands(bodyRaw, getName)
	if err != nil {
		return nil, err
	}

	outputName := getName(outputIdx)

	return &ast.Program{
		Name:       "decoded",
		Input:      inputName,
		Output:     outputName,
		Body:       body,
		IsComplete: true,
	}, nil
}

func decodeCommands(list []Value, getName func(int) string) ([]ast.Node, error) {
	out := make([]ast.Node, len(list))
	for i, v := range list {
		n, err := decodeCommand(v, getName)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func decodeCommand(v Value, getName func(int) string) (ast.Node, error) {
	l, ok := v.([]Value)
	if !ok || len(l) == 0 {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a command tuple")
	}

	tag, ok := l[0].(string)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a command tag")
	}

	switch tag {
	case ":=":
		if len(l) != 3 {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "malformed := command")
		}
		idx, ok := toInt(l[1])
		if !ok {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a variable index")
		}
		arg, err := decodeExpr(l[2], getName)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Ident: getName(idx), Arg: arg, IsComplete: true}, nil

	case "if":
		if len(l) != 4 {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "malformed if command")
		}
		cond, err := decodeExpr(l[1], getName)
		if err != nil {
			return nil, err
		}
		thenList, ok := l[2].([]Value)
		if !ok {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a then-body list")
		}
		elseList, ok := l[3].([]Value)
		if !ok {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected an else-body list")
		}
		thenBody, err := decodeCommands(thenList, getName)
		if err != nil {
			return nil, err
		}
		elseBody, err := decodeCommands(elseList, getName)
		if err != nil {
			return nil, err
		}
		return &ast.Cond{Condition: cond, If: thenBody, Else: elseBody, IsComplete: true}, nil

	case "while":
		if len(l) != 3 {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "malformed while command")
		}
		cond, err := decodeExpr(l[1], getName)
		if err != nil {
			return nil, err
		}
		bodyList, ok := l[2].([]Value)
		if !ok {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a body list")
		}
		body, err := decodeCommands(bodyList, getName)
		if err != nil {
			return nil, err
		}
		return &ast.Loop{Condition: cond, Body: body, IsComplete: true}, nil
	}

	return nil, util.NewRuntimeError(util.ErrMalformedPad, fmt.Sprintf("unknown command tag %q", tag))
}

func decodeExpr(v Value, getName func(int) string) (ast.Node, error) {
	l, ok := v.([]Value)
	if !ok || len(l) == 0 {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected an expression tuple")
	}

	tag, ok := l[0].(string)
	if !ok {
		return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected an expression tag")
	}

	switch tag {
	case "var":
		if len(l) != 2 {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "malformed var expression")
		}
		idx, ok := toInt(l[1])
		if !ok {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "expected a variable index")
		}
		return &ast.Identifier{Value: getName(idx)}, nil

	case "quote":
		return &ast.Identifier{Value: token.IdentNil}, nil

	case ast.Hd, ast.Tl:
		if len(l) != 2 {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "malformed hd/tl expression")
		}
		arg, err := decodeExpr(l[1], getName)
		if err != nil {
			return nil, err
		}
		return &ast.Operation{Op: tag, Args: []ast.Node{arg}, IsComplete: true}, nil

	case ast.Cons:
		if len(l) != 3 {
			return nil, util.NewRuntimeError(util.ErrMalformedPad, "malformed cons expression")
		}
		left, err := decodeExpr(l[1], getName)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(l[2], getName)
		if err != nil {
			return nil, err
		}
		return &ast.Operation{Op: ast.Cons, Args: []ast.Node{left, right}, IsComplete: true}, nil
	}

	return nil, util.NewRuntimeError(util.ErrMalformedPad, fmt.Sprintf("unknown expression tag %q", tag))
}

func toInt(v Value) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

/*
indexName maps a first-occurrence index to its synthesized decoded
name: 0 -> "A", 1 -> "B", and so on.
*/
func indexName(i int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i >= 0 && i < len(letters) {
		return string(letters[i])
	}
	return fmt.Sprintf("V%d", i)
}
