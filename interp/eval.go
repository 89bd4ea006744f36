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
	"fmt"

	"devt.de/krotik/common/errorutil"

	"github.com/krotik/while/ast"
	"github.com/krotik/while/token"
	"github.com/krotik/while/util"
)

// Command execution
// =================
//
// Execution proceeds over an explicit command stack rather than host
// recursion, per §4.6/§9: WHILE loops can run to arbitrary depth and a
// recursive tree-walker would overflow the host stack on a long-running
// program.

/*
cmdFrame is one element of the command execution stack.
*/
type cmdFrame interface {
	cmdFrame()
}

/*
blockFrame holds the remaining commands of a statement list.
*/
type blockFrame struct {
	remaining []ast.Node
}

func (*blockFrame) cmdFrame() {}

/*
assignFrame evaluates arg and writes it to ident.
*/
type assignFrame struct {
	ident string
	arg   ast.Node
}

func (*assignFrame) cmdFrame() {}

/*
condFrame evaluates cond and pushes the matching branch.
*/
type condFrame struct {
	cond           ast.Node
	ifBody, elseBody []ast.Node
}

func (*condFrame) cmdFrame() {}

/*
loopFrame evaluates cond; while it holds it re-pushes itself and the
loop body (body first, then the re-test).
*/
type loopFrame struct {
	cond ast.Node
	body []ast.Node
}

func (*loopFrame) cmdFrame() {}

/*
switchFrame evaluates its subject once and dispatches to the first
case whose own value equals it, falling back to default.
*/
type switchFrame struct {
	subject ast.Node
	cases   []*ast.SwitchCase
	def     *ast.SwitchDefault
}

func (*switchFrame) cmdFrame() {}

/*
commandFrame converts one AST command into its runtime frame. It is
the only place that inspects a command node's concrete type; hitting
an unrecognized node here means the AST was not produced by this
package's own parser and is a caller contract violation.
*/
func commandFrame(n ast.Node) (cmdFrame, error) {
	switch c := n.(type) {
	case nil:
		return nil, util.NewRuntimeError(util.ErrMalformedAst, "missing command")
	case *ast.Assign:
		return &assignFrame{ident: c.Ident, arg: c.Arg}, nil
	case *ast.Cond:
		return &condFrame{cond: c.Condition, ifBody: c.If, elseBody: c.Else}, nil
	case *ast.Loop:
		return &loopFrame{cond: c.Condition, body: c.Body}, nil
	case *ast.Switch:
		return &switchFrame{subject: c.Condition, cases: c.Cases, def: c.Default}, nil
	}
	return nil, util.NewRuntimeError(util.ErrMalformedAst,
		fmt.Sprintf("unexpected command node %v", n.Kind()))
}

/*
run executes a program body against store using an explicit frame
stack, per §4.6. It returns once the stack is empty.
*/
func run(body []ast.Node, store *Store) error {
	stack := []cmdFrame{&blockFrame{remaining: body}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f := top.(type) {
		case *blockFrame:
			if len(f.remaining) == 0 {
				continue
			}
			head := f.remaining[0]
			rest := f.remaining[1:]
			if len(rest) > 0 {
				stack = append(stack, &blockFrame{remaining: rest})
			}
			cf, err := commandFrame(head)
			if err != nil {
				return err
			}
			stack = append(stack, cf)

		case *assignFrame:
			val, err := evalExpr(f.arg, store)
			if err != nil {
				return err
			}
			store.Set(f.ident, val)

		case *condFrame:
			val, err := evalExpr(f.cond, store)
			if err != nil {
				return err
			}
			if !ast.IsNil(val) {
				stack = append(stack, &blockFrame{remaining: f.ifBody})
			} else {
				stack = append(stack, &blockFrame{remaining: f.elseBody})
			}

		case *loopFrame:
			val, err := evalExpr(f.cond, store)
			if err != nil {
				return err
			}
			if !ast.IsNil(val) {
				stack = append(stack, f)
				stack = append(stack, &blockFrame{remaining: f.body})
			}

		case *switchFrame:
			subj, err := evalExpr(f.subject, store)
			if err != nil {
				return err
			}

			body := f.def.Body
			for _, c := range f.cases {
				cv, err := evalExpr(c.Cond, store)
				if err != nil {
					return err
				}
				if ast.Equals(subj, cv) {
					body = c.Body
					break
				}
			}
			stack = append(stack, &blockFrame{remaining: body})

		default:
			errorutil.AssertTrue(false, "unreachable command frame")
		}
	}

	return nil
}

// Expression evaluation
// =====================
//
// Expression evaluation uses its own explicit stack, for the same
// reason commands do: a cons tree built by repeated hd/tl/cons calls
// can be arbitrarily deep.

/*
slot is one argument position of an operation frame. It starts out
holding the unevaluated expression node and, once reduced, holds the
computed literal instead. Argument lists are never mutated in place on
the original AST - each slot is a fresh wrapper - so evaluating one
branch of an expression can never leak into a sibling subtree that
shares AST nodes.
*/
type slot struct {
	node  ast.Node
	value *ast.Tree
	done  bool
}

/*
exprFrame is one operation application on the expression stack. The
root frame has op == "" and no parent; its single slot holds the
overall result once the stack empties.
*/
type exprFrame struct {
	op            string
	slots         []*slot
	parent        *exprFrame
	parentSlotIdx int
}

/*
firstPending returns the first slot not yet reduced to a literal, or
nil if every slot already holds a value.
*/
func (f *exprFrame) firstPending() *slot {
	for _, s := range f.slots {
		if !s.done {
			return s
		}
	}
	return nil
}

/*
evalExpr evaluates an expression against store without recursing into
the host call stack.
*/
func evalExpr(root ast.Node, store *Store) (*ast.Tree, error) {
	if root == nil {
		return nil, util.NewRuntimeError(util.ErrMalformedAst, "missing expression")
	}

	top := &exprFrame{slots: []*slot{{node: root}}}
	stack := []*exprFrame{top}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		if s := cur.firstPending(); s != nil {
			switch n := s.node.(type) {
			case *ast.Identifier:
				s.value = identValue(n, store)
				s.done = true

			case *ast.TreeLit:
				s.value = n.Value
				s.done = true

			case *ast.Operation:
				child := &exprFrame{op: n.Op, parent: cur}
				child.slots = make([]*slot, len(n.Args))
				for i, a := range n.Args {
					child.slots[i] = &slot{node: a}
				}
				for i, sl := range cur.slots {
					if sl == s {
						child.parentSlotIdx = i
					}
				}
				stack = append(stack, child)

			case *ast.Equal:
				child := &exprFrame{op: opEqual, parent: cur}
				child.slots = []*slot{{node: n.Left}, {node: n.Right}}
				for i, sl := range cur.slots {
					if sl == s {
						child.parentSlotIdx = i
					}
				}
				stack = append(stack, child)

			default:
				return nil, util.NewRuntimeError(util.ErrMalformedAst,
					fmt.Sprintf("unexpected expression node %v", n.Kind()))
			}
			continue
		}

		// Every slot of cur is a literal.
		stack = stack[:len(stack)-1]

		if cur.parent == nil {
			return cur.slots[0].value, nil
		}

		val, err := applyOp(cur.op, cur.slots)
		if err != nil {
			return nil, err
		}

		parentSlot := cur.parent.slots[cur.parentSlotIdx]
		parentSlot.value = val
		parentSlot.done = true
	}

	errorutil.AssertTrue(false, "unreachable: expression stack emptied without a result")
	return nil, nil
}

/*
identValue resolves an identifier: the reserved name nil evaluates to
Nil; others resolve to their store binding or Nil.
*/
func identValue(n *ast.Identifier, store *Store) *ast.Tree {
	if n.Value == token.IdentNil {
		return ast.Nil
	}
	return store.Get(n.Value)
}

/*
opEqual marks an internal frame built for an ast.Equal node. It is not
one of the user-facing hd/tl/cons operators.
*/
const opEqual = "__equal__"

/*
applyOp computes the result of a fully-reduced operation frame.
*/
func applyOp(op string, slots []*slot) (*ast.Tree, error) {
	switch op {
	case ast.Hd:
		return ast.Hd(slots[0].value), nil
	case ast.Tl:
		return ast.Tl(slots[0].value), nil
	case ast.Cons:
		return ast.Cons(slots[0].value, slots[1].value), nil
	case opEqual:
		if ast.Equals(slots[0].value, slots[1].value) {
			return ast.Encode(1), nil
		}
		return ast.Nil, nil
	}
	return nil, util.NewRuntimeError(util.ErrMalformedAst, fmt.Sprintf("unknown operation %q", op))
}
