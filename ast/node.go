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

import "github.com/krotik/while/token"

/*
Kind discriminates the AST node variants.
*/
type Kind int

/*
Node variants of the AST. Every parser-constructed node is one of
these kinds.
*/
const (
	KindIdentifier Kind = iota
	KindTree
	KindOperation
	KindEqual
	KindAssign
	KindCond
	KindLoop
	KindSwitch
	KindSwitchCase
	KindSwitchDefault
	KindProgram
)

/*
String returns a human-readable name for a Kind.
*/
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindTree:
		return "tree"
	case KindOperation:
		return "operation"
	case KindEqual:
		return "equal"
	case KindAssign:
		return "assign"
	case KindCond:
		return "cond"
	case KindLoop:
		return "loop"
	case KindSwitch:
		return "switch"
	case KindSwitchCase:
		return "switch_case"
	case KindSwitchDefault:
		return "switch_default"
	case KindProgram:
		return "program"
	}
	return "unknown"
}

/*
Node is the common interface of every AST node variant, expression or
command alike. A nil Node in a child slot represents a "missing" child
produced by error recovery.
*/
type Node interface {

	/*
		Kind returns the discriminator of this node.
	*/
	Kind() Kind

	/*
		Pos returns the source position this node was parsed from.
	*/
	Pos() token.Position

	/*
		Complete reports whether this node and all transitive children
		are well-formed, per invariant (a) in the data model.
	*/
	Complete() bool
}

// Identifier
// ==========

/*
Identifier is a variable reference. Always complete.
*/
type Identifier struct {
	Value    string
	Position token.Position
}

func (n *Identifier) Kind() Kind            { return KindIdentifier }
func (n *Identifier) Pos() token.Position   { return n.Position }
func (n *Identifier) Complete() bool        { return true }

// Tree literal
// ============

/*
TreeLit is a tree literal, produced only in the extended dialect from a
numeric literal via the Church-like encoding. Always complete.
*/
type TreeLit struct {
	Value    *Tree
	Position token.Position
}

func (n *TreeLit) Kind() Kind          { return KindTree }
func (n *TreeLit) Pos() token.Position { return n.Position }
func (n *TreeLit) Complete() bool      { return true }

// Operation
// =========

/*
Operator names recognized in an Operation node.
*/
const (
	Hd   = "hd"
	Tl   = "tl"
	Cons = "cons"
)

/*
Operation is a hd/tl/cons expression. Args holds one expression for
hd/tl and two for cons; a missing argument is represented by a nil
slot.
*/
type Operation struct {
	Op         string
	Args       []Node
	Position   token.Position
	IsComplete bool
}

func (n *Operation) Kind() Kind          { return KindOperation }
func (n *Operation) Pos() token.Position { return n.Position }
func (n *Operation) Complete() bool      { return n.IsComplete }

/*
OperandComplete is the predicate from §4.2: an operation argument
counts toward completeness if it is present and is either an
identifier/tree literal or is itself a complete operation or equality.
*/
func OperandComplete(n Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case KindIdentifier, KindTree:
		return true
	case KindOperation, KindEqual:
		return n.Complete()
	}
	return false
}

// Equal
// =====

/*
Equal is reserved for an equality expression. The AST type admits it
but the parser does not currently emit it (see Open Questions).
*/
type Equal struct {
	Left, Right Node
	Position    token.Position
	IsComplete  bool
}

func (n *Equal) Kind() Kind          { return KindEqual }
func (n *Equal) Pos() token.Position { return n.Position }
func (n *Equal) Complete() bool      { return n.IsComplete }

// Assignment
// ==========

/*
Assign is an assignment command `ident := arg`.
*/
type Assign struct {
	Ident      string
	IdentPos   token.Position
	Arg        Node
	Position   token.Position
	IsComplete bool
}

func (n *Assign) Kind() Kind          { return KindAssign }
func (n *Assign) Pos() token.Position { return n.Position }
func (n *Assign) Complete() bool      { return n.IsComplete }

// Conditional
// ===========

/*
Cond is an if/else command. A missing else clause is represented as an
empty, complete slice; Else is nil only when the input ends right after
the else keyword.
*/
type Cond struct {
	Condition  Node
	If         []Node
	Else       []Node
	Position   token.Position
	IsComplete bool
}

func (n *Cond) Kind() Kind          { return KindCond }
func (n *Cond) Pos() token.Position { return n.Position }
func (n *Cond) Complete() bool      { return n.IsComplete }

// Loop
// ====

/*
Loop is a while command.
*/
type Loop struct {
	Condition  Node
	Body       []Node
	Position   token.Position
	IsComplete bool
}

func (n *Loop) Kind() Kind          { return KindLoop }
func (n *Loop) Pos() token.Position { return n.Position }
func (n *Loop) Complete() bool      { return n.IsComplete }

// Switch (extended dialect)
// =========================

/*
Switch is a switch command. Default is never nil: a missing default
clause is synthesized as an empty, complete SwitchDefault.
*/
type Switch struct {
	Condition  Node
	Cases      []*SwitchCase
	Default    *SwitchDefault
	Position   token.Position
	IsComplete bool
}

func (n *Switch) Kind() Kind          { return KindSwitch }
func (n *Switch) Pos() token.Position { return n.Position }
func (n *Switch) Complete() bool      { return n.IsComplete }

/*
SwitchCase is one `case E: stmts` clause of a switch command.
*/
type SwitchCase struct {
	Cond       Node
	Body       []Node
	Position   token.Position
	IsComplete bool
}

func (n *SwitchCase) Kind() Kind          { return KindSwitchCase }
func (n *SwitchCase) Pos() token.Position { return n.Position }
func (n *SwitchCase) Complete() bool      { return n.IsComplete }

/*
SwitchDefault is the `default: stmts` clause of a switch command.
*/
type SwitchDefault struct {
	Body       []Node
	Position   token.Position
	IsComplete bool
}

func (n *SwitchDefault) Kind() Kind          { return KindSwitchDefault }
func (n *SwitchDefault) Pos() token.Position { return n.Position }
func (n *SwitchDefault) Complete() bool      { return n.IsComplete }

// Program
// =======

/*
Program is the top-level `name read input { body } write output` frame.
*/
type Program struct {
	Name       string
	Input      string
	Output     string
	Body       []Node
	Position   token.Position
	IsComplete bool
}

func (n *Program) Kind() Kind          { return KindProgram }
func (n *Program) Pos() token.Position { return n.Position }
func (n *Program) Complete() bool      { return n.IsComplete }

/*
AllComplete reports whether every node in a command/expression list is
complete. Used when computing the Complete flag of a containing node.
*/
func AllComplete(nodes []Node) bool {
	for _, n := range nodes {
		if n == nil || !n.Complete() {
			return false
		}
	}
	return true
}
