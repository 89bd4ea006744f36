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
Command while is a minimal command-line driver for the core toolchain:
it lexes and parses a program file, then either prints its PAD
encoding or runs it against a PAD-encoded input tree and prints the
PAD-encoded result. Flags and file handling are out of scope for the
specified core (it treats the CLI as an external collaborator); this
is the thin, ordinary driver an embedder would otherwise have to write
themselves.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/krotik/while/ast"
	"github.com/krotik/while/config"
	"github.com/krotik/while/interp"
	"github.com/krotik/while/lexer"
	"github.com/krotik/while/pad"
	"github.com/krotik/while/parser"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, fmt.Sprintf("WHILE %v", config.ProductVersion))
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, fmt.Sprintf("Usage of %s [options] <program file>", os.Args[0]))
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}

	pureOnly := flag.Bool("pure", config.Bool(config.PureOnly), "Reject numeric literals and switch statements")
	format := flag.String("format", config.Str(config.DisplayFormat), "PAD display format: hwhile or pure")
	input := flag.String("input", "", "PAD-encoded JSON input tree (default: nil)")
	showPad := flag.Bool("pad", false, "Print the program's PAD encoding instead of running it")

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *pureOnly, *format, *input, *showPad); err != nil {
		log.Fatal(err)
	}
}

func run(path string, pureOnly bool, format, inputJSON string, showPad bool) error {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	tokens := lexer.LexToList(string(source))

	program, errs := parser.Parse(tokens, parser.Options{PureOnly: pureOnly})
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.String())
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d syntax error(s) in %v", len(errs), path)
	}

	disp := pad.HWHILE
	if format == "pure" {
		disp = pad.PURE
	}

	if showPad {
		encoded, err := pad.ToPAD(program)
		if err != nil {
			return err
		}
		fmt.Print(pad.DisplayPAD(encoded, disp))
		return nil
	}

	inputTree, err := decodeInputTree(inputJSON)
	if err != nil {
		return err
	}

	output, err := interp.Run(program, inputTree, interp.Options{})
	if err != nil {
		return err
	}

	fmt.Print(pad.DisplayPAD(treeToPAD(output), disp))
	return nil
}

/*
decodeInputTree turns the -input flag's JSON PAD tree form into an
*ast.Tree. An empty flag means nil.
*/
func decodeInputTree(inputJSON string) (*ast.Tree, error) {
	if inputJSON == "" {
		return nil, nil
	}

	var v interface{}
	if err := json.Unmarshal([]byte(inputJSON), &v); err != nil {
		return nil, fmt.Errorf("malformed -input JSON: %w", err)
	}

	return padToTree(v)
}

/*
padToTree decodes a ['quote', 'nil'] / ['cons', l, r] PAD value into a
tree, the inverse of treeToPAD.
*/
func padToTree(v interface{}) (*ast.Tree, error) {
	l, ok := v.([]interface{})
	if !ok || len(l) == 0 {
		return nil, fmt.Errorf("expected a PAD tree value")
	}

	tag, _ := l[0].(string)
	switch tag {
	case "quote":
		return nil, nil
	case "cons":
		if len(l) != 3 {
			return nil, fmt.Errorf("malformed cons value")
		}
		left, err := padToTree(l[1])
		if err != nil {
			return nil, err
		}
		right, err := padToTree(l[2])
		if err != nil {
			return nil, err
		}
		return ast.Cons(left, right), nil
	}

	return nil, fmt.Errorf("unknown tree tag %q", tag)
}

/*
treeToPAD encodes a tree value in the same ['quote', 'nil'] / ['cons',
l, r] shape pad.ToPAD uses for tree literals, so a program's output can
be displayed with the same renderer as its source.
*/
func treeToPAD(t *ast.Tree) pad.Value {
	if t == nil {
		return []pad.Value{"quote", "nil"}
	}
	return []pad.Value{"cons", treeToPAD(t.Left), treeToPAD(t.Right)}
}
