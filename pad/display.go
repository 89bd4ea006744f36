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

import (
	"strconv"
	"strings"

	"devt.de/krotik/common/stringutil"
)

/*
Format controls how DisplayPAD renders symbolic tokens, per §4.7.
HWHILE prefixes keyword/operator tokens with '@'; PURE omits the
prefix. Numbers and the literal nil are never prefixed in either
format.
*/
type Format struct {
	TokenPrefix string
}

/*
HWHILE and PURE are the two display formats named in §4.7.
*/
var (
	HWHILE = Format{TokenPrefix: "@"}
	PURE   = Format{TokenPrefix: ""}
)

/*
DisplayPAD renders a PAD value as text. Lists at the top level and in
block positions (a program's body, a while's body, an if's branches)
print one element per line, four-space indented per nesting level;
lists in expression positions ([@cons, ...], [@var, 0]) print inline.
The two shapes are told apart structurally: a list whose elements are
themselves all lists is a block; anything else (including the outer
[input, body, output] triple, whose first and last elements are plain
indices) is a tuple.
*/
func DisplayPAD(v Value, format Format) string {
	return render(v, 0, format) + "\n"
}

func render(v Value, indent int, format Format) string {
	switch t := v.(type) {
	case string:
		if t == "nil" {
			return "nil"
		}
		return format.TokenPrefix + t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []Value:
		if isBlock(t) {
			return renderBlock(t, indent, format)
		}
		return renderTuple(t, indent, format)
	}
	return "nil"
}

/*
isBlock reports whether list is a statement/command sequence rather
than a tagged tuple: non-empty, and every element is itself a list.
*/
func isBlock(list []Value) bool {
	if len(list) == 0 {
		return false
	}
	for _, e := range list {
		if _, ok := e.([]Value); !ok {
			return false
		}
	}
	return true
}

func renderTuple(list []Value, indent int, format Format) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = render(e, indent, format)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderBlock(list []Value, indent int, format Format) string {
	var buf strings.Builder
	buf.WriteString("[\n")

	inner := stringutil.GenerateRollingString(" ", (indent+1)*4)
	for i, e := range list {
		buf.WriteString(inner)
		buf.WriteString(render(e, indent+1, format))
		if i < len(list)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString(stringutil.GenerateRollingString(" ", indent*4))
	buf.WriteString("]")
	return buf.String()
}
