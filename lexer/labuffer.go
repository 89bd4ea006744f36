/*
 * WHILE
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"devt.de/krotik/common/datautil"

	"github.com/krotik/while/token"
)

/*
LABuffer is a look-ahead buffer over a channel of tokens, backed by a
RingBuffer the same way the teacher's parser package buffers its own
lexer channel.
*/
type LABuffer struct {
	tokens chan token.Token
	buffer *datautil.RingBuffer
}

/*
NewLABuffer creates a new LABuffer of the given look-ahead size.
*/
func NewLABuffer(c chan token.Token, size int) *LABuffer {
	if size < 1 {
		size = 1
	}

	ret := &LABuffer{c, datautil.NewRingBuffer(size)}

	v, more := <-ret.tokens
	ret.buffer.Add(v)

	for ret.buffer.Size() < size && more && v.Type != token.EOI {
		v, more = <-ret.tokens
		ret.buffer.Add(v)
	}

	return ret
}

/*
Next returns the next item in the buffer and reports whether more
tokens may follow.
*/
func (b *LABuffer) Next() (token.Token, bool) {
	ret := b.buffer.Poll()

	if v, more := <-b.tokens; more {
		b.buffer.Add(v)
	}

	if ret == nil {
		return token.Token{Type: token.EOI}, false
	}

	return ret.(token.Token), true
}
