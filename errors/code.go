/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package errors

import (
	"math"
	"sort"
)

// idMsgFct maps each package's first registered CodeError (its MinPkgXxx
// offset) to that package's message lookup function. A code looks up its
// message through the function registered at the largest offset not
// greater than itself, so one RegisterIdFctMessage call per package
// covers every code declared in that package's iota block.
var idMsgFct = make(map[CodeError]Message)

// Message generates the text for a CodeError; each package registers
// exactly one of these, usually a switch over its own error constants.
type Message func(code CodeError) (message string)

// CodeError is a small numeric classification, offset by package
// (modules.go), carried by every Error this server returns.
type CodeError uint16

const (
	UnknownError   CodeError = 0
	UnknownMessage           = "unknown error"
	NullMessage              = ""
)

// Uint16 returns the underlying code value.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

// Message resolves the text registered for c's owning package, or
// UnknownMessage if nothing was registered at or below c's offset.
func (c CodeError) Message() string {
	if c == UnknownError {
		return UnknownMessage
	}

	if f, ok := idMsgFct[findCodeErrorInMapMessage(c)]; ok {
		if m := f(c); m != NullMessage {
			return m
		}
	}

	return UnknownMessage
}

// Error builds a new Error carrying this code, its registered message,
// and the given parent errors.
func (c CodeError) Error(parent ...error) Error {
	return newError(c.Uint16(), c.Message(), parent...)
}

// RegisterIdFctMessage registers fct as the message source for every
// code at or above minCode until the next registered offset. Called
// once per package's error.go, in an init().
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	idMsgFct[minCode] = fct
	orderMapMessage()
}

func getMapMessageKey() []CodeError {
	keys := make([]int, 0, len(idMsgFct))
	for k := range idMsgFct {
		keys = append(keys, int(k.Uint16()))
	}
	sort.Ints(keys)

	res := make([]CodeError, 0, len(keys))
	for _, k := range keys {
		res = append(res, clampCodeError(k))
	}

	return res
}

func orderMapMessage() {
	res := make(map[CodeError]Message, len(idMsgFct))
	for _, k := range getMapMessageKey() {
		res[k] = idMsgFct[k]
	}
	idMsgFct = res
}

func findCodeErrorInMapMessage(code CodeError) CodeError {
	var res CodeError
	for _, k := range getMapMessageKey() {
		if k <= code && k > res {
			res = k
		}
	}
	return res
}

func clampCodeError(k int) CodeError {
	switch {
	case k < 0:
		return 0
	case k > math.MaxUint16:
		return math.MaxUint16
	default:
		return CodeError(k)
	}
}
