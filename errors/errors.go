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

import "fmt"

// ers is the concrete Error: a code, its registered message, and zero or
// more parent causes. Every package's error.go constructs one of these
// through CodeError.Error(), never directly.
type ers struct {
	c uint16
	e string
	p []error
}

func newError(code uint16, message string, parent ...error) Error {
	e := &ers{c: code, e: message}
	e.Add(parent...)
	return e
}

// Error formats as "[code] message", or just "message" for code 0 (the
// zero value, used when an error is wrapped without its own code).
func (e *ers) Error() string {
	if e.c == 0 {
		return e.e
	}
	return fmt.Sprintf("[%d] %s", e.c, e.e)
}

// IsCode reports whether e itself (not its parents) was constructed
// with code.
func (e *ers) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

// Add appends non-nil parents to e's cause chain, skipping nils so
// callers can pass the direct result of a fallible call (e.g.
// validator field errors) without a separate nil check.
func (e *ers) Add(parent ...error) {
	for _, p := range parent {
		if p != nil {
			e.p = append(e.p, p)
		}
	}
}

// Unwrap exposes e's parents to the standard errors.Is/errors.As tree
// walk.
func (e *ers) Unwrap() []error {
	return e.p
}
