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

// Package errors classifies every failure this server returns with a
// small numeric CodeError, offset per package (modules.go), so a
// startup or request failure carries both a human message and a stable
// code a caller can switch on without string matching.
//
// Each package registers its own codes in an init() via
// RegisterIdFctMessage, and raises them with CodeError.Error(cause):
//
//	const (
//		ErrorSocketCreate liberr.CodeError = iota + liberr.MinPkgPrivilege
//		ErrorSocketBind
//	)
//
//	func init() {
//		liberr.RegisterIdFctMessage(ErrorSocketCreate, getMessage)
//	}
//
//	return ErrorSocketBind.Error(err)
package errors

// Error is a code-carrying error with an optional chain of causes.
type Error interface {
	error

	// IsCode reports whether this error (not its causes) was raised
	// with code.
	IsCode(code CodeError) bool

	// Add appends non-nil causes to this error's chain.
	Add(parent ...error)

	// Unwrap exposes the cause chain to errors.Is/errors.As.
	Unwrap() []error
}
