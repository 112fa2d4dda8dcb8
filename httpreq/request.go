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

// Package httpreq is the minimal HTTP/1.1 request parser and static-file
// responder. It understands exactly enough of the wire format to serve
// GET and reject everything else; there is no virtual hosting, no
// conditional requests, no range requests, no request body handling.
package httpreq

import (
	"bytes"
	"strings"
)

// MaxRequestLine caps the length of the request-target (Parse reports a
// longer one as Unsupported); the worker also closes a connection whose
// buffered bytes exceed it without a complete header block.
const MaxRequestLine = 8192

// Request is the subset of an HTTP/1.1 request line this server acts on.
type Request struct {
	Method      string
	Target      string
	Close       bool
	Unsupported bool // method/version other than "GET ... HTTP/1.1", or an over-long target
}

// Parse extracts the request line and the Connection header, if any,
// from buf. ok is false only when buf does not yet contain a full
// header block (caller should keep reading); a malformed-but-complete
// request comes back with Unsupported set instead of ok=false.
func Parse(buf []byte) (req Request, ok bool) {
	end := bytes.Index(buf, []byte("\r\n\r\n"))
	if end < 0 {
		return Request{}, false
	}

	head := buf[:end]
	lines := strings.Split(string(head), "\r\n")
	if len(lines) == 0 {
		return Request{Unsupported: true}, true
	}

	parts := strings.Fields(lines[0])
	if len(parts) != 3 || parts[0] != "GET" || parts[2] != "HTTP/1.1" || len(parts[1]) > MaxRequestLine {
		return Request{Unsupported: true}, true
	}

	req = Request{Method: parts[0], Target: parts[1]}

	for _, h := range lines[1:] {
		name, value, found := strings.Cut(h, ":")
		if !found {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(name), "Connection") &&
			strings.EqualFold(strings.TrimSpace(value), "close") {
			req.Close = true
		}
	}

	return req, true
}
