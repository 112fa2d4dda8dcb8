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

// Package response builds the canonical HTTP/1.1 response head and the
// fixed error bodies the handler emits.
package response

import (
	"fmt"
	"strconv"
	"strings"
)

// Server is the value of the Server response header. A build can stamp
// it at link time (-ldflags "-X github.com/sabouaram/httpd/response.Server=...");
// nothing in this repository sets it, so by default it is this static
// string.
var Server = "httpd (built on unknown)"

var reasons = map[int]string{
	200: "OK",
	301: "Moved Permanently",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	501: "Not Implemented",
}

// Reason returns the canonical reason phrase for code, or "" if unknown.
func Reason(code int) string {
	return reasons[code]
}

// Head renders the status line, the headers and the terminating blank
// line for a response of length n with the given content type.
// location is only emitted when non-empty (301 responses).
func Head(code int, n int, contentType, location string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", code, Reason(code))
	fmt.Fprintf(&b, "Content-Length: %d\r\n", n)
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(&b, "Server: %s\r\n", Server)

	if location != "" {
		fmt.Fprintf(&b, "Location: %s\r\n", location)
	}

	b.WriteString("\r\n")

	return []byte(b.String())
}

// ErrorBody renders the fixed minimal HTML document for a classified
// error response; code and Reason(code) appear in both title and <h1>.
func ErrorBody(code int) []byte {
	reason := Reason(code)
	if reason == "" {
		reason = "Error"
	}

	title := strconv.Itoa(code) + " " + reason

	return []byte("<html><head><title>" + title + "</title></head>" +
		"<body><h1>" + title + "</h1></body></html>")
}

// Error renders a complete framed error response: head plus body.
func Error(code int) []byte {
	body := ErrorBody(code)
	head := Head(code, len(body), "text/html", "")

	out := make([]byte, 0, len(head)+len(body))
	out = append(out, head...)
	out = append(out, body...)

	return out
}

// Redirect renders a complete 301 response with a Location header and no
// body other than the fixed moved-permanently document.
func Redirect(location string) []byte {
	body := ErrorBody(301)
	head := Head(301, len(body), "text/html", location)

	out := make([]byte, 0, len(head)+len(body))
	out = append(out, head...)
	out = append(out, body...)

	return out
}
