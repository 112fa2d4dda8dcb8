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

package response_test

import (
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/response"
)

var _ = Describe("[TC-RS] Response framing", func() {
	Describe("Head", func() {
		It("[TC-RS-001] renders the status line, length and type", func() {
			h := string(response.Head(200, 12, "text/plain", ""))

			Expect(h).To(HavePrefix("HTTP/1.1 200 OK\r\n"))
			Expect(h).To(ContainSubstring("Content-Length: 12\r\n"))
			Expect(h).To(ContainSubstring("Content-Type: text/plain\r\n"))
			Expect(h).To(HaveSuffix("\r\n\r\n"))
			Expect(h).ToNot(ContainSubstring("Location:"))
		})

		It("[TC-RS-002] includes Location only when given one", func() {
			h := string(response.Head(301, 0, "text/html", "/index.html"))
			Expect(h).To(ContainSubstring("Location: /index.html\r\n"))
		})
	})

	Describe("Error", func() {
		It("[TC-RS-003] frames a complete 404 response with matching body length", func() {
			out := response.Error(404)
			parts := strings.SplitN(string(out), "\r\n\r\n", 2)

			Expect(parts).To(HaveLen(2))
			Expect(parts[0]).To(ContainSubstring("404 Not Found"))
			Expect(parts[1]).To(ContainSubstring("404 Not Found"))
			Expect(parts[0]).To(ContainSubstring("Content-Length: " + strconv.Itoa(len(parts[1])) + "\r\n"))
		})
	})

	Describe("Redirect", func() {
		It("[TC-RS-004] frames a 301 with the Location header set", func() {
			out := string(response.Redirect("/dir/"))
			Expect(out).To(ContainSubstring("HTTP/1.1 301 Moved Permanently"))
			Expect(out).To(ContainSubstring("Location: /dir/\r\n"))
		})
	})

	Describe("Reason", func() {
		It("[TC-RS-005] returns empty for unregistered codes", func() {
			Expect(response.Reason(999)).To(Equal(""))
		})
	})
})
