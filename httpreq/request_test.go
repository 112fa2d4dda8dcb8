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

package httpreq_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/httpreq"
)

var _ = Describe("[TC-RQ] Request parsing", func() {
	It("[TC-RQ-001] parses a minimal GET request line", func() {
		req, ok := httpreq.Parse([]byte("GET /index.html HTTP/1.1\r\nHost: x\r\n\r\n"))
		Expect(ok).To(BeTrue())
		Expect(req.Unsupported).To(BeFalse())
		Expect(req.Method).To(Equal("GET"))
		Expect(req.Target).To(Equal("/index.html"))
		Expect(req.Close).To(BeFalse())
	})

	It("[TC-RQ-002] reports incomplete input", func() {
		_, ok := httpreq.Parse([]byte("GET /index.html HTTP/1.1\r\n"))
		Expect(ok).To(BeFalse())
	})

	It("[TC-RQ-003] flags non-GET methods as unsupported", func() {
		req, ok := httpreq.Parse([]byte("POST / HTTP/1.1\r\n\r\n"))
		Expect(ok).To(BeTrue())
		Expect(req.Unsupported).To(BeTrue())
	})

	It("[TC-RQ-004] flags a non-HTTP/1.1 version as unsupported", func() {
		req, ok := httpreq.Parse([]byte("GET / HTTP/1.0\r\n\r\n"))
		Expect(ok).To(BeTrue())
		Expect(req.Unsupported).To(BeTrue())
	})

	It("[TC-RQ-005] detects Connection: close case-insensitively", func() {
		req, ok := httpreq.Parse([]byte("GET / HTTP/1.1\r\nConnection: Close\r\n\r\n"))
		Expect(ok).To(BeTrue())
		Expect(req.Close).To(BeTrue())
	})
})
