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

package content_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/content"
)

var _ = Describe("[TC-MT] Content type lookup", func() {
	DescribeTable("[TC-MT-001] known extensions resolve to their conventional MIME type",
		func(path, want string) {
			Expect(content.TypeFor(path)).To(Equal(want))
		},
		Entry("html", "/index.html", "text/html"),
		Entry("css", "/styles/site.css", "text/css"),
		Entry("js", "/app.js", "application/javascript"),
		Entry("png", "/img/logo.png", "image/png"),
		Entry("pdf", "/doc.pdf", "application/pdf"),
		Entry("wasm", "/mod.wasm", "application/wasm"),
	)

	It("[TC-MT-002] falls back to the default type for an unknown extension", func() {
		Expect(content.TypeFor("/file.unknown")).To(Equal(content.DefaultType))
	})

	It("[TC-MT-003] falls back to the default type for an extensionless path", func() {
		Expect(content.TypeFor("/noext")).To(Equal(content.DefaultType))
	})

	It("[TC-MT-004] matches on the final dot, not the first", func() {
		Expect(content.TypeFor("/archive.tar.gz")).To(Equal(content.DefaultType))
		Expect(content.TypeFor("/v1.2.3/app.js")).To(Equal("application/javascript"))
	})
})
