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
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/httpreq"
)

var _ = Describe("[TC-RS] Target resolution", func() {
	var (
		root string
		prev string
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()

		Expect(os.WriteFile(filepath.Join(root, "index.html"), []byte("home"), 0o644)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(root, "docs"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "docs", "index.html"), []byte("docs"), 0o644)).To(Succeed())

		var err error
		prev, err = os.Getwd()
		Expect(err).ToNot(HaveOccurred())
		Expect(os.Chdir(root)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(prev)).To(Succeed())
	})

	It("[TC-RS-001] rejects an empty target with 500", func() {
		Expect(httpreq.Resolve("").Status).To(Equal(500))
	})

	It("[TC-RS-002] redirects a trailing-slash target to its index file", func() {
		res := httpreq.Resolve("/")
		Expect(res.Status).To(Equal(301))
		Expect(res.Location).To(Equal("/index.html"))
	})

	It("[TC-RS-003] redirects a directory without a trailing slash", func() {
		res := httpreq.Resolve("/docs")
		Expect(res.Status).To(Equal(301))
		Expect(res.Location).To(Equal("/docs/"))
	})

	It("[TC-RS-004] resolves a directory with a trailing slash to its index", func() {
		res := httpreq.Resolve("/docs/")
		Expect(res.Status).To(Equal(301))
		Expect(res.Location).To(Equal("/docs/index.html"))
	})

	It("[TC-RS-005] reports 404 for a nonexistent file", func() {
		Expect(httpreq.Resolve("/missing.html").Status).To(Equal(404))
	})

	It("[TC-RS-006] resolves an existing regular file", func() {
		res := httpreq.Resolve("/index.html")
		Expect(res.Status).To(Equal(200))
		Expect(res.Size).To(Equal(int64(4)))
		Expect(res.Path).To(Equal("./index.html"))
	})
})
