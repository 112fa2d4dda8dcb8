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

package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/config"
)

var _ = Describe("[TC-CF] Config", func() {
	Describe("Defaults", func() {
		It("[TC-CF-001] matches the documented port/workers/backlog defaults", func() {
			c := config.Defaults()

			Expect(c.Port).To(Equal(uint16(8080)))
			Expect(c.Workers).To(Equal(1))
			Expect(c.Backlog).To(Equal(4096))
			Expect(c.HasUID()).To(BeFalse())
			Expect(c.HasGID()).To(BeFalse())
		})
	})

	Describe("Validate", func() {
		It("[TC-CF-002] rejects a missing listen address", func() {
			c := config.Defaults()
			c.Port = 8080

			Expect(c.Validate()).To(HaveOccurred())
		})

		It("[TC-CF-003] rejects a non-IPv4 listen address", func() {
			c := config.Defaults()
			c.Listen = "not-an-ip"

			Expect(c.Validate()).To(HaveOccurred())
		})

		It("[TC-CF-004] rejects zero workers", func() {
			c := config.Defaults()
			c.Listen = "127.0.0.1"
			c.Workers = 0

			Expect(c.Validate()).To(HaveOccurred())
		})

		It("[TC-CF-005] accepts a fully populated config", func() {
			c := config.Defaults()
			c.Listen = "127.0.0.1"

			Expect(c.Validate()).ToNot(HaveOccurred())
		})
	})

	Describe("UID/GID pointer semantics", func() {
		It("[TC-CF-006] distinguishes unset from zero", func() {
			c := config.Defaults()
			Expect(c.HasUID()).To(BeFalse())
			Expect(c.GetUID()).To(Equal(0))

			root := 0
			c.UID = &root
			Expect(c.HasUID()).To(BeTrue())
			Expect(c.GetUID()).To(Equal(0))
		})
	})
})
