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

package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/httpd/logger"
)

var _ = Describe("[TC-LV] Level", func() {
	DescribeTable("[TC-LV-001] Parse is case-insensitive and round-trips through String",
		func(input string, want logger.Level) {
			Expect(logger.Parse(input)).To(Equal(want))
			Expect(logger.Parse(want.String())).To(Equal(want))
		},
		Entry("debug", "DEBUG", logger.DebugLevel),
		Entry("info", "Info", logger.InfoLevel),
		Entry("notice", "notice", logger.NoticeLevel),
		Entry("warn", "WARN", logger.WarnLevel),
		Entry("warning alias", "warning", logger.WarnLevel),
		Entry("error", "error", logger.ErrorLevel),
		Entry("fatal", "fatal", logger.FatalLevel),
	)

	It("[TC-LV-002] defaults unrecognized input to info", func() {
		Expect(logger.Parse("bogus")).To(Equal(logger.InfoLevel))
	})

	It("[TC-LV-003] String covers every declared level", func() {
		levels := []logger.Level{
			logger.DebugLevel, logger.InfoLevel, logger.NoticeLevel,
			logger.WarnLevel, logger.ErrorLevel, logger.FatalLevel,
		}

		for _, l := range levels {
			Expect(l.String()).ToNot(Equal("unknown"))
		}
	})
})
