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

package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// stderrHook is the interactive sink: one glyph-prefixed line per entry,
// colorized by severity. Grounded on the teacher's hookstderr hook, scaled
// down to a single fixed line format since this server has no formatter
// configuration surface.
type stderrHook struct {
	colors map[logrus.Level]*color.Color
}

func newStderrHook() *stderrHook {
	return &stderrHook{
		colors: map[logrus.Level]*color.Color{
			logrus.DebugLevel: color.New(color.FgHiBlack),
			logrus.InfoLevel:  color.New(color.FgCyan),
			logrus.WarnLevel:  color.New(color.FgYellow),
			logrus.ErrorLevel: color.New(color.FgRed),
			logrus.FatalLevel: color.New(color.FgHiRed, color.Bold),
		},
	}
}

func (h *stderrHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *stderrHook) Fire(e *logrus.Entry) error {
	lvl := Level(0)
	if notice, _ := e.Data["notice"].(bool); notice {
		lvl = NoticeLevel
	} else {
		switch e.Level {
		case logrus.DebugLevel:
			lvl = DebugLevel
		case logrus.InfoLevel:
			lvl = InfoLevel
		case logrus.WarnLevel:
			lvl = WarnLevel
		case logrus.ErrorLevel:
			lvl = ErrorLevel
		case logrus.FatalLevel, logrus.PanicLevel:
			lvl = FatalLevel
		}
	}

	line := fmt.Sprintf("[%s] %s %-6s %s\n", e.Time.Format(time.RFC3339), lvl.glyph(), lvl.String(), e.Message)

	if c, ok := h.colors[e.Level]; ok {
		_, _ = c.Fprint(os.Stderr, line)
	} else {
		_, _ = fmt.Fprint(os.Stderr, line)
	}

	return nil
}
