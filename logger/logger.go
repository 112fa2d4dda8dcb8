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

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide collaborator. It is not safe to swap the
// sink after New returns; the contract is "select once at startup"
// (spec §4.1 step 1), matching the teacher's global-function-pointer
// logger but expressed as a small struct instead of a mutable package var.
type Logger struct {
	log  *logrus.Logger
	tag  string
	hook logrus.Hook
}

// New constructs the logger and selects its sink: interactive (stderr,
// colorized) when foreground is true, daemon (syslog, tagged with tag)
// otherwise. Daemon mode that fails to reach syslogd falls back to
// stderr and reports the failure, since a logger that cannot log is
// not a safe thing to run a privilege-descent pipeline under.
func New(tag string, foreground bool) *Logger {
	l := logrus.New()
	l.SetOutput(discard{})
	l.SetLevel(logrus.DebugLevel)

	lg := &Logger{log: l, tag: tag}

	if foreground {
		lg.hook = newStderrHook()
	} else if h, err := newSyslogHook(tag); err == nil {
		lg.hook = h
	} else {
		lg.hook = newStderrHook()
		lg.log.AddHook(lg.hook)
		lg.Warnf("syslog unavailable, falling back to stderr: %v", err)
		return lg
	}

	l.AddHook(lg.hook)

	return lg
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func (l *Logger) fire(lvl Level, msg string) {
	e := l.log.WithField("notice", lvl == NoticeLevel)
	e.Log(lvl.logrusLevel(), msg)

	if lvl == FatalLevel {
		os.Exit(1)
	}
}

func (l *Logger) Debugf(format string, args ...any) { l.fire(DebugLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.fire(InfoLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Noticef(format string, args ...any) {
	l.fire(NoticeLevel, fmt.Sprintf(format, args...))
}
func (l *Logger) Warnf(format string, args ...any) { l.fire(WarnLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) {
	l.fire(ErrorLevel, fmt.Sprintf(format, args...))
}
func (l *Logger) Fatalf(format string, args ...any) {
	l.fire(FatalLevel, fmt.Sprintf(format, args...))
}
