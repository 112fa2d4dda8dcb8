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

// Package logger is the severity-and-sink collaborator described by the
// server's logger contract: debug, info, notice, warn, error and fatal
// calls that land either on an interactive stderr stream or a daemon
// syslog stream, chosen once at startup.
package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is a severity one notch richer than logrus's own: Notice sits
// between Info and Warn for operational milestones (worker spawned,
// shutdown complete) that are not noteworthy enough to warn about but
// are worth a line even at default verbosity.
type Level uint8

const (
	DebugLevel Level = iota
	InfoLevel
	NoticeLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case NoticeLevel:
		return "notice"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	}

	return "unknown"
}

// glyph is the one-character severity prefix used by the interactive sink.
func (l Level) glyph() string {
	switch l {
	case DebugLevel:
		return "."
	case InfoLevel:
		return "*"
	case NoticeLevel:
		return "~"
	case WarnLevel:
		return "!"
	case ErrorLevel:
		return "X"
	case FatalLevel:
		return "#"
	}

	return "?"
}

// logrusLevel maps Level onto the logrus level it is fired through.
// Notice rides on logrus.InfoLevel with an extra "notice" field so a
// plain logrus formatter still prints something sane for it.
func (l Level) logrusLevel() logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel, NoticeLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	}

	return logrus.InfoLevel
}

// Parse is case-insensitive and defaults unrecognized input to InfoLevel.
func Parse(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "notice":
		return NoticeLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	}

	return InfoLevel
}
