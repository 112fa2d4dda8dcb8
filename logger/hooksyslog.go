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

//go:build !windows

package logger

import (
	"log/syslog"

	"github.com/sirupsen/logrus"
)

// syslogHook is the daemon sink: every entry goes to the system log
// under the process tag, severity-mapped to the nearest syslog priority.
type syslogHook struct {
	w *syslog.Writer
}

func newSyslogHook(tag string) (*syslogHook, error) {
	w, err := syslog.New(syslog.LOG_DAEMON|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, err
	}

	return &syslogHook{w: w}, nil
}

func (h *syslogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *syslogHook) Fire(e *logrus.Entry) error {
	notice, _ := e.Data["notice"].(bool)

	switch {
	case e.Level == logrus.DebugLevel:
		return h.w.Debug(e.Message)
	case notice:
		return h.w.Notice(e.Message)
	case e.Level == logrus.InfoLevel:
		return h.w.Info(e.Message)
	case e.Level == logrus.WarnLevel:
		return h.w.Warning(e.Message)
	case e.Level == logrus.ErrorLevel:
		return h.w.Err(e.Message)
	case e.Level == logrus.FatalLevel || e.Level == logrus.PanicLevel:
		return h.w.Crit(e.Message)
	}

	return h.w.Info(e.Message)
}
