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

package privilege

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	liberr "github.com/sabouaram/httpd/errors"
)

// daemonMarker is set in the environment of a re-executed, detached
// supervisor so the second invocation knows to skip Daemonize and
// proceed straight into the descent pipeline.
const daemonMarker = "HTTPD_DAEMONIZED"

// Daemonize implements spec §4.1 step 2 ("Detachment"). The Go runtime
// cannot safely fork() once goroutines exist, so detachment here is a
// re-exec: the current process launches a copy of itself in a new
// session (syscall.SysProcAttr{Setsid: true} is the idiomatic
// equivalent of setsid() after a classic double-fork), with stdio
// redirected away from the controlling terminal and the working
// directory set to / (mirroring daemon(0,0)'s unconditional chdir),
// then the original process exits zero. The child returns from this
// call having inherited daemonMarker and proceeds as the supervisor.
//
// Foreground mode (cfg.Foreground) skips detachment entirely: the
// operator asked to stay attached for interactive use.
func Daemonize() liberr.Error {
	if os.Getenv(daemonMarker) == "1" {
		return nil
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return ErrorDaemonize.Error(err)
	}
	defer devNull.Close()

	self := os.Args[0]
	if filepath.Base(self) != self {
		// self contains a path separator: exec.Command will use it
		// verbatim rather than resolving it through $PATH, so it must
		// be made absolute now, before Dir changes the child's cwd to /.
		if abs, aerr := filepath.Abs(self); aerr == nil {
			self = abs
		}
	}

	cmd := exec.Command(self, os.Args[1:]...)
	cmd.Env = append(os.Environ(), daemonMarker+"=1")
	cmd.Dir = "/"
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err = cmd.Start(); err != nil {
		return ErrorDaemonize.Error(err)
	}

	os.Exit(0)
	return nil
}
