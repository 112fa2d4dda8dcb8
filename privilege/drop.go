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
	"golang.org/x/sys/unix"

	"github.com/sabouaram/httpd/config"
	liberr "github.com/sabouaram/httpd/errors"
	"github.com/sabouaram/httpd/logger"
)

// dropPrivileges sets the real/effective/saved group id, then user id, in
// that order (spec §4.1 step 5: "group before user, because dropping user
// first would forfeit the ability to change group"). Either half is
// optional; an operator who omits -u/-g gets a warning, not a failure,
// since running the supervisor as its invoking user is a valid (if
// unusual) choice left to the operator.
func dropPrivileges(cfg config.Config, log *logger.Logger) liberr.Error {
	if cfg.HasGID() {
		gid := cfg.GetGID()
		if err := unix.Setresgid(gid, gid, gid); err != nil {
			return ErrorPrivilegeDrop.Error(err)
		}
	} else {
		log.Warnf("no gid configured, retaining current group privileges")
	}

	if cfg.HasUID() {
		uid := cfg.GetUID()
		if err := unix.Setresuid(uid, uid, uid); err != nil {
			return ErrorPrivilegeDrop.Error(err)
		}
	} else {
		log.Warnf("no uid configured, retaining current user privileges")
	}

	return nil
}
