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

	liberr "github.com/sabouaram/httpd/errors"
)

// doChroot confines the process filesystem view to root and moves the
// working directory inside it, so every subsequent path resolution
// (including the request handler's) is relative to root, per spec §4.1
// step 4. Requires CAP_SYS_CHROOT; callers must run this before dropping
// privileges.
func doChroot(root string) liberr.Error {
	if err := unix.Chroot(root); err != nil {
		return ErrorChroot.Error(err)
	}

	if err := unix.Chdir("/"); err != nil {
		return ErrorChroot.Error(err)
	}

	return nil
}
