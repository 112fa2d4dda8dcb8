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

package httpreq

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/sabouaram/httpd/content"
	"github.com/sabouaram/httpd/response"
)

// writeAll writes buf to fd in full, looping through EAGAIN/EWOULDBLOCK
// (fd is non-blocking) and EINTR, per spec §4.6's "transient conditions
// are retried, not surfaced as errors" policy.
func writeAll(fd int, buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Write(fd, buf)
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		buf = buf[n:]
	}

	return nil
}

// sendFile streams count bytes of f to fd via sendfile(2), looping the
// same way writeAll does. No fallback is attempted: sendfile is
// available on every platform this server targets (Linux).
func sendFile(fd int, f *os.File, count int64) error {
	src := int(f.Fd())
	var off int64

	for count > 0 {
		n, err := unix.Sendfile(fd, src, &off, int(count))
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		count -= int64(n)
	}

	return nil
}

// Respond resolves target against the process root and writes the full
// response — headers plus body — to fd. It returns the status code that
// was sent so the caller can account for it (metrics, logging).
func Respond(fd int, target string) (int, error) {
	res := Resolve(target)

	switch res.Status {
	case 200:
		f, err := os.Open(res.Path)
		if err != nil {
			return 500, writeAll(fd, response.Error(500))
		}
		defer f.Close()

		head := response.Head(200, int(res.Size), content.TypeFor(res.Path), "")
		if err = writeAll(fd, head); err != nil {
			return 200, err
		}

		return 200, sendFile(fd, f, res.Size)

	case 301:
		return 301, writeAll(fd, response.Redirect(res.Location))

	default:
		return res.Status, writeAll(fd, response.Error(res.Status))
	}
}

// RespondUnsupported writes the fixed 501 response for any request this
// server does not understand (non-GET method, non-HTTP/1.1 version).
func RespondUnsupported(fd int) error {
	return writeAll(fd, response.Error(501))
}
