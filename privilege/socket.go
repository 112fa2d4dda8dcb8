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
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	liberr "github.com/sabouaram/httpd/errors"
)

// bindSocket creates an IPv4 TCP socket, sets SO_REUSEADDR so a restarted
// supervisor can rebind immediately, and binds it to addr:port. It does
// not transition to LISTEN: that happens later, after privilege drop
// (spec §4.1 steps 3 and 6 are kept as separate calls on purpose).
func bindSocket(addr string, port uint16) (int, liberr.Error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return -1, ErrorSocketCreate.Error(err)
	}

	if err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		_ = unix.Close(fd)
		return -1, ErrorSocketCreate.Error(err)
	}

	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		_ = unix.Close(fd)
		return -1, ErrorSocketBind.Error(fmt.Errorf("%q is not a dotted-quad IPv4 address", addr))
	}

	sa := &unix.SockaddrInet4{Port: int(port)}
	copy(sa.Addr[:], ip.To4())

	if err = unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return -1, ErrorSocketBind.Error(err)
	}

	return fd, nil
}

// listenSocket transitions fd to LISTEN with the configured backlog.
// Called only after chroot and privilege drop have completed, per the
// descent pipeline's strict step ordering.
func listenSocket(fd, backlog int) liberr.Error {
	if err := unix.Listen(fd, backlog); err != nil {
		return ErrorSocketListen.Error(err)
	}

	return nil
}
