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

// Package multiplex is the readiness multiplexer collaborator (spec §4.1
// step 7, §4.3): a thin wrapper over Linux epoll. Each worker owns one
// instance; the listener is its first, level-triggered member, and
// accepted connections are added edge-triggered as the worker accepts them.
//
// A single epoll descriptor is never shared across processes: epoll_ctl
// registrations resolve to open file descriptions at call time, and a
// registration added by one process would be indistinguishable garbage
// to another process's fd table if delivered there by a contended
// epoll_wait. Giving each worker its own epoll instance — with only the
// listening socket held in common — preserves the "shared-listener,
// graceful-loser" discipline (spec §4.3, §9) without that cross-process
// fd-confusion hazard. See DESIGN.md for the full rationale.
package multiplex

import "golang.org/x/sys/unix"

// DefaultBatch is the event-batch size an EpollWait call requests, per
// spec §4.3 step 1 ("implementer may choose the batch size; 16 is a
// reasonable default").
const DefaultBatch = 16

type Epoll struct {
	fd int
}

// New creates a fresh epoll instance.
func New() (*Epoll, error) {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}

	return &Epoll{fd: fd}, nil
}

func (e *Epoll) FD() int { return e.fd }

// AddListener registers fd (the shared listening socket) for level-
// triggered read-readiness, per spec §4.1 step 7.
func (e *Epoll) AddListener(fd int) error {
	return unix.EpollCtl(e.fd, unix.EPOLL_CTL_ADD, fd, &unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(fd),
	})
}

// AddConnection registers fd (a just-accepted, non-blocking connection)
// for edge-triggered read-readiness, per spec §4.3 step 2.
func (e *Epoll) AddConnection(fd int) error {
	return unix.EpollCtl(e.fd, unix.EPOLL_CTL_ADD, fd, &unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLET,
		Fd:     int32(fd),
	})
}

// Remove drops fd from the registered set. Safe to call after the fd has
// already been closed elsewhere (EBADF is swallowed).
func (e *Epoll) Remove(fd int) error {
	err := unix.EpollCtl(e.fd, unix.EPOLL_CTL_DEL, fd, nil)
	if err == unix.EBADF {
		return nil
	}
	return err
}

// Wait blocks until at least one registered descriptor is ready, an
// interrupting signal arrives (retried internally, never surfaced per
// spec §7's "transient I/O conditions" policy), or a real error occurs.
func (e *Epoll) Wait(events []unix.EpollEvent) (int, error) {
	for {
		n, err := unix.EpollWait(e.fd, events, -1)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

func (e *Epoll) Close() error {
	return unix.Close(e.fd)
}
