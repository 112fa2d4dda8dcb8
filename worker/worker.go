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

// Package worker is the event loop a spawned worker process runs: accept
// on the shared listener until it would block, dispatch ready
// connections to the request handler, and never touch the process's own
// termination signals (the default disposition is what the supervisor
// relies on to kill a worker outright — spec §4.2, §4.3).
package worker

import (
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/sabouaram/httpd/httpreq"
	"github.com/sabouaram/httpd/logger"
	"github.com/sabouaram/httpd/metrics"
	"github.com/sabouaram/httpd/multiplex"
)

// conn buffers bytes read from a client socket until a full request
// header has arrived; GET requests carry no body, so nothing beyond the
// header block is ever expected.
type conn struct {
	buf []byte
}

// Worker owns one epoll instance (shared listener, private connections)
// and the map of in-flight connection buffers keyed by fd.
type Worker struct {
	slot     int
	listener int
	mp       *multiplex.Epoll
	log      *logger.Logger
	reg      *metrics.Registry
	conns    map[int]*conn
}

func New(slot, listenerFD int, mp *multiplex.Epoll, log *logger.Logger, reg *metrics.Registry) *Worker {
	return &Worker{
		slot:     slot,
		listener: listenerFD,
		mp:       mp,
		log:      log,
		reg:      reg,
		conns:    make(map[int]*conn),
	}
}

// Run is the worker's event loop. It returns only on a genuine epoll
// error; a client disconnect or protocol error only ever closes that one
// connection, per spec §4.3's crash-containment invariant.
func (w *Worker) Run() error {
	events := make([]unix.EpollEvent, multiplex.DefaultBatch)

	for {
		n, err := w.mp.Wait(events)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			fd := int(events[i].Fd)

			if fd == w.listener {
				w.acceptAll()
			} else {
				w.serviceConnection(fd)
			}
		}
	}
}

// acceptAll drains the listener's backlog: accept until EAGAIN, since a
// single readiness notification may correspond to more than one pending
// connection (spec §9). The listener is registered level-triggered, so a
// worker that loses the accept race to another worker just sees EAGAIN.
func (w *Worker) acceptAll() {
	for {
		fd, _, err := unix.Accept4(w.listener, unix.SOCK_NONBLOCK)
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			// A transient per-connection accept failure (e.g. ECONNABORTED)
			// is not fatal to the worker; the next readiness event retries.
			return
		}

		if err = w.mp.AddConnection(fd); err != nil {
			_ = unix.Close(fd)
			continue
		}

		w.conns[fd] = &conn{}
		w.reg.ConnectionsAccepted.WithLabelValues(strconv.Itoa(w.slot)).Inc()
	}
}

// serviceConnection reads whatever is available on fd, and once a full
// request header has accumulated, dispatches and responds. Every
// request completion closes the connection: no keep-alive, one request
// per connection, always (spec §1, §5).
func (w *Worker) serviceConnection(fd int) {
	c, ok := w.conns[fd]
	if !ok {
		return
	}

	for {
		var chunk [4096]byte
		n, err := unix.Read(fd, chunk[:])

		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			break
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil || n == 0 {
			w.closeConn(fd)
			return
		}

		c.buf = append(c.buf, chunk[:n]...)
	}

	req, ok := httpreq.Parse(c.buf)
	if !ok {
		if len(c.buf) > httpreq.MaxRequestLine {
			w.closeConn(fd)
		}
		return
	}

	if req.Unsupported {
		_ = httpreq.RespondUnsupported(fd)
		w.reg.Requests.WithLabelValues(metrics.StatusClass(501)).Inc()
		w.closeConn(fd)
		return
	}

	status, _ := httpreq.Respond(fd, req.Target)
	w.reg.Requests.WithLabelValues(metrics.StatusClass(status)).Inc()

	w.closeConn(fd)
}

func (w *Worker) closeConn(fd int) {
	_ = w.mp.Remove(fd)
	_ = unix.Close(fd)
	delete(w.conns, fd)
}
