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

// Package privilege is the Privilege-Descent Pipeline collaborator (spec
// §4.1): bind, chroot, drop, listen, in that strict order (Run). Spawn is
// left to the supervisor package so it runs after every privilege
// reduction, and multiplex creation (NewWorkerMultiplex) runs once in each
// spawned worker process.
package privilege

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/sabouaram/httpd/config"
	liberr "github.com/sabouaram/httpd/errors"
	"github.com/sabouaram/httpd/logger"
	"github.com/sabouaram/httpd/multiplex"
)

// Resources is the descriptor every worker inherits: the already-bound,
// already-listening socket. Wrapped in *os.File so supervisor can hand
// it to workers through exec.Cmd's ExtraFiles, the Go-idiomatic
// substitute for a raw fork()'s implicit descriptor-table sharing.
//
// The multiplexer from spec §4.1 step 7 is deliberately NOT created
// here and NOT part of Resources: epoll_ctl registrations resolve to
// open file descriptions of the calling process, so a single epoll
// instance handed to N workers would let any worker's epoll_wait
// receive a readiness notification for a connection fd number that
// means something else (or nothing) in its own descriptor table — real
// state corruption, not just an awkward abstraction. Each worker instead
// performs step 7 for itself, in its own process, against the one
// descriptor it does share: the listener. See DESIGN.md.
type Resources struct {
	Listener *os.File
}

// Run executes steps 3 through 6 of the descent pipeline: bind, chroot,
// drop, listen. Steps 1 (sink selection) and 2 (detachment) have
// already happened by the time Run is called — sink selection is just
// constructing the Logger the caller passes in, and detachment is
// privilege.Daemonize, called earlier in main so the re-exec occurs
// before any privileged resource is opened. Step 7 (multiplex create)
// runs once per worker; see Resources.
func Run(cfg config.Config, log *logger.Logger) (*Resources, liberr.Error) {
	fd, err := bindSocket(cfg.Listen, cfg.Port)
	if err != nil {
		return nil, err
	}

	if cfg.Root != "" {
		if err = doChroot(cfg.Root); err != nil {
			_ = unix.Close(fd)
			return nil, err
		}
	} else {
		log.Warnf("no chroot root configured, serving with the full filesystem visible")
	}

	if err = dropPrivileges(cfg, log); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	if err = listenSocket(fd, cfg.Backlog); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	return &Resources{Listener: os.NewFile(uintptr(fd), "httpd-listener")}, nil
}

// NewWorkerMultiplex performs step 7 for a single worker process: create
// a fresh epoll instance and register the inherited listener, level-
// triggered, as its first member.
func NewWorkerMultiplex(listenerFD int) (*multiplex.Epoll, liberr.Error) {
	ep, err := multiplex.New()
	if err != nil {
		return nil, ErrorMultiplexCreate.Error(err)
	}

	if err = ep.AddListener(listenerFD); err != nil {
		_ = ep.Close()
		return nil, ErrorMultiplexCreate.Error(err)
	}

	return ep, nil
}
