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

// Package supervisor is the long-lived parent process: it holds the
// Worker Record table, spawns and respawns workers, and translates
// termination signals into an idempotent shutdown (spec §4.2).
package supervisor

import (
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/sabouaram/httpd/config"
	"github.com/sabouaram/httpd/logger"
	"github.com/sabouaram/httpd/metrics"
)

// record is one row of the Worker Record table: a slot index and the
// pid currently occupying it, or -1 when the slot is empty. cmd is the
// exec.Cmd driving that pid, kept so shutdown can signal it and Run's
// background waiter can report its exit without a raw wait4 call —
// os/exec already owns the reaping.
type record struct {
	slot int
	pid  int
	cmd  *exec.Cmd
}

// exitEvent is what a worker's background waiter reports back to Run's
// select loop; translating blocking Wait calls into channel sends is
// the idiomatic Go substitute for a SIGCHLD handler.
type exitEvent struct {
	slot int
	err  error
}

// Supervisor owns the shared listener and the worker table. It never
// accepts a connection itself.
type Supervisor struct {
	cfg      config.Config
	log      *logger.Logger
	reg      *metrics.Registry
	listener *os.File

	mu      sync.Mutex
	workers []record

	exited       chan exitEvent
	shuttingDown atomic.Bool
}

// New constructs a Supervisor around an already-listening socket, as
// produced by privilege.Run.
func New(cfg config.Config, log *logger.Logger, reg *metrics.Registry, listener *os.File) *Supervisor {
	s := &Supervisor{
		cfg:      cfg,
		log:      log,
		reg:      reg,
		listener: listener,
		workers:  make([]record, cfg.Workers),
		exited:   make(chan exitEvent, cfg.Workers),
	}

	for i := range s.workers {
		s.workers[i] = record{slot: i, pid: -1}
	}

	return s
}

func (s *Supervisor) liveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, w := range s.workers {
		if w.pid > 0 {
			n++
		}
	}
	return n
}
