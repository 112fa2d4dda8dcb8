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

package supervisor

import (
	"syscall"
	"time"
)

// shutdownGrace bounds how long shutdown waits for live workers to exit
// on their own after being signaled, before giving up and returning
// anyway; shutdown is best-effort, not a hard guarantee every worker has
// exited by the time it returns (spec §4.2).
const shutdownGrace = 5 * time.Second

// shutdown is idempotent: the atomic.Bool guard means a second signal
// arriving mid-shutdown, or a worker exit event racing the first
// signal, never re-enters the termination sequence (spec §4.2, §8).
func (s *Supervisor) shutdown() {
	if !s.shuttingDown.CompareAndSwap(false, true) {
		return
	}

	_ = s.listener.Close()

	s.mu.Lock()
	live := make([]record, 0, len(s.workers))
	for _, w := range s.workers {
		if w.pid > 0 {
			live = append(live, w)
		}
	}
	s.mu.Unlock()

	for _, w := range live {
		_ = w.cmd.Process.Signal(syscall.SIGTERM)
	}

	deadline := time.After(shutdownGrace)
	remaining := len(live)

	for remaining > 0 {
		select {
		case ev := <-s.exited:
			s.mu.Lock()
			s.workers[ev.slot] = record{slot: ev.slot, pid: -1}
			s.mu.Unlock()
			remaining--
		case <-deadline:
			s.log.Warnf("shutdown grace period elapsed with %d worker(s) still live", remaining)
			return
		}
	}

	s.reg.WorkersLive.Set(0)
	snap := s.reg.Snapshot()
	s.log.Noticef("shutdown complete (workers live: %v, worker respawns: %v)", snap.WorkersLive, snap.WorkerRespawns)
}
