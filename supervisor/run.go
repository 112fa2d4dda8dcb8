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
	"os"
	"os/signal"
	"syscall"
)

// Run spawns every configured worker, then blocks translating the first
// termination signal into shutdown and every worker exit (crash or
// otherwise) into a respawn, until shutdown completes. It returns nil on
// an orderly signal-driven shutdown.
func (s *Supervisor) Run() error {
	for slot := range s.workers {
		if err := s.spawn(slot); err != nil {
			return err
		}
	}

	return s.loop()
}

func (s *Supervisor) loop() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sig)

	for {
		select {
		case sg := <-sig:
			s.log.Noticef("received %s, starting shutdown", sg)
			s.shutdown()
			return nil

		case ev := <-s.exited:
			s.handleExit(ev)
		}
	}
}

func (s *Supervisor) handleExit(ev exitEvent) {
	s.mu.Lock()
	s.workers[ev.slot] = record{slot: ev.slot, pid: -1}
	s.mu.Unlock()

	s.reg.WorkersLive.Set(float64(s.liveCount()))

	if s.shuttingDown.Load() {
		return
	}

	s.log.Warnf("worker slot %d exited (%v), respawning", ev.slot, ev.err)
	s.reg.WorkerRespawns.Inc()

	if err := s.spawn(ev.slot); err != nil {
		s.log.Errorf("failed to respawn worker slot %d: %v", ev.slot, err)
	}
}
